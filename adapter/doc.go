// Package adapter provides format-specific loaders that turn raw bytes into
// the data trees write.Write and the query documents selast/read expect.
// Each adapter subpackage handles a specific input format and may carry its
// own external dependencies.
//
// # Architectural Boundary
//
// Adapters live at the outermost tier of the module: dependency hygiene via
// import granularity means a consumer who imports only node/write/read/store
// does not transitively pull in an adapter's third-party dependencies
// (tidwall/jsonc, in adapter/jsontree's case) unless that adapter package is
// imported directly.
//
// # Subpackages
//
//   - [jsontree]: JSON/JSONC data-tree loading
package adapter
