// Package jsontree loads the untyped data tree the write engine expects
// (spec.md §4.3's "data tree" parameter) from a JSON or JSONC byte slice.
//
// Query parsing and transport are out of scope for this module; getting
// bytes into a plain Go value tree is not — the teacher's adapter/json
// package draws the same line, stripping comments and trailing commas
// with github.com/tidwall/jsonc before handing off to encoding/json.
package jsontree
