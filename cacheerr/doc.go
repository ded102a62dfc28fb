// Package cacheerr defines the error taxonomy for the graph cache.
//
// The cache reports errors as synchronous, returned Go errors rather than
// an accumulated diagnostics collection. Each failure is reported as a
// typed error whose message starts with a stable prefix from the "Known
// error prefixes" table in the cache's external interface contract, and
// which matches its sentinel under [errors.Is].
package cacheerr
