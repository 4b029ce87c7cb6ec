// Package bungie provides the HTTP client for the Bungie.net manifest and the
// auxiliary community data files.
//
// The manifest endpoint returns a small metadata document: an opaque version
// token and, per language, a map from definition table name to a relative
// download path. Each table endpoint returns one large JSON object mapping
// decimal-string hashes to definition records.
//
// # Request Routing
//
// Get accepts either a path relative to the configured base URL (the form the
// manifest publishes its component paths in) or an absolute URL. The API key
// is attached only to base-URL requests.
//
// # Failure Semantics
//
// Any non-200 response or decode failure is an error; callers decide whether
// that is fatal (manifest metadata, definition tables) or degradable
// (auxiliary files).
package bungie
