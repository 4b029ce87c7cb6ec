// Package manifest downloads the definition table snapshot the transformation
// runs over.
//
// The manifest metadata names a relative path per table and language; Fetch
// resolves the paths for every required table up front (a missing path is a
// hard failure), then downloads all tables in wide parallel and joins before
// returning. Tables are keyed by numeric hash after download.
package manifest
