// Package integrity exposes consistency checks over the persisted weapon
// catalog: the record store (table presence, full/concise parity, version
// token, payload decodability) and the object-store namespaces (bucket,
// auxiliary cache, snapshot archive). The checks are read-only and report
// findings; they never repair anything themselves.
package integrity
