// Package weapons is the weapon catalog feature: it syncs the published
// manifest into normalized weapon records and serves them over HTTP.
//
// # Sync protocol
//
// CheckAndSync fetches the small manifest metadata document and compares its
// version token with the persisted one. On a match nothing else is fetched.
// On a mismatch every definition table and the auxiliary lookups download in
// wide parallel, the transformation runs, and the new record sets plus the
// new token commit in a single transaction. A failed sync leaves the previous
// state untouched; callers can keep serving cached records.
//
// # Sub-packages
//
//   - hashes: static identifier catalog
//   - models: definition and record shapes, persisted rows
//   - manifest: parallel table download
//   - auxdata: cached auxiliary lookups
//   - sockets: socket/plug resolution engine
//   - attributes: season/event/source/craftable derivation
//   - builder: record assembly and qualification filtering
package weapons
