// Package storage provides the object storage client used for cached blobs.
//
// Two object namespaces live in the configured bucket:
//   - cache/ holds the auxiliary-data blob, refreshed only by explicit clear
//   - snapshots/ holds raw manifest tables archived per version token
//
// Both are independent from the relational record store and carry their own
// invalidation triggers.
package storage
