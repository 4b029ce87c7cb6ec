// Package database manages the relational store that holds the synced weapon
// record collections and the persisted manifest version token.
//
// Production deployments use MySQL; the sqlite driver is wired in so the
// repository layer can be tested against an in-memory database.
package database
