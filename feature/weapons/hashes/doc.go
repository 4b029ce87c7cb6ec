// Package hashes is the static catalog of well-known manifest identifiers:
// weapon slot buckets, socket category roles, item category markers,
// placeholder plug markers and the enhanced-perk tier marker.
//
// It is pure data. The numeric values come from the published manifest and
// change only when the game does; anything the manifest does not flag
// directly (enhanced perks, trackers) is documented at the constant as an
// observed property rather than a contract.
package hashes
