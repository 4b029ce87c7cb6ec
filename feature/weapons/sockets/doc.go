// Package sockets resolves an item's socket graph into the three perk shapes
// of a weapon record: the intrinsic frame, the origin traits and the ordered
// perk columns.
//
// Resolution is read-only over one table snapshot. Every lookup may miss;
// absence always means "skip" (no frame, no intrinsic, a thinner column),
// never an error. Within a column, pool order is preserved and
// curated-exclusive entries are appended after the pool entries.
package sockets
