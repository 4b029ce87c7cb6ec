// Package builder assembles the output record sets: it filters candidate
// items, runs socket resolution and attribute derivation per item, and emits
// the full and concise shapes ready for persistence.
//
// Failure handling follows the batch policy: a malformed item is logged and
// omitted; only snapshot-level problems (handled upstream) abort a sync.
package builder
