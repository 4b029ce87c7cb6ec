// Package attributes derives season, event, source and craftability for one
// item from the auxiliary lookups and the item's own watermark and
// collectible references.
//
// Season and event resolve through explicit fallback chains; the chain order
// is part of the contract and tested as such. The item→source index is built
// once per snapshot from the collectible table.
package attributes
