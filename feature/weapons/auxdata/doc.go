// Package auxdata loads the six supplementary lookup files used by attribute
// derivation: watermark→season, watermark→event, source→season, item→season,
// item→event and the craftable-item set.
//
// The set is cached as one object under a fixed name. Unlike the manifest
// tables, a failed individual file is not fatal: the affected lookup degrades
// to empty and season/event simply resolve to unknown more often.
package auxdata
