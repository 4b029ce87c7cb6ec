// Package models defines the manifest definition shapes the pipeline decodes,
// the output record shapes it produces, and their persisted row forms.
//
// # Definition tables
//
// Definition types mirror the published manifest JSON and decode only the
// fields the pipeline reads. Lookups into definition tables may legitimately
// miss (redacted or cross-version data); every consumer treats absence as
// "skip", never as fatal.
//
// # Output records
//
// WeaponRecord and ConciseWeaponRecord are owned by the record builder once
// constructed and immutable thereafter. A weapon hash identifies exactly one
// full record and one concise record, and Concise is a pure function of the
// full record.
package models
