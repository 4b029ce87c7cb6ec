// Package utils provides small conversion helpers shared across features,
// primarily for turning decimal-string hash keys into numeric hashes.
package utils
