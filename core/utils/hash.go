package utils

import "strconv"

// ParseHash converts a decimal-string hash key (the form definition tables
// and auxiliary files are keyed by) into a uint32 hash. Malformed keys return
// ok=false so callers can skip them instead of failing the whole table.
func ParseHash(s string) (uint32, bool) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// RekeyByHash converts a table decoded with decimal-string keys into a map
// keyed by numeric hash. Entries with malformed keys are dropped.
func RekeyByHash[V any](in map[string]V) map[uint32]V {
	out := make(map[uint32]V, len(in))
	for k, v := range in {
		hash, ok := ParseHash(k)
		if !ok {
			continue
		}
		out[hash] = v
	}
	return out
}
