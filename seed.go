package pong

import "github.com/cespare/xxhash/v2"

// SeedFromString derives a serve seed from an arbitrary string, so a match
// can be replayed from a memorable name such as "friday-final".
func SeedFromString(s string) uint64 {
	return xxhash.Sum64String(s)
}
