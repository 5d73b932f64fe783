package catalog

// SeededRandom maps a seed string onto [0, 1) deterministically.  It is an
// FNV-1a style hash: 32-bit offset basis 2166136261, XOR each character,
// multiply by the prime 16777619 with 32-bit wraparound, then normalise by
// dividing by 2^32-1.  The exact constants are the catalog's reproducibility
// contract: rebuilding from the same reference tables must yield identical
// trips, prices and IDs, so this must never be swapped for a stateful PRNG
// or a different hash.
//
// Characters are consumed as Go runes.  Every seed the catalog ever hashes
// (station codes, the Arabic date keys, numeric suffixes) sits in the Basic
// Multilingual Plane, where rune values coincide with UTF-16 code units.
func SeededRandom(seed string) float64 {
	hash := uint32(2166136261)
	for _, r := range seed {
		hash ^= uint32(r)
		hash *= 16777619
	}
	return float64(hash) / 4294967295
}
