// Package abbrev resolves abbreviations.
//
// A word abbreviates a candidate when it is a non-empty, case-insensitive
// prefix of it; the full candidate is its own abbreviation. Resolve succeeds
// only when exactly one candidate is abbreviated:
//
//	abbrev.Resolve("ca", []string{"canonical", "polar"}) // "canonical", nil
//	abbrev.Resolve("x", []string{"canonical", "polar"})  // *NoMatchError
//
// Callers translate the two failure types into their own error codes.
package abbrev
