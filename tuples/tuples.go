// Package tuples carries the one auxiliary routine from
// original_source/Tuples.py that spec.md §1 singles out as "unrelated" to
// the commafree core: lexicographically-smallest-suffix prime
// factorization of a digit string (Exercise 101). It has no dependency on,
// and is never imported by, the commafree search.
package tuples

// PI is the digit string the original source factors in its Exercise 101
// test.
const PI = "3141592653589793238462643383279502884197"

// PrimeFactors returns the prime factors λ1..λt of s: repeatedly peel off
// the lexicographically smallest suffix of what remains, then reverse the
// order collected.
func PrimeFactors(s string) []string {
	var pfs []string

	for len(s) > 0 {
		minSuffix := s[len(s)-1:]
		for i := 0; i < len(s)-1; i++ {
			if suffix := s[i:]; suffix < minSuffix {
				minSuffix = suffix
			}
		}
		pfs = append(pfs, minSuffix)
		s = s[:len(s)-len(minSuffix)]
	}

	for i, j := 0, len(pfs)-1; i < j; i, j = i+1, j-1 {
		pfs[i], pfs[j] = pfs[j], pfs[i]
	}
	return pfs
}
