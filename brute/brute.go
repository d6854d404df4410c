// Package brute provides the direct, non-table-driven commafree utilities
// that spec.md calls out of scope for the core: a straightforward
// commafree predicate and an exhaustive (unoptimized) search for
// commafree codes, useful only as a correctness oracle for small
// alphabets. Neither routine here is part of Algorithm C; both are ported
// from original_source's exercise34/exercise35/is_commafree and
// commafree_classes.
package brute

import (
	"github.com/wallberg/commafree/commafree"
	"github.com/wallberg/commafree/preprime"
)

// IsCommafree reports whether code is commafree per spec.md §1: for every
// pair x, y in code (x may equal y), no interior substring of xy — one
// starting at position 1..3 of the 8-letter concatenation — is itself a
// member of code. This is the direct definition exercise35/is_commafree in
// the original source compute via a more roundabout double pass; the two
// are equivalent, and this is the form spec.md §1 states directly.
func IsCommafree(code []commafree.Word) bool {
	set := make(map[commafree.Word]bool, len(code))
	for _, w := range code {
		set[w] = true
	}

	for _, x := range code {
		for _, y := range code {
			xy := [8]int{x[0], x[1], x[2], x[3], y[0], y[1], y[2], y[3]}
			for start := 1; start <= 3; start++ {
				var w commafree.Word
				copy(w[:], xy[start:start+4])
				if set[w] {
					return false
				}
			}
		}
	}
	return true
}

// classWords returns, for alphabet size m, the list of classes as their
// (up to four) BLUE rotations, in the same order and with the same two
// symmetry exclusions ((0,1,0,0) and (1,0,0,0)) as the core (§4.1).
func classWords(m int) [][]commafree.Word {
	var classes [][]commafree.Word
	for _, rep := range preprime.Preprimes(m, 4) {
		if rep.J != 4 {
			continue
		}
		word := commafree.Word{rep.Word[0], rep.Word[1], rep.Word[2], rep.Word[3]}
		var words []commafree.Word
		for t := 0; t < 4; t++ {
			if word != (commafree.Word{0, 1, 0, 0}) && word != (commafree.Word{1, 0, 0, 0}) {
				words = append(words, word)
			}
			word = commafree.Word{word[1], word[2], word[3], word[0]}
		}
		classes = append(classes, words)
	}
	return classes
}

// AllCodes exhaustively enumerates every commafree code of exactly g words
// for alphabet size m, choosing at most one word per cyclic class, via
// plain backtracking with no table-driven bookkeeping (exercise34 /
// commafree_classes in the original source). It exists purely to
// cross-check Algorithm C's output on small inputs (spec.md §8,
// Completeness property) and is exponential in the number of classes; it
// is unsuitable for anything beyond m=2 or m=3 with a small g.
func AllCodes(m, g int) [][]commafree.Word {
	classes := classWords(m)
	l := len(classes)

	var results [][]commafree.Word
	current := make([]commafree.Word, 0, g)

	var rec func(classIdx, remaining int)
	rec = func(classIdx, remaining int) {
		if remaining == 0 {
			out := make([]commafree.Word, len(current))
			copy(out, current)
			results = append(results, out)
			return
		}
		if classIdx >= l || l-classIdx < remaining {
			return
		}

		// Skip this class entirely.
		rec(classIdx+1, remaining)

		// Try each rotation of this class.
		for _, w := range classes[classIdx] {
			current = append(current, w)
			if IsCommafree(current) {
				rec(classIdx+1, remaining-1)
			}
			current = current[:len(current)-1]
		}
	}

	rec(0, g)
	return results
}
