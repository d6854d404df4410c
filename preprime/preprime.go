// Package preprime implements Algorithm F (Knuth, TAOCP 4A §7.2.1.1):
// generation of every preprime string of a given length over an m-ary
// alphabet, along with each string's prime period.
//
// A preprime is an n-tuple a_1..a_n such that repeating its first j
// letters (j the tuple's prime period) reproduces the whole tuple; j=n
// means the tuple is non-periodic under any rotation shorter than its full
// length. commafree's 4-cycle classes are exactly the preprimes of length
// 4 with j=4.
package preprime

// Tuple is an n-letter string over an m-ary alphabet, represented as
// integers in [0,m).
type Tuple []int

// Rep is one preprime string together with its prime period j, 1<=j<=n.
type Rep struct {
	Word Tuple
	J    int
}

// Preprimes returns every preprime n-tuple over an m-ary alphabet, each
// paired with its prime period, in the visiting order of Algorithm F.
// The sequence is materialized eagerly: the core's "strictly
// single-threaded, synchronous, cooperative-by-default" requirement rules
// out a goroutine-backed generator, and for the tuple lengths this package
// is used with (n=4) the full sequence is small (at most m^4 entries).
func Preprimes(m, n int) []Rep {
	a := make([]int, n+1)
	a[0] = -1
	j := 1

	var reps []Rep

	for {
		word := make(Tuple, n)
		copy(word, a[1:])
		reps = append(reps, Rep{Word: word, J: j})

		// F3. Prepare to increase.
		j = n
		for a[j] == m-1 {
			j--
			if j == 0 {
				return reps
			}
		}

		// F4. Add one.
		a[j]++

		// F5. Make n-extension.
		for k := j + 1; k <= n; k++ {
			a[k] = a[k-j]
		}
	}
}
