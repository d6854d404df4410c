package commafree

import (
	"fmt"
	"strings"
)

// DumpMEM renders the MEM table as a grid, one column per α: a color row,
// then one row per list (P1, P2, P3, S1, S2, S3, CL) showing that list's
// bucket cells (tail and inverted-index cells are not printed), mirroring
// the original implementation's tostring() debug helper. It is purely
// diagnostic, never consulted by the search itself (§6: "debug dump of
// MEM...non-normative"); the dashboard does not use it.
func (s *Search) DumpMEM() string {
	m4 := uint32(s.m4)

	labels := map[uint32]string{
		s.p1Off: "P1", s.p2Off: "P2", s.p3Off: "P3",
		s.s1Off: "S1", s.s2Off: "S2", s.s3Off: "S3",
		s.clOff: "CL",
	}

	var b strings.Builder

	fmt.Fprint(&b, "     ")
	for j := uint32(0); j < m4; j++ {
		fmt.Fprintf(&b, " %4x", j)
	}
	fmt.Fprintln(&b)

	fmt.Fprint(&b, "col ")
	for j := uint32(0); j < m4; j++ {
		fmt.Fprintf(&b, " %4s", Color(s.mem[j]).String())
	}
	fmt.Fprintln(&b)

	for _, off := range []uint32{s.p1Off, s.p2Off, s.p3Off, s.s1Off, s.s2Off, s.s3Off, s.clOff} {
		fmt.Fprintf(&b, "%-4s", labels[off])
		for j := uint32(0); j < m4; j++ {
			fmt.Fprintf(&b, " %4x", s.mem[off+j])
		}
		fmt.Fprintln(&b)
	}

	return b.String()
}

// ColorAt returns the current color of word α. Safe to call from a
// goroutine other than the one driving Next.
func (s *Search) ColorAt(alf int) Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Color(s.mem[uint32(alf)])
}

// ColorCounts returns the number of words currently RED, BLUE and GREEN.
// Safe to call from a goroutine other than the one driving Next.
func (s *Search) ColorCounts() (red, blue, green int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m4 := uint32(s.m4)
	for a := uint32(0); a < m4; a++ {
		switch Color(s.mem[a]) {
		case Red:
			red++
		case Blue:
			blue++
		case Green:
			green++
		}
	}
	return
}
