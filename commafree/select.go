package commafree

// selectNextWord implements C2's word-selection heuristic (§4.4,
// Exercise 44): pick the free class with the fewest remaining BLUE words,
// breaking ties of size >= 2 using the poison list to favor words that sit
// on the smaller side of a half-open poison pair.
func (s *Search) selectNextWord() error {
	m4 := uint32(s.m4)

	r := 5 // any class has at most 4 members; 5 means "none seen yet"
	var cl uint32
	for k := 0; k < s.f; k++ {
		t := s.free[k]
		j := s.mem[s.clOff+4*t+m4] - (s.clOff + 4*t) // size of class t's bucket
		if int(j) < r {
			r, cl = int(j), t
			if r == 0 {
				s.x = -1
				break
			}
		}
	}

	if r > 0 {
		s.x = int32(s.mem[s.clOff+4*cl])
	}

	if r > 1 {
		if err := s.poisonTiebreak(&cl); err != nil {
			return err
		}
	}

	s.c = cl
	if s.tracer != nil {
		s.tracer.OnSelect(s.level, s.x, s.c)
	}
	return nil
}

// poisonTiebreak sweeps the poison list, dropping empty pairs and
// remembering the word on the smaller side of the largest half-open pair
// seen, per §4.4.
func (s *Search) poisonTiebreak(cl *uint32) error {
	m4 := uint32(s.m4)
	q := uint32(0)
	p := s.poison
	pp := s.mem[s.ppAddr]

	for p < pp {
		y := s.mem[p]
		z := s.mem[p+1]
		yp := s.mem[y+m4]
		zp := s.mem[z+m4]

		if y == yp || z == zp {
			pp -= 2
			if p != pp {
				if err := s.store(p, s.mem[pp]); err != nil {
					return err
				}
				if err := s.store(p+1, s.mem[pp+1]); err != nil {
					return err
				}
			}
			continue
		}

		ylen := yp - y
		zlen := zp - z

		if ylen >= zlen && ylen > q {
			q = ylen
			s.x = int32(s.mem[z])
			*cl = s.alfc[s.x]
		} else if ylen < zlen && zlen > q {
			q = zlen
			s.x = int32(s.mem[y])
			*cl = s.alfc[s.x]
		}

		p += 2
	}

	return s.store(s.ppAddr, pp)
}
