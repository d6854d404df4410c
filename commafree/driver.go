package commafree

import "github.com/wallberg/commafree/preprime"

// hardUndoCeiling bounds how large the undo journal may grow via automatic
// reallocation (§5: "must detect overflow and reallocate or refuse"). A
// genuine runaway past this ceiling is surfaced as UndoOverflowError rather
// than silently truncated (§7).
const hardUndoCeiling = 64 << 20

// NewSearch validates (m, g) and allocates and initializes a Search ready
// to enumerate commafree codes of at least g (and at most L) words over
// 4-letter words of an m-ary alphabet (§4.1, C1). Invalid parameters are rejected synchronously,
// before any allocation (§7).
func NewSearch(m, g int) (*Search, error) {
	if m < 2 || m > 7 {
		return nil, ErrInvalidAlphabet
	}

	m2 := m * m
	m4 := m2 * m2
	l := (m4 - m2) / 4

	if g < l-m*(m-1) || g > l {
		return nil, ErrInvalidGoal
	}

	memSize := (47 * m4) / 2

	s := &Search{
		m: m, g: g, m2: m2, m4: m4, l: l,

		mem:   make([]uint32, memSize),
		stamp: make([]int32, memSize),
		undo:  make([]undoEntry, defaultUndoCapacity),

		x_: make([]int32, l),
		c_: make([]uint32, l),
		s_: make([]int, l),
		u_: make([]int, l),

		free:  make([]uint32, l),
		ifree: make([]uint32, l),

		alf:  make([]Word, m4),
		alfc: make([]uint32, m4),
	}
	s.undoCap = len(s.undo)

	s.p1Off = uint32(2 * m4)
	s.p2Off = uint32(5 * m4)
	s.p3Off = uint32(8 * m4)
	s.s1Off = uint32(11 * m4)
	s.s2Off = uint32(14 * m4)
	s.s3Off = uint32(17 * m4)
	s.clOff = uint32(20 * m4)
	s.poison = uint32(22 * m4)
	s.ppAddr = s.poison - 1
	s.mem[s.ppAddr] = s.poison

	for i := range s.stamp {
		s.stamp[i] = -1
	}

	s.slack = l - g
	s.f = l
	for i := 0; i < l; i++ {
		s.free[i] = uint32(i)
		s.ifree[i] = uint32(i)
	}

	if err := s.initMem(); err != nil {
		return nil, err
	}

	s.step = stepC2
	return s, nil
}

// initMem colors every word RED, then walks each 4-cycle class produced by
// the preprime enumerator (j=4), coloring its rotations BLUE (save for the
// two fixed symmetry exclusions) and inserting them into their seven
// buckets (§4.1).
func (s *Search) initMem() error {
	m4 := uint32(s.m4)

	for alf := uint32(0); alf < m4; alf++ {
		s.mem[alf] = uint32(Red)
	}

	// Seed every reachable P/S bucket's tail pointer to its head (empty).
	ps1 := uint32(0)
	for i := 0; i < s.m; i++ {
		s.mem[s.p1Off+m4+ps1] = s.p1Off + ps1
		s.mem[s.s1Off+m4+ps1] = s.s1Off + ps1

		ps2 := uint32(0)
		for j := 0; j < s.m; j++ {
			s.mem[s.p2Off+m4+ps1+ps2] = s.p2Off + ps1 + ps2
			s.mem[s.s2Off+m4+ps1+ps2] = s.s2Off + ps1 + ps2

			ps3 := uint32(0)
			for k := 0; k < s.m; k++ {
				s.mem[s.p3Off+m4+ps1+ps2+ps3] = s.p3Off + ps1 + ps2 + ps3
				s.mem[s.s3Off+m4+ps1+ps2+ps3] = s.s3Off + ps1 + ps2 + ps3
				ps3 += uint32(s.m)
			}
			ps2 += uint32(s.m * s.m)
		}
		ps1 += uint32(s.m * s.m * s.m)
	}

	cl := 0
	for _, rep := range preprime.Preprimes(s.m, 4) {
		if rep.J != 4 {
			continue
		}
		classID := uint32(cl)
		s.mem[s.clOff+m4+4*classID] = s.clOff + 4*classID

		word := Word{rep.Word[0], rep.Word[1], rep.Word[2], rep.Word[3]}
		for t := 0; t < 4; t++ {
			alf := alpha(s.m, word)
			s.alf[alf] = word
			s.alfc[alf] = classID

			if word != (Word{0, 1, 0, 0}) && word != (Word{1, 0, 0, 0}) {
				s.mem[alf] = uint32(Blue)

				p1, p2, p3, s1, s2, s3 := prefixesSuffixes(s.m, word)
				offsets := [6]uint32{s.p1Off, s.p2Off, s.p3Off, s.s1Off, s.s2Off, s.s3Off}
				addrs := [6]uint32{p1, p2, p3, s1, s2, s3}
				for i := 0; i < 6; i++ {
					tail := offsets[i] + m4 + addrs[i]
					s.insert(alf, tail, offsets[i]-m4)
				}

				tail := s.clOff + m4 + 4*classID
				s.insert(alf, tail, s.clOff-m4)
			}

			word = Word{word[1], word[2], word[3], word[0]}
		}
		cl++
	}

	return nil
}

// Next advances the search to its next commafree code of at least g words
// (a class is left without a word only when it has no BLUE word left), running
// the C2-C6 control flow until a leaf is visited or the search is
// exhausted. It returns (code, true) for each code found, and (nil, false)
// once the search space is fully explored.
func (s *Search) Next() (Code, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return nil, false, nil
	}

	for {
		switch s.step {
		case stepC2:
			if s.level == s.l {
				code := s.currentCode()
				if s.tracer != nil {
					s.tracer.OnVisit(s.level, code)
				}
				s.step = stepC6
				return code, true, nil
			}
			if err := s.selectNextWord(); err != nil {
				return nil, false, err
			}
			s.step = stepC3

		case stepC3:
			if err := s.c3(); err != nil {
				return nil, false, err
			}

		case stepC4:
			s.c4()

		case stepC5:
			if err := s.c5(); err != nil {
				return nil, false, err
			}

		case stepC6:
			if s.c6() {
				s.done = true
				return nil, false, nil
			}
		}
	}
}

// c3 tries the candidate word selected by C2: the no-word path consumes
// slack (or fails to C6 if none remains); the word path commits x green,
// appends the six cross-matched poison pairs, and sweeps the poison list,
// forcing further reds or failing to C5 as required (§4.5).
func (s *Search) c3() error {
	s.u_[s.level] = s.u
	s.sigma++

	if s.x < 0 {
		if s.slack == 0 || s.level == 0 {
			s.step = stepC6
		} else {
			s.slack--
			s.step = stepC4
		}
		return nil
	}

	x := uint32(s.x)
	c := s.c
	if err := s.green(s.level, x, c); err != nil {
		return err
	}

	m4 := uint32(s.m4)
	pp := s.mem[s.ppAddr] + 6

	p1, p2, p3, s1, s2, s3 := prefixesSuffixes(s.m, s.alf[x])
	if err := s.store(pp-6, s.s1Off+p1); err != nil {
		return err
	}
	if err := s.store(pp-5, s.p3Off+s3); err != nil {
		return err
	}
	if err := s.store(pp-4, s.s2Off+p2); err != nil {
		return err
	}
	if err := s.store(pp-3, s.p2Off+s2); err != nil {
		return err
	}
	if err := s.store(pp-2, s.s3Off+p3); err != nil {
		return err
	}
	if err := s.store(pp-1, s.p1Off+s1); err != nil {
		return err
	}

	p := s.poison
	s.step = stepC4

	for p < pp {
		y := s.mem[p]
		z := s.mem[p+1]
		yp := s.mem[y+m4]
		zp := s.mem[z+m4]

		switch {
		case y == yp || z == zp:
			pp -= 2
			if p != pp {
				if err := s.store(p, s.mem[pp]); err != nil {
					return err
				}
				if err := s.store(p+1, s.mem[pp+1]); err != nil {
					return err
				}
			}

		case int32(yp) < int32(y) && int32(zp) < int32(z):
			// Both sides closed: this word is poisoned.
			s.step = stepC5
			p = pp // stop sweeping

		case int32(yp) > int32(y) && int32(zp) > int32(z):
			p += 2

		default:
			if int32(yp) < int32(y) && int32(zp) > int32(z) {
				if err := s.store(z+m4, z); err != nil {
					return err
				}
				for r := z; r < zp; r++ {
					if err := s.red(s.mem[r], s.alfc[s.mem[r]]); err != nil {
						return err
					}
				}
			} else {
				if err := s.store(y+m4, y); err != nil {
					return err
				}
				for r := y; r < yp; r++ {
					if err := s.red(s.mem[r], s.alfc[s.mem[r]]); err != nil {
						return err
					}
				}
			}

			pp -= 2
			if p != pp {
				if err := s.store(p, s.mem[pp]); err != nil {
					return err
				}
				if err := s.store(p+1, s.mem[pp+1]); err != nil {
					return err
				}
			}
		}
	}

	return s.store(s.ppAddr, pp)
}

// c4 commits the current level: records (x,c,slack), removes class c from
// the free-class vector, and advances to the next level (§4.5).
func (s *Search) c4() {
	s.x_[s.level] = s.x
	s.c_[s.level] = s.c
	s.s_[s.level] = s.slack

	p := s.ifree[s.c]
	s.f--
	if int(p) != s.f {
		y := s.free[s.f]
		s.free[p] = y
		s.ifree[y] = p
		s.free[s.f] = s.c
		s.ifree[s.c] = uint32(s.f)
	}

	s.level++
	s.step = stepC2
}

// c5 rewinds MEM to the stamp recorded on entry to this level, reddens the
// failed candidate, and retries word selection at the same level (§4.5).
func (s *Search) c5() error {
	for s.u > s.u_[s.level] {
		s.u--
		e := s.undo[s.u]
		s.mem[e.addr] = e.val
	}
	s.sigma++

	if s.tracer != nil {
		s.tracer.OnRetry(s.level, s.x, s.c)
	}

	if err := s.red(uint32(s.x), s.c); err != nil {
		return err
	}
	s.step = stepC2
	return nil
}

// c6 retreats one level. It returns true if the search is exhausted.
func (s *Search) c6() bool {
	if s.tracer != nil {
		s.tracer.OnRetreat(s.level)
	}

	s.level--
	if s.level == -1 {
		return true
	}

	s.x = s.x_[s.level]
	s.c = s.c_[s.level]
	s.f++

	if s.x < 0 {
		s.step = stepC6
	} else {
		s.slack = s.s_[s.level]
		s.step = stepC5
	}
	return false
}

// currentCode collects the words visited at levels [0,level) whose X value
// is a real word (X[i] >= 0), per §4.6.
func (s *Search) currentCode() Code {
	code := make(Code, 0, s.g)
	for i := 0; i < s.level; i++ {
		if s.x_[i] >= 0 {
			code = append(code, s.alf[uint32(s.x_[i])])
		}
	}
	return code
}
