package commafree

// red excludes word alf (in class c) from further consideration: stores
// RED and removes it from its six pre/suffix buckets and from class c's
// bucket (§4.3).
func (s *Search) red(alf uint32, c uint32) error {
	if s.tracer != nil {
		s.tracer.OnRed(int32(alf), c)
	}
	if err := s.store(alf, uint32(Red)); err != nil {
		return err
	}

	p1, p2, p3, s1, s2, s3 := prefixesSuffixes(s.m, s.alf[alf])
	offsets := [6]uint32{s.p1Off, s.p2Off, s.p3Off, s.s1Off, s.s2Off, s.s3Off}
	addrs := [6]uint32{p1, p2, p3, s1, s2, s3}
	for i := 0; i < 6; i++ {
		if err := s.rem(alf, addrs[i], offsets[i]); err != nil {
			return err
		}
	}
	return s.rem(alf, 4*c, s.clOff)
}

// green selects word alf (in class c) into the code being built: stores
// GREEN, closes all six of its pre/suffix buckets and class c's bucket,
// then reddens every other word sharing class c (§4.3).
func (s *Search) green(level int, alf uint32, c uint32) error {
	if s.tracer != nil {
		s.tracer.OnGreen(level, int32(alf), c)
	}
	if err := s.store(alf, uint32(Green)); err != nil {
		return err
	}

	p1, p2, p3, s1, s2, s3 := prefixesSuffixes(s.m, s.alf[alf])
	offsets := [6]uint32{s.p1Off, s.p2Off, s.p3Off, s.s1Off, s.s2Off, s.s3Off}
	addrs := [6]uint32{p1, p2, p3, s1, s2, s3}
	for i := 0; i < 6; i++ {
		if _, _, err := s.close(addrs[i], offsets[i]); err != nil {
			return err
		}
	}

	p, q, err := s.close(4*c, s.clOff)
	if err != nil {
		return err
	}
	for r := p; r < q; r++ {
		if s.mem[r] != alf {
			if err := s.red(s.mem[r], c); err != nil {
				return err
			}
		}
	}
	return nil
}
