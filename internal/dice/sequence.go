package dice

// Sequence is a Source that replays scripted values, for deterministic tests
// and replays. Each Intn call consumes the next int (reduced modulo n); each
// Float64 call consumes the next float. Exhausted scripts return 0.
type Sequence struct {
	Ints   []int
	Floats []float64
}

// Intn returns the next scripted int modulo n.
func (s *Sequence) Intn(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Float64 returns the next scripted float.
func (s *Sequence) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}
