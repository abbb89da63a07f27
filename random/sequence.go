package random

// Sequence replays queued results, for deterministic games.
type Sequence struct {
	results []int
	index   int
}

var _ Random = (*Sequence)(nil)

func NewSequence(values ...int) *Sequence {
	return &Sequence{results: values}
}

// Intn returns the next queued result reduced into [0, n), or 0 once the
// queue is used up.
func (s *Sequence) Intn(n int) int {
	if n <= 0 || s.index >= len(s.results) {
		return 0
	}
	result := s.results[s.index]
	s.index++
	result %= n
	if result < 0 {
		result += n
	}
	return result
}

func (s *Sequence) Remaining() int {
	return len(s.results) - s.index
}
