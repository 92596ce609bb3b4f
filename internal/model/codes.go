package model

// CodeSet is a deduplicated set of target codes. It remembers first-appearance
// order so that iterating it is deterministic across runs.
type CodeSet struct {
	order []string
	index map[string]struct{}
}

// NewCodeSet builds a set from codes, dropping duplicates.
func NewCodeSet(codes ...string) CodeSet {
	s := CodeSet{index: make(map[string]struct{}, len(codes))}
	for _, c := range codes {
		s.add(c)
	}

	return s
}

func (s *CodeSet) add(code string) {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}

	if _, ok := s.index[code]; ok {
		return
	}

	s.index[code] = struct{}{}
	s.order = append(s.order, code)
}

// Len returns the number of unique codes.
func (s CodeSet) Len() int {
	return len(s.order)
}

// Empty reports whether the set has no codes.
func (s CodeSet) Empty() bool {
	return len(s.order) == 0
}

// Contains reports whether code is in the set.
func (s CodeSet) Contains(code string) bool {
	_, ok := s.index[code]
	return ok
}

// Codes returns the codes in first-appearance order. The slice is a copy.
func (s CodeSet) Codes() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}
