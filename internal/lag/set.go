package lag

// SectionSet is a set of sections keyed by ID.
type SectionSet struct {
	m map[SectionID]*Section
}

// NewSectionSet creates a set holding the given sections.
func NewSectionSet(sections ...*Section) *SectionSet {
	s := &SectionSet{m: make(map[SectionID]*Section, len(sections))}
	s.Add(sections...)
	return s
}

// Add inserts sections into the set.
func (s *SectionSet) Add(sections ...*Section) {
	if s.m == nil {
		s.m = make(map[SectionID]*Section, len(sections))
	}
	for _, sec := range sections {
		s.m[sec.ID] = sec
	}
}

// Has reports whether the set holds a section with this ID.
func (s *SectionSet) Has(id SectionID) bool {
	_, ok := s.m[id]
	return ok
}

// Len returns the set size.
func (s *SectionSet) Len() int {
	return len(s.m)
}

// Clear empties the set.
func (s *SectionSet) Clear() {
	s.m = make(map[SectionID]*Section)
}

// Sorted returns the members ordered by ID.
func (s *SectionSet) Sorted() []*Section {
	out := make([]*Section, 0, len(s.m))
	for _, sec := range s.m {
		out = append(out, sec)
	}
	sortByID(out)
	return out
}

// IDs returns the member IDs in increasing order.
func (s *SectionSet) IDs() []SectionID {
	sorted := s.Sorted()
	ids := make([]SectionID, len(sorted))
	for i, sec := range sorted {
		ids[i] = sec.ID
	}
	return ids
}
