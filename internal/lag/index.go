package lag

import (
	"sort"
	"sync"

	"omr-workbench/pkg/geometry"
)

// Index is the sheet-wide set of horizontal sections available to symbol
// extraction. Insert and Remove are set operations keyed by SectionID, so
// repeating them is a no-op.
type Index struct {
	mu sync.RWMutex

	width, height int
	sections      map[SectionID]*Section
}

// NewIndex creates an empty index for a sheet of the given size.
func NewIndex(width, height int) *Index {
	return &Index{
		width:    width,
		height:   height,
		sections: make(map[SectionID]*Section),
	}
}

// Width returns the sheet width in pixels.
func (x *Index) Width() int { return x.width }

// Height returns the sheet height in pixels.
func (x *Index) Height() int { return x.height }

// Insert adds sections to the index. Sections already present are ignored.
func (x *Index) Insert(sections ...*Section) {
	x.mu.Lock()
	defer x.mu.Unlock()
	for _, s := range sections {
		x.sections[s.ID] = s
	}
}

// Remove drops sections from the index. Sections already absent are ignored.
func (x *Index) Remove(sections ...*Section) {
	x.mu.Lock()
	defer x.mu.Unlock()
	for _, s := range sections {
		delete(x.sections, s.ID)
	}
}

// Contains reports whether a section with this ID is in the index.
func (x *Index) Contains(id SectionID) bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	_, ok := x.sections[id]
	return ok
}

// Get returns the indexed section with this ID, or nil.
func (x *Index) Get(id SectionID) *Section {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.sections[id]
}

// Len returns the number of indexed sections.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.sections)
}

// Sections returns a snapshot of all indexed sections, ordered by ID.
func (x *Index) Sections() []*Section {
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make([]*Section, 0, len(x.sections))
	for _, s := range x.sections {
		out = append(out, s)
	}
	sortByID(out)
	return out
}

// Intersecting returns the sections whose bounds share a pixel with box,
// ordered by ID.
func (x *Index) Intersecting(box geometry.RectInt) []*Section {
	x.mu.RLock()
	defer x.mu.RUnlock()
	var out []*Section
	for _, s := range x.sections {
		if s.Bounds().Intersects(box) {
			out = append(out, s)
		}
	}
	sortByID(out)
	return out
}

// IDs returns the sorted IDs of all indexed sections.
func (x *Index) IDs() []SectionID {
	x.mu.RLock()
	defer x.mu.RUnlock()
	ids := make([]SectionID, 0, len(x.sections))
	for id := range x.sections {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortByID(sections []*Section) {
	sort.Slice(sections, func(i, j int) bool { return sections[i].ID < sections[j].ID })
}
