package staffedit

import (
	"omr-workbench/internal/lag"
	"omr-workbench/internal/sheet"
)

// collectCandidates returns the sections that may ever be absorbed by the
// staff lines during this edit: those crossing the staff's vertical band,
// across the whole sheet width.
//
// The band comes from the geometry at editor creation and is not widened
// when lines are later dragged.
func collectCandidates(index *lag.Index, staff *sheet.Staff, maxThickness int) []*lag.Section {
	band := staff.Bounds().Grow(0, maxThickness)
	band.X = 0
	band.Width = max(index.Width(), band.Right())
	return index.Intersecting(band)
}

// CandidateSections returns the sections an editor opened now on staff could absorb.
func CandidateSections(sh *sheet.Sheet, staff *sheet.Staff) []*lag.Section {
	return collectCandidates(sh.Index, staff, sh.Scale.MaxLineThickness)
}

// candidatePool tracks which candidates are still unclaimed during one commit.
type candidatePool struct {
	sections []*lag.Section
	taken    map[lag.SectionID]bool
}

// newCandidatePool keeps the candidates for which present returns true;
// sections taken out of the index by someone else stay out.
func newCandidatePool(sections []*lag.Section, present func(lag.SectionID) bool) *candidatePool {
	p := &candidatePool{taken: make(map[lag.SectionID]bool)}
	for _, s := range sections {
		if present(s.ID) {
			p.sections = append(p.sections, s)
		}
	}
	return p
}

func (p *candidatePool) available(s *lag.Section) bool {
	return !p.taken[s.ID]
}

func (p *candidatePool) take(s *lag.Section) {
	p.taken[s.ID] = true
}

// reclassifier decides which candidate sections become part of a staff line.
type reclassifier struct {
	minRatio     float64
	maxThickness int
}

// sectionsToRemove claims from pool the sections absorbed by line:
// core sections crossed by the line, then the stickers glued to them.
func (r reclassifier) sectionsToRemove(line *sheet.StaffLine, pool *candidatePool) []*lag.Section {
	var core []*lag.Section
	for _, s := range pool.sections {
		if pool.available(s) && r.isCore(line, s) {
			pool.take(s)
			core = append(core, s)
		}
	}

	removed := append([]*lag.Section(nil), core...)
	for _, c := range core {
		removed = append(removed, r.stickers(c, pool)...)
	}
	return removed
}

// isCore reports whether line runs through section s lengthwise: it must
// cross the box and meet its first or last pixel column inside the box's
// vertical span. Spans are measured between pixel centres, [Y-0.5,
// Bottom-0.5], so a line lying exactly on the box's top edge counts as
// inside and one on its bottom edge (y = Y+Height) does not.
func (r reclassifier) isCore(line *sheet.StaffLine, s *lag.Section) bool {
	box := s.Bounds()
	if !line.Intersects(box) {
		return false
	}

	// The line must enter or leave through a vertical side of the box.
	top := float64(box.Y) - 0.5
	bottom := float64(box.Bottom()) - 0.5
	within := func(y float64) bool { return y >= top && y <= bottom }
	if !within(line.YAt(float64(box.X))) && !within(line.YAt(float64(box.Right()-1))) {
		return false
	}

	return float64(box.Width)/float64(box.Height) >= r.minRatio
}

// stickers claims the candidates stuck right above and below core whose
// added thickness keeps the whole stack within the maximum line thickness.
func (r reclassifier) stickers(core *lag.Section, pool *candidatePool) []*lag.Section {
	var glued []*lag.Section
	stacked := core.Thickness()

	first := core.FirstRun()
	for _, s := range pool.sections {
		if !pool.available(s) {
			continue
		}
		last := s.LastRun()
		if last.Y != first.Y-1 || !last.OverlapsX(first) {
			continue
		}
		if stacked+s.Thickness() > r.maxThickness {
			continue
		}
		pool.take(s)
		stacked += s.Thickness()
		glued = append(glued, s)
	}

	last := core.LastRun()
	for _, s := range pool.sections {
		if !pool.available(s) {
			continue
		}
		head := s.FirstRun()
		if head.Y != last.Y+1 || !head.OverlapsX(last) {
			continue
		}
		if stacked+s.Thickness() > r.maxThickness {
			continue
		}
		pool.take(s)
		stacked += s.Thickness()
		glued = append(glued, s)
	}

	return glued
}
