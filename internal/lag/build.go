package lag

import (
	"image"
)

// BuildHorizontal extracts horizontal sections from a binary mask where any
// non-zero pixel is foreground.
//
// Runs are read row by row. A run extends the section of the run right above
// it when each of the two is the only run overlapping the other; any other
// configuration (start, merge, split) begins a new section.
// Section IDs are assigned from 1 in creation order.
func BuildHorizontal(mask *image.Gray) *Index {
	b := mask.Bounds()
	index := NewIndex(b.Dx(), b.Dy())

	var (
		building []*Section
		prevRuns []Run
		prevSec  []int
	)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		runs := rowRuns(mask, y)
		secs := make([]int, len(runs))

		upCount := make([]int, len(prevRuns))
		for _, r := range runs {
			for j, p := range prevRuns {
				if p.OverlapsX(r) {
					upCount[j]++
				}
			}
		}

		for i, r := range runs {
			above := -1
			n := 0
			for j, p := range prevRuns {
				if p.OverlapsX(r) {
					above = j
					n++
				}
			}
			if n == 1 && upCount[above] == 1 {
				sec := prevSec[above]
				building[sec].Runs = append(building[sec].Runs, r)
				secs[i] = sec
				continue
			}
			building = append(building, &Section{ID: SectionID(len(building) + 1), Runs: []Run{r}})
			secs[i] = len(building) - 1
		}

		prevRuns, prevSec = runs, secs
	}

	for _, s := range building {
		s.bounds = computeBounds(s.Runs)
	}
	index.Insert(building...)
	return index
}

func rowRuns(mask *image.Gray, y int) []Run {
	b := mask.Bounds()
	var runs []Run
	start := -1
	for x := b.Min.X; x < b.Max.X; x++ {
		on := mask.GrayAt(x, y).Y != 0
		switch {
		case on && start < 0:
			start = x
		case !on && start >= 0:
			runs = append(runs, Run{Y: y, Start: start, Stop: x - 1})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, Run{Y: y, Start: start, Stop: b.Max.X - 1})
	}
	return runs
}
