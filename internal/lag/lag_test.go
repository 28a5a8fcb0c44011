package lag

import (
	"image"
	"testing"

	"omr-workbench/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bar(id SectionID, y, x1, x2, rows int) *Section {
	runs := make([]Run, rows)
	for i := range runs {
		runs[i] = Run{Y: y + i, Start: x1, Stop: x2}
	}
	return NewSection(id, runs)
}

func TestSectionGeometry(t *testing.T) {
	s := NewSection(4, []Run{
		{Y: 10, Start: 5, Stop: 9},
		{Y: 11, Start: 3, Stop: 8},
		{Y: 12, Start: 6, Stop: 12},
	})

	assert.Equal(t, geometry.RectInt{X: 3, Y: 10, Width: 10, Height: 3}, s.Bounds())
	assert.Equal(t, 3, s.Thickness())
	assert.Equal(t, Run{Y: 10, Start: 5, Stop: 9}, s.FirstRun())
	assert.Equal(t, Run{Y: 12, Start: 6, Stop: 12}, s.LastRun())
	assert.Equal(t, 5+6+7, s.Weight())
	assert.Equal(t, "S4[3,10 10x3]", s.String())
}

func TestRunOverlap(t *testing.T) {
	a := Run{Y: 0, Start: 10, Stop: 20}
	assert.True(t, a.OverlapsX(Run{Start: 20, Stop: 30}))
	assert.True(t, a.OverlapsX(Run{Start: 0, Stop: 10}))
	assert.True(t, a.OverlapsX(Run{Start: 12, Stop: 14}))
	assert.False(t, a.OverlapsX(Run{Start: 21, Stop: 30}))
	assert.False(t, a.OverlapsX(Run{Start: 0, Stop: 9}))
}

func TestIndexInsertRemoveIdempotent(t *testing.T) {
	idx := NewIndex(100, 100)
	s1 := bar(1, 10, 0, 50, 2)
	s2 := bar(2, 40, 0, 50, 2)

	idx.Insert(s1, s2)
	idx.Insert(s1)
	require.Equal(t, 2, idx.Len())

	idx.Remove(s1)
	idx.Remove(s1)
	assert.Equal(t, 1, idx.Len())
	assert.False(t, idx.Contains(1))
	assert.True(t, idx.Contains(2))
	assert.Same(t, s2, idx.Get(2))
	assert.Nil(t, idx.Get(1))

	idx.Insert(s1)
	assert.Equal(t, []SectionID{1, 2}, idx.IDs())
}

func TestIndexIntersecting(t *testing.T) {
	idx := NewIndex(200, 200)
	idx.Insert(bar(3, 10, 0, 50, 2), bar(1, 20, 60, 90, 1), bar(2, 100, 0, 199, 3))

	got := idx.Intersecting(geometry.RectInt{X: 0, Y: 0, Width: 200, Height: 25})
	require.Len(t, got, 2)
	assert.Equal(t, SectionID(1), got[0].ID)
	assert.Equal(t, SectionID(3), got[1].ID)

	assert.Empty(t, idx.Intersecting(geometry.RectInt{X: 0, Y: 30, Width: 200, Height: 20}))
	assert.Empty(t, idx.Intersecting(geometry.RectInt{X: 0, Y: 0, Width: 0, Height: 200}))
}

func TestSectionSet(t *testing.T) {
	var set SectionSet
	assert.Zero(t, set.Len())

	set.Add(bar(5, 0, 0, 1, 1), bar(2, 0, 0, 1, 1), bar(5, 0, 0, 1, 1))
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Has(5))
	assert.Equal(t, []SectionID{2, 5}, set.IDs())

	set.Clear()
	assert.Zero(t, set.Len())
	assert.Empty(t, set.Sorted())
}

func paint(img *image.Gray, x1, x2, y1, y2 int) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			img.Pix[img.PixOffset(x, y)] = 255
		}
	}
}

func TestBuildHorizontalBar(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 40, 20))
	paint(img, 5, 30, 8, 10)

	idx := BuildHorizontal(img)
	require.Equal(t, 1, idx.Len())
	s := idx.Sections()[0]
	assert.Equal(t, SectionID(1), s.ID)
	assert.Equal(t, geometry.RectInt{X: 5, Y: 8, Width: 26, Height: 3}, s.Bounds())
	assert.Equal(t, 40, idx.Width())
	assert.Equal(t, 20, idx.Height())
}

func TestBuildHorizontalSplit(t *testing.T) {
	// A trunk on rows 0-2 that splits into two branches on rows 3-4.
	img := image.NewGray(image.Rect(0, 0, 30, 6))
	paint(img, 0, 20, 0, 2)
	paint(img, 0, 5, 3, 4)
	paint(img, 15, 20, 3, 4)

	idx := BuildHorizontal(img)
	secs := idx.Sections()
	require.Len(t, secs, 3)
	assert.Equal(t, 3, secs[0].Thickness())
	assert.Equal(t, geometry.RectInt{X: 0, Y: 3, Width: 6, Height: 2}, secs[1].Bounds())
	assert.Equal(t, geometry.RectInt{X: 15, Y: 3, Width: 6, Height: 2}, secs[2].Bounds())
}

func TestBuildHorizontalRunToEdge(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 1))
	paint(img, 7, 9, 0, 0)

	secs := BuildHorizontal(img).Sections()
	require.Len(t, secs, 1)
	assert.Equal(t, Run{Y: 0, Start: 7, Stop: 9}, secs[0].FirstRun())
}
