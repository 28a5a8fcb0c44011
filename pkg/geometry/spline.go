package geometry

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// ErrNotIncreasing is returned when spline abscissae are not strictly increasing.
var ErrNotIncreasing = errors.New("abscissae not strictly increasing")

type predictor interface {
	Predict(x float64) float64
}

// NaturalSpline is an interpolating curve y = f(x) through a sequence of
// control points. Three or more points give a natural cubic spline, two
// points a straight segment, one point a constant.
// Outside [XMin, XMax] the curve is extended horizontally.
type NaturalSpline struct {
	points []Point2D
	fit    predictor
}

// NewNaturalSpline fits a spline through points, which must have strictly
// increasing abscissae.
func NewNaturalSpline(points []Point2D) (*NaturalSpline, error) {
	if len(points) == 0 {
		return nil, errors.New("spline needs at least one point")
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		if i > 0 && !(p.X > points[i-1].X) {
			return nil, fmt.Errorf("point %d at x=%.2f: %w", i, p.X, ErrNotIncreasing)
		}
		xs[i] = p.X
		ys[i] = p.Y
	}

	s := &NaturalSpline{points: ClonePoints(points)}
	switch {
	case len(points) == 1:
		// Constant, handled by YAt.
	case len(points) == 2:
		var pl interp.PiecewiseLinear
		if err := pl.Fit(xs, ys); err != nil {
			return nil, fmt.Errorf("fit segment: %w", err)
		}
		s.fit = &pl
	default:
		var nc interp.NaturalCubic
		if err := nc.Fit(xs, ys); err != nil {
			return nil, fmt.Errorf("fit natural cubic: %w", err)
		}
		s.fit = &nc
	}
	return s, nil
}

// XMin returns the abscissa of the first control point.
func (s *NaturalSpline) XMin() float64 { return s.points[0].X }

// XMax returns the abscissa of the last control point.
func (s *NaturalSpline) XMax() float64 { return s.points[len(s.points)-1].X }

// YAt evaluates the curve at x.
func (s *NaturalSpline) YAt(x float64) float64 {
	if s.fit == nil {
		return s.points[0].Y
	}
	if x <= s.XMin() {
		return s.points[0].Y
	}
	if x >= s.XMax() {
		return s.points[len(s.points)-1].Y
	}
	return s.fit.Predict(x)
}

// Intersects reports whether the curve passes through any pixel of box.
// Pixel centers sit on integer coordinates, so row y spans [y-0.5, y+0.5].
// Only the part of the curve between its first and last control points counts.
func (s *NaturalSpline) Intersects(box RectInt) bool {
	if box.Empty() {
		return false
	}
	x1 := max(float64(box.X), s.XMin())
	x2 := min(float64(box.Right()-1), s.XMax())
	if x1 > x2 {
		return false
	}

	top := float64(box.Y) - 0.5
	bottom := float64(box.Bottom()) - 0.5

	prev := s.YAt(x1)
	if prev >= top && prev <= bottom {
		return true
	}
	for x := math.Floor(x1) + 1; x <= x2; x++ {
		y := s.YAt(x)
		if math.Min(prev, y) <= bottom && math.Max(prev, y) >= top {
			return true
		}
		prev = y
	}
	y := s.YAt(x2)
	return math.Min(prev, y) <= bottom && math.Max(prev, y) >= top
}

// InterpolateLinear evaluates the polyline through points at x, extending
// horizontally beyond its ends. It tolerates unsorted or duplicated abscissae
// by using the first segment that spans x.
func InterpolateLinear(points []Point2D, x float64) float64 {
	switch len(points) {
	case 0:
		return 0
	case 1:
		return points[0].Y
	}
	if x <= points[0].X {
		return points[0].Y
	}
	last := points[len(points)-1]
	if x >= last.X {
		return last.Y
	}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if x >= a.X && x <= b.X {
			if b.X == a.X {
				return a.Y
			}
			t := (x - a.X) / (b.X - a.X)
			return a.Y + t*(b.Y-a.Y)
		}
	}
	return last.Y
}
