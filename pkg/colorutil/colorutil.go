// Package colorutil provides shared overlay colors for the workbench views.
package colorutil

import (
	"image/color"
)

// Common overlay colors used throughout the application.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Blue    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange  = color.RGBA{R: 255, G: 128, B: 0, A: 255}
)

// Editor palette.
var (
	StaffLineColor      = Blue
	HandleColor         = Magenta
	SelectedHandleColor = Yellow
	RemovedSectionColor = WithAlpha(Orange, 160)
)

// WithAlpha returns c with its alpha replaced, keeping premultiplied channels consistent.
func WithAlpha(c color.RGBA, alpha uint8) color.RGBA {
	scale := func(v uint8) uint8 {
		if c.A == 0 {
			return 0
		}
		return uint8(uint32(v) * uint32(alpha) / uint32(c.A))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: alpha}
}
