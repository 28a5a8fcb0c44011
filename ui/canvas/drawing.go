package canvas

import (
	"image"
	"image/color"
)

// Draw renders the overlay onto output, scaling sheet coordinates by zoom.
func Draw(output *image.RGBA, overlay *Overlay, zoom float64) {
	if zoom <= 0 {
		zoom = 1
	}

	for _, rect := range overlay.Rectangles {
		x1 := int(float64(rect.X) * zoom)
		y1 := int(float64(rect.Y) * zoom)
		x2 := int(float64(rect.X+rect.Width)*zoom) - 1
		y2 := int(float64(rect.Y+rect.Height)*zoom) - 1
		if rect.Fill == FillSolid {
			for y := y1; y <= y2; y++ {
				for x := x1; x <= x2; x++ {
					setPixel(output, x, y, rect.Color)
				}
			}
			continue
		}
		drawLine(output, x1, y1, x2, y1, rect.Color, 1)
		drawLine(output, x1, y2, x2, y2, rect.Color, 1)
		drawLine(output, x1, y1, x1, y2, rect.Color, 1)
		drawLine(output, x2, y1, x2, y2, rect.Color, 1)
	}

	for _, pl := range overlay.Polylines {
		thickness := pl.Thickness
		if thickness <= 0 {
			thickness = 1
		}
		for i := 1; i < len(pl.Points); i++ {
			p1, p2 := pl.Points[i-1], pl.Points[i]
			drawLine(output,
				int(p1.X*zoom), int(p1.Y*zoom),
				int(p2.X*zoom), int(p2.Y*zoom),
				pl.Color, thickness)
		}
	}

	for _, c := range overlay.Circles {
		drawCircle(output, c, zoom)
	}
}

func setPixel(output *image.RGBA, x, y int, col color.RGBA) {
	if (image.Point{X: x, Y: y}).In(output.Bounds()) {
		output.SetRGBA(x, y, col)
	}
}

// drawLine draws a line between two points using Bresenham's algorithm.
func drawLine(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		// Draw thick point
		for t := -thickness / 2; t <= thickness/2; t++ {
			for s := -thickness / 2; s <= thickness/2; s++ {
				setPixel(output, x1+s, y1+t, col)
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawCircle draws a filled or outlined circle on the output image.
func drawCircle(output *image.RGBA, circle OverlayCircle, zoom float64) {
	cx := circle.X * zoom
	cy := circle.Y * zoom
	r := circle.Radius * zoom

	r2 := r * r
	innerR2 := (r - 1) * (r - 1)

	for y := int(cy - r - 1); y <= int(cy+r+1); y++ {
		for x := int(cx - r - 1); x <= int(cx+r+1); x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			dist2 := dx*dx + dy*dy
			if dist2 > r2 {
				continue
			}
			if circle.Filled || dist2 >= innerR2 {
				setPixel(output, x, y, circle.Color)
			}
		}
	}
}
