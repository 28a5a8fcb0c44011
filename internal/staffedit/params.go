package staffedit

// Params configures the staff editor.
type Params struct {
	// Minimum width/height ratio of a section box crossed by a line for the
	// section to be taken as line material. Lower ratios are symbol fragments.
	MinWidthHeightRatio float64

	// Pick distance for handles, in pixels.
	HandleTolerance float64

	// Handle marker radius in rendered overlays, in pixels.
	HandleRadius float64

	// Sampling step of line curves in rendered overlays, in pixels.
	RenderStep float64
}

// DefaultParams returns default editor parameters.
func DefaultParams() Params {
	return Params{
		MinWidthHeightRatio: 2.0,
		HandleTolerance:     6,
		HandleRadius:        3,
		RenderStep:          2,
	}
}

// WithMinWidthHeightRatio returns a copy of params with another removal ratio.
func (p Params) WithMinWidthHeightRatio(ratio float64) Params {
	if ratio > 0 {
		p.MinWidthHeightRatio = ratio
	}
	return p
}

// WithHandleTolerance returns a copy of params with another pick distance.
func (p Params) WithHandleTolerance(tolerance float64) Params {
	if tolerance > 0 {
		p.HandleTolerance = tolerance
	}
	return p
}
