package sheet

import (
	"fmt"

	"omr-workbench/internal/lag"
)

// Scale holds the sheet-wide measurements the editor relies on.
type Scale struct {
	Interline        int `json:"interline"`          // Distance between two staff lines, in pixels
	MaxLineThickness int `json:"max_line_thickness"` // Thickest run stack still considered line material
}

// DefaultScale returns a scale typical of 300 DPI scans.
func DefaultScale() Scale {
	return Scale{
		Interline:        20,
		MaxLineThickness: 4,
	}
}

// Sheet is one page: its staffs and the shared horizontal section index.
type Sheet struct {
	Name   string
	Scale  Scale
	Staffs []*Staff
	Index  *lag.Index
}

// Width returns the sheet width in pixels.
func (s *Sheet) Width() int { return s.Index.Width() }

// Height returns the sheet height in pixels.
func (s *Sheet) Height() int { return s.Index.Height() }

// Staff returns the staff with the given ID.
func (s *Sheet) Staff(id int) (*Staff, error) {
	for _, st := range s.Staffs {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, fmt.Errorf("staff %d not found", id)
}
