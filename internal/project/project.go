// Package project reads sheet description files (.omrsheet): the scanned
// page, its scale and the staff geometry produced by staff detection.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"omr-workbench/internal/lag"
	"omr-workbench/internal/sheet"
	"omr-workbench/pkg/geometry"
)

// File represents a sheet description file.
type File struct {
	Version int    `json:"version"`
	Name    string `json:"name"`

	// Image path (relative to the description file). When empty, Sections
	// and the explicit Width/Height describe the page instead.
	ImagePath string `json:"image,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`

	Scale    sheet.Scale    `json:"scale"`
	Staffs   []StaffSpec    `json:"staffs"`
	Sections []*lag.Section `json:"sections,omitempty"`
}

// StaffSpec is the detected geometry of one staff: its lines top to bottom.
type StaffSpec struct {
	ID    int                  `json:"id"`
	Lines [][]geometry.Point2D `json:"lines"`
}

// Load loads a sheet description from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if f.Scale.MaxLineThickness <= 0 {
		f.Scale = sheet.DefaultScale()
	}

	return &f, nil
}

// GetImagePath returns the absolute path to the page image, or "" if none.
func (f *File) GetImagePath(descPath string) string {
	if f.ImagePath == "" {
		return ""
	}
	if filepath.IsAbs(f.ImagePath) {
		return f.ImagePath
	}
	return filepath.Join(filepath.Dir(descPath), f.ImagePath)
}

// SectionIndex builds the section index from the embedded sections.
func (f *File) SectionIndex() *lag.Index {
	idx := lag.NewIndex(f.Width, f.Height)
	for _, s := range f.Sections {
		idx.Insert(lag.NewSection(s.ID, s.Runs))
	}
	return idx
}

// Build assembles the sheet from the described staffs and a section index.
func (f *File) Build(index *lag.Index) (*sheet.Sheet, error) {
	sh := &sheet.Sheet{
		Name:  f.Name,
		Scale: f.Scale,
		Index: index,
	}
	for _, spec := range f.Staffs {
		lines := make([]*sheet.StaffLine, len(spec.Lines))
		for i, pts := range spec.Lines {
			if len(pts) == 0 {
				return nil, fmt.Errorf("staff %d line %d: no points", spec.ID, i)
			}
			lines[i] = sheet.NewStaffLine(pts)
		}
		st, err := sheet.NewStaff(spec.ID, lines)
		if err != nil {
			return nil, err
		}
		sh.Staffs = append(sh.Staffs, st)
	}
	return sh, nil
}
