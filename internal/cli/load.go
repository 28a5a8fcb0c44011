package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"omr-workbench/internal/lag"
	"omr-workbench/internal/project"
	"omr-workbench/internal/sheet"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
)

var errNoMaskLoader = errors.New("sheet references an image but no image loader is configured")

// loadSheet reads a sheet description and builds its section index, from the
// page image when one is referenced, else from the embedded sections.
func loadSheet(app *App, path string) (*sheet.Sheet, error) {
	f, err := project.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, notFoundError(err, fmt.Sprintf("Sheet %s does not exist", path))
	}
	if err != nil {
		return nil, fault.Wrap(err, fmsg.WithDesc("load sheet", fmt.Sprintf("Could not read sheet %s", path)))
	}

	var index *lag.Index
	if imgPath := f.GetImagePath(path); imgPath != "" {
		if app.LoadMask == nil {
			return nil, errNoMaskLoader
		}
		mask, err := app.LoadMask(imgPath)
		if err != nil {
			return nil, fmt.Errorf("load page %s: %w", imgPath, err)
		}
		index = lag.BuildHorizontal(mask)
	} else {
		index = f.SectionIndex()
	}

	sh, err := f.Build(index)
	if err != nil {
		return nil, fmt.Errorf("build sheet %s: %w", path, err)
	}
	return sh, nil
}
