package cli

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"omr-workbench/internal/app"
	"omr-workbench/internal/sheet"
	"omr-workbench/pkg/colorutil"
	"omr-workbench/ui/canvas"
)

// renderSheet paints the sections left in the sheet index in black on white
// and the open edit of session on top.
func renderSheet(sh *sheet.Sheet, session *app.State) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, sh.Width(), sh.Height()))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorutil.White), image.Point{}, draw.Src)

	for _, s := range sh.Index.Sections() {
		for _, r := range s.Runs {
			for x := r.Start; x <= r.Stop; x++ {
				img.SetRGBA(x, r.Y, colorutil.Black)
			}
		}
	}

	var overlay canvas.Overlay
	session.Render(&overlay)
	canvas.Draw(img, &overlay, 1)
	return img
}

func writeOverlay(path string, sh *sheet.Sheet, session *app.State) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create overlay: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, renderSheet(sh, session)); err != nil {
		return fmt.Errorf("encode overlay: %w", err)
	}
	return nil
}
