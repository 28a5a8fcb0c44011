package scan

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// testPage is a 40x30 light page with a dark 20x4 bar at (10,13).
func testPage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 40, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			v := uint8(230)
			if x >= 10 && x < 30 && y >= 13 && y < 17 {
				v = 20
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

func writeImage(t *testing.T, name string, encode func(io.Writer, image.Image) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, encode(f, testPage()))
	require.NoError(t, f.Close())
	return path
}

func TestLoadFormats(t *testing.T) {
	formats := map[string]func(io.Writer, image.Image) error{
		"page.png": png.Encode,
		"page.bmp": bmp.Encode,
		"page.tif": func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) },
	}
	for name, encode := range formats {
		t.Run(name, func(t *testing.T) {
			img, err := Load(writeImage(t, name, encode))
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())

			dark := color.GrayModel.Convert(img.At(15, 14)).(color.Gray)
			light := color.GrayModel.Convert(img.At(2, 2)).(color.Gray)
			assert.Equal(t, uint8(20), dark.Y)
			assert.Equal(t, uint8(230), light.Y)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "page.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to decode image")
}

func TestBinarize(t *testing.T) {
	if testing.Short() {
		t.Skip("needs OpenCV")
	}

	mask, err := Binarize(testPage())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 30), mask.Bounds())
	assert.Equal(t, uint8(255), mask.GrayAt(10, 13).Y)
	assert.Equal(t, uint8(255), mask.GrayAt(29, 16).Y)
	assert.Equal(t, uint8(0), mask.GrayAt(9, 13).Y)
	assert.Equal(t, uint8(0), mask.GrayAt(10, 17).Y)

	path := writeImage(t, "page.png", png.Encode)
	opened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, mask.Pix, opened.Pix)
}
