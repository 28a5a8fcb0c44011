package project

import (
	"os"
	"path/filepath"
	"testing"

	"omr-workbench/internal/lag"
	"omr-workbench/internal/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndBuild(t *testing.T) {
	path := write(t, `{
  "version": 1,
  "name": "page",
  "width": 300,
  "height": 200,
  "scale": {"interline": 18, "max_line_thickness": 3},
  "staffs": [{"id": 4, "lines": [
    [{"x": 10, "y": 50}, {"x": 290, "y": 52}],
    [{"x": 10, "y": 68}, {"x": 290, "y": 70}]
  ]}],
  "sections": [{"id": 9, "runs": [{"y": 50, "start": 20, "stop": 40}]}]
}`)

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sheet.Scale{Interline: 18, MaxLineThickness: 3}, f.Scale)
	assert.Equal(t, "", f.GetImagePath(path))

	idx := f.SectionIndex()
	assert.Equal(t, []lag.SectionID{9}, idx.IDs())
	assert.Equal(t, 21, idx.Get(9).Bounds().Width)

	sh, err := f.Build(idx)
	require.NoError(t, err)
	require.Len(t, sh.Staffs, 1)
	st, err := sh.Staff(4)
	require.NoError(t, err)
	assert.Equal(t, 2, st.LineCount())
	assert.Equal(t, 300, sh.Width())
}

func TestLoadDefaultsScale(t *testing.T) {
	f, err := Load(write(t, `{"name": "x", "staffs": []}`))
	require.NoError(t, err)
	assert.Equal(t, sheet.DefaultScale(), f.Scale)
}

func TestImagePath(t *testing.T) {
	f := &File{ImagePath: "scans/p1.tif"}
	assert.Equal(t, filepath.Join("/data/book", "scans/p1.tif"), f.GetImagePath("/data/book/p1.json"))

	f.ImagePath = "/abs/p1.tif"
	assert.Equal(t, "/abs/p1.tif", f.GetImagePath("/data/book/p1.json"))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(write(t, `{"staffs": [`))
	assert.Error(t, err)

	f, err := Load(write(t, `{"staffs": [{"id": 1, "lines": [[]]}]}`))
	require.NoError(t, err)
	_, err = f.Build(f.SectionIndex())
	assert.Error(t, err)

	f, err = Load(write(t, `{"staffs": [{"id": 1, "lines": []}]}`))
	require.NoError(t, err)
	_, err = f.Build(f.SectionIndex())
	assert.ErrorIs(t, err, sheet.ErrNoLines)
}
