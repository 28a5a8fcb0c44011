package cli

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"omr-workbench/internal/app"
	"omr-workbench/internal/staffedit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Staff 1 has five flat lines from y=100 to y=180 with points at x 0, 200
// and 400. Section 1 lies 10 pixels under the mid line, section 2 on it.
const sheetJSON = `{
  "version": 1,
  "name": "page",
  "width": 500,
  "height": 300,
  "scale": {"interline": 20, "max_line_thickness": 4},
  "staffs": [{"id": 1, "lines": [
    [{"x": 0, "y": 100}, {"x": 200, "y": 100}, {"x": 400, "y": 100}],
    [{"x": 0, "y": 120}, {"x": 200, "y": 120}, {"x": 400, "y": 120}],
    [{"x": 0, "y": 140}, {"x": 200, "y": 140}, {"x": 400, "y": 140}],
    [{"x": 0, "y": 160}, {"x": 200, "y": 160}, {"x": 400, "y": 160}],
    [{"x": 0, "y": 180}, {"x": 200, "y": 180}, {"x": 400, "y": 180}]
  ]}],
  "sections": [
    {"id": 1, "runs": [{"y": 149, "start": 0, "stop": 399}, {"y": 150, "start": 0, "stop": 399}]},
    {"id": 2, "runs": [{"y": 139, "start": 0, "stop": 399}, {"y": 140, "start": 0, "stop": 399}]}
  ]
}`

func writeSheet(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "page.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, loader MaskLoader, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(loader)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--prefs", filepath.Join(t.TempDir(), "prefs.json")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestParseMove(t *testing.T) {
	m, err := parseMove("3:-1.5,2")
	require.NoError(t, err)
	assert.Equal(t, handleMove{Index: 3, DX: -1.5, DY: 2}, m)

	for _, bad := range []string{"", "3", "3:1", "x:1,2", "-1:0,0", "2:a,1", "2:1,b"} {
		_, err := parseMove(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseMode(t *testing.T) {
	m, err := parseMode("Lines")
	require.NoError(t, err)
	assert.Equal(t, staffedit.ModeLines, m)

	m, err = parseMode("")
	require.NoError(t, err)
	assert.Equal(t, staffedit.ModeGlobal, m)

	_, err = parseMode("rigid")
	assert.Error(t, err)
}

func TestSectionsCommand(t *testing.T) {
	path := writeSheet(t, t.TempDir(), sheetJSON)

	out, err := run(t, nil, "sections", path, "-v")
	require.NoError(t, err)
	assert.Contains(t, out, `sheet "page": 500x300, 2 sections`)
	assert.Contains(t, out, "staff 1: 5 lines, x 0..400")
	assert.Contains(t, out, "S1[0,149 400x2]")
	assert.Contains(t, out, "S2[0,139 400x2]")

	_, err = run(t, nil, "sections", path, "--staff", "9")
	assert.Error(t, err)
}

func TestEditGlobalCommand(t *testing.T) {
	path := writeSheet(t, t.TempDir(), sheetJSON)

	out, err := run(t, nil, "edit", path, "--staff", "1",
		"--move", "0:0,10", "--move", "1:0,10", "--move", "2:0,10", "--undo")
	require.NoError(t, err)
	assert.Contains(t, out, "staff 1: global edit committed, 1 sections removed")
	assert.Contains(t, out, "  S1[0,149 400x2]")
	assert.Contains(t, out, "sheet now has 1 sections")
	assert.Contains(t, out, "undone: 1 sections restored, sheet has 2 sections")
}

func TestEditLinesCommand(t *testing.T) {
	path := writeSheet(t, t.TempDir(), sheetJSON)

	// Second line (handles 3..5) down onto section 1; the mid line still
	// runs through section 2.
	out, err := run(t, nil, "edit", path, "--mode", "lines",
		"--move", "3:0,30", "--move", "4:0,30", "--move", "5:0,30")
	require.NoError(t, err)
	assert.Contains(t, out, "lines edit committed, 2 sections removed")
}

func TestEditWithoutMovesIsDiscarded(t *testing.T) {
	path := writeSheet(t, t.TempDir(), sheetJSON)

	out, err := run(t, nil, "edit", path)
	require.NoError(t, err)
	assert.Contains(t, out, "nothing moved, edit discarded")
}

func TestEditRatioFlag(t *testing.T) {
	path := writeSheet(t, t.TempDir(), sheetJSON)

	out, err := run(t, nil, "edit", path, "--ratio", "500",
		"--move", "0:0,10", "--move", "1:0,10", "--move", "2:0,10")
	require.NoError(t, err)
	assert.Contains(t, out, "0 sections removed")
}

func TestEditErrors(t *testing.T) {
	path := writeSheet(t, t.TempDir(), sheetJSON)

	_, err := run(t, nil, "edit", path, "--mode", "rigid")
	assert.Error(t, err)
	_, err = run(t, nil, "edit", path, "--move", "7")
	assert.Error(t, err)
	_, err = run(t, nil, "edit", path, "--move", "40:0,1")
	assert.Error(t, err)
	_, err = run(t, nil, "edit", path, "--staff", "2")
	assert.Error(t, err)
	_, err = run(t, nil, "edit")
	assert.Error(t, err)
	_, err = run(t, nil, "edit", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestEditRemembersLastSheet(t *testing.T) {
	path := writeSheet(t, t.TempDir(), sheetJSON)
	prefsPath := filepath.Join(t.TempDir(), "prefs.json")

	runWithPrefs := func(args ...string) (string, error) {
		cmd := NewRootCmd(nil)
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{"--prefs", prefsPath}, args...))
		err := cmd.Execute()
		return out.String(), err
	}

	_, err := runWithPrefs("edit", path, "--move", "1:0,1")
	require.NoError(t, err)

	out, err := runWithPrefs("edit", "--move", "1:0,1")
	require.NoError(t, err)
	assert.Contains(t, out, "global edit committed")
}

func TestEditOverlay(t *testing.T) {
	dir := t.TempDir()
	path := writeSheet(t, dir, sheetJSON)
	overlay := filepath.Join(dir, "out.png")

	_, err := run(t, nil, "edit", path,
		"--move", "0:0,10", "--move", "1:0,10", "--move", "2:0,10", "--overlay", overlay)
	require.NoError(t, err)

	f, err := os.Open(overlay)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 500, 300), img.Bounds())
}

func TestSheetWithImage(t *testing.T) {
	dir := t.TempDir()
	path := writeSheet(t, dir, `{
  "name": "scan",
  "image": "page.png",
  "staffs": [{"id": 1, "lines": [
    [{"x": 0, "y": 20}, {"x": 60, "y": 20}],
    [{"x": 0, "y": 30}, {"x": 60, "y": 30}],
    [{"x": 0, "y": 40}, {"x": 60, "y": 40}]
  ]}]
}`)

	_, err := run(t, nil, "sections", path)
	assert.ErrorIs(t, err, errNoMaskLoader)

	var loaded string
	loader := func(p string) (*image.Gray, error) {
		loaded = p
		mask := image.NewGray(image.Rect(0, 0, 80, 60))
		for y := 29; y <= 30; y++ {
			for x := 0; x < 60; x++ {
				mask.Pix[y*mask.Stride+x] = 255
			}
		}
		return mask, nil
	}
	out, err := run(t, loader, "sections", path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "page.png"), loaded)
	assert.Contains(t, out, `sheet "scan": 80x60, 1 sections`)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "omr-workbench ")
}

func TestExitCodes(t *testing.T) {
	path := writeSheet(t, t.TempDir(), sheetJSON)

	_, err := run(t, nil, "edit", path, "--mode", "rigid")
	assert.Equal(t, 2, ExitCode(err))
	assert.Contains(t, Message(err), "Mode must be global or lines")

	_, err = run(t, nil, "edit", path, "--move", "40:0,1")
	assert.Equal(t, 2, ExitCode(err))

	_, err = run(t, nil, "edit", path, "--staff", "2")
	assert.Equal(t, 3, ExitCode(err))
	assert.ErrorIs(t, err, app.ErrUnknownStaff)

	_, err = run(t, nil, "sections", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, 3, ExitCode(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	assert.Equal(t, 1, ExitCode(errors.New("boom")))
	assert.Equal(t, "boom", Message(errors.New("boom")))
	assert.Equal(t, 0, ExitCode(nil))
}
