package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"omr-workbench/internal/staffedit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	p, err := LoadFrom(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.Equal(t, staffedit.DefaultParams(), p.EditorParams())
	assert.Equal(t, "", p.String(KeyLastSheet))
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", prefsFile)
	p, err := LoadFrom(path)
	require.NoError(t, err)

	p.SetFloat(KeyMinWidthHeightRatio, 1.5)
	p.SetFloat(KeyHandleTolerance, 10)
	p.SetString(KeyLastSheet, "page1.json")
	require.NoError(t, p.Save())

	q, err := LoadFrom(path)
	require.NoError(t, err)
	params := q.EditorParams()
	assert.Equal(t, 1.5, params.MinWidthHeightRatio)
	assert.Equal(t, 10.0, params.HandleTolerance)
	assert.Equal(t, staffedit.DefaultParams().RenderStep, params.RenderStep)
	assert.Equal(t, "page1.json", q.String(KeyLastSheet))
}

func TestInvalidValuesKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	data := `{"staffedit.minWidthHeightRatio": -3, "staffedit.handleTolerance": "wide"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	p, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, staffedit.DefaultParams(), p.EditorParams())
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	p, err := LoadFrom(path)
	require.Error(t, err)
	require.NotNil(t, p)
	assert.Equal(t, staffedit.DefaultParams(), p.EditorParams())
}
