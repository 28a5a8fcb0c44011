// Package prefs provides JSON-based application preferences.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"omr-workbench/internal/staffedit"
)

const prefsFile = "preferences.json"

// Keys of the staff editor settings.
const (
	KeyMinWidthHeightRatio = "staffedit.minWidthHeightRatio"
	KeyHandleTolerance     = "staffedit.handleTolerance"
	KeyHandleRadius        = "staffedit.handleRadius"
	KeyRenderStep          = "staffedit.renderStep"
	KeyLastSheet           = "session.lastSheet"
)

// Prefs stores application preferences as a key-value map.
type Prefs struct {
	mu     sync.RWMutex
	values map[string]interface{}
	path   string
}

// DefaultPath returns ~/.config/omr-workbench/preferences.json (or the
// platform equivalent).
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "omr-workbench", prefsFile)
}

// Load reads preferences from DefaultPath.
// Returns empty Prefs if the file doesn't exist or is unreadable.
func Load() *Prefs {
	p, _ := LoadFrom(DefaultPath())
	return p
}

// LoadFrom reads preferences from path. A missing file is not an error.
// The returned Prefs is always usable, even when err is non-nil.
func LoadFrom(path string) (*Prefs, error) {
	p := &Prefs{
		values: make(map[string]interface{}),
		path:   path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read preferences: %w", err)
	}
	if err := json.Unmarshal(data, &p.values); err != nil {
		p.values = make(map[string]interface{})
		return p, fmt.Errorf("parse preferences %s: %w", path, err)
	}
	return p, nil
}

// Path returns the file the preferences are saved to.
func (p *Prefs) Path() string { return p.path }

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	p.mu.RLock()
	data, err := json.MarshalIndent(p.values, "", "  ")
	p.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	return os.WriteFile(p.path, data, 0o644)
}

// FloatWithFallback returns a float64 preference, or fallback if not set.
func (p *Prefs) FloatWithFallback(key string, fallback float64) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return fallback
}

// SetFloat stores a float64 preference.
func (p *Prefs) SetFloat(key string, val float64) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// String returns a string preference, or "" if not set.
func (p *Prefs) String(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if s, ok := p.values[key].(string); ok {
		return s
	}
	return ""
}

// SetString stores a string preference.
func (p *Prefs) SetString(key string, val string) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// EditorParams returns the staff editor defaults with any stored overrides.
func (p *Prefs) EditorParams() staffedit.Params {
	d := staffedit.DefaultParams()
	params := d.
		WithMinWidthHeightRatio(p.FloatWithFallback(KeyMinWidthHeightRatio, d.MinWidthHeightRatio)).
		WithHandleTolerance(p.FloatWithFallback(KeyHandleTolerance, d.HandleTolerance))
	if r := p.FloatWithFallback(KeyHandleRadius, d.HandleRadius); r > 0 {
		params.HandleRadius = r
	}
	if s := p.FloatWithFallback(KeyRenderStep, d.RenderStep); s > 0 {
		params.RenderStep = s
	}
	return params
}
