package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-chess/component"
	"github.com/lixenwraith/vi-chess/core"
)

func TestDefaultMatchesBoardConvention(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	hover, ok := cfg.Preference(WidgetSquare, component.TierHover)
	require.True(t, ok)
	assert.Equal(t, component.CursorPreference{Icon: core.IconGrab, Priority: 0}, hover)

	click, ok := cfg.Preference(WidgetSquare, component.TierClick)
	require.True(t, ok)
	assert.Equal(t, component.CursorPreference{Icon: core.IconGrabbing, Priority: 1}, click)

	_, ok = cfg.Preference(WidgetPromotion, component.TierClick)
	assert.False(t, ok, "promotion picker declares hover only")
	_, ok = cfg.Preference("clock", component.TierHover)
	assert.False(t, ok)
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	cfg, err := Decode(`
default_icon = "text"

[log]
level = "debug"

[cursor.promotion]
hover = { icon = "move", priority = 3 }
`)
	require.NoError(t, err)
	assert.Equal(t, core.IconText, cfg.DefaultIcon)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "untouched keys keep defaults")

	p, ok := cfg.Preference(WidgetPromotion, component.TierHover)
	require.True(t, ok)
	assert.Equal(t, component.CursorPreference{Icon: core.IconMove, Priority: 3}, p)

	_, ok = cfg.Preference(WidgetSquare, component.TierClick)
	assert.True(t, ok, "other widgets keep defaults")
}

func TestDecodeRejectsUnknownIcon(t *testing.T) {
	_, err := Decode(`default_icon = "crosshair"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crosshair")
}

func TestValidateReportsEveryProblem(t *testing.T) {
	_, err := Decode(`
[log]
level = "loud"

[cursor.square]
hover = { icon = "grab", priority = -1 }
click = { icon = "grabbing", priority = -2 }

[cursor.clock]
hover = { icon = "wait", priority = 0 }
`)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 4)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "cursor.square.hover")
	assert.Contains(t, err.Error(), "cursor.square.click")
	assert.Contains(t, err.Error(), "cursor.clock")
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(`
[log]
colour = "red"
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.colour")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vi-chess.toml")
	require.NoError(t, os.WriteFile(path, []byte("default_icon = \"pointer\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, core.IconPointer, cfg.DefaultIcon)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.toml")
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	cfg.Log.Format = "json"
	var buf bytes.Buffer
	log, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	log.Info("ready")
	assert.Contains(t, buf.String(), `"msg":"ready"`)
}
