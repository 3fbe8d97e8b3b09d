// Package config loads the TOML configuration of cursor preferences and logging
package config

import (
	"io"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-chess/component"
	"github.com/lixenwraith/vi-chess/core"
	"github.com/lixenwraith/vi-chess/logger"
	"github.com/lixenwraith/vi-chess/parameter"
)

// Widget kinds the board host declares cursors for
const (
	WidgetSquare    = "square"    // Square holding a piece of the side to move
	WidgetPromotion = "promotion" // Promotion picker choice
	WidgetForbidden = "forbidden" // Square holding a piece of the side not to move
)

var knownWidgets = map[string]bool{
	WidgetSquare:    true,
	WidgetPromotion: true,
	WidgetForbidden: true,
}

// Preference is one tier's cursor declaration
type Preference struct {
	Icon     core.CursorIcon `toml:"icon"`
	Priority int             `toml:"priority"`
}

// WidgetCursor holds a widget kind's declarations; a nil tier is not declared
type WidgetCursor struct {
	Hover *Preference `toml:"hover"`
	Click *Preference `toml:"click"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type Config struct {
	DefaultIcon core.CursorIcon         `toml:"default_icon"`
	Log         LogConfig               `toml:"log"`
	Cursor      map[string]WidgetCursor `toml:"cursor"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		DefaultIcon: core.IconDefault,
		Log:         LogConfig{Level: "info", Format: "text"},
		Cursor: map[string]WidgetCursor{
			WidgetSquare: {
				Hover: &Preference{Icon: core.IconGrab, Priority: parameter.CursorPriorityHover},
				Click: &Preference{Icon: core.IconGrabbing, Priority: parameter.CursorPriorityClick},
			},
			WidgetPromotion: {
				Hover: &Preference{Icon: core.IconPointer, Priority: parameter.CursorPriorityHover},
			},
			WidgetForbidden: {
				Hover: &Preference{Icon: core.IconNotAllowed, Priority: parameter.CursorPriorityHover},
			},
		},
	}
}

// Load overlays the file at path on the defaults
// A [cursor.<widget>] table in the file replaces that widget's defaults entirely
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode parses a TOML document over the defaults
func Decode(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	var result *multierror.Error
	for _, k := range keys {
		result = multierror.Append(result, errors.Errorf("unknown key %q", k.String()))
	}
	return result.ErrorOrNil()
}

// Validate reports every invalid entry, not just the first
func (c *Config) Validate() error {
	var result *multierror.Error

	if !c.DefaultIcon.Valid() {
		result = multierror.Append(result, errors.Errorf("default_icon: invalid icon %d", uint8(c.DefaultIcon)))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "log.level"))
	}
	if _, err := logger.ParseType(c.Log.Format); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "log.format"))
	}

	names := make([]string, 0, len(c.Cursor))
	for name := range c.Cursor {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !knownWidgets[name] {
			result = multierror.Append(result, errors.Errorf("cursor.%s: unknown widget kind", name))
			continue
		}
		wc := c.Cursor[name]
		for _, tier := range []struct {
			name string
			pref *Preference
		}{{"hover", wc.Hover}, {"click", wc.Click}} {
			if tier.pref == nil {
				continue
			}
			if tier.pref.Priority < 0 {
				result = multierror.Append(result, errors.Errorf("cursor.%s.%s: priority %d is negative", name, tier.name, tier.pref.Priority))
			}
			if !tier.pref.Icon.Valid() {
				result = multierror.Append(result, errors.Errorf("cursor.%s.%s: invalid icon", name, tier.name))
			}
		}
	}
	return result.ErrorOrNil()
}

// Preference returns the declaration for a widget kind and tier
func (c *Config) Preference(widget string, tier component.CursorTier) (component.CursorPreference, bool) {
	wc, ok := c.Cursor[widget]
	if !ok {
		return component.CursorPreference{}, false
	}
	p := wc.Hover
	if tier == component.TierClick {
		p = wc.Click
	}
	if p == nil {
		return component.CursorPreference{}, false
	}
	return component.CursorPreference{Icon: p.Icon, Priority: p.Priority}, true
}

// NewLogger builds the configured logger writing to w
func (c *Config) NewLogger(w io.Writer) (logger.Logger, error) {
	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseType(c.Log.Format)
	if err != nil {
		return nil, err
	}
	return logger.New(logger.Options{Buffer: w, Level: level, Type: format}), nil
}
