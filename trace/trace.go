// Package trace replays scripted pointer interactions against a headless cursor system
package trace

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-chess/config"
	"github.com/lixenwraith/vi-chess/core"
)

// Step operations
const (
	OpSpawn   = "spawn"   // Recreate a despawned widget with its declarations
	OpDespawn = "despawn" // Destroy the widget entity
	OpAttach  = "attach"  // Attach declarations (all, or Tier)
	OpDetach  = "detach"  // Detach declarations (all, or Tier)
	OpEnter   = "enter"
	OpExit    = "exit"
	OpPress   = "press"
	OpRelease = "release"
	OpDrop    = "drop"  // Drop Widget onto Target
	OpCheck   = "check" // Assert only
)

var knownOps = map[string]bool{
	OpSpawn: true, OpDespawn: true, OpAttach: true, OpDetach: true,
	OpEnter: true, OpExit: true, OpPress: true, OpRelease: true, OpDrop: true, OpCheck: true,
}

// Widget declares a named widget and its cursor preferences
type Widget struct {
	Name  string             `toml:"name"`
	Hover *config.Preference `toml:"hover"`
	Click *config.Preference `toml:"click"`
}

// Step is one scripted action; Expect, when set, names the icon that must be on top afterwards
type Step struct {
	Op     string `toml:"op"`
	Widget string `toml:"widget"`
	Target string `toml:"target"`
	Tier   string `toml:"tier"`
	Expect string `toml:"expect"`
}

func (s Step) String() string {
	var sb strings.Builder
	sb.WriteString(s.Op)
	if s.Widget != "" {
		sb.WriteString(" " + s.Widget)
	}
	if s.Target != "" {
		sb.WriteString(" -> " + s.Target)
	}
	if s.Tier != "" {
		sb.WriteString(" [" + s.Tier + "]")
	}
	return sb.String()
}

type Trace struct {
	DefaultIcon core.CursorIcon `toml:"default_icon"`
	Widgets     []Widget        `toml:"widget"`
	Steps       []Step          `toml:"step"`
}

// Load reads and validates a trace file
func Load(path string) (*Trace, error) {
	t := &Trace{DefaultIcon: core.IconDefault}
	md, err := toml.DecodeFile(path, t)
	if err != nil {
		return nil, errors.Wrapf(err, "decode trace %s", path)
	}
	if err := t.finish(md); err != nil {
		return nil, errors.Wrapf(err, "trace %s", path)
	}
	return t, nil
}

// Decode parses and validates a trace document
func Decode(data string) (*Trace, error) {
	t := &Trace{DefaultIcon: core.IconDefault}
	md, err := toml.Decode(data, t)
	if err != nil {
		return nil, errors.Wrap(err, "decode trace")
	}
	if err := t.finish(md); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Trace) finish(md toml.MetaData) error {
	var result *multierror.Error
	for _, k := range md.Undecoded() {
		result = multierror.Append(result, errors.Errorf("unknown key %q", k.String()))
	}
	if err := t.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// Validate reports every malformed widget and step
func (t *Trace) Validate() error {
	var result *multierror.Error

	names := make(map[string]bool, len(t.Widgets))
	for i, w := range t.Widgets {
		switch {
		case w.Name == "":
			result = multierror.Append(result, errors.Errorf("widget %d: missing name", i))
		case names[w.Name]:
			result = multierror.Append(result, errors.Errorf("widget %d: duplicate name %q", i, w.Name))
		}
		names[w.Name] = true
		for _, p := range []*config.Preference{w.Hover, w.Click} {
			if p != nil && p.Priority < 0 {
				result = multierror.Append(result, errors.Errorf("widget %q: negative priority %d", w.Name, p.Priority))
			}
		}
	}

	for i, s := range t.Steps {
		if !knownOps[s.Op] {
			result = multierror.Append(result, errors.Errorf("step %d: unknown op %q", i, s.Op))
			continue
		}
		if s.Op != OpCheck && !names[s.Widget] {
			result = multierror.Append(result, errors.Errorf("step %d: unknown widget %q", i, s.Widget))
		}
		if s.Op == OpDrop && !names[s.Target] {
			result = multierror.Append(result, errors.Errorf("step %d: unknown drop target %q", i, s.Target))
		}
		if s.Tier != "" && s.Tier != "hover" && s.Tier != "click" {
			result = multierror.Append(result, errors.Errorf("step %d: unknown tier %q", i, s.Tier))
		}
		if s.Expect != "" {
			if _, err := core.ParseCursorIcon(s.Expect); err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "step %d", i))
			}
		}
	}
	return result.ErrorOrNil()
}
