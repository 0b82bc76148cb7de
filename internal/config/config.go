// ABOUTME: Settings loading with global + project config deep merge
// ABOUTME: YAML files decoded with yaml.v3; accessors turn raw fields into keys, colors and levels

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/charflow-go/internal/log"
	"github.com/mauromedda/charflow-go/pkg/tui/color"
	"github.com/mauromedda/charflow-go/pkg/tui/key"
)

// Settings holds the merged configuration.
type Settings struct {
	Debug        bool              `yaml:"debug,omitempty"`
	FrameTimeout time.Duration     `yaml:"frame_timeout,omitempty"`
	NextKey      string            `yaml:"next_key,omitempty"`
	PreviousKey  string            `yaml:"previous_key,omitempty"`
	LogFile      string            `yaml:"log_file,omitempty"`
	LogLevel     string            `yaml:"log_level,omitempty"`
	Palette      map[string]string `yaml:"palette,omitempty"`
}

// Defaults returns the settings used when no file overrides them.
func Defaults() *Settings {
	return &Settings{
		FrameTimeout: 10 * time.Millisecond,
		NextKey:      "J",
		PreviousKey:  "K",
		LogLevel:     "info",
	}
}

// Load reads the global and project-local settings and merges them over
// Defaults. Project settings override global settings. Missing files are
// not an error.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(merge(Defaults(), global), project)
	ResolveEnvVars(merged)
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-zero fields of top onto base.
func merge(base, top *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if top == nil {
		return base
	}

	result := *base

	if top.Debug {
		result.Debug = true
	}
	if top.FrameTimeout != 0 {
		result.FrameTimeout = top.FrameTimeout
	}
	if top.NextKey != "" {
		result.NextKey = top.NextKey
	}
	if top.PreviousKey != "" {
		result.PreviousKey = top.PreviousKey
	}
	if top.LogFile != "" {
		result.LogFile = top.LogFile
	}
	if top.LogLevel != "" {
		result.LogLevel = top.LogLevel
	}

	if len(top.Palette) > 0 {
		palette := make(map[string]string, len(base.Palette)+len(top.Palette))
		for k, v := range base.Palette {
			palette[k] = v
		}
		for k, v := range top.Palette {
			palette[k] = v
		}
		result.Palette = palette
	}

	return &result
}

// CycleKeys parses the focus cycling keys.
func (s *Settings) CycleKeys() (next, prev uint8, err error) {
	next, err = key.Parse(s.NextKey)
	if err != nil {
		return 0, 0, fmt.Errorf("next_key: %w", err)
	}
	prev, err = key.Parse(s.PreviousKey)
	if err != nil {
		return 0, 0, fmt.Errorf("previous_key: %w", err)
	}
	if next == prev {
		return 0, 0, fmt.Errorf("next_key and previous_key are both %q", key.Name(next))
	}
	return next, prev, nil
}

// Colors returns the built-in palette with the configured overrides
// applied. Overriding a base color such as orange also re-derives its
// shades unless they are configured too. Every bad entry is reported.
func (s *Settings) Colors() (color.Palette, error) {
	overrides := make(color.Palette, len(s.Palette))
	var errs []error
	for name, hex := range s.Palette {
		c, err := color.Hex(hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("palette %s: %w", name, err))
			continue
		}
		overrides[strings.ToLower(name)] = c
	}
	return color.DefaultPalette().Merge(color.WithShades(overrides)), errors.Join(errs...)
}

// Level parses LogLevel. An empty level means info.
func (s *Settings) Level() (slog.Level, error) {
	if s.LogLevel == "" {
		return log.LevelInfo, nil
	}
	return log.ParseLevel(s.LogLevel)
}
