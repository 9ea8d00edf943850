// Package config holds the YAML file configuration for the CLI and the
// server. Flags override file values; Normalize fills defaults so partial
// configs keep working.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-ap/errors"
	"gopkg.in/yaml.v3"

	timetable "github.com/shadowforce78/TimeTableLib"
)

// Source types understood by the record loader.
const (
	SourceJSON = "json"
	SourceICS  = "ics"
	SourceWeb  = "web"
)

// Source describes one record feed. Path is used by json sources, URL by
// ics and web sources.
type Source struct {
	Type string `yaml:"type"`
	Name string `yaml:"name,omitempty"`
	Path string `yaml:"path,omitempty"`
	URL  string `yaml:"url,omitempty"`
}

// Config is the top-level configuration.
type Config struct {
	Listen    string `yaml:"listen"`
	Templates string `yaml:"templates"`
	// RefreshMinutes is the reload period for the server's background
	// refresh loop. Zero disables refreshing.
	RefreshMinutes int `yaml:"refresh_minutes"`

	Weekdays []string `yaml:"weekdays,omitempty"`
	// DayNames renames weekday labels, keyed by lowercase English day
	// name. Day names are the only localizable strings.
	DayNames map[string]string `yaml:"day_names,omitempty"`

	TimeInterval int    `yaml:"time_interval"`
	MinRowSpan   int    `yaml:"min_row_span"`
	SpanPolicy   string `yaml:"span_policy"`   // "minimum" or "raw"
	WindowPolicy string `yaml:"window_policy"` // "events" or "fixed"
	WindowStart  string `yaml:"window_start"`  // "HH:MM"
	WindowEnd    string `yaml:"window_end"`    // "HH:MM"

	ShowIcons    *bool `yaml:"show_icons,omitempty"`
	ModalEnabled *bool `yaml:"modal_enabled,omitempty"`
	ShowProf     *bool `yaml:"show_prof,omitempty"`
	ShowClasse   *bool `yaml:"show_classe,omitempty"`

	Sources []Source `yaml:"sources,omitempty"`
}

func Default() *Config {
	c := Config{}
	c.Normalize()
	return &c
}

// Load reads a YAML config. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Annotatef(err, "unable to read config %s", path)
	}
	c := Config{}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Annotatef(err, "unable to parse config %s", path)
	}
	c.Normalize()
	return &c, nil
}

// Normalize fills zero values with defaults.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = "localhost:9999"
	}
	if c.Templates == "" {
		c.Templates = "templates"
	}
	if c.TimeInterval <= 0 {
		c.TimeInterval = 15
	}
	if c.MinRowSpan <= 0 {
		c.MinRowSpan = 2
	}
	switch c.SpanPolicy {
	case "minimum", "raw":
	default:
		c.SpanPolicy = "minimum"
	}
	switch c.WindowPolicy {
	case "events", "fixed":
	default:
		c.WindowPolicy = "events"
	}
	if c.WindowStart == "" {
		c.WindowStart = "08:00"
	}
	if c.WindowEnd == "" {
		c.WindowEnd = "18:00"
	}
}

// Options converts the file configuration into pipeline options.
func (c *Config) Options() timetable.Options {
	opts := timetable.DefaultOptions()
	if len(c.Weekdays) > 0 {
		opts.Weekdays = c.Weekdays
	}
	if len(c.DayNames) > 0 {
		names := make(map[time.Weekday]string, len(timetable.DefaultDayNames))
		for wd, label := range timetable.DefaultDayNames {
			if renamed, ok := c.DayNames[strings.ToLower(label)]; ok {
				names[wd] = renamed
			} else {
				names[wd] = label
			}
		}
		opts.DayNames = names
	}
	opts.TimeInterval = c.TimeInterval
	opts.MinRowSpan = c.MinRowSpan
	if c.SpanPolicy == "raw" {
		opts.Span = timetable.SpanRaw
	}
	if c.WindowPolicy == "fixed" {
		opts.Window = timetable.WindowFixed
	}
	if m, err := clockMinutes(c.WindowStart); err == nil {
		opts.WindowStart = m
	}
	if m, err := clockMinutes(c.WindowEnd); err == nil {
		opts.WindowEnd = m
	}
	opts.ShowIcons = boolOr(c.ShowIcons, true)
	opts.ModalEnabled = boolOr(c.ModalEnabled, true)
	opts.ShowProf = boolOr(c.ShowProf, true)
	opts.ShowClasse = boolOr(c.ShowClasse, true)
	return opts.Normalized()
}

func clockMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Annotatef(err, "invalid clock value %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
