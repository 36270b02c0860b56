// Package config holds the column mapping and defaults used to read schedule workbooks.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DynamicColumns names the columns of a dynamic schedule sheet.
type DynamicColumns struct {
	Coach    string `yaml:"coach" json:"coach"`
	Topic    string `yaml:"topic" json:"topic"`
	ZoomLink string `yaml:"zoom_link" json:"zoom_link"`
	Time     string `yaml:"time" json:"time"`
	// Start is the optional start date & time column used when the topic has no pattern.
	Start string `yaml:"start" json:"start"`
}

// Required returns the labels a sheet must carry to be read as a dynamic schedule.
func (c DynamicColumns) Required() []string {
	return []string{c.Coach, c.ZoomLink, c.Time}
}

// FixedColumns names the columns of a fixed schedule sheet.
type FixedColumns struct {
	// Title is the course title column ("<coach> - <level> - <pattern> - <time>").
	Title         string `yaml:"title" json:"title"`
	Coach         string `yaml:"coach" json:"coach"`
	Day           string `yaml:"day" json:"day"`
	Time          string `yaml:"time" json:"time"`
	TelegramGroup string `yaml:"telegram_group" json:"telegram_group"`
}

// Required returns the labels a sheet must carry to be read as a fixed schedule.
func (c FixedColumns) Required() []string {
	return []string{c.Title, c.Day, c.Time, c.TelegramGroup}
}

// FreeGridColumns locates the coach columns of a free-grid sheet by position.
type FreeGridColumns struct {
	CoachIndex    int    `yaml:"coach_index" json:"coach_index"`
	EmailIndex    int    `yaml:"email_index" json:"email_index"`
	TelegramGroup string `yaml:"telegram_group" json:"telegram_group"`
	// DynamicMarker in the sheet name marks records as dynamic instead of fixed.
	DynamicMarker string `yaml:"dynamic_marker" json:"dynamic_marker"`
}

// ICSConfig controls calendar export.
type ICSConfig struct {
	// Timezone is the IANA zone the sheet times are written in.
	Timezone        string `yaml:"timezone" json:"timezone"`
	DurationMinutes int    `yaml:"duration_minutes" json:"duration_minutes"`
}

// Config is the top-level extraction configuration.
type Config struct {
	// SheetMarker must appear (case-sensitive) in a sheet name for it to be read.
	SheetMarker string `yaml:"sheet_marker" json:"sheet_marker"`
	// Instructor is the instructor-of-record label written on every record.
	Instructor   string   `yaml:"instructor" json:"instructor"`
	Levels       []string `yaml:"levels" json:"levels"`
	DefaultLevel string   `yaml:"default_level" json:"default_level"`

	// DynamicHint and FixedHint break ties when a sheet satisfies both named layouts.
	DynamicHint string `yaml:"dynamic_hint" json:"dynamic_hint"`
	FixedHint   string `yaml:"fixed_hint" json:"fixed_hint"`

	Dynamic  DynamicColumns  `yaml:"dynamic" json:"dynamic"`
	Fixed    FixedColumns    `yaml:"fixed" json:"fixed"`
	FreeGrid FreeGridColumns `yaml:"free_grid" json:"free_grid"`
	ICS      ICSConfig       `yaml:"ics" json:"ics"`
}

// Default returns the configuration matching the school's current workbook.
func Default() *Config {
	return &Config{
		SheetMarker:  "Schedule",
		Instructor:   "Kodjo",
		Levels:       []string{"BBG", "ABG", "IG"},
		DefaultLevel: "ABG",
		DynamicHint:  "Dynamic",
		FixedHint:    "Fix",
		Dynamic: DynamicColumns{
			Coach:    "Coach",
			Topic:    "Topic",
			ZoomLink: "Zoom Link",
			Time:     "TIME (France)",
			Start:    "Start Date & Time",
		},
		Fixed: FixedColumns{
			Title:         "Course",
			Coach:         "Coach",
			Day:           "DAY",
			Time:          "TIME (France)",
			TelegramGroup: "TELEGRAM GROUP ID",
		},
		FreeGrid: FreeGridColumns{
			CoachIndex:    0,
			EmailIndex:    1,
			TelegramGroup: "Group ID",
			DynamicMarker: "Dynamic",
		},
		ICS: ICSConfig{
			Timezone:        "Europe/Paris",
			DurationMinutes: 60,
		},
	}
}

// Normalize fills in missing values with defaults so partially-filled
// configs still behave correctly.
func (c *Config) Normalize() {
	d := Default()
	if c.SheetMarker == "" {
		c.SheetMarker = d.SheetMarker
	}
	if c.Instructor == "" {
		c.Instructor = d.Instructor
	}
	if len(c.Levels) == 0 {
		c.Levels = d.Levels
	}
	if c.DefaultLevel == "" {
		c.DefaultLevel = d.DefaultLevel
	}
	if c.DynamicHint == "" {
		c.DynamicHint = d.DynamicHint
	}
	if c.FixedHint == "" {
		c.FixedHint = d.FixedHint
	}
	fillString(&c.Dynamic.Coach, d.Dynamic.Coach)
	fillString(&c.Dynamic.Topic, d.Dynamic.Topic)
	fillString(&c.Dynamic.ZoomLink, d.Dynamic.ZoomLink)
	fillString(&c.Dynamic.Time, d.Dynamic.Time)
	fillString(&c.Dynamic.Start, d.Dynamic.Start)
	fillString(&c.Fixed.Title, d.Fixed.Title)
	fillString(&c.Fixed.Coach, d.Fixed.Coach)
	fillString(&c.Fixed.Day, d.Fixed.Day)
	fillString(&c.Fixed.Time, d.Fixed.Time)
	fillString(&c.Fixed.TelegramGroup, d.Fixed.TelegramGroup)
	fillString(&c.FreeGrid.TelegramGroup, d.FreeGrid.TelegramGroup)
	fillString(&c.FreeGrid.DynamicMarker, d.FreeGrid.DynamicMarker)
	// Coach and email share index 0 only in an unset config.
	if c.FreeGrid.CoachIndex == c.FreeGrid.EmailIndex {
		c.FreeGrid.CoachIndex = d.FreeGrid.CoachIndex
		c.FreeGrid.EmailIndex = d.FreeGrid.EmailIndex
	}
	fillString(&c.ICS.Timezone, d.ICS.Timezone)
	if c.ICS.DurationMinutes <= 0 {
		c.ICS.DurationMinutes = d.ICS.DurationMinutes
	}
}

func fillString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

// Load reads a YAML configuration file and normalizes it.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration bytes and normalizes the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	if cfg.FreeGrid.CoachIndex < 0 || cfg.FreeGrid.EmailIndex < 0 {
		return nil, errors.New("free_grid column indexes must not be negative")
	}
	return &cfg, nil
}
