// Package config holds the device-class constants that parameterize the
// canvas controller and layout, and loads overrides from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
)

// Profile is the set of constants for one device class.
type Profile struct {
	// Layout
	GapVw       float64 `yaml:"gap_vw"`       // Tile gap as a percentage of viewport width
	EdgePadding float64 `yaml:"edge_padding"` // Extra travel past the grid edge, in screen px
	TileHeight  float64 `yaml:"tile_height"`  // World units
	Columns     int     `yaml:"columns"`
	MinRows     int     `yaml:"min_rows"`
	MinTiles    int     `yaml:"min_tiles"`
	GridMode    bool    `yaml:"grid_mode"` // Exactly rows x cols instead of at least MinTiles

	// Zoom
	ZoomMin          float64 `yaml:"zoom_min"`
	ZoomMax          float64 `yaml:"zoom_max"`
	ZoomDefault      float64 `yaml:"zoom_default"`
	ZoomIntro        float64 `yaml:"zoom_intro"`
	IntermediateZoom float64 `yaml:"intermediate_zoom"`

	// Thresholds, in screen px of cumulative pan distance
	FirstZoomOutThreshold  float64 `yaml:"first_zoom_out_threshold"`
	SecondZoomOutThreshold float64 `yaml:"second_zoom_out_threshold"`
	ActiveClearThreshold   float64 `yaml:"active_clear_threshold"`

	// Input
	WheelZoomSensitivity float64 `yaml:"wheel_zoom_sensitivity"` // Scale change per scroll unit
	DragZoomFactor       float64 `yaml:"drag_zoom_factor"`
	DragThreshold        float64 `yaml:"drag_threshold"` // px before a press becomes a drag

	// Animation
	PanSmoothing    time.Duration `yaml:"pan_smoothing"`
	CenterDuration  time.Duration `yaml:"center_duration"`
	ZoomOutDuration time.Duration `yaml:"zoom_out_duration"`
	IntroDuration   time.Duration `yaml:"intro_duration"`
	PanIdle         time.Duration `yaml:"pan_idle"`
}

// Config is the complete canvas configuration.
type Config struct {
	Desktop          Profile `yaml:"desktop"`
	Mobile           Profile `yaml:"mobile"`
	MobileBreakpoint float64 `yaml:"mobile_breakpoint"`
	ContentPath      string  `yaml:"content_path"`
}

// DesktopDefaults returns the desktop profile.
func DesktopDefaults() Profile {
	return Profile{
		GapVw:       1.2,
		EdgePadding: 48,
		TileHeight:  220,
		Columns:     12,
		MinRows:     6,
		MinTiles:    100,

		ZoomMin:          0.6,
		ZoomMax:          3.0,
		ZoomDefault:      1.0,
		ZoomIntro:        0.35,
		IntermediateZoom: 1.5,

		FirstZoomOutThreshold:  400,
		SecondZoomOutThreshold: 600,
		ActiveClearThreshold:   150,

		WheelZoomSensitivity: 0.002,
		DragZoomFactor:       0.95,
		DragThreshold:        4,

		PanSmoothing:    180 * time.Millisecond,
		CenterDuration:  1200 * time.Millisecond,
		ZoomOutDuration: 900 * time.Millisecond,
		IntroDuration:   2 * time.Second,
		PanIdle:         120 * time.Millisecond,
	}
}

// MobileDefaults returns the mobile profile.
func MobileDefaults() Profile {
	p := DesktopDefaults()
	p.GapVw = 2.5
	p.EdgePadding = 24
	p.TileHeight = 140
	p.Columns = 6
	p.MinRows = 8
	p.ZoomMin = 0.5
	p.ZoomMax = 2.5
	p.ZoomIntro = 0.3
	p.FirstZoomOutThreshold = 250
	p.SecondZoomOutThreshold = 400
	p.ActiveClearThreshold = 100
	p.DragThreshold = 8
	return p
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Desktop:          DesktopDefaults(),
		Mobile:           MobileDefaults(),
		MobileBreakpoint: 768,
	}
}

// For returns the profile for a device class.
func (c Config) For(d core.Device) Profile {
	if d.Mobile {
		return c.Mobile
	}
	return c.Desktop
}

// Load reads a YAML config file over the defaults. Fields left out or zero
// keep their default value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	def := Default()
	cfg.Desktop = cfg.Desktop.withDefaults(def.Desktop)
	cfg.Mobile = cfg.Mobile.withDefaults(def.Mobile)
	if cfg.MobileBreakpoint <= 0 {
		cfg.MobileBreakpoint = def.MobileBreakpoint
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks both profiles.
func (c Config) Validate() error {
	if err := c.Desktop.Validate(); err != nil {
		return fmt.Errorf("desktop profile: %w", err)
	}
	if err := c.Mobile.Validate(); err != nil {
		return fmt.Errorf("mobile profile: %w", err)
	}
	return nil
}

// Validate checks that the zoom ladder and thresholds are consistent.
func (p Profile) Validate() error {
	switch {
	case p.ZoomIntro <= 0:
		return errors.New("zoom_intro must be positive")
	case p.ZoomIntro >= p.ZoomMin:
		return fmt.Errorf("zoom_intro %.2f must be below zoom_min %.2f", p.ZoomIntro, p.ZoomMin)
	case p.ZoomMin > p.ZoomDefault:
		return fmt.Errorf("zoom_min %.2f exceeds zoom_default %.2f", p.ZoomMin, p.ZoomDefault)
	case p.ZoomDefault > p.IntermediateZoom:
		return fmt.Errorf("zoom_default %.2f exceeds intermediate_zoom %.2f", p.ZoomDefault, p.IntermediateZoom)
	case p.IntermediateZoom > p.ZoomMax:
		return fmt.Errorf("intermediate_zoom %.2f exceeds zoom_max %.2f", p.IntermediateZoom, p.ZoomMax)
	case p.FirstZoomOutThreshold <= 0 || p.SecondZoomOutThreshold <= 0 || p.ActiveClearThreshold <= 0:
		return errors.New("thresholds must be positive")
	case p.Columns <= 0:
		return errors.New("columns must be positive")
	}
	return nil
}

// withDefaults fills zero fields from def.
func (p Profile) withDefaults(def Profile) Profile {
	setF := func(v *float64, d float64) {
		if *v == 0 {
			*v = d
		}
	}
	setI := func(v *int, d int) {
		if *v == 0 {
			*v = d
		}
	}
	setD := func(v *time.Duration, d time.Duration) {
		if *v == 0 {
			*v = d
		}
	}

	setF(&p.GapVw, def.GapVw)
	setF(&p.EdgePadding, def.EdgePadding)
	setF(&p.TileHeight, def.TileHeight)
	setI(&p.Columns, def.Columns)
	setI(&p.MinRows, def.MinRows)
	setI(&p.MinTiles, def.MinTiles)

	setF(&p.ZoomMin, def.ZoomMin)
	setF(&p.ZoomMax, def.ZoomMax)
	setF(&p.ZoomDefault, def.ZoomDefault)
	setF(&p.ZoomIntro, def.ZoomIntro)
	setF(&p.IntermediateZoom, def.IntermediateZoom)

	setF(&p.FirstZoomOutThreshold, def.FirstZoomOutThreshold)
	setF(&p.SecondZoomOutThreshold, def.SecondZoomOutThreshold)
	setF(&p.ActiveClearThreshold, def.ActiveClearThreshold)

	setF(&p.WheelZoomSensitivity, def.WheelZoomSensitivity)
	setF(&p.DragZoomFactor, def.DragZoomFactor)
	setF(&p.DragThreshold, def.DragThreshold)

	setD(&p.PanSmoothing, def.PanSmoothing)
	setD(&p.CenterDuration, def.CenterDuration)
	setD(&p.ZoomOutDuration, def.ZoomOutDuration)
	setD(&p.IntroDuration, def.IntroDuration)
	setD(&p.PanIdle, def.PanIdle)
	return p
}
