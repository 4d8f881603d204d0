// Package config handles portfolio configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// Config holds all application settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Scene     SceneConfig     `yaml:"scene"`
	Animation AnimationConfig `yaml:"animation"`
	Resume    ResumeConfig    `yaml:"resume"`
	Audio     AudioConfig     `yaml:"audio"`
	Logging   LoggingConfig   `yaml:"logging"`
	Debug     DebugConfig     `yaml:"debug"`

	// Source is the file the config was loaded from, empty for defaults.
	Source string `yaml:"-"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SceneConfig holds camera and model settings.
type SceneConfig struct {
	InitialModel  string            `yaml:"initial_model"`
	Models        map[string]string `yaml:"models"`         // identity -> .gltf/.glb override
	Background    string            `yaml:"background"`     // bottom color when background_top is set
	BackgroundTop string            `yaml:"background_top"` // empty for a flat background
	FOV           float32           `yaml:"fov"`            // degrees
	Distance      float32           `yaml:"distance"`
	MinDistance   float32           `yaml:"min_distance"`
	MaxDistance   float32           `yaml:"max_distance"`
}

// AnimationConfig holds the model switcher timings and spring tuning.
type AnimationConfig struct {
	HalfDelay               time.Duration `yaml:"half_delay"`
	FullDelay               time.Duration `yaml:"full_delay"`
	AngularRate             float64       `yaml:"angular_rate"`  // rad/s
	BobAmplitude            float64       `yaml:"bob_amplitude"` // world units
	HoverScale              float64       `yaml:"hover_scale"`
	SpringMass              float64       `yaml:"spring_mass"`
	SpringTension           float64       `yaml:"spring_tension"`
	SpringFriction          float64       `yaml:"spring_friction"`
	RestoreOpacityAfterSwap bool          `yaml:"restore_opacity_after_swap"`
	EndOnFadeRest           bool          `yaml:"end_on_fade_rest"`
}

// ResumeConfig points at the resume content.
type ResumeConfig struct {
	URL  string `yaml:"url"`
	File string `yaml:"file"` // YAML resume shown in the document panel
}

// AudioConfig holds sound effect settings.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Volume      float64 `yaml:"volume"`
	SwitchSound string  `yaml:"switch_sound"` // WAV file; empty for the built-in blip
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ShowFPS       bool   `yaml:"show_fps"`
	ShowBounds    bool   `yaml:"show_bounds"` // wireframe of the pick box
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Interactive Portfolio",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Scene: SceneConfig{
			InitialModel:  "nextjs",
			Background:    "#4a3038",
			BackgroundTop: "#15151f",
			FOV:           50,
			Distance:      120,
			MinDistance:   15,
			MaxDistance:   200,
		},
		Animation: AnimationConfig{
			HalfDelay:               150 * time.Millisecond,
			FullDelay:               300 * time.Millisecond,
			AngularRate:             0.2,
			BobAmplitude:            0.3,
			HoverScale:              1.1,
			SpringMass:              1,
			SpringTension:           280,
			SpringFriction:          60,
			RestoreOpacityAfterSwap: true,
		},
		Resume: ResumeConfig{
			URL: "https://resume.milind.app",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
	}
}

// Validate reports settings that would break the switcher or the camera.
func (c *Config) Validate() error {
	a := c.Animation
	if a.HalfDelay <= 0 || a.FullDelay <= 0 {
		return fmt.Errorf("animation delays must be positive (half=%s full=%s)", a.HalfDelay, a.FullDelay)
	}
	if a.HalfDelay > a.FullDelay {
		return fmt.Errorf("animation half_delay %s exceeds full_delay %s", a.HalfDelay, a.FullDelay)
	}
	if a.SpringMass <= 0 || a.SpringTension <= 0 || a.SpringFriction < 0 {
		return fmt.Errorf("invalid spring (mass=%g tension=%g friction=%g)", a.SpringMass, a.SpringTension, a.SpringFriction)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	s := c.Scene
	if s.MinDistance <= 0 || s.MinDistance > s.MaxDistance {
		return fmt.Errorf("invalid camera distance range [%g, %g]", s.MinDistance, s.MaxDistance)
	}
	if s.FOV <= 0 || s.FOV >= 180 {
		return fmt.Errorf("invalid fov %g", s.FOV)
	}
	return nil
}
