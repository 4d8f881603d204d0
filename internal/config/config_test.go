package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	if cfg.Scene.InitialModel != "nextjs" {
		t.Errorf("expected initial model nextjs, got %s", cfg.Scene.InitialModel)
	}
	if cfg.Scene.Distance != 120 || cfg.Scene.MinDistance != 15 || cfg.Scene.MaxDistance != 200 {
		t.Errorf("unexpected camera distances %+v", cfg.Scene)
	}

	a := cfg.Animation
	if a.HalfDelay != 150*time.Millisecond {
		t.Errorf("expected half delay 150ms, got %v", a.HalfDelay)
	}
	if a.FullDelay != 300*time.Millisecond {
		t.Errorf("expected full delay 300ms, got %v", a.FullDelay)
	}
	if a.AngularRate != 0.2 || a.BobAmplitude != 0.3 || a.HoverScale != 1.1 {
		t.Errorf("unexpected idle motion defaults %+v", a)
	}
	if a.SpringMass != 1 || a.SpringTension != 280 || a.SpringFriction != 60 {
		t.Errorf("unexpected spring defaults %+v", a)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true

scene:
  initial_model: resume
  models:
    react: assets/react.glb
  fov: 60

animation:
  half_delay: 200ms
  full_delay: 400ms
  restore_opacity_after_swap: false
  end_on_fade_rest: true

resume:
  file: resume.yaml

logging:
  level: "debug"
  log_file: "folio.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 || !cfg.Window.Fullscreen {
		t.Errorf("window not loaded: %+v", cfg.Window)
	}
	if cfg.Scene.InitialModel != "resume" {
		t.Errorf("expected initial model resume, got %s", cfg.Scene.InitialModel)
	}
	if cfg.Scene.Models["react"] != "assets/react.glb" {
		t.Errorf("expected react override, got %v", cfg.Scene.Models)
	}
	if cfg.Scene.FOV != 60 {
		t.Errorf("expected fov 60, got %g", cfg.Scene.FOV)
	}
	if cfg.Animation.HalfDelay != 200*time.Millisecond || cfg.Animation.FullDelay != 400*time.Millisecond {
		t.Errorf("delays not loaded: %+v", cfg.Animation)
	}
	if cfg.Animation.RestoreOpacityAfterSwap {
		t.Error("expected restore_opacity_after_swap to be false")
	}
	if !cfg.Animation.EndOnFadeRest {
		t.Error("expected end_on_fade_rest to be true")
	}
	// Untouched keys keep their defaults.
	if cfg.Animation.SpringTension != 280 {
		t.Errorf("expected default tension, got %g", cfg.Animation.SpringTension)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "folio.log" {
		t.Errorf("logging not loaded: %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/folio.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"half after full", func(c *Config) { c.Animation.HalfDelay = time.Second }, "exceeds"},
		{"zero delay", func(c *Config) { c.Animation.FullDelay = 0 }, "positive"},
		{"zero mass", func(c *Config) { c.Animation.SpringMass = 0 }, "spring"},
		{"bad window", func(c *Config) { c.Window.Width = 0 }, "window"},
		{"bad distance", func(c *Config) { c.Scene.MinDistance = 300 }, "distance"},
		{"bad fov", func(c *Config) { c.Scene.FOV = 180 }, "fov"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find folio.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "model flag",
			setup: func() { *flagModel = "tailwind" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.InitialModel != "tailwind" {
					t.Errorf("expected tailwind, got %s", cfg.Scene.InitialModel)
				}
			},
			teardown: func() { *flagModel = "" },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "mute flag",
			setup: func() { *flagMute = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Audio.Enabled {
					t.Error("expected audio disabled with mute flag")
				}
			},
			teardown: func() { *flagMute = false },
		},
		{
			name:  "no fade-in flag",
			setup: func() { *flagNoOpacityFadeIn = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Animation.RestoreOpacityAfterSwap {
					t.Error("expected restore_opacity_after_swap to be false")
				}
			},
			teardown: func() { *flagNoOpacityFadeIn = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)

	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
	if cfg.Source != configPath {
		t.Errorf("expected source %s, got %s", configPath, cfg.Source)
	}
}

func TestLoadRejectsInvalidTimings(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte("animation:\n  half_delay: 1s\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected validation error for half_delay > full_delay")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Scene.InitialModel = "react"
	cfg.Animation.FullDelay = 500 * time.Millisecond
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if loaded.Scene.InitialModel != "react" {
		t.Errorf("expected react, got %s", loaded.Scene.InitialModel)
	}
	if loaded.Animation.FullDelay != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %v", loaded.Animation.FullDelay)
	}
}

func TestSaveToConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config dir override via XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Audio.SwitchSound = "sounds/switch.wav"
	path, err := cfg.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if path != filepath.Join(ConfigDir(), FileName) {
		t.Errorf("saved to %s", path)
	}
	if found := findConfigFile(); found != path && found != filepath.Join(".", FileName) {
		t.Errorf("findConfigFile() = %q, want the saved file", found)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if loaded.Audio.SwitchSound != "sounds/switch.wav" {
		t.Errorf("switch sound = %q", loaded.Audio.SwitchSound)
	}
	if loaded.Scene.BackgroundTop != cfg.Scene.BackgroundTop {
		t.Errorf("background_top = %q, want %q", loaded.Scene.BackgroundTop, cfg.Scene.BackgroundTop)
	}
}
