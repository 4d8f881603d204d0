package config

import "flag"

var (
	flagConfig          = flag.String("config", "", "Path to config file")
	flagDebug           = flag.Bool("debug", false, "Enable debug logging")
	flagModel           = flag.String("model", "", "Initial model (nextjs, react, tailwind, resume)")
	flagWindowed        = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen      = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth           = flag.Int("width", 0, "Window width")
	flagHeight          = flag.Int("height", 0, "Window height")
	flagMute            = flag.Bool("mute", false, "Disable sound effects")
	flagNoOpacityFadeIn = flag.Bool("no-fade-in", false, "Show the next model at full opacity instead of fading it in")
	flagSaveConfig      = flag.Bool("save-config", false, "Write the effective config to the user config directory and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.ShowFPS = true
	}
	if *flagModel != "" {
		cfg.Scene.InitialModel = *flagModel
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagMute {
		cfg.Audio.Enabled = false
	}
	if *flagNoOpacityFadeIn {
		cfg.Animation.RestoreOpacityAfterSwap = false
	}
}
