package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagAnimate     = flag.Bool("animate", false, "Start with the idle animation running")
	flagVariant     = flag.Int("variant", -1, "Body variant: 0 round, 1 boxy")
	flagWindowed    = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagSnapshotDir = flag.String("snapshot-dir", "", "Directory for F12 snapshots")
	flagRemember    = flag.Bool("remember", false, "Restore the last session's controls on start")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagAnimate {
		cfg.Animation.Enabled = true
	}
	if *flagVariant >= 0 {
		cfg.Controls.BodyVariant = *flagVariant
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
	if *flagSnapshotDir != "" {
		cfg.Snapshot.Dir = *flagSnapshotDir
	}
	if *flagRemember {
		cfg.Session.Remember = true
	}
}
