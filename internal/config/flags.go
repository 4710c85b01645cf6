package config

import "flag"

// Flags holds command-line overrides. Zero values leave the config untouched.
type Flags struct {
	Config     *string
	Debug      *bool
	Windowed   *bool
	Fullscreen *bool
	Width      *int
	Height     *int
	Seed       *uint64
	Divisions  *int
}

// RegisterFlags defines the config flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Config:     fs.String("config", "", "Path to config file"),
		Debug:      fs.Bool("debug", false, "Enable debug logging"),
		Windowed:   fs.Bool("windowed", false, "Run in windowed mode"),
		Fullscreen: fs.Bool("fullscreen", false, "Run in fullscreen mode"),
		Width:      fs.Int("width", 0, "Window width"),
		Height:     fs.Int("height", 0, "Window height"),
		Seed:       fs.Uint64("seed", 0, "Fragment RNG seed (0 = random)"),
		Divisions:  fs.Int("divisions", 0, "Fragments per axis"),
	}
}

var cliFlags = RegisterFlags(flag.CommandLine)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Apply applies flag overrides to cfg.
func (f *Flags) Apply(cfg *Config) {
	if *f.Debug {
		cfg.Logging.Level = "debug"
	}
	if *f.Windowed {
		cfg.Window.Fullscreen = false
	}
	if *f.Fullscreen {
		cfg.Window.Fullscreen = true
	}
	if *f.Width > 0 {
		cfg.Window.Width = *f.Width
	}
	if *f.Height > 0 {
		cfg.Window.Height = *f.Height
	}
	if *f.Seed != 0 {
		cfg.Shatter.Seed = *f.Seed
	}
	if *f.Divisions > 0 {
		cfg.Shatter.Divisions = *f.Divisions
	}
}
