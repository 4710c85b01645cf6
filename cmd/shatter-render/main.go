// shatter-render runs the shatterbox scene headless: PNG frame dumps,
// simulation statistics and config inspection.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Faultbox/shatterbox/internal/config"
	"github.com/Faultbox/shatterbox/internal/engine/debug"
	"github.com/Faultbox/shatterbox/internal/engine/scene"
	"github.com/Faultbox/shatterbox/internal/engine/shatter"
	"github.com/Faultbox/shatterbox/internal/engine/surface"
	"github.com/Faultbox/shatterbox/internal/engine/surface/raster"
	"github.com/Faultbox/shatterbox/internal/headless"
	"github.com/Faultbox/shatterbox/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "render":
		cmdRender(args)
	case "simulate", "sim":
		cmdSimulate(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`shatter-render - headless shatterbox renderer

Usage:
  shatter-render <command> [options]

Commands:
  render    Write PNG frames of the scene
  simulate  Run the simulation and print fragment statistics
  config    Print the effective configuration as YAML

Common options:
  -config <file>  -seed <n>  -divisions <n>  -width <px>  -height <px>  -debug

Examples:
  shatter-render render -ticks 240 -explode-at 60 -every 4 -out frames
  shatter-render simulate -ticks 2000 -seed 42
  shatter-render config -divisions 8 > config.yaml
  shatter-render config -seed 42 -user`)
}

// setup parses fs, loads the config and starts logging.
func setup(fs *flag.FlagSet, flags *config.Flags, args []string) *config.Config {
	fs.Parse(args)

	cfg, err := config.LoadFlags(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// fatal reports err and exits after flushing the log.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	logger.Sync()
	os.Exit(1)
}

func newScene(cfg *config.Config) *scene.Scene {
	rng, seed := shatter.NewSource(cfg.Shatter.Seed)
	s, err := scene.New(cfg.SceneConfig(), rng)
	if err != nil {
		fatal(err)
	}
	fmt.Fprintf(os.Stderr, "seed: %d\n", seed)
	return s
}

func cmdRender(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	ticks := fs.Int("ticks", 240, "Frames to simulate")
	explodeAt := fs.Int("explode-at", 60, "Tick to explode at (-1 = never)")
	every := fs.Int("every", 1, "Write every Nth frame")
	out := fs.String("out", "frames", "Output directory")
	cfg := setup(fs, flags, args)
	defer logger.Sync()

	if *every < 1 {
		*every = 1
	}

	s := newScene(cfg)
	canvas := raster.New(cfg.Window.Width, cfg.Window.Height)
	shots := debug.NewScreenshotCapture(*out, "frame")

	written := 0
	err := headless.Run(s, canvas, headless.Options{Ticks: *ticks, ExplodeAt: *explodeAt},
		func(tick int, _ scene.FrameStats) error {
			if tick%*every != 0 {
				return nil
			}
			if _, err := shots.SaveFrame(canvas.Image(), tick); err != nil {
				return err
			}
			written++
			return nil
		})
	if err != nil {
		fatal(err)
	}

	message.NewPrinter(language.English).Printf("Wrote %d frames to %s\n", written, *out)
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	ticks := fs.Int("ticks", 2000, "Ticks to simulate")
	explodeAt := fs.Int("explode-at", 0, "Tick to explode at (-1 = never)")
	every := fs.Int("every", 100, "Print stats every N ticks")
	untilRest := fs.Bool("until-rest", false, "Stop once every fragment rests")
	cfg := setup(fs, flags, args)
	defer logger.Sync()

	if *every < 1 {
		*every = 1
	}

	s := newScene(cfg)
	rec := surface.NewRecorder(cfg.Window.Width, cfg.Window.Height)

	// Counts get thousands separators
	p := message.NewPrinter(language.English)
	p.Printf("%7s  %-8s  %7s  %9s  %7s\n", "tick", "state", "faces", "discarded", "resting")
	report := func(tick int, stats scene.FrameStats) {
		p.Printf("%7d  %-8s  %7d  %9d  %7d\n", tick, stats.State.String(), stats.Faces, stats.Discarded, stats.Resting)
	}

	err := headless.Run(s, rec, headless.Options{Ticks: *ticks, ExplodeAt: *explodeAt},
		func(tick int, stats scene.FrameStats) error {
			allResting := stats.State == scene.Exploded && stats.Resting == len(s.Fragments)
			if tick%*every == 0 || (*untilRest && allResting) {
				report(tick, stats)
			}
			if *untilRest && allResting {
				return headless.ErrStop
			}
			return nil
		})
	if err != nil {
		fatal(err)
	}
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	save := fs.String("save", "", "Also write the config to this path")
	user := fs.Bool("user", false, "Also write the config to the user config directory")
	cfg := setup(fs, flags, args)

	data, err := cfg.Marshal()
	if err != nil {
		fatal(err)
	}
	os.Stdout.Write(data)

	if *save != "" {
		if err := cfg.SaveTo(*save); err != nil {
			fatal(err)
		}
		fmt.Fprintf(os.Stderr, "Saved to %s\n", *save)
	}
	if *user {
		if err := cfg.Save(); err != nil {
			fatal(err)
		}
		fmt.Fprintf(os.Stderr, "Saved to %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	}
}
