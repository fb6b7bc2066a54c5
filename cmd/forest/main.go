// Command forest runs the forest automaton headless and prints each
// generation as text.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"

	"forest-ca/internal/console"
	"forest-ca/internal/core"
	"forest-ca/internal/logs"
	"forest-ca/internal/sims/forest"

	"go.uber.org/zap"
)

type options struct {
	ConfigPath string
	Width      int
	Height     int
	Seed       int64
	Variant    string
	Workers    int
	Steps      int
	TPS        int
	Glyphs     string
	Quiet      bool
	LogLevel   string
	LogFile    string
}

func newOptions() *options {
	defaults := forest.DefaultConfig()
	return &options{
		Width:    defaults.Width,
		Height:   defaults.Height,
		Seed:     defaults.Seed,
		Variant:  string(defaults.Variant),
		Steps:    100,
		TPS:      10,
		Glyphs:   string(console.GlyphsASCII),
		LogLevel: "info",
	}
}

func (o *options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "YAML configuration file")
	fs.IntVar(&o.Width, "w", o.Width, "grid width")
	fs.IntVar(&o.Height, "h", o.Height, "grid height")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for planting and sprouting")
	fs.StringVar(&o.Variant, "variant", o.Variant, "rule variant (a or b)")
	fs.IntVar(&o.Workers, "workers", o.Workers, "parallel row workers (0 or 1 steps sequentially)")
	fs.IntVar(&o.Steps, "steps", o.Steps, "generations to run (negative runs until interrupted)")
	fs.IntVar(&o.TPS, "tps", o.TPS, "generations per second on a terminal (0 disables pacing)")
	fs.StringVar(&o.Glyphs, "glyphs", o.Glyphs, "glyph set: ascii or block")
	fs.BoolVar(&o.Quiet, "quiet", o.Quiet, "print only the final generation")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level")
	fs.StringVar(&o.LogFile, "log-file", o.LogFile, "rotating JSON log file")
}

// forestConfig loads the config file, if any, and applies only the flags the
// user set explicitly on top of it.
func (o *options) forestConfig(fs *flag.FlagSet) (forest.Config, error) {
	cfg := forest.DefaultConfig()
	if o.ConfigPath != "" {
		loaded, err := forest.LoadFile(o.ConfigPath)
		if err != nil {
			return forest.Config{}, err
		}
		cfg = loaded
	}
	overrides := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w":
			overrides["w"] = strconv.Itoa(o.Width)
		case "h":
			overrides["h"] = strconv.Itoa(o.Height)
		case "seed":
			overrides["seed"] = strconv.FormatInt(o.Seed, 10)
		case "variant":
			overrides["variant"] = o.Variant
		case "workers":
			overrides["workers"] = strconv.Itoa(o.Workers)
		}
	})
	cfg = cfg.WithOverrides(overrides)
	if _, err := forest.ParseVariant(o.Variant); err != nil {
		return forest.Config{}, err
	}
	return cfg, cfg.Validate()
}

func main() {
	opts := newOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	log := logs.Init("forest", logs.Config{Level: opts.LogLevel, File: opts.LogFile})
	defer logs.Sync()

	cfg, err := opts.forestConfig(flag.CommandLine)
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}
	world, err := forest.NewWithConfig(cfg)
	if err != nil {
		log.Fatal("create world", zap.Error(err))
	}
	world.Reset(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	printer := console.NewPrinter(os.Stdout, console.Glyphs(opts.Glyphs))
	timer := core.NewFixedStep(opts.TPS)
	pace := printer.Interactive() && opts.TPS > 0 && !opts.Quiet

	log.Info("forest started",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int64("seed", cfg.Seed),
		zap.String("variant", string(cfg.Variant)),
		zap.Int("workers", cfg.Workers),
		zap.Bool("interactive", printer.Interactive()),
	)

	for {
		last := opts.Steps >= 0 && world.Steps() >= opts.Steps
		if !opts.Quiet || last {
			if err := printer.Frame(world.Steps(), world.Grid(), world.Census()); err != nil {
				log.Error("write frame", zap.Error(err))
				return
			}
		}
		if last || ctx.Err() != nil {
			break
		}
		if pace {
			timer.Wait()
		}
		world.Step()
		log.Debug("step", zap.Int("step", world.Steps()), zap.Stringer("census", world.Census()))
	}

	census := world.Census()
	log.Info("forest finished",
		zap.Int("steps", world.Steps()),
		zap.Int("living", census.Living()),
		zap.Int("mature", census.Mature),
		zap.Int("dead", census.Dead),
		zap.Uint64("hash", world.Grid().Hash()),
	)
}
