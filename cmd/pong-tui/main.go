// Command pong-tui plays a two-player match in the terminal.
//
// Terminals report key presses but not releases, so a key counts as held for
// a short while after each press or autorepeat.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/ArekP86/pong"
	"github.com/ArekP86/pong/internal/logging"
	"github.com/ArekP86/pong/sound"
	"github.com/ArekP86/pong/tui"
)

var (
	configPath = flag.String("config", "", "YAML config file (overrides -variant)")
	variant    = flag.String("variant", pong.VariantClassic, "Game variant: classic, curve")
	logLevel   = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logPath    = flag.String("log", "pong-tui.log", "Log file (the terminal is busy drawing)")
	sfx        = flag.Bool("sound", false, "Enable sound effects")
	seedName   = flag.String("seed", "", "Seed the opening serve from a name")
)

func main() {
	flag.Parse()

	log, err := logging.New(logging.Options{Level: *logLevel, Path: *logPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong-tui: %v\n", err)
		os.Exit(2)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log); err != nil {
		log.Error("pong-tui exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "pong-tui: %v\n", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, log *zap.Logger) error {
	cfg, err := loadConfig(*configPath, *variant)
	if err != nil {
		return err
	}

	opts := []pong.Option{pong.WithLogger(log)}
	if *seedName != "" {
		opts = append(opts, pong.WithSeed(pong.SeedFromString(*seedName)))
	}
	if *sfx {
		player := sound.NewPlayer(sound.Config{Volume: 0.5}, log)
		if err := player.Init(); err != nil {
			log.Warn("continuing without sound", zap.Error(err))
		} else {
			defer player.Close()
			opts = append(opts, pong.WithEventSink(player))
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// The terminal decides the play area, so the first placement uses it.
	w, h := screen.Size()
	cfg.Bounds = pong.Bounds{W: float64(w * tui.CellW), H: float64(h * tui.CellH)}

	s, err := pong.NewSession(cfg, opts...)
	if err != nil {
		screen.Fini()
		return err
	}
	return tui.New(screen, s, tui.Options{Logger: log}).Run(ctx)
}

func loadConfig(path, variant string) (pong.Config, error) {
	if path == "" {
		return pong.Preset(variant)
	}
	f, err := os.Open(path)
	if err != nil {
		return pong.Config{}, err
	}
	defer f.Close()
	return pong.LoadConfig(f)
}
