// Command pong plays a two-player match in a window.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/ArekP86/pong"
	"github.com/ArekP86/pong/ecs"
	"github.com/ArekP86/pong/internal/logging"
	"github.com/ArekP86/pong/sound"
	"github.com/ArekP86/pong/view"
)

var (
	configPath = flag.String("config", "", "YAML config file (overrides -variant)")
	variant    = flag.String("variant", pong.VariantClassic, "Game variant: classic, curve")
	logLevel   = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	devLog     = flag.Bool("dev", false, "Human-readable console logs")
	showFPS    = flag.Bool("fps", false, "Show the FPS counter")
	mute       = flag.Bool("mute", false, "Disable sound effects")
	volume     = flag.Float64("volume", 0.5, "Sound effect volume, 0..1")
)

func main() {
	flag.Parse()

	log, err := logging.New(logging.Options{Level: *logLevel, Development: *devLog})
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(2)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Error("pong exited", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	cfg, err := loadConfig(*configPath, *variant)
	if err != nil {
		return err
	}

	world := donburi.NewWorld()
	sinks := []pong.EventSink{ecs.NewDonburiSink(world)}
	if !*mute {
		player := sound.NewPlayer(sound.Config{Volume: *volume}, log)
		if err := player.Init(); err != nil {
			log.Warn("continuing without sound", zap.Error(err))
		} else {
			defer player.Close()
			sinks = append(sinks, player)
		}
	}

	s, err := pong.NewSession(cfg,
		pong.WithLogger(log),
		pong.WithEventSink(pong.MultiSink(sinks...)),
	)
	if err != nil {
		return err
	}

	g, err := view.NewGame(s, world, view.Options{Logger: log})
	if err != nil {
		return err
	}
	return view.Run(g, view.RunConfig{
		Title:   "Pong",
		Width:   int(cfg.Bounds.W),
		Height:  int(cfg.Bounds.H),
		ShowFPS: *showFPS,
	})
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
