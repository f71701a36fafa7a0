// Command pong-replay runs input scripts against headless matches and
// prints the final score of each.
//
//	pong-replay -seed friday-final -frames 3600 rally.yaml serve.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ArekP86/pong"
	"github.com/ArekP86/pong/internal/logging"
)

var (
	configPath = flag.String("config", "", "YAML config file (overrides -variant)")
	variant    = flag.String("variant", pong.VariantClassic, "Game variant: classic, curve")
	logLevel   = flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	seedName   = flag.String("seed", "pong", "Seed the opening serve from a name")
	frames     = flag.Int("frames", 600, "Frames to keep running after a script ends")
	maxFrames  = flag.Int("max-frames", 100000, "Hard cap on frames per match")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] script.yaml...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log, err := logging.New(logging.Options{Level: *logLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong-replay: %v\n", err)
		os.Exit(2)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig(*configPath, *variant)
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	opts := replayOptions{
		Config:    cfg,
		Seed:      pong.SeedFromString(*seedName),
		Tail:      *frames,
		MaxFrames: *maxFrames,
		Logger:    log,
	}
	results, err := replayAll(ctx, opts, flag.Args())
	if err != nil {
		log.Fatal("replay", zap.Error(err))
	}
	for _, r := range results {
		fmt.Printf("%s: %s (%d frames)\n", r.Path, r.Score, r.Frames)
	}
}

type replayOptions struct {
	Config pong.Config
	Seed   uint64
	// Tail is how many frames to run after the script is done.
	Tail      int
	MaxFrames int
	Logger    *zap.Logger
}

type result struct {
	Path   string
	Score  pong.Score
	Frames uint64
}

// replayAll replays every script concurrently. Results keep the order of
// paths.
func replayAll(ctx context.Context, opts replayOptions, paths []string) ([]result, error) {
	results := make([]result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			r, err := replay(ctx, opts, data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			r.Path = path
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// replay runs one script on a fresh session.
func replay(ctx context.Context, opts replayOptions, script []byte) (result, error) {
	runner, err := pong.LoadScript(script)
	if err != nil {
		return result{}, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s, err := pong.NewSession(opts.Config, pong.WithSeed(opts.Seed), pong.WithLogger(log))
	if err != nil {
		return result{}, err
	}

	bounds := opts.Config.Bounds
	tail := opts.Tail
	for opts.MaxFrames <= 0 || s.Frame() < uint64(opts.MaxFrames) {
		if s.Frame()%256 == 0 {
			if err := ctx.Err(); err != nil {
				return result{}, err
			}
		}
		if runner.Done() {
			if tail <= 0 {
				break
			}
			tail--
		}
		runner.Step(s)
		s.Update(1, bounds)
	}
	return result{Score: s.Score(), Frames: s.Frame()}, nil
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
