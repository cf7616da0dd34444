package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/autoscroller/internal/core"
	"github.com/vovakirdan/autoscroller/internal/game"
	"github.com/vovakirdan/autoscroller/internal/storage"
)

var (
	flagSimTicks   int
	flagSimVerbose bool
	flagSimIdle    bool
	flagSimSubmit  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a terminal UI, driven by a simple autopilot
that jumps over ground hazards. Special items spawn on the same schedule as
in play. With a fixed --seed the run is reproducible.

Examples:
  autoscroller simulate --seed 42
  autoscroller simulate --ticks 36000 --difficulty hard -v
  autoscroller simulate --seed 7 --submit BOT`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of frames to simulate")
	simulateCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log simulation events to stderr")
	simulateCmd.Flags().BoolVar(&flagSimIdle, "idle", false, "Disable the autopilot")
	simulateCmd.Flags().StringVar(&flagSimSubmit, "submit", "", "Submit the final score under this name")
}

// autopilot jumps when a ground-level hazard is just ahead and drifts
// toward a comfortable x position.
func autopilot(snap game.Snapshot) core.Intents {
	p := snap.Player
	var in core.Intents
	switch {
	case p.X < 150:
		in.Right = true
	case p.X > 250:
		in.Left = true
	}

	front := p.X + p.Width
	feet := p.Y + p.Height
	for _, h := range snap.Hazards {
		ahead := h.X - front
		if ahead < 0 || ahead > 70 {
			continue
		}
		// Only hazards at foot level; jumping into cables makes it worse.
		if h.Y+h.Height >= p.Y+p.Height/2 && h.Y <= feet {
			in.Jump = true
			break
		}
	}
	return in
}

func runSimulate(_ *cobra.Command, _ []string) error {
	cfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}
	lib, err := loadPatterns()
	if err != nil {
		return err
	}

	var w io.Writer = io.Discard
	if flagSimVerbose {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Prefix:          "simulate",
		Level:           log.DebugLevel,
	})

	rt := runtimeConfig()
	opts := []game.Option{game.WithLogger(logger)}
	if flagSimSubmit != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("error opening scores database: %w", err)
		}
		defer store.Close()
		opts = append(opts, game.WithStore(store))
	}

	g := game.New(cfg, lib, rt, opts...)
	g.Start()
	g.ConfirmHelp()

	spawnEvery := int(cfg.Specials.Interval.Seconds() * float64(rt.TickRate))
	counts := make(map[game.EventKind]int)
	ticks := 0
	for ; ticks < flagSimTicks && g.State() == game.StateRunning; ticks++ {
		var in core.Intents
		if !flagSimIdle {
			in = autopilot(g.Snapshot())
		}
		for _, e := range g.Tick(g.FrameTask().Token(), in).Events {
			counts[e.Kind]++
		}
		if spawnEvery > 0 && (ticks+1)%spawnEvery == 0 {
			for _, e := range g.SpawnTick(g.SpawnTask().Token()).Events {
				counts[e.Kind]++
			}
		}
	}

	snap := g.Snapshot()
	fmt.Printf("seed      %d\n", rt.Seed)
	fmt.Printf("ticks     %d (%s simulated)\n", ticks, snap.Elapsed)
	fmt.Printf("state     %s\n", snap.State)
	fmt.Printf("score     %d\n", snap.Score)
	fmt.Printf("lives     %d/%d\n", snap.Lives, snap.MaxLives)
	fmt.Printf("patterns  %d (tier %s)\n", snap.PatternsPlaced, snap.Tier)
	fmt.Println()

	kinds := make([]game.EventKind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	fmt.Println("events:")
	for _, k := range kinds {
		fmt.Printf("  %-16s %d\n", k, counts[k])
	}

	if flagSimSubmit == "" {
		return nil
	}
	if snap.State != game.StateGameOver {
		return fmt.Errorf("run did not end; nothing to submit")
	}
	name, err := storage.NormalizeName(flagSimSubmit)
	if err != nil {
		return err
	}
	if err := g.SubmitScore(context.Background(), name); err != nil {
		return fmt.Errorf("cannot submit score: %w", err)
	}
	fmt.Printf("\nsubmitted %d as %s\n", snap.Score, name)
	return nil
}
