package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/milk9111/actorsim/common"
	"github.com/milk9111/actorsim/ecs"
	"github.com/milk9111/actorsim/input"
	"github.com/milk9111/actorsim/levels"
	"github.com/milk9111/actorsim/logging"
	"github.com/milk9111/actorsim/prefabs"
	"github.com/milk9111/actorsim/replay"
	"github.com/milk9111/actorsim/sound"
)

const sampleRate = 44100

var (
	flagRecord string
	flagSteps  int
	flagName   string
	flagLimit  int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window and play",
	RunE:  runGame,
}

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Step the simulation without a window using bot input",
	RunE:  runHeadless,
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Record, verify and list replays",
}

var replayRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a bot-driven run",
	RunE:  runReplayRecord,
}

var replayVerifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Re-run a stored recording and compare checksums",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplayVerify,
}

var replayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored recordings",
	RunE:  runReplayList,
}

func init() {
	runCmd.Flags().StringVar(&flagRecord, "record", "", "Save the session to the replay store under this name")
	headlessCmd.Flags().IntVar(&flagSteps, "steps", 3000, "Number of steps to run")
	replayRecordCmd.Flags().IntVar(&flagSteps, "steps", 3000, "Number of steps to record")
	replayRecordCmd.Flags().StringVar(&flagName, "name", "bot", "Recording name")
	replayListCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum recordings to show")

	replayCmd.AddCommand(replayRecordCmd)
	replayCmd.AddCommand(replayVerifyCmd)
	replayCmd.AddCommand(replayListCmd)
}

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var sfx ecs.SoundPlayer = sound.Null{}
	if table, err := prefabs.LoadSfxTable(); err != nil {
		logging.Log.WithError(err).Warn("sound disabled")
	} else if mgr, err := sound.NewManager(audio.NewContext(sampleRate), table); err != nil {
		logging.Log.WithError(err).Warn("sound disabled")
	} else {
		sfx = mgr
	}

	port := &input.Port{}
	sim, err := newSim(cfg, cfg.Level, cfg.Seed, port, sfx)
	if err != nil {
		return err
	}
	sim.World.SetEffectSeed(int32(time.Now().UnixNano()))

	clock := common.NewClock(cfg.TimingMode())
	clock.SetSpeed(cfg.Speed)

	game := NewGame(sim, port, clock, cfg.Window.Width, cfg.Window.Height)
	game.SetShowHit(cfg.Window.Debug)

	var rec *replay.Recorder
	if flagRecord != "" {
		rec = replay.NewRecorder(flagRecord, cfg.Level, cfg.Timing, cfg.Seed)
		game.SetRecorder(rec)
	}
	if cfg.HotReload {
		watcher, err := prefabs.WatchPrefabs()
		if err != nil {
			logging.Log.WithError(err).Warn("hot reload disabled")
		} else {
			defer watcher.Close()
			game.SetWatcher(watcher)
		}
	}

	if err := game.run(cfg.Window.Scale, "actorsim"); err != nil {
		return err
	}
	if rec == nil {
		return nil
	}
	return saveRecording(cmd.Context(), cfg.DBPath, rec.Recording())
}

func runHeadless(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := &input.Port{}
	sim, err := newSim(cfg, cfg.Level, cfg.Seed, port, nil)
	if err != nil {
		return err
	}
	bot := input.NewBot(cfg.Seed)

	taken := 0
	for taken < flagSteps {
		if ctx.Err() != nil {
			break
		}
		n := stepN(sim, port, bot, min(flagSteps-taken, 500), nil)
		taken += n
		if n == 0 {
			break
		}
	}
	w := sim.World
	fmt.Fprintf(cmd.OutOrStdout(), "steps=%d frame=%d actors=%d checksum=%016x\n",
		taken, w.Frame(), w.ActorCount(), w.Checksum())
	return ctx.Err()
}

func runReplayRecord(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	port := &input.Port{}
	sim, err := newSim(cfg, cfg.Level, cfg.Seed, port, nil)
	if err != nil {
		return err
	}
	level := cfg.Level
	if level == "" {
		level = levels.DefaultLevel
	}
	rec := replay.NewRecorder(flagName, level, cfg.Timing, cfg.Seed)
	stepN(sim, port, input.NewBot(cfg.Seed), flagSteps, rec.Record)
	return saveRecording(cmd.Context(), cfg.DBPath, rec.Recording())
}

func runReplayVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid replay id %q: %w", args[0], err)
	}
	store, err := replay.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec, err := store.Load(ctx, id)
	if err != nil {
		return err
	}
	port := &input.Port{}
	sim, err := newSim(cfg, rec.Level, rec.Seed, port, nil)
	if err != nil {
		return err
	}
	err = replay.Verify(ctx, rec, sim.World, port)
	var div *replay.Divergence
	if errors.As(err, &div) {
		fmt.Fprintf(cmd.OutOrStdout(), "replay %d diverged: %v\n", id, div)
		return err
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "replay %d ok: %d steps, checksum=%016x\n", id, rec.Steps(), rec.Final())
	return nil
}

func runReplayList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := replay.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := store.List(cmd.Context(), flagLimit)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no recordings")
		return nil
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLEVEL\tSEED\tSTEPS\tCHECKSUM\tCREATED")
	for _, s := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%016x\t%s\n",
			s.ID, s.Name, s.Level, s.Seed, s.Steps, s.Final, s.CreatedAt.Format(time.DateTime))
	}
	return tw.Flush()
}

func saveRecording(ctx context.Context, dbPath string, rec *replay.Recording) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := replay.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Save(ctx, rec)
	if err != nil {
		return err
	}
	logging.Log.WithField("id", id).WithField("steps", rec.Steps()).Info("recording saved")
	return nil
}
