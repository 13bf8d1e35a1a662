// actorsim runs the actor simulation.
//
// Usage:
//
//	actorsim run                    - Open a window and play
//	actorsim headless --steps N     - Step without a window and print the checksum
//	actorsim replay record          - Record a bot-driven run into the replay store
//	actorsim replay verify <id>     - Re-run a stored recording and compare checksums
//	actorsim replay list            - List stored recordings
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/milk9111/actorsim/config"
	"github.com/milk9111/actorsim/ecs"
	"github.com/milk9111/actorsim/ecs/entity"
	"github.com/milk9111/actorsim/input"
	"github.com/milk9111/actorsim/levels"
	"github.com/milk9111/actorsim/logging"
	"github.com/milk9111/actorsim/prefabs"
	"github.com/milk9111/actorsim/script"
)

var (
	flagConfig string
	flagSeed   int32
	flagTiming string
	flagDBPath string
	flagLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "actorsim",
	Short:         "Deterministic actor simulation with a boss encounter",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file")
	rootCmd.PersistentFlags().Int32Var(&flagSeed, "seed", 0, "Gameplay RNG seed")
	rootCmd.PersistentFlags().StringVar(&flagTiming, "timing", "", "Timing mode: 50hz, 60hz or frame")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the replay database")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level file in levels/")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig reads the config file and applies any persistent flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("timing") {
		cfg.Timing = flagTiming
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("level") {
		cfg.Level = flagLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logging.Init(cfg.Log.Level, cfg.Log.Format)
	return cfg, nil
}

// newSim builds a world for the configured level with input latched through port.
func newSim(cfg config.Config, levelName string, seed int32, port *input.Port, sfx ecs.SoundPlayer) (*entity.Sim, error) {
	table, err := prefabs.LoadNPCTable()
	if err != nil {
		return nil, err
	}
	if levelName == "" {
		levelName = levels.DefaultLevel
	}
	lvl, err := levels.LoadLevelFromFS(levelName)
	if err != nil {
		return nil, err
	}
	sim, err := entity.BuildWorld(table, lvl, seed, entity.Services{
		Sound:   sfx,
		Input:   port,
		Scripts: script.LoadPrefab,
	})
	if err != nil {
		return nil, err
	}
	logging.Log.WithFields(logrus.Fields{
		"level":  lvl.Name,
		"seed":   seed,
		"timing": cfg.TimingMode().String(),
	}).Info("world built")
	return sim, nil
}

// stepN advances sim n steps feeding frames from src. It stops early on shutdown and
// returns the number of steps taken.
func stepN(sim *entity.Sim, port *input.Port, src input.Source, n int, each func(f input.Frame, checksum uint64)) int {
	w := sim.World
	taken := 0
	for ; taken < n && !w.ShuttingDown(); taken++ {
		f := src.Poll()
		port.Set(f)
		w.Step()
		if each != nil {
			each(f, w.Checksum())
		}
	}
	return taken
}
