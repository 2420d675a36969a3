// t2048 drives the 2048 rule engine from the command line.
//
// Usage:
//
//	t2048 new                      - Deal a new grid
//	t2048 move <dir> --grid <g>    - Apply one move to a grid
//	t2048 play <dir>...            - Play a scripted game
//	t2048 levels                   - List campaign levels
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--config <path>      - Path to a custom t2048.yaml
//	--mode <mode>        - classic, campaign or endless
//	--difficulty <name>  - easy, normal or hard
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/merge2048/internal/config"
	"github.com/vovakirdan/merge2048/internal/games/t2048"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagMode       string
	flagLevel      int
	flagDifficulty string
	flagLogLevel   string
)

// Loaded by the root PersistentPreRunE.
var (
	gameConfig config.T2048Config
	logger     *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 rule engine",
	Long: `t2048 runs the 2048 sliding-tile rule engine: deal grids, apply moves
and replay scripted games deterministically from a seed.

Examples:
  t2048 new --seed 42
  t2048 move left --grid "2 2 4 0/0 0 0 0/0 0 0 0/0 0 0 0"
  t2048 play --seed 7 left up right down
  t2048 play --mode campaign --level 3 l u r d
  t2048 levels`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = pick one from the clock; the seed in use is printed with the result)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom t2048 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Game mode: classic, campaign, endless")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 0, "Campaign start level (1-based)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setup builds the logger and loads configuration for every subcommand.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})

	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyT2048Preset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return err
	}
	if err := config.ApplyModeOverride(&cfg, flagMode, flagLevel); err != nil {
		return err
	}
	gameConfig = cfg

	if flagSeed == 0 {
		flagSeed = time.Now().UnixNano()
	}
	logger.Debug("config loaded", "mode", cfg.Mode, "target", cfg.Board.Target, "seed", flagSeed)
	return nil
}

// newEngine builds an engine from the loaded configuration.
func newEngine() *t2048.Engine {
	return t2048.NewEngine(
		t2048.WithSeed(flagSeed),
		t2048.WithTarget(gameConfig.Board.Target),
		t2048.WithSpawn4Probability(gameConfig.Board.Spawn4Probability),
	)
}
