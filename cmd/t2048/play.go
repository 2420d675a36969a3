package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/merge2048/internal/games/t2048"
)

var (
	flagPlayQuiet       bool
	flagPlayKeepPlaying bool
)

var playCmd = &cobra.Command{
	Use:   "play <direction>...",
	Short: "Play a scripted game",
	Long: `Start a new game and apply the given directions in order.

The board is printed after every move that changed it; the final session
snapshot is printed as YAML. Play stops early when the game is over.

Modes:
  classic  - reach the target tile (default 2048)
  campaign - ten levels with rising targets
  endless  - no target, play until the board locks

Examples:
  t2048 play --seed 7 left up right down
  t2048 play --mode campaign --level 2 l l u r d
  t2048 play --mode endless --quiet u l d r u l d r`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlayQuiet, "quiet", false, "Only print the final snapshot")
	playCmd.Flags().BoolVar(&flagPlayKeepPlaying, "keep-playing", false, "Continue after reaching the target in classic mode")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Validate the whole script before playing.
	dirs := make([]t2048.Direction, len(args))
	for i, arg := range args {
		dir, err := t2048.ParseDirection(arg)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		dirs[i] = dir
	}

	sessionCfg, err := t2048.SessionConfigFrom(gameConfig, flagSeed)
	if err != nil {
		return err
	}
	session := t2048.NewSession(sessionCfg, logger)

	out := cmd.OutOrStdout()
	color := useColor(out)
	if !flagPlayQuiet {
		fmt.Fprint(out, renderBoard(session.Grid(), color))
	}

	for i, dir := range dirs {
		res := session.Play(dir)
		if session.Won() && flagPlayKeepPlaying {
			session.KeepPlaying()
		}
		if !flagPlayQuiet && res.Changed {
			fmt.Fprintf(out, "\n#%d %s  +%d  score %d\n", i+1, dir, res.ScoreDelta, session.Score())
			fmt.Fprint(out, renderBoard(res.Grid, color))
		}
		if session.Over() {
			logger.Info("stopping early", "after", i+1, "of", len(dirs))
			break
		}
	}

	data, err := yaml.Marshal(session.Snapshot())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if !flagPlayQuiet {
		fmt.Fprintln(out)
	}
	_, err = out.Write(data)
	return err
}
