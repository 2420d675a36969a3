package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/merge2048/internal/games/t2048"
)

var (
	flagMoveGrid    string
	flagMoveNoSpawn bool
)

var moveCmd = &cobra.Command{
	Use:   "move <direction>",
	Short: "Apply one move to a grid",
	Long: `Apply a single move to the given grid and print the result as YAML.

The grid is written as four rows separated by '/', values separated by
spaces or commas. Directions: up, down, left, right (or u, d, l, r).

Examples:
  t2048 move left --grid "2 2 4 0/0 0 0 0/0 0 0 0/0 0 0 0"
  t2048 move down --grid "2,0,0,0/2,0,0,0/4,0,0,0/8,0,0,0" --no-spawn`,
	Args: cobra.ExactArgs(1),
	RunE: runMove,
}

func init() {
	moveCmd.Flags().StringVar(&flagMoveGrid, "grid", "", "Grid rows, e.g. \"2 2 0 0/0 0 0 0/0 0 0 0/0 0 0 0\"")
	moveCmd.Flags().BoolVar(&flagMoveNoSpawn, "no-spawn", false, "Slide only, without spawning a tile")
}

// moveOutput is the YAML form of a move result.
type moveOutput struct {
	Seed          int64   `yaml:"seed"`
	Direction     string  `yaml:"direction"`
	Changed       bool    `yaml:"changed"`
	ScoreDelta    int     `yaml:"score_delta"`
	ReachedTarget bool    `yaml:"reached_target"`
	Terminal      bool    `yaml:"terminal"`
	Grid          string  `yaml:"grid"`
	Rows          [][]int `yaml:"rows,flow"`
}

func runMove(cmd *cobra.Command, args []string) error {
	dir, err := t2048.ParseDirection(args[0])
	if err != nil {
		return err
	}
	if flagMoveGrid == "" {
		return errors.New("--grid is required")
	}
	grid, err := t2048.ParseGridString(flagMoveGrid)
	if err != nil {
		return err
	}

	engine := newEngine()
	var res t2048.MoveResult
	if flagMoveNoSpawn {
		next, score, changed := engine.Slide(grid, dir)
		res = t2048.MoveResult{
			Grid:          next,
			ScoreDelta:    score,
			Changed:       changed,
			ReachedTarget: t2048.ReachedTarget(next, engine.Target()),
			Terminal:      t2048.IsTerminal(next),
		}
	} else {
		res = engine.Move(grid, dir)
	}
	logger.Debug("move applied", "dir", dir, "changed", res.Changed, "delta", res.ScoreDelta)

	data, err := yaml.Marshal(moveOutput{
		Seed:          flagSeed,
		Direction:     dir.String(),
		Changed:       res.Changed,
		ScoreDelta:    res.ScoreDelta,
		ReachedTarget: res.ReachedTarget,
		Terminal:      res.Terminal,
		Grid:          res.Grid.String(),
		Rows:          res.Grid.Rows().Slice(),
	})
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
