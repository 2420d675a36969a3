package t2048

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Defaults for the classic game.
const (
	DefaultTarget      = 2048
	DefaultSpawn4Prob  = 0.10
	initialSpawnsCount = 2
)

// Source is the randomness the engine needs.
// *rand.Rand from math/rand/v2 satisfies it; tests substitute scripted sources.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// MoveResult is the outcome of a move attempt.
type MoveResult struct {
	Grid          Grid
	ScoreDelta    int
	Changed       bool // Some tile moved or merged
	ReachedTarget bool // Some tile is >= the engine target
	Terminal      bool // No legal move remains from Grid
}

// Engine applies the game rules. It keeps no game state between calls:
// only the random source, the identity generator and rule parameters.
// An Engine is not safe for concurrent use because its Source is not;
// give every game session its own Engine.
type Engine struct {
	rng        Source
	newID      func() uuid.UUID
	target     int
	spawn4Prob float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the random source used for spawning.
func WithSource(src Source) Option {
	return func(e *Engine) {
		e.rng = src
	}
}

// WithSeed seeds a PCG source for reproducible games.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = newSeededRand(seed)
	}
}

// WithTarget sets the winning tile value. Zero disables the target.
func WithTarget(target int) Option {
	return func(e *Engine) {
		e.target = target
	}
}

// WithSpawn4Probability sets the chance of spawning a 4 instead of a 2.
func WithSpawn4Probability(p float64) Option {
	return func(e *Engine) {
		e.spawn4Prob = p
	}
}

// WithIDs sets the tile identity generator.
func WithIDs(newID func() uuid.UUID) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// NewEngine creates an engine. Without options it plays the classic game
// with a time-seeded source.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		newID:      uuid.New,
		target:     DefaultTarget,
		spawn4Prob: DefaultSpawn4Prob,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = newSeededRand(time.Now().UnixNano())
	}
	return e
}

func newSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Target returns the winning tile value (0 when disabled).
func (e *Engine) Target() int {
	return e.target
}

// SetTarget changes the winning tile value.
func (e *Engine) SetTarget(target int) {
	e.target = target
}

// SetSpawn4Probability changes the chance of spawning a 4.
func (e *Engine) SetSpawn4Probability(p float64) {
	e.spawn4Prob = p
}

// NewGame returns an empty grid with two spawned tiles.
func (e *Engine) NewGame() Grid {
	var g Grid
	for range initialSpawnsCount {
		g, _ = e.Spawn(g)
	}
	return g
}

// Spawn places a 2 (or, with the configured probability, a 4) into a
// uniformly chosen empty cell. Returns the grid unchanged and false when
// the grid is full.
func (e *Engine) Spawn(g Grid) (Grid, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return g, false
	}

	pos := empty[e.rng.IntN(len(empty))]

	value := 2
	if e.rng.Float64() < e.spawn4Prob {
		value = 4
	}

	g[pos.Y][pos.X] = Cell{Value: value, ID: e.newID(), Meta: Meta{Spawned: true}}
	return g, true
}

// Slide applies a move without spawning. Returns the resulting grid, the
// score gained from merges and whether the board changed.
// Metadata of the input grid is reset; merged tiles are flagged.
func (e *Engine) Slide(g Grid, dir Direction) (Grid, int, bool) {
	if !dir.Valid() {
		return g, 0, false
	}
	out, score := slide(g.clearMeta(), dir, e.newID)
	if out.Equal(g) {
		return g, 0, false
	}
	return out, score, true
}

// Move performs a full turn: slide, spawn on change, then evaluate the
// target and terminal state of the resulting grid.
// A move that changes nothing returns the original grid with a zero delta.
func (e *Engine) Move(g Grid, dir Direction) MoveResult {
	next, score, changed := e.Slide(g, dir)
	if !changed {
		return MoveResult{
			Grid:          g,
			ReachedTarget: ReachedTarget(g, e.target),
			Terminal:      IsTerminal(g),
		}
	}

	next, _ = e.Spawn(next)

	return MoveResult{
		Grid:          next,
		ScoreDelta:    score,
		Changed:       true,
		ReachedTarget: ReachedTarget(next, e.target),
		Terminal:      IsTerminal(next),
	}
}
