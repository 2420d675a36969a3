package t2048

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/merge2048/internal/config"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeClassic, ModeCampaign, ModeEndless:
		return Mode(s), nil
	case "":
		return ModeClassic, nil
	}
	return "", fmt.Errorf("t2048: unknown mode %q", s)
}

// SessionConfig configures a Session.
type SessionConfig struct {
	Mode       Mode
	Seed       int64   // 0 picks a time-based seed; Snapshot reports the seed in use
	Target     int     // Classic mode target
	Spawn4     float64 // Used as given; 0 never spawns a 4 outside campaign levels
	Levels     []Level // Campaign levels
	StartLevel int     // 1-indexed campaign start level, 0 = first
}

// SessionConfigFrom builds a SessionConfig from loaded configuration.
func SessionConfigFrom(cfg config.T2048Config, seed int64) (SessionConfig, error) {
	mode, err := ParseMode(cfg.Mode)
	if err != nil {
		return SessionConfig{}, err
	}
	return SessionConfig{
		Mode:       mode,
		Seed:       seed,
		Target:     cfg.Board.Target,
		Spawn4:     cfg.Board.Spawn4Probability,
		Levels:     LevelsFromConfig(cfg.Campaign.Levels),
		StartLevel: cfg.Campaign.StartLevel,
	}, nil
}

// Session holds one player's game: the current grid, cumulative score and
// campaign progress. The engine never sees cumulative score; the session
// adds each move's delta.
type Session struct {
	cfg    SessionConfig
	engine *Engine
	logger *log.Logger

	grid  Grid
	score int
	moves int // Changed moves only

	levelIndex int // Current campaign level (0-indexed)

	// Game state flags
	won         bool // Target reached, waiting for KeepPlaying or Restart
	keepPlaying bool
	completed   bool // Campaign finished
	gameOver    bool
}

// NewSession creates a session and deals the first grid.
// A nil logger discards output.
func NewSession(cfg SessionConfig, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeClassic
	}
	if cfg.Target == 0 {
		cfg.Target = DefaultTarget
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = DefaultLevels()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:    cfg,
		engine: NewEngine(WithSeed(cfg.Seed), WithSpawn4Probability(cfg.Spawn4)),
		logger: logger,
	}
	s.Restart()
	return s
}

// Restart begins a new game with the same configuration.
// The random source continues, so a restarted game gets a different deal.
func (s *Session) Restart() {
	s.score = 0
	s.moves = 0
	s.won = false
	s.keepPlaying = false
	s.completed = false
	s.gameOver = false

	s.levelIndex = 0
	if s.cfg.Mode == ModeCampaign && s.cfg.StartLevel > 0 && s.cfg.StartLevel <= len(s.cfg.Levels) {
		s.levelIndex = s.cfg.StartLevel - 1
	}
	s.loadLevel()

	s.grid = s.engine.NewGame()
	s.logger.Debug("new game", "mode", s.cfg.Mode, "target", s.engine.Target(), "grid", s.grid.String())
}

// loadLevel applies the target and spawn odds of the current mode/level.
func (s *Session) loadLevel() {
	switch s.cfg.Mode {
	case ModeEndless:
		s.engine.SetTarget(0)
		s.engine.SetSpawn4Probability(s.cfg.Spawn4)
	case ModeCampaign:
		level := s.cfg.Levels[s.levelIndex]
		s.engine.SetTarget(level.Target)
		s.engine.SetSpawn4Probability(level.Spawn4)
	default:
		s.engine.SetTarget(s.cfg.Target)
		s.engine.SetSpawn4Probability(s.cfg.Spawn4)
	}
}

// Play applies one move. Moves are ignored once the game is over, the
// campaign is complete, or the target was reached and the caller has not
// chosen to keep playing. A move that changes nothing does not count as
// a turn.
func (s *Session) Play(dir Direction) MoveResult {
	if s.gameOver || s.completed || (s.won && !s.keepPlaying) {
		return MoveResult{
			Grid:          s.grid,
			ReachedTarget: ReachedTarget(s.grid, s.engine.Target()),
			Terminal:      s.gameOver,
		}
	}

	res := s.engine.Move(s.grid, dir)
	if !res.Changed {
		s.logger.Debug("no-op move", "dir", dir)
		return res
	}

	s.grid = res.Grid
	s.score += res.ScoreDelta
	s.moves++
	s.logger.Debug("move", "dir", dir, "delta", res.ScoreDelta, "score", s.score, "grid", s.grid.String())

	if res.ReachedTarget {
		s.onTargetReached()
	}

	if res.Terminal {
		s.gameOver = true
		s.logger.Info("game over", "score", s.score, "moves", s.moves, "max_tile", s.grid.MaxTile())
	}

	return res
}

// onTargetReached updates progress after a move reached the target.
func (s *Session) onTargetReached() {
	switch s.cfg.Mode {
	case ModeCampaign:
		s.advanceLevel()
	case ModeClassic:
		if !s.won {
			s.won = true
			s.logger.Info("target reached", "target", s.engine.Target(), "score", s.score, "moves", s.moves)
		}
	}
}

// advanceLevel moves to the next campaign level, keeping board and score.
// Levels sharing a target are cleared by consecutive changed moves once
// the board already holds that tile; later levels raise only spawn odds.
func (s *Session) advanceLevel() {
	s.logger.Info("level cleared", "level", s.levelIndex+1, "target", s.engine.Target(), "score", s.score)

	if s.levelIndex >= len(s.cfg.Levels)-1 {
		// Completed all levels
		s.completed = true
		s.logger.Info("campaign complete", "score", s.score, "moves", s.moves)
		return
	}

	s.levelIndex++
	s.loadLevel()
}

// KeepPlaying lets a classic game continue after the target was reached.
func (s *Session) KeepPlaying() {
	if s.won {
		s.keepPlaying = true
		s.logger.Debug("keep playing", "score", s.score)
	}
}

// Grid returns the current grid.
func (s *Session) Grid() Grid {
	return s.grid
}

// Score returns the cumulative score.
func (s *Session) Score() int {
	return s.score
}

// Moves returns the number of changed moves played.
func (s *Session) Moves() int {
	return s.moves
}

// Level returns the current campaign level.
func (s *Session) Level() Level {
	return s.cfg.Levels[s.levelIndex]
}

// Seed returns the seed of the session's random source.
func (s *Session) Seed() int64 {
	return s.cfg.Seed
}

// Mode returns the session mode.
func (s *Session) Mode() Mode {
	return s.cfg.Mode
}

// Won reports whether the target was reached in classic mode.
func (s *Session) Won() bool {
	return s.won
}

// Over reports whether no further moves will be accepted.
func (s *Session) Over() bool {
	return s.gameOver || s.completed || (s.won && !s.keepPlaying)
}
