package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying          GameStateType = "playing"
	StateWon              GameStateType = "won"
	StateCampaignComplete GameStateType = "campaign_complete"
	StateGameOver         GameStateType = "game_over"
)

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Mode    Mode          `yaml:"mode"`
	Seed    int64         `yaml:"seed"`
	Level   int           `yaml:"level"` // 1-indexed in campaign, 0 otherwise
	Target  int           `yaml:"target"`
	Score   int           `yaml:"score"`
	Moves   int           `yaml:"moves"`
	Rows    [][]int       `yaml:"rows,flow"`
	MaxTile int           `yaml:"max_tile"`
	State   GameStateType `yaml:"state"`
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.gameOver:
		state = StateGameOver
	case s.completed:
		state = StateCampaignComplete
	case s.won && !s.keepPlaying:
		state = StateWon
	}

	level := 0
	if s.cfg.Mode == ModeCampaign {
		level = s.levelIndex + 1
	}

	rows := s.grid.Rows()
	return Snapshot{
		Mode:    s.cfg.Mode,
		Seed:    s.cfg.Seed,
		Level:   level,
		Target:  s.engine.Target(),
		Score:   s.score,
		Moves:   s.moves,
		Rows:    rows.Slice(),
		MaxTile: s.grid.MaxTile(),
		State:   state,
	}
}
