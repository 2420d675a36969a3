package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolateHome points the user config directory at an empty temp dir.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadT2048Default(t *testing.T) {
	isolateHome(t)

	cfg, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg.Board.Target != 2048 || cfg.Board.Spawn4Probability != 0.10 {
		t.Errorf("board = %+v, want target 2048 spawn4 0.10", cfg.Board)
	}
	if cfg.Mode != "classic" {
		t.Errorf("mode = %q, want classic", cfg.Mode)
	}
	if len(cfg.Campaign.Levels) != 10 {
		t.Errorf("levels = %d, want 10", len(cfg.Campaign.Levels))
	}
}

func TestEmbeddedMatchesHardcodedDefaults(t *testing.T) {
	cfg, err := parseT2048(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML: %v", err)
	}
	def := DefaultT2048Config()
	if cfg.Board != def.Board || cfg.Mode != def.Mode {
		t.Errorf("embedded board/mode %+v %q differ from %+v %q", cfg.Board, cfg.Mode, def.Board, def.Mode)
	}
	for i := range def.Campaign.Levels {
		if cfg.Campaign.Levels[i] != def.Campaign.Levels[i] {
			t.Errorf("level %d: embedded %+v, hardcoded %+v", i+1, cfg.Campaign.Levels[i], def.Campaign.Levels[i])
		}
	}
}

func TestLoadT2048UserConfig(t *testing.T) {
	home := isolateHome(t)
	writeFile(t, filepath.Join(home, ".arcade", "configs", "t2048.yaml"), "mode: endless\n")

	cfg, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg.Mode != "endless" {
		t.Errorf("mode = %q, want endless", cfg.Mode)
	}
}

func TestLoadT2048CustomPathKeepsDefaults(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  target: 512\n")

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048: %v", err)
	}
	if cfg.Board.Target != 512 {
		t.Errorf("target = %d, want 512", cfg.Board.Target)
	}
	if cfg.Board.Spawn4Probability != 0.10 {
		t.Errorf("spawn4 = %v, want default 0.10", cfg.Board.Spawn4Probability)
	}
	if len(cfg.Campaign.Levels) != 10 {
		t.Errorf("levels = %d, want default 10", len(cfg.Campaign.Levels))
	}
}

func TestLoadT2048CustomPathErrors(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	if _, err := LoadT2048(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "board: [not, a, map\n")
	if _, err := LoadT2048(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "board:\n  target: 100\n")
	if _, err := LoadT2048(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*T2048Config)
		ok     bool
	}{
		{"defaults", func(*T2048Config) {}, true},
		{"target not power of two", func(c *T2048Config) { c.Board.Target = 1000 }, false},
		{"target too small", func(c *T2048Config) { c.Board.Target = 2 }, false},
		{"negative spawn4", func(c *T2048Config) { c.Board.Spawn4Probability = -0.1 }, false},
		{"spawn4 above one", func(c *T2048Config) { c.Board.Spawn4Probability = 1.5 }, false},
		{"unknown mode", func(c *T2048Config) { c.Mode = "zen" }, false},
		{"empty mode", func(c *T2048Config) { c.Mode = "" }, true},
		{"no levels", func(c *T2048Config) { c.Campaign.Levels = nil }, false},
		{"start level out of range", func(c *T2048Config) { c.Campaign.StartLevel = 11 }, false},
		{"last start level", func(c *T2048Config) { c.Campaign.StartLevel = 10 }, true},
		{"bad level target", func(c *T2048Config) { c.Campaign.Levels[2].Target = 300 }, false},
		{"bad level spawn4", func(c *T2048Config) { c.Campaign.Levels[0].Spawn4 = 2 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyT2048Preset(t *testing.T) {
	cfg := DefaultT2048Config()
	if err := ApplyT2048Preset(&cfg, DifficultyHard); err != nil {
		t.Fatalf("ApplyT2048Preset: %v", err)
	}
	if cfg.Board.Spawn4Probability != 0.25 {
		t.Errorf("board spawn4 = %v, want 0.25", cfg.Board.Spawn4Probability)
	}
	for _, lvl := range cfg.Campaign.Levels {
		if lvl.Spawn4 != 0.25 {
			t.Errorf("level %d spawn4 = %v, want 0.25", lvl.ID, lvl.Spawn4)
		}
	}

	// Empty preset keeps configured values
	cfg = DefaultT2048Config()
	if err := ApplyT2048Preset(&cfg, ""); err != nil {
		t.Fatal(err)
	}
	if cfg.Campaign.Levels[9].Spawn4 != 0.25 || cfg.Campaign.Levels[0].Spawn4 != 0.10 {
		t.Error("empty preset should not touch level odds")
	}

	if err := ApplyT2048Preset(&cfg, "insane"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestApplyModeOverride(t *testing.T) {
	cfg := DefaultT2048Config()
	if err := ApplyModeOverride(&cfg, "campaign", 4); err != nil {
		t.Fatalf("ApplyModeOverride: %v", err)
	}
	if cfg.Mode != "campaign" || cfg.Campaign.StartLevel != 4 {
		t.Errorf("mode=%q start=%d, want campaign 4", cfg.Mode, cfg.Campaign.StartLevel)
	}

	if err := ApplyModeOverride(&cfg, "", 0); err != nil || cfg.Mode != "campaign" {
		t.Errorf("empty override changed config: %q %v", cfg.Mode, err)
	}

	if err := ApplyModeOverride(&cfg, "arcade", 0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
	cfg = DefaultT2048Config()
	if err := ApplyModeOverride(&cfg, "campaign", 99); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
