package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	def := DefaultLinkfallConfig()

	if cfg.Piece != def.Piece {
		t.Errorf("Piece = %+v, expected %+v", cfg.Piece, def.Piece)
	}
	if cfg.Targets != def.Targets {
		t.Errorf("Targets = %+v, expected %+v", cfg.Targets, def.Targets)
	}
	for mode, b := range def.Boards {
		if cfg.Boards[mode] != b {
			t.Errorf("Boards[%q] = %+v, expected %+v", mode, cfg.Boards[mode], b)
		}
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("piece:\n  fall_speed: 5\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Piece.FallSpeed != 5 {
		t.Errorf("FallSpeed = %v, expected 5", cfg.Piece.FallSpeed)
	}
	if cfg.Targets.Count != 2 {
		t.Errorf("Targets.Count = %d, expected default 2", cfg.Targets.Count)
	}
	if cfg.Board(ModeClassic).Width != 10 {
		t.Errorf("classic width = %d, expected 10", cfg.Board(ModeClassic).Width)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero speed", "piece:\n  fall_speed: 0\n"},
		{"no targets", "targets:\n  count: 0\n"},
		{"no attempts", "targets:\n  max_attempts: 0\n"},
		{"empty board", "boards:\n  linkfall:\n    width: 0\n    height: 15\n"},
		{"narrow board", "boards:\n  linkfall:\n    width: 3\n    height: 15\n"},
		{"short board", "boards:\n  linkfall:\n    width: 10\n    height: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("piece: [")); err == nil {
		t.Error("Parse() expected error for malformed yaml")
	}
}

func TestBoardFallback(t *testing.T) {
	cfg := DefaultLinkfallConfig()

	if got := cfg.Board("linkfall_wide"); got.Width != 16 {
		t.Errorf("Board(wide).Width = %d, expected 16", got.Width)
	}
	if got := cfg.Board("unknown"); got != cfg.Boards[ModeClassic] {
		t.Errorf("Board(unknown) = %+v, expected classic board", got)
	}

	empty := LinkfallConfig{}
	if got := empty.Board("unknown"); got.Width != 10 || got.Height != 15 {
		t.Errorf("Board() on empty config = %+v, expected 10x15", got)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "boards:\n  linkfall:\n    width: 12\n    height: 20\ntargets:\n  count: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if b := cfg.Board(ModeClassic); b.Width != 12 || b.Height != 20 {
		t.Errorf("board = %+v, expected 12x20", b)
	}
	if cfg.Targets.Count != 3 {
		t.Errorf("Targets.Count = %d, expected 3", cfg.Targets.Count)
	}
	// Modes the file does not name keep their defaults
	if b := cfg.Board("linkfall_wide"); b.Width != 16 {
		t.Errorf("wide board = %+v, expected default width 16", b)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() expected error for missing custom path")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultLinkfallConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error = %v", err)
	}
	if cfg.Piece.FallSpeed != 2.4 {
		t.Errorf("FallSpeed = %v, expected 2.4", cfg.Piece.FallSpeed)
	}
}
