package storage

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/engine"
)

func TestMaxIntNeverLowers(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		value    int
		expected int
	}{
		{300, 300}, // first write creates the key
		{500, 500},
		{200, 500},
		{500, 500},
	}
	for _, tt := range tests {
		got, err := store.MaxInt("best_score", tt.value)
		if err != nil {
			t.Fatalf("MaxInt(%d) error = %v", tt.value, err)
		}
		if got != tt.expected {
			t.Errorf("MaxInt(%d) = %d, expected %d", tt.value, got, tt.expected)
		}
	}

	if v, _, _ := store.GetInt("best_score"); v != 500 {
		t.Errorf("GetInt() = %d, expected 500", v)
	}
}

// killPlayer ends the session with the given score by contact damage.
func killPlayer(t *testing.T, e *engine.Engine, s *engine.State, score int) {
	t.Helper()
	s.Score = score
	s.Player.Health = 1
	s.Enemies = []engine.Enemy{{ID: 90, Pos: engine.Vec2{X: 110, Y: 0}, HP: 5}}
	e.Advance(s)
	if s.Phase != engine.PhaseGameOver {
		t.Fatalf("Phase = %s, expected gameover", s.Phase)
	}
}

func TestSharedStoreKeepsHighestBestScore(t *testing.T) {
	store := openTestStore(t)
	cfg := config.DefaultShooterConfig()

	a := engine.New(cfg, engine.WithStore(store))
	b := engine.New(cfg, engine.WithStore(store))
	sa := a.NewState()
	sb := b.NewState()

	killPlayer(t, b, sb, 500)
	killPlayer(t, a, sa, 300)

	v, ok, err := store.GetInt(cfg.Scoring.BestScoreKey)
	if err != nil || !ok {
		t.Fatalf("GetInt() = %d, %v, %v", v, ok, err)
	}
	if v != 500 {
		t.Errorf("stored best = %d, expected 500", v)
	}
	if sa.BestScore != 500 {
		t.Errorf("BestScore of the later session = %d, expected 500", sa.BestScore)
	}
	if sb.BestScore != 500 {
		t.Errorf("BestScore of the earlier session = %d, expected 500", sb.BestScore)
	}
}
