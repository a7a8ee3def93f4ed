package systems

import (
	"testing"

	cfg "github.com/automoto/cosmicdash/config"
)

func TestKillPlayerHighScore(t *testing.T) {
	tests := []struct {
		name      string
		highScore int
		score     int
		wantHigh  int
		wantNew   bool
	}{
		{"beats the record", 3, 5, 5, true},
		{"below the record", 10, 5, 10, false},
		{"ties the record", 5, 5, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newRunningWorld(t)
			sim := mustSim(t, w)
			sim.HighScore = tt.highScore
			sim.Score = tt.score

			KillPlayer(w)

			if sim.HighScore != tt.wantHigh {
				t.Errorf("Expected high score %d, got %d", tt.wantHigh, sim.HighScore)
			}
			if sim.NewHighScore != tt.wantNew {
				t.Errorf("Expected new high score %v, got %v", tt.wantNew, sim.NewHighScore)
			}
			events := DrainEvents(w)
			if !hasEvent(events, cfg.EventDeath) {
				t.Error("Expected a death event")
			}
			if hasEvent(events, cfg.EventNewHighScore) != tt.wantNew {
				t.Errorf("Expected new high score event %v", tt.wantNew)
			}
		})
	}
}

func TestKillPlayerOnlyOnce(t *testing.T) {
	w := newRunningWorld(t)
	sim := mustSim(t, w)

	KillPlayer(w)
	sim.Shake = 0
	KillPlayer(w)

	if sim.Shake != 0 {
		t.Error("Expected a second kill to be ignored")
	}
	if n := len(DrainEvents(w)); n != 1 {
		t.Errorf("Expected 1 event, got %d", n)
	}
}
