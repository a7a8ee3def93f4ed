package factory

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/cosmicdash/components"
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/tags"
	"github.com/yohamta/donburi"
)

const (
	viewW = 800.0
	viewH = 450.0

	epsilon = 1e-9
)

func near(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func newWorld() donburi.World {
	w := donburi.NewWorld()
	CreateSpace(w, viewW, viewH)
	return w
}

func TestFlapLayoutLeavesGap(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		w := newWorld()
		entries := SpawnObstacleLayout(w, cfg.ModeFlap, viewW, viewH, rand.New(rand.NewSource(seed)))
		if len(entries) != 2 {
			t.Fatalf("Expected a pair, got %d obstacles", len(entries))
		}

		top := components.Object.Get(entries[0]).Rect()
		bottom := components.Object.Get(entries[1]).Rect()

		if top.Y != 0 || !near(bottom.Bottom(), viewH) {
			t.Errorf("Seed %d: expected pair flush to both edges, got top.y=%v bottom=%v", seed, top.Y, bottom.Bottom())
		}
		if gap := bottom.Y - top.Bottom(); !near(gap, cfg.Spawn.GapSize) {
			t.Errorf("Seed %d: expected gap %v, got %v", seed, cfg.Spawn.GapSize, gap)
		}
		if top.Bottom() < cfg.Spawn.GapMargin-epsilon || bottom.Y > viewH-cfg.Spawn.GapMargin+epsilon {
			t.Errorf("Seed %d: expected gap inside the margins, got %v..%v", seed, top.Bottom(), bottom.Y)
		}
		if !components.Obstacle.Get(entries[0]).Scoring || components.Obstacle.Get(entries[1]).Scoring {
			t.Errorf("Seed %d: expected only the top half to score", seed)
		}
	}
}

func TestFlipLayoutIsFlush(t *testing.T) {
	kinds := map[components.ObstacleKind]int{}
	for seed := int64(1); seed <= 50; seed++ {
		w := newWorld()
		entries := SpawnObstacleLayout(w, cfg.ModeFlip, viewW, viewH, rand.New(rand.NewSource(seed)))
		if len(entries) != 1 {
			t.Fatalf("Expected a single block, got %d", len(entries))
		}

		obstacle := components.Obstacle.Get(entries[0])
		r := components.Object.Get(entries[0]).Rect()
		kinds[obstacle.Kind]++

		switch obstacle.Kind {
		case components.ObstacleFloor:
			if !near(r.Bottom(), viewH) {
				t.Errorf("Seed %d: expected floor block flush to %v, got %v", seed, viewH, r.Bottom())
			}
		case components.ObstacleCeiling:
			if r.Y != 0 {
				t.Errorf("Seed %d: expected ceiling block at 0, got %v", seed, r.Y)
			}
		default:
			t.Errorf("Seed %d: unexpected kind %v", seed, obstacle.Kind)
		}
		if r.H < cfg.Spawn.BlockMinHeight || r.H > cfg.Spawn.BlockMaxHeight {
			t.Errorf("Seed %d: expected height in range, got %v", seed, r.H)
		}
	}

	if kinds[components.ObstacleFloor] == 0 || kinds[components.ObstacleCeiling] == 0 {
		t.Errorf("Expected both floor and ceiling blocks, got %v", kinds)
	}
}

func TestCreatePlayerCentered(t *testing.T) {
	w := newWorld()
	e := CreatePlayer(w, viewH)
	r := components.Object.Get(e).Rect()

	if r.X != cfg.Player.StartX {
		t.Errorf("Expected x %v, got %v", cfg.Player.StartX, r.X)
	}
	if r.CenterY() != viewH/2 {
		t.Errorf("Expected centered player, got center %v", r.CenterY())
	}
	if g := components.Player.Get(e).GravityDir; g != 1 {
		t.Errorf("Expected gravity 1, got %v", g)
	}
}

func TestRemoveObject(t *testing.T) {
	w := newWorld()
	e := CreatePickup(w, 100, 100)

	RemoveObject(w, e)

	if _, ok := tags.Pickup.First(w); ok {
		t.Error("Expected the pickup entity to be gone")
	}
	spaceEntry, _ := components.Space.First(w)
	if n := len(components.Space.Get(spaceEntry).Objects()); n != 0 {
		t.Errorf("Expected the collision object to leave the space, got %d objects", n)
	}
}

func TestResizeSpaceKeepsObjects(t *testing.T) {
	w := newWorld()
	CreatePlayer(w, viewH)
	CreateObstacle(w, 300, 0, 50, 100, components.ObstacleGapTop, true, cfg.ModeFlap)

	ResizeSpace(w, 1024, 768)

	spaceEntry, _ := components.Space.First(w)
	space := components.Space.Get(spaceEntry)
	if n := len(space.Objects()); n != 2 {
		t.Errorf("Expected 2 objects in the new space, got %d", n)
	}
}

func TestParticleBurst(t *testing.T) {
	w := newWorld()
	SpawnParticleBurst(w, 10, 20, 12, nil, rand.New(rand.NewSource(3)))

	n := 0
	components.Particle.Each(w, func(e *donburi.Entry) {
		n++
		p := components.Particle.Get(e)
		if p.Life != 1 || p.X != 10 || p.Y != 20 {
			t.Errorf("Expected fresh particle at the origin, got %+v", p)
		}
		if p.Size < cfg.Particles.MinSize || p.Size > cfg.Particles.MaxSize {
			t.Errorf("Expected size in range, got %v", p.Size)
		}
	})
	if n != 12 {
		t.Errorf("Expected 12 particles, got %d", n)
	}
}
