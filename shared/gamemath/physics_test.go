package gamemath

import "testing"

func TestClampVertical(t *testing.T) {
	tests := []struct {
		name        string
		y           float64
		wantY       float64
		wantTouched int
	}{
		{"inside", 100, 100, 0},
		{"above ceiling", -4, 0, -1},
		{"below floor", 500, 420, 1},
		{"exactly on floor", 420, 420, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			y, touched := ClampVertical(tc.y, 30, 450)
			if y != tc.wantY || touched != tc.wantTouched {
				t.Errorf("Expected (%v, %d), got (%v, %d)", tc.wantY, tc.wantTouched, y, touched)
			}
		})
	}
}

func TestOutOfBounds(t *testing.T) {
	if OutOfBounds(0, 30, 450) {
		t.Error("Expected y=0 to be inside")
	}
	if OutOfBounds(420, 30, 450) {
		t.Error("Expected resting on the bottom edge to be inside")
	}
	if !OutOfBounds(-0.1, 30, 450) {
		t.Error("Expected negative y to be outside")
	}
	if !OutOfBounds(421, 30, 450) {
		t.Error("Expected y past height-size to be outside")
	}
}

func TestDecay(t *testing.T) {
	v := 20.0
	prev := v
	for i := 0; i < 200 && v > 0; i++ {
		v = Decay(v, 0.9, 0.1)
		if v >= prev {
			t.Fatalf("Expected strictly decreasing shake, got %v after %v", v, prev)
		}
		prev = v
	}
	if v != 0 {
		t.Errorf("Expected shake to reach zero, got %v", v)
	}
}

func TestApplyGravity(t *testing.T) {
	if got := ApplyGravity(1, 0.5, 1); got != 1.5 {
		t.Errorf("Expected 1.5, got %v", got)
	}
	if got := ApplyGravity(1, 0.5, -1); got != 0.5 {
		t.Errorf("Expected 0.5, got %v", got)
	}
}
