package core

import "testing"

func TestRectWithin(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		w, h     int
		expected bool
	}{
		{"fits exactly", Rect{X: 0, Y: 0, W: 80, H: 24}, 80, 24, true},
		{"inside", Rect{X: 10, Y: 2, W: 20, H: 10}, 80, 24, true},
		{"too wide", Rect{X: 70, Y: 0, W: 20, H: 10}, 80, 24, false},
		{"too tall", Rect{X: 0, Y: 20, W: 10, H: 10}, 80, 24, false},
		{"negative origin", Rect{X: -1, Y: 0, W: 10, H: 10}, 80, 24, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Within(tc.w, tc.h); got != tc.expected {
				t.Errorf("Within(%d, %d) = %v, expected %v", tc.w, tc.h, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 5, Y: 10, W: 20, H: 15}

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCenterIn(t *testing.T) {
	r := CenterIn(20, 10, 80, 24)
	if r.X != 30 || r.Y != 7 {
		t.Errorf("CenterIn origin = (%d, %d), expected (30, 7)", r.X, r.Y)
	}

	// Larger than the screen: origin clamps to zero
	r = CenterIn(100, 30, 80, 24)
	if r.X != 0 || r.Y != 0 {
		t.Errorf("CenterIn origin = (%d, %d), expected (0, 0)", r.X, r.Y)
	}
	if r.Within(80, 24) {
		t.Error("oversized rect should not fit")
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 {
		t.Error("Min(3, 5) should be 3")
	}
	if Min(5, 3) != 3 {
		t.Error("Min(5, 3) should be 3")
	}
	if Max(3, 5) != 5 {
		t.Error("Max(3, 5) should be 5")
	}
	if Max(5, 3) != 5 {
		t.Error("Max(5, 3) should be 5")
	}
}

func TestTileColor(t *testing.T) {
	if TileColor(0) != ColorGray {
		t.Errorf("TileColor(0) = %d, expected gray", TileColor(0))
	}
	if TileColor(2) != ColorWhite {
		t.Errorf("TileColor(2) = %d, expected white", TileColor(2))
	}
	if TileColor(4) == TileColor(8) {
		t.Error("neighbouring tile values should have different colors")
	}

	// Very large tiles wrap around the palette instead of panicking
	_ = TileColor(1 << 40)
}
