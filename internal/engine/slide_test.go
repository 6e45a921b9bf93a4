package engine

import (
	"slices"
	"testing"
)

func TestSlideRowMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{
			name:     "simple merge",
			input:    []int{2, 2, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "leftmost pair wins over gap",
			input:    []int{2, 0, 2, 2},
			expected: []int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    []int{0, 0, 2, 2},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merged tile does not merge again",
			input:    []int{4, 2, 2, 0},
			expected: []int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "empty row",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    []int{0, 4, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    0,
		},
		{
			name:     "odd length",
			input:    []int{8, 8, 8, 0, 8},
			expected: []int{16, 16, 0, 0, 0},
			score:    32,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideRow(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideRow(%v) score = %d, want %d", tt.input, score, tt.score)
			}
			if len(result) != len(tt.input) {
				t.Errorf("slideRow changed row length: %d -> %d", len(tt.input), len(result))
			}
		})
	}
}

func TestCompactIdempotent(t *testing.T) {
	values := []int{0, 2, 4, 8}
	row := make([]int, 4)

	var walk func(i int)
	walk = func(i int) {
		if i == len(row) {
			once := compact(row)
			twice := compact(once)
			if !slices.Equal(once, twice) {
				t.Errorf("compact not idempotent for %v: %v vs %v", row, once, twice)
			}
			return
		}
		for _, v := range values {
			row[i] = v
			walk(i + 1)
		}
	}
	walk(0)
}

func TestSlideLeft(t *testing.T) {
	board := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Grid{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	result, score := Slide(board, DirLeft)

	if !result.Equal(expected) {
		t.Errorf("Slide left: got\n%v\nwant\n%v", result, expected)
	}

	expectedScore := 4 + 8 + 8
	if score != expectedScore {
		t.Errorf("Slide left score = %d, want %d", score, expectedScore)
	}
}

func TestSlideRight(t *testing.T) {
	board := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Grid{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	result, _ := Slide(board, DirRight)

	if !result.Equal(expected) {
		t.Errorf("Slide right: got\n%v\nwant\n%v", result, expected)
	}
}

func TestSlideUp(t *testing.T) {
	board := Grid{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Grid{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, _ := Slide(board, DirUp)

	if !result.Equal(expected) {
		t.Errorf("Slide up: got\n%v\nwant\n%v", result, expected)
	}
}

func TestSlideDown(t *testing.T) {
	board := Grid{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Grid{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	result, _ := Slide(board, DirDown)

	if !result.Equal(expected) {
		t.Errorf("Slide down: got\n%v\nwant\n%v", result, expected)
	}
}

func TestSlideNonSquare(t *testing.T) {
	board := Grid{
		{2, 0, 0, 0, 2},
		{2, 0, 4, 0, 0},
		{0, 0, 4, 0, 2},
	}

	up, _ := Slide(board, DirUp)
	expectedUp := Grid{
		{4, 0, 8, 0, 4},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}
	if !up.Equal(expectedUp) {
		t.Errorf("Slide up on 3x5: got\n%v\nwant\n%v", up, expectedUp)
	}

	down, _ := Slide(board, DirDown)
	expectedDown := Grid{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{4, 0, 8, 0, 4},
	}
	if !down.Equal(expectedDown) {
		t.Errorf("Slide down on 3x5: got\n%v\nwant\n%v", down, expectedDown)
	}
}

func TestCanSlideNoChange(t *testing.T) {
	board := Grid{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	if CanSlide(board, DirLeft) {
		t.Error("CanSlide(left) should be false for left-aligned tiles")
	}
	if !CanSlide(board, DirRight) {
		t.Error("CanSlide(right) should be true")
	}
	if CanSlide(board, DirUp) {
		t.Error("CanSlide(up) should be false for tiles on the top row")
	}
	if !CanSlide(board, DirDown) {
		t.Error("CanSlide(down) should be true")
	}
}

func TestSlideUnknownDirection(t *testing.T) {
	board := Grid{{2, 2}, {0, 0}}

	result, score := Slide(board, Direction(42))
	if !result.Equal(board) || score != 0 {
		t.Errorf("Slide with unknown direction changed the board: %v (+%d)", result, score)
	}
	if CanSlide(board, Direction(42)) {
		t.Error("CanSlide with unknown direction should be false")
	}
}
