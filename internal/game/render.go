package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/term2048/internal/core"
)

const (
	minCellWidth = 6 // Inner width of a cell, excluding the left border

	helpMoves   = "(W)Up (S)Down (A)Left (D)Right"
	helpControl = "    (R)Restart (Q)Exit"
	winText     = "          YOU WIN"
	loseText    = "         GAME OVER"
)

// Render draws the session to the screen.
func (s *Session) Render(dst *core.Screen) {
	RenderSnapshot(dst, s.Snapshot())
}

// cellWidth returns the inner cell width needed to fit every tile on the board
// with at least one space of padding.
func cellWidth(snap Snapshot) int {
	w := minCellWidth
	if n := len(strconv.Itoa(snap.MaxTile)) + 1; n > w {
		w = n
	}
	return w
}

// layout returns the text lines of the frame, without colour.
// Board rows are at lines[boardTop+2*r+1].
func layout(snap Snapshot, cw int) (lines []string, boardTop int) {
	lines = append(lines, "SCORE: "+strconv.Itoa(snap.Score))
	if snap.HighScore != 0 {
		lines = append(lines, "HIGHSCORE: "+strconv.Itoa(snap.HighScore))
	}
	boardTop = len(lines)

	sep := "+" + strings.Repeat(strings.Repeat("-", cw)+"+", snap.Grid.Width())
	for _, row := range snap.Grid {
		lines = append(lines, sep)

		var sb strings.Builder
		for _, v := range row {
			sb.WriteByte('|')
			sb.WriteString(formatTile(v, cw))
		}
		sb.WriteByte('|')
		lines = append(lines, sb.String())
	}
	lines = append(lines, sep)

	switch {
	case snap.Win:
		lines = append(lines, winText)
	case snap.GameOver:
		lines = append(lines, loseText)
	default:
		lines = append(lines, helpMoves)
	}
	lines = append(lines, helpControl)

	return lines, boardTop
}

// formatTile centers v in cw-1 columns followed by a trailing space.
// Empty cells are blank.
func formatTile(v, cw int) string {
	if v == 0 {
		return strings.Repeat(" ", cw)
	}
	text := strconv.Itoa(v)
	pad := cw - 1 - len(text)
	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left+1)
}

// RenderSnapshot draws snap centered on dst. It reads nothing but the
// snapshot, so any front end can reuse it.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	if snap.Grid.Height() == 0 {
		return
	}

	cw := cellWidth(snap)
	lines, boardTop := layout(snap, cw)

	w := 0
	for _, l := range lines {
		w = core.Max(w, len(l))
	}
	area := core.CenterIn(w, len(lines), dst.Width(), dst.Height())
	if !area.Within(dst.Width(), dst.Height()) {
		renderTooSmall(dst, w, len(lines))
		return
	}

	for i, l := range lines {
		dst.DrawText(area.X, area.Y+i, l)
	}

	// Recolour the tile digits.
	for r, row := range snap.Grid {
		y := area.Y + boardTop + 2*r + 1
		for c, v := range row {
			if v == 0 {
				continue
			}
			x := area.X + c*(cw+1) + 1
			dst.DrawTextColor(x, y, formatTile(v, cw), core.TileColor(v))
		}
	}

	statusY := area.Y + len(lines) - 2
	switch {
	case snap.Win:
		dst.DrawTextColor(area.X, statusY, winText, core.ColorBrightGreen)
	case snap.GameOver:
		dst.DrawTextColor(area.X, statusY, loseText, core.ColorBrightRed)
	}
}

// renderTooSmall shows a "window too small" message with the size needed.
func renderTooSmall(dst *core.Screen, needW, needH int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", needW, needH))
}
