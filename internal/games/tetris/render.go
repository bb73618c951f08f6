package tetris

import (
	"fmt"
	"time"

	"github.com/blockfall/blockfall/internal/core"
)

const (
	boardX = 2 // left edge of the board border
	boardY = 1 // top edge of the board border
)

// pieceColors maps each piece type to its display color.
var pieceColors = map[PieceType]core.Color{
	PieceI: core.ColorCyan,
	PieceO: core.ColorYellow,
	PieceT: core.ColorMagenta,
	PieceS: core.ColorGreen,
	PieceZ: core.ColorRed,
	PieceJ: core.ColorBlue,
	PieceL: core.ColorOrange,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.session.Snapshot()

	g.renderBoard(dst, snap)
	g.renderSidebar(dst, snap)

	switch {
	case g.won:
		g.renderOverlay(dst, "Sprint complete!", fmt.Sprintf("Time: %s  Score: %d", formatDuration(snap.Duration), snap.Score))
	case snap.Status == StatusGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case snap.Status == StatusPaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf(" %s ", g.Title()))
}

// renderBoard draws the playfield border, settled cells, the ghost outline
// and the active piece. Each board column is two characters wide.
func (g *Game) renderBoard(dst *core.Screen, snap Snapshot) {
	dst.DrawBox(core.NewRect(boardX, boardY, BoardCols*2+2, BoardRows+2))

	// Settled cells
	for r := 0; r < BoardRows; r++ {
		for c := 0; c < BoardCols; c++ {
			cell := snap.Board[r][c]
			if cell == CellEmpty {
				continue
			}
			g.drawCell(dst, r, c, pieceColors[cell.PieceFor()])
		}
	}

	if snap.Active == nil {
		return
	}

	// Ghost piece at the landing row, drawn before the active piece so
	// a piece already at rest covers its own ghost.
	if g.cfg.Gameplay.GhostPiece && snap.GhostRow > snap.Active.Row {
		for _, cell := range activeCellsAt(snap.Active, snap.GhostRow) {
			if cell.Row >= 0 {
				g.drawCellRune(dst, cell.Row, cell.Col, '░', core.ColorGray)
			}
		}
	}

	for _, cell := range snap.Active.Cells {
		if cell.Row >= 0 {
			g.drawCell(dst, cell.Row, cell.Col, pieceColors[snap.Active.Type])
		}
	}
}

// activeCellsAt returns the active piece's cells translated to the given row.
func activeCellsAt(a *ActiveView, row int) []Offset {
	p := ActivePiece{Type: a.Type, Rotation: a.Rotation, Row: row, Col: a.Col}
	return p.Cells()
}

// drawCell fills one board cell with a solid block.
func (g *Game) drawCell(dst *core.Screen, row, col int, color core.Color) {
	g.drawCellRune(dst, row, col, '█', color)
}

func (g *Game) drawCellRune(dst *core.Screen, row, col int, r rune, color core.Color) {
	x := boardX + 1 + col*2
	y := boardY + 1 + row
	dst.SetColored(x, y, r, color)
	dst.SetColored(x+1, y, r, color)
}

// renderSidebar draws the next queue, hold box and score block to the right
// of the board.
func (g *Game) renderSidebar(dst *core.Screen, snap Snapshot) {
	x := boardX + BoardCols*2 + 4
	y := boardY + 1

	dst.DrawText(x, y, "Next")
	y++
	for _, t := range snap.Next {
		y = g.drawMiniPiece(dst, x, y+1, t, pieceColors[t])
	}

	y += 2
	dst.DrawText(x, y, "Hold")
	if snap.Hold != nil {
		color := pieceColors[*snap.Hold]
		if snap.HoldUsed {
			color = core.ColorGray
		}
		y = g.drawMiniPiece(dst, x, y+2, *snap.Hold, color)
	} else {
		dst.DrawText(x, y+2, "(empty)")
		y += 3
	}

	y += 2
	dst.DrawText(x, y, fmt.Sprintf("Score  %d", snap.Score))
	dst.DrawText(x, y+1, fmt.Sprintf("Level  %d", snap.Level))
	dst.DrawText(x, y+2, fmt.Sprintf("Lines  %d", snap.Lines))
	if g.mode == ModeSprint {
		dst.DrawText(x, y+3, fmt.Sprintf("Goal   %d", sprintGoal))
		dst.DrawText(x, y+4, fmt.Sprintf("Time   %s", formatDuration(snap.Duration)))
	} else {
		dst.DrawText(x, y+3, fmt.Sprintf("Time   %s", formatDuration(snap.Duration)))
	}
}

// drawMiniPiece draws a piece in its spawn rotation at the given position,
// normalized so its top-left occupied cell lands on (x, y). Returns the y
// coordinate below the drawn piece.
func (g *Game) drawMiniPiece(dst *core.Screen, x, y int, t PieceType, color core.Color) int {
	cells := Shape(t, 0)
	minR, minC := cells[0].Row, cells[0].Col
	maxR := minR
	for _, c := range cells {
		minR = core.Min(minR, c.Row)
		minC = core.Min(minC, c.Col)
		maxR = core.Max(maxR, c.Row)
	}
	for _, c := range cells {
		px := x + (c.Col-minC)*2
		py := y + (c.Row - minR)
		dst.SetColored(px, py, '█', color)
		dst.SetColored(px+1, py, '█', color)
	}
	return y + (maxR - minR) + 1
}

// renderOverlay draws a centered two-line message box over the board.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	bx := (dst.Width() - boxW) / 2
	by := (dst.Height() - boxH) / 2

	for yy := by + 1; yy < by+boxH-1; yy++ {
		for xx := bx + 1; xx < bx+boxW-1; xx++ {
			dst.Set(xx, yy, ' ')
		}
	}
	dst.DrawBox(core.NewRect(bx, by, boxW, boxH))
	dst.DrawTextCentered(by+1, line1)
	dst.DrawTextCentered(by+3, line2)
}

// formatDuration renders a duration as m:ss for the HUD.
func formatDuration(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
