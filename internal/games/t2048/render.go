package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
	minWidth   = 36
)

// tilePalette maps tile values to background colors, doubling per step.
var tilePalette = []core.Color{
	core.ColorTile2,
	core.ColorTile4,
	core.ColorTile8,
	core.ColorTile16,
	core.ColorTile32,
	core.ColorTile64,
	core.ColorTile128,
	core.ColorTile256,
	core.ColorTile512,
	core.ColorTile1K,
	core.ColorTile2K,
}

// TileColors returns the foreground and background of a tile.
// Small tiles get dark text, everything from 8 up gets white text.
func TileColors(value int) (fg, bg core.Color) {
	step := 0
	for v := value; v > 2; v /= 2 {
		step++
	}
	if step >= len(tilePalette) {
		return core.ColorBrightWhite, core.ColorTileMax
	}
	if value <= 4 {
		return core.ColorBlack, tilePalette[step]
	}
	return core.ColorBrightWhite, tilePalette[step]
}

// formatValue fits a tile value into the cell, switching to k/M suffixes.
func formatValue(value int) string {
	s := strconv.Itoa(value)
	if len(s) < cellWidth {
		return s
	}
	if value < 1<<20 {
		return strconv.Itoa(value/1024) + "k"
	}
	return strconv.Itoa(value/(1<<20)) + "M"
}

// layoutSize returns the minimum screen size for the current board.
func (g *Game) layoutSize() (int, int) {
	boardW, boardH := g.boardSize()
	return max(boardW, minWidth), hudHeight + boardH + 2
}

func (g *Game) boardSize() (int, int) {
	dim := g.cfg.Board.Dimension
	return dim*cellWidth + 1, dim*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	_, layoutH := g.layoutSize()
	area := core.CenteredRect(boardW, layoutH, g.screenW, g.screenH)
	board := core.NewRect(area.X, area.Y+hudHeight, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderAnimations(dst, board)
	g.renderOverlays(dst, board)

	dst.DrawTextColor(max((g.screenW-len(g.Controls()))/2, 0), board.Bottom()+1, g.Controls(), core.ColorGray, core.ColorDefault)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.layoutSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws title, score, best score and queue state above the board.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	y := board.Y - hudHeight

	title := g.variant.Title
	dst.DrawTextColor(board.X+(board.W-len(title))/2, y, title, core.ColorYellow, core.ColorDefault)

	score := g.model.Score()
	scoreStr := fmt.Sprintf("Score: %d", score)
	dst.DrawText(board.X, y+1, scoreStr)
	if gain := g.anim.ScoreGain(); gain > 0 {
		dst.DrawTextColor(board.X+len(scoreStr)+1, y+1, fmt.Sprintf("+%d", gain), core.ColorGreen, core.ColorDefault)
	}

	bestStr := fmt.Sprintf("Best: %d", max(g.best, score))
	dst.DrawText(board.Right()-len(bestStr), y+1, bestStr)

	goalStr := fmt.Sprintf("Goal: %d", g.cfg.Board.Threshold)
	dst.DrawTextColor(board.X, y+2, goalStr, core.ColorGray, core.ColorDefault)

	info := fmt.Sprintf("Moves: %d", g.moves)
	if n := g.model.Scheduler().Len(); n > 0 {
		info = fmt.Sprintf("Queued: %d", n)
	}
	dst.DrawTextColor(board.Right()-len(info), y+2, info, core.ColorGray, core.ColorDefault)
}

// renderBoard draws the grid and the settled tiles.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dim := g.cfg.Board.Dimension
	grid := core.ColorDarkGray

	for y := range dim + 1 {
		for x := range dim + 1 {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == dim:
				corner = '┐'
			case y == dim && x == 0:
				corner = '└'
			case y == dim && x == dim:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == dim:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == dim:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetCell(px, py, core.Cell{Rune: corner, Color: grid})

			if x < dim {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, core.Cell{Rune: '─', Color: grid})
				}
			}
			if y < dim {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, core.Cell{Rune: '│', Color: grid})
				}
			}
		}
	}

	b := g.model.Board()
	for row := range dim {
		for col := range dim {
			pos := engine.Position{Row: row, Col: col}
			x, y := cellOrigin(board, pos)
			value, ok := b.At(pos).Value()
			if !ok || g.anim.hidden(pos) {
				dst.SetCell(x+(cellWidth-1)/2, y, core.Cell{Rune: '·', Color: grid})
				continue
			}
			drawTile(dst, x, y, cellWidth-1, value)
		}
	}
}

// renderAnimations draws sliding and popping tiles over the board.
func (g *Game) renderAnimations(dst *core.Screen, board core.Rect) {
	for _, s := range g.anim.Slides() {
		fx, fy := cellOrigin(board, s.From)
		tx, ty := cellOrigin(board, s.To)
		t := easeOutQuad(s.Progress)
		drawTile(dst, core.Lerp(fx, tx, t), core.Lerp(fy, ty, t), cellWidth-1, s.Value)
	}

	if g.anim.Phase() != PhasePop {
		return
	}
	for _, p := range g.anim.Pops() {
		x, y := cellOrigin(board, p.To)
		// New tiles grow into the cell, merged tiles swell over the grid lines and settle.
		w := core.Lerp(2, cellWidth-1, easeOutQuad(p.Progress))
		if p.Merged {
			w = core.Lerp(cellWidth+1, cellWidth-1, easeOutQuad(p.Progress))
		}
		drawTile(dst, x+(cellWidth-1-w)/2, y, w, p.Value)
	}
}

// cellOrigin returns the top-left interior screen cell of a board position.
func cellOrigin(board core.Rect, p engine.Position) (int, int) {
	return board.X + p.Col*cellWidth + 1, board.Y + p.Row*cellHeight + 1
}

// drawTile paints a colored tile of the given width with its value centered.
func drawTile(dst *core.Screen, x, y, width, value int) {
	fg, bg := TileColors(value)
	dst.FillRect(core.NewRect(x, y, width, 1), core.Cell{Rune: ' ', Background: bg})

	label := formatValue(value)
	if len(label) > width {
		return
	}
	dst.DrawTextColor(x+(width-len(label))/2, y, label, fg, bg)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX, centerY := board.Center()

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.model.Status() == engine.StatusWon:
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!", fmt.Sprintf("Score: %d", g.model.Score()), "Press R to restart")
	case g.model.Status() == engine.StatusLost:
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", fmt.Sprintf("Max tile: %d", g.MaxTile()), "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorYellow)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
