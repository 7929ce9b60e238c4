package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake-classic/game"
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

const cellWidth = 2 // terminal columns per board cell

var (
	colorBoardLight = tcell.GetColor("#FFFFFF")
	colorBoardDark  = tcell.GetColor("#E8E8E8")

	styleBoardLight = tcell.StyleDefault.Background(colorBoardLight)
	styleBoardDark  = tcell.StyleDefault.Background(colorBoardDark)
	styleHead       = tcell.StyleDefault.Background(tcell.GetColor("#76FF03")).Foreground(tcell.ColorBlack)
	styleBody       = tcell.StyleDefault.Background(tcell.GetColor("#558B2F"))
	styleFruit      = tcell.StyleDefault.Foreground(tcell.GetColor("#FF6347"))
	styleText       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleOverlay    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
)

type StatsSource interface {
	Summary() manager.Summary
}

// Screen draws frames and overlays onto a tcell screen. It implements
// game.Renderer and game.Overlay.
type Screen struct {
	screen  tcell.Screen
	grid    types.Grid
	frame   game.Frame
	overlay *game.OverlayInfo
	stats   StatsSource
}

func NewScreen(s tcell.Screen, grid types.Grid, stats StatsSource) *Screen {
	return &Screen{
		screen: s,
		grid:   grid,
		frame:  game.Frame{Grid: grid},
		stats:  stats,
	}
}

func (s *Screen) Render(f game.Frame) {
	s.frame = f
	s.Draw()
}

func (s *Screen) ShowOverlay(info game.OverlayInfo) {
	s.overlay = &info
	s.Draw()
}

func (s *Screen) HideOverlay() {
	s.overlay = nil
	s.Draw()
}

func (s *Screen) Draw() {
	s.screen.Clear()
	s.drawHeader()

	for y := 0; y < s.grid.Height; y++ {
		for x := 0; x < s.grid.Width; x++ {
			style := styleBoardLight
			if (x+y)%2 != 0 {
				style = styleBoardDark
			}
			s.putCell(types.Point{X: x, Y: y}, "  ", style)
		}
	}

	if s.frame.HasFruit {
		bg := colorBoardLight
		if (s.frame.Fruit.X+s.frame.Fruit.Y)%2 != 0 {
			bg = colorBoardDark
		}
		s.putCell(s.frame.Fruit, "●", styleFruit.Background(bg))
	}

	for i, p := range s.frame.Body {
		if !s.grid.Contains(p) {
			continue
		}
		if i == 0 {
			s.putCell(p, headGlyph(s.frame.Direction), styleHead)
		} else {
			s.putCell(p, "  ", styleBody)
		}
	}

	if s.frame.State == game.Paused && s.overlay == nil {
		s.drawBox([]string{"PAUSED", "Space or P to resume"})
	}
	if s.overlay != nil {
		s.drawBox(overlayLines(*s.overlay))
	}
	s.screen.Show()
}

func (s *Screen) drawHeader() {
	s.putText(0, 0, fmt.Sprintf("Score: %d", s.frame.Score), styleText)
	record := fmt.Sprintf("Record: %d", s.frame.HighScore)
	s.putText(s.grid.Width*cellWidth-len(record), 0, record, styleText)

	if s.stats == nil {
		return
	}
	if sum := s.stats.Summary(); sum.GamesPlayed > 0 {
		line := fmt.Sprintf("Games %d  Avg %.1f  Best %d", sum.GamesPlayed, sum.AverageScore, sum.MaxScore)
		s.putText(0, s.grid.Height+1, line, styleText)
	}
}

// putCell writes text into a board cell, padding to the cell width.
func (s *Screen) putCell(p types.Point, text string, style tcell.Style) {
	col := p.X * cellWidth
	row := p.Y + 1
	runes := []rune(text)
	for i := 0; i < cellWidth; i++ {
		r := ' '
		if i < len(runes) {
			r = runes[i]
		}
		s.screen.SetContent(col+i, row, r, nil, style)
	}
}

func (s *Screen) putText(col, row int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.screen.SetContent(col+i, row, r, nil, style)
	}
}

func (s *Screen) drawBox(lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	boardCols := s.grid.Width * cellWidth
	left := max((boardCols-width)/2, 0)
	top := max((s.grid.Height-len(lines))/2, 0) + 1

	for row := top - 1; row <= top+len(lines); row++ {
		for col := left; col < left+width; col++ {
			s.screen.SetContent(col, row, ' ', nil, styleOverlay)
		}
	}
	for i, l := range lines {
		pad := (width - len([]rune(l))) / 2
		s.putText(left+pad, top+i, l, styleOverlay)
	}
}

func overlayLines(info game.OverlayInfo) []string {
	lines := []string{info.Title}
	switch info.Mode {
	case game.ModeWelcome:
		lines = append(lines,
			"Arrows or WASD to move",
			fmt.Sprintf("Record: %d", info.HighScore),
			"Enter to start, Esc to quit")
	case game.ModeGameOver:
		lines = append(lines,
			fmt.Sprintf("Score: %d", info.Score),
			fmt.Sprintf("Record: %d", info.HighScore),
			"Enter to restart, Esc to quit")
	}
	return lines
}

func headGlyph(dir types.Point) string {
	switch types.FromPoint(dir) {
	case types.UP:
		return "▲"
	case types.DOWN:
		return "▼"
	case types.LEFT:
		return "◀"
	default:
		return "▶"
	}
}
