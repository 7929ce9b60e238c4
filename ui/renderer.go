package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-classic/game"
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

const (
	headerHeight = 40 // score strip above the board
	fontSize     = 20
	smallFont    = 14
)

var (
	colorBoardLight = rl.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 255}
	colorBoardDark  = rl.Color{R: 0xE8, G: 0xE8, B: 0xE8, A: 255}
	colorHead       = rl.Color{R: 0x76, G: 0xFF, B: 0x03, A: 255}
	colorBody       = rl.Color{R: 0x55, G: 0x8B, B: 0x2F, A: 255}
	colorFruit      = rl.Color{R: 0xFF, G: 0x63, B: 0x47, A: 255}
	colorStem       = rl.Color{R: 0x8B, G: 0x45, B: 0x13, A: 255}
	colorLeaf       = rl.Color{R: 0x22, G: 0x8B, B: 0x22, A: 255}
	colorHeader     = rl.Color{R: 0x33, G: 0x33, B: 0x33, A: 255}
)

// StatsSource supplies the session line under the score.
type StatsSource interface {
	Summary() manager.Summary
}

// Renderer keeps the latest frame and overlay and draws them on every window
// frame. It implements game.Renderer and game.Overlay.
type Renderer struct {
	cellSize int32
	grid     types.Grid
	frame    game.Frame
	overlay  *game.OverlayInfo
	stats    StatsSource
}

func NewRenderer(grid types.Grid, cellSize int, stats StatsSource) *Renderer {
	return &Renderer{
		cellSize: int32(cellSize),
		grid:     grid,
		frame:    game.Frame{Grid: grid},
		stats:    stats,
	}
}

// WindowSize returns the pixel size the window needs for the board and header.
func (r *Renderer) WindowSize() (int32, int32) {
	return r.cellSize * int32(r.grid.Width), r.cellSize*int32(r.grid.Height) + headerHeight
}

func (r *Renderer) Render(f game.Frame) {
	r.frame = f
}

func (r *Renderer) ShowOverlay(info game.OverlayInfo) {
	r.overlay = &info
}

func (r *Renderer) HideOverlay() {
	r.overlay = nil
}

func (r *Renderer) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colorHeader)

	r.drawHeader()
	r.drawBoard()
	if r.frame.HasFruit {
		r.drawFruit(r.frame.Fruit)
	}
	r.drawSnake()

	if r.frame.State == game.Paused && r.overlay == nil {
		r.drawBanner("PAUSED")
	}
	if r.overlay != nil {
		r.drawOverlay(*r.overlay)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawHeader() {
	rl.DrawText(fmt.Sprintf("Score: %d", r.frame.Score), 10, 10, fontSize, rl.White)

	record := fmt.Sprintf("Record: %d", r.frame.HighScore)
	width, _ := r.WindowSize()
	rl.DrawText(record, width-rl.MeasureText(record, fontSize)-10, 10, fontSize, rl.White)

	if r.stats == nil {
		return
	}
	s := r.stats.Summary()
	if s.GamesPlayed == 0 {
		return
	}
	line := fmt.Sprintf("Games %d  Avg %.1f  Best %d", s.GamesPlayed, s.AverageScore, s.MaxScore)
	rl.DrawText(line, (width-rl.MeasureText(line, smallFont))/2, 14, smallFont, rl.LightGray)
}

// cellOrigin returns the top-left pixel of a cell.
func (r *Renderer) cellOrigin(p types.Point) (int32, int32) {
	return int32(p.X) * r.cellSize, int32(p.Y)*r.cellSize + headerHeight
}

func (r *Renderer) drawBoard() {
	for y := 0; y < r.grid.Height; y++ {
		for x := 0; x < r.grid.Width; x++ {
			color := colorBoardLight
			if (x+y)%2 != 0 {
				color = colorBoardDark
			}
			px, py := r.cellOrigin(types.Point{X: x, Y: y})
			rl.DrawRectangle(px, py, r.cellSize, r.cellSize, color)
		}
	}
}

func (r *Renderer) drawSnake() {
	for i, p := range r.frame.Body {
		// the head may sit outside the board on the frame that ended the game
		if !r.grid.Contains(p) {
			continue
		}
		px, py := r.cellOrigin(p)
		color := colorBody
		if i == 0 {
			color = colorHead
		}
		rl.DrawRectangle(px, py, r.cellSize, r.cellSize, color)
		if i == 0 {
			r.drawEyes(px, py)
		}
	}
}

// drawEyes draws two eyes whose pupils look at the fruit.
func (r *Renderer) drawEyes(px, py int32) {
	g := float32(r.cellSize)
	x, y := float32(px), float32(py)
	eyeRadius := g * 0.18
	pupilRadius := g * 0.09

	eyes := []rl.Vector2{
		{X: x + g*0.3, Y: y + g*0.3},
		{X: x + g*0.7, Y: y + g*0.3},
	}

	var offX, offY float32
	if r.frame.HasFruit {
		fx, fy := r.cellOrigin(r.frame.Fruit)
		vx := float32(fx) - x
		vy := float32(fy) - y
		dist := float32(math.Sqrt(float64(vx*vx + vy*vy)))
		if dist > 0 {
			shift := eyeRadius - pupilRadius
			offX = vx / dist * shift
			offY = vy / dist * shift
		}
	}

	for _, e := range eyes {
		rl.DrawCircleV(e, eyeRadius, rl.White)
		rl.DrawCircleV(rl.Vector2{X: e.X + offX, Y: e.Y + offY}, pupilRadius, rl.Black)
	}
}

func (r *Renderer) drawFruit(p types.Point) {
	px, py := r.cellOrigin(p)
	g := float32(r.cellSize)
	x, y := float32(px), float32(py)
	center := rl.Vector2{X: x + g/2, Y: y + g/2}
	radius := g * 0.45

	rl.DrawCircleV(center, radius, colorFruit)
	rl.DrawLineEx(
		rl.Vector2{X: center.X, Y: center.Y - radius*0.6},
		rl.Vector2{X: center.X + g*0.05, Y: y + g*0.1},
		g*0.12, colorStem)
	rl.DrawEllipse(int32(center.X+g*0.15), int32(y+g*0.25), g*0.15, g*0.08, colorLeaf)
	rl.DrawCircleSector(
		rl.Vector2{X: center.X - radius*0.4, Y: center.Y - radius*0.4},
		radius*0.5, 252, 342, 8, rl.Fade(rl.White, 0.7))
}

func (r *Renderer) drawBanner(text string) {
	width, height := r.WindowSize()
	rl.DrawRectangle(0, height/2-20, width, 40, rl.Fade(rl.Black, 0.5))
	rl.DrawText(text, (width-rl.MeasureText(text, fontSize))/2, height/2-fontSize/2, fontSize, rl.White)
}

func (r *Renderer) drawOverlay(info game.OverlayInfo) {
	width, height := r.WindowSize()
	rl.DrawRectangle(0, headerHeight, width, height-headerHeight, rl.Fade(rl.Black, 0.7))

	lines := []string{info.Title}
	switch info.Mode {
	case game.ModeWelcome:
		lines = append(lines,
			"Use the arrows (or WASD) to move.",
			fmt.Sprintf("Record: %d", info.HighScore),
			"Press Enter to start")
	case game.ModeGameOver:
		lines = append(lines,
			fmt.Sprintf("Score: %d", info.Score),
			fmt.Sprintf("Record: %d", info.HighScore),
			"Press Enter to restart")
	}

	lineHeight := int32(fontSize + 10)
	y := headerHeight + (height-headerHeight-lineHeight*int32(len(lines)))/2
	for i, line := range lines {
		size := int32(fontSize)
		if i == 0 {
			size = fontSize + 8
		}
		rl.DrawText(line, (width-rl.MeasureText(line, size))/2, y, size, rl.White)
		y += lineHeight
	}
}
