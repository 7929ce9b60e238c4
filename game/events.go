package game

import (
	"time"

	"snake-classic/game/types"
)

// Sound names a discrete audio cue. Players get no payload beyond the name.
type Sound int

const (
	SoundEat Sound = iota
	SoundAchievement
	SoundGameOver
	SoundMusicStart
	SoundMusicPause
	SoundMusicResume
)

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundAchievement:
		return "achievement"
	case SoundGameOver:
		return "gameOver"
	case SoundMusicStart:
		return "musicStart"
	case SoundMusicPause:
		return "musicPause"
	case SoundMusicResume:
		return "musicResume"
	default:
		return "unknown"
	}
}

// OverlayMode selects which modal screen is shown.
type OverlayMode int

const (
	ModeWelcome OverlayMode = iota
	ModeGameOver
)

// OverlayInfo is everything a modal screen needs to draw itself.
type OverlayInfo struct {
	Title     string
	Score     int
	HighScore int
	Mode      OverlayMode
}

// Frame is a read-only snapshot handed to renderers after each tick.
type Frame struct {
	Grid      types.Grid
	Body      []types.Point // head first, nil before the first game
	Direction types.Point
	Fruit     types.Point
	HasFruit  bool
	Score     int
	HighScore int
	Speed     time.Duration
	State     State
}

// Result describes a finished game.
type Result struct {
	GameID    string
	Score     int
	HighScore int
	StartedAt time.Time
	EndedAt   time.Time
}

type Renderer interface {
	Render(f Frame)
}

// AudioPlayer must not block the caller; playback failures are its own business.
type AudioPlayer interface {
	Play(s Sound)
}

type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

type Overlay interface {
	ShowOverlay(info OverlayInfo)
	HideOverlay()
}

type GameOverListener interface {
	GameOver(r Result)
}

type noopRenderer struct{}

func (noopRenderer) Render(Frame) {}

type noopAudio struct{}

func (noopAudio) Play(Sound) {}

type noopStore struct{}

func (noopStore) LoadHighScore() int { return 0 }
func (noopStore) SaveHighScore(int)  {}

type noopOverlay struct{}

func (noopOverlay) ShowOverlay(OverlayInfo) {}
func (noopOverlay) HideOverlay()            {}

type noopScheduler struct{}

func (noopScheduler) Schedule(time.Duration) {}
func (noopScheduler) Cancel()                {}
