package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"snake-classic/game"
	"snake-classic/game/types"
)

func TestWindowSize(t *testing.T) {
	r := NewRenderer(types.Grid{Width: 20, Height: 20}, 20, nil)
	w, h := r.WindowSize()
	assert.Equal(t, int32(400), w)
	assert.Equal(t, int32(400+headerHeight), h)
}

func TestRendererKeepsLatestFrameAndOverlay(t *testing.T) {
	r := NewRenderer(types.Grid{Width: 10, Height: 10}, 16, nil)
	assert.Nil(t, r.overlay)

	r.ShowOverlay(game.OverlayInfo{Title: game.WelcomeTitle, Mode: game.ModeWelcome})
	if assert.NotNil(t, r.overlay) {
		assert.Equal(t, game.ModeWelcome, r.overlay.Mode)
	}

	f := game.Frame{Score: 3, State: game.Running}
	r.Render(f)
	r.HideOverlay()
	assert.Nil(t, r.overlay)
	assert.Equal(t, 3, r.frame.Score)
}

func TestKeyBindingsCoverEveryCommand(t *testing.T) {
	seen := map[game.Command]bool{}
	for _, cmd := range keyBindings {
		seen[cmd] = true
	}
	for _, cmd := range []game.Command{
		game.CommandUp, game.CommandDown, game.CommandLeft, game.CommandRight,
		game.CommandPause, game.CommandConfirm,
	} {
		assert.True(t, seen[cmd], cmd.String())
	}
	assert.Equal(t, game.CommandPause, keyBindings[rl.KeySpace])
}
