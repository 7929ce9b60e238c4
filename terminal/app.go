package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake-classic/game"
)

// App runs the game in a terminal. Input and ticks are handled on the
// goroutine that calls Run; a helper goroutine only forwards tcell events.
type App struct {
	tty    tcell.Screen
	view   *Screen
	ctrl   *game.Controller
	mapper *game.InputMapper
	ticks  *game.TickerScheduler
}

// Open initializes the terminal. Call Close when done.
func Open() (tcell.Screen, error) {
	tty, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := tty.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	tty.HideCursor()
	return tty, nil
}

func NewApp(tty tcell.Screen, view *Screen, ctrl *game.Controller, ticks *game.TickerScheduler) *App {
	return &App{
		tty:    tty,
		view:   view,
		ctrl:   ctrl,
		mapper: game.NewInputMapper(ctrl),
		ticks:  ticks,
	}
}

// Run blocks until the player quits.
func (a *App) Run() {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := a.tty.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	a.view.Draw()
	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case <-a.ticks.C():
			a.ctrl.Tick()
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev.Key(), ev.Rune()) {
			return false
		}
		if cmd, ok := CommandFor(ev.Key(), ev.Rune()); ok {
			a.mapper.Handle(cmd)
		}
	case *tcell.EventResize:
		a.tty.Sync()
		a.view.Draw()
	}
	return true
}

func (a *App) Close() {
	a.ticks.Stop()
	a.tty.Fini()
}
