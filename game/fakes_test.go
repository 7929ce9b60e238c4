package game

import (
	"time"

	"snake-classic/game/types"
)

// queueSource hands out queued values; Intn(1) never consumes one.
type queueSource struct {
	values []int
}

func (q *queueSource) Intn(n int) int {
	if n == 1 {
		return 0
	}
	if len(q.values) == 0 {
		return 0
	}
	v := q.values[0]
	q.values = q.values[1:]
	return v % n
}

func (q *queueSource) push(values ...int) {
	q.values = append(q.values, values...)
}

type recordingScheduler struct {
	scheduled []time.Duration
	cancels   int
	active    bool
}

func (s *recordingScheduler) Schedule(d time.Duration) {
	s.scheduled = append(s.scheduled, d)
	s.active = true
}

func (s *recordingScheduler) Cancel() {
	s.cancels++
	s.active = false
}

type recordingAudio struct {
	played []Sound
}

func (a *recordingAudio) Play(s Sound) {
	a.played = append(a.played, s)
}

func (a *recordingAudio) count(s Sound) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}

type recordingOverlay struct {
	shown   []OverlayInfo
	visible bool
}

func (o *recordingOverlay) ShowOverlay(info OverlayInfo) {
	o.shown = append(o.shown, info)
	o.visible = true
}

func (o *recordingOverlay) HideOverlay() {
	o.visible = false
}

func (o *recordingOverlay) last() OverlayInfo {
	return o.shown[len(o.shown)-1]
}

type memoryStore struct {
	high  int
	saves []int
}

func (m *memoryStore) LoadHighScore() int { return m.high }

func (m *memoryStore) SaveHighScore(score int) {
	m.high = score
	m.saves = append(m.saves, score)
}

type recordingRenderer struct {
	frames []Frame
}

func (r *recordingRenderer) Render(f Frame) {
	r.frames = append(r.frames, f)
}

type recordingListener struct {
	results []Result
}

func (l *recordingListener) GameOver(r Result) {
	l.results = append(l.results, r)
}

type harness struct {
	ctrl      *Controller
	src       *queueSource
	scheduler *recordingScheduler
	audio     *recordingAudio
	overlay   *recordingOverlay
	store     *memoryStore
	renderer  *recordingRenderer
	listener  *recordingListener
}

func newHarness(rules Rules) *harness {
	h := &harness{
		src:       &queueSource{},
		scheduler: &recordingScheduler{},
		audio:     &recordingAudio{},
		overlay:   &recordingOverlay{},
		store:     &memoryStore{},
		renderer:  &recordingRenderer{},
		listener:  &recordingListener{},
	}
	h.ctrl = NewController(rules, Options{
		Scheduler: h.scheduler,
		Renderer:  h.renderer,
		Audio:     h.audio,
		Store:     h.store,
		Overlay:   h.overlay,
		Listeners: []GameOverListener{h.listener},
		Random:    h.src,
	})
	return h
}

// lineRules lays the snake on a single row so fruit can be queued straight ahead.
func lineRules(width int) Rules {
	r := DefaultRules()
	r.Grid = types.Grid{Width: width, Height: 1}
	r.StartBody = []types.Point{{X: 5, Y: 0}, {X: 4, Y: 0}, {X: 3, Y: 0}}
	return r
}

// playLine queues eats fruit in a row, then parks the fruit behind the tail and
// runs into the right wall.
func (h *harness) playLine(eats int) {
	for i := 0; i < eats; i++ {
		h.src.push(6 + i)
	}
	h.src.push(0)
	h.ctrl.Start()
	for h.ctrl.State() == Running {
		h.ctrl.Tick()
	}
}
