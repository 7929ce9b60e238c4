package game

import (
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// State is the lifecycle stage of the controller.
type State int

const (
	NotStarted State = iota
	Running
	Paused
	Over
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

const (
	WelcomeTitle  = "Welcome to Snake!"
	GameOverTitle = "Game Over!"
)

// Rules holds the tuning of one game.
type Rules struct {
	Grid             types.Grid
	InitialSpeed     time.Duration
	SpeedStep        time.Duration
	MinSpeed         time.Duration
	SpeedUpEvery     int // score interval between speed-ups
	AchievementEvery int // score interval between achievement cues
	StartBody        []types.Point
	StartDirection   types.Point
}

// DefaultRules returns the classic 20x20 setup.
func DefaultRules() Rules {
	return Rules{
		Grid:             types.Grid{Width: 20, Height: 20},
		InitialSpeed:     150 * time.Millisecond,
		SpeedStep:        10 * time.Millisecond,
		MinSpeed:         50 * time.Millisecond,
		SpeedUpEvery:     5,
		AchievementEvery: 10,
		StartBody:        []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		StartDirection:   types.Point{X: 1, Y: 0},
	}
}

// withDefaults replaces fields that cannot drive a game with their
// DefaultRules values.
func (r Rules) withDefaults() Rules {
	def := DefaultRules()
	if r.Grid.Width < 1 || r.Grid.Height < 1 {
		r.Grid = def.Grid
	}
	if r.InitialSpeed <= 0 {
		r.InitialSpeed = def.InitialSpeed
	}
	if r.MinSpeed <= 0 {
		r.MinSpeed = min(def.MinSpeed, r.InitialSpeed)
	}
	if r.MinSpeed > r.InitialSpeed {
		r.MinSpeed = r.InitialSpeed
	}
	if r.SpeedStep < 0 {
		r.SpeedStep = 0
	}
	if r.SpeedUpEvery < 1 {
		r.SpeedUpEvery = def.SpeedUpEvery
	}
	if r.AchievementEvery < 1 {
		r.AchievementEvery = def.AchievementEvery
	}
	if len(r.StartBody) == 0 {
		r.StartBody = def.StartBody
	}
	if types.FromPoint(r.StartDirection) == types.NONE {
		r.StartDirection = def.StartDirection
	}
	return r
}

// Options wires the collaborators. Every field is optional.
type Options struct {
	Scheduler Scheduler
	Renderer  Renderer
	Audio     AudioPlayer
	Store     HighScoreStore
	Overlay   Overlay
	Listeners []GameOverListener
	Random    entity.RandomSource
	Logger    *log.Logger
	Clock     func() time.Time
}

// Controller owns the snake, the fruit, the score and the speed of the
// current game. It is not safe for concurrent use: ticks and input must come
// from the same goroutine.
type Controller struct {
	rules Rules

	snake     *entity.Snake
	fruit     *entity.Fruit
	score     int
	highScore int
	speed     time.Duration
	state     State
	gameID    string
	startedAt time.Time

	scheduler Scheduler
	renderer  Renderer
	audio     AudioPlayer
	store     HighScoreStore
	overlay   Overlay
	listeners []GameOverListener
	rng       entity.RandomSource
	logger    *log.Logger
	now       func() time.Time
}

// NewController builds an idle controller. Zero or unusable fields in rules
// fall back to DefaultRules.
func NewController(rules Rules, opts Options) *Controller {
	rules = rules.withDefaults()
	c := &Controller{
		rules:     rules,
		speed:     rules.InitialSpeed,
		state:     NotStarted,
		scheduler: opts.Scheduler,
		renderer:  opts.Renderer,
		audio:     opts.Audio,
		store:     opts.Store,
		overlay:   opts.Overlay,
		listeners: opts.Listeners,
		rng:       opts.Random,
		logger:    opts.Logger,
		now:       opts.Clock,
	}
	if c.scheduler == nil {
		c.scheduler = noopScheduler{}
	}
	if c.renderer == nil {
		c.renderer = noopRenderer{}
	}
	if c.audio == nil {
		c.audio = noopAudio{}
	}
	if c.store == nil {
		c.store = noopStore{}
	}
	if c.overlay == nil {
		c.overlay = noopOverlay{}
	}
	if c.rng == nil {
		c.rng = entity.NewRandomSource(0)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard, "", 0)
	}
	if c.now == nil {
		c.now = time.Now
	}

	c.highScore = c.store.LoadHighScore()
	if c.highScore < 0 {
		c.highScore = 0
	}
	return c
}

// ShowWelcome puts up the start screen. Only meaningful before the first game.
func (c *Controller) ShowWelcome() {
	if c.state != NotStarted {
		return
	}
	c.overlay.ShowOverlay(OverlayInfo{
		Title:     WelcomeTitle,
		HighScore: c.highScore,
		Mode:      ModeWelcome,
	})
}

// Start begins a new game. It does nothing unless the controller is waiting
// on the welcome or game over screen.
func (c *Controller) Start() {
	if c.state != NotStarted && c.state != Over {
		return
	}

	c.snake = entity.NewSnake(c.rules.Grid, c.rules.StartBody, c.rules.StartDirection)
	c.fruit = entity.NewFruit(c.rules.Grid, c.rng)
	c.fruit.Randomize(c.snake.Occupies)
	c.score = 0
	c.speed = c.rules.InitialSpeed
	c.gameID = uuid.New().String()
	c.startedAt = c.now()
	c.state = Running

	c.overlay.HideOverlay()
	c.audio.Play(SoundMusicStart)
	c.scheduler.Schedule(c.speed)
	c.logger.Printf("game %s started at %v per tick", c.gameID, c.speed)
	c.renderer.Render(c.Frame())
}

func (c *Controller) Restart() {
	c.Start()
}

// Tick advances the snake one cell. Ignored unless running.
func (c *Controller) Tick() {
	if c.state != Running {
		return
	}

	c.snake.Move()

	if c.snake.CollideWall() || c.snake.CollideSelf() {
		c.endGame()
		return
	}

	if c.snake.Eat(c.fruit) {
		c.snake.Grow()
		c.incrementScore()
		c.fruit.Randomize(c.snake.Occupies)

		c.audio.Play(SoundEat)
		if c.score > 0 && c.score%c.rules.AchievementEvery == 0 {
			c.audio.Play(SoundAchievement)
		}
	} else {
		c.snake.Shrink()
	}

	c.renderer.Render(c.Frame())
}

func (c *Controller) incrementScore() {
	c.score++
	if c.score > c.highScore {
		c.highScore = c.score
		c.store.SaveHighScore(c.highScore)
	}
	if c.score%c.rules.SpeedUpEvery != 0 || c.speed <= c.rules.MinSpeed {
		return
	}
	c.speed -= c.rules.SpeedStep
	if c.speed < c.rules.MinSpeed {
		c.speed = c.rules.MinSpeed
	}
	c.scheduler.Schedule(c.speed)
	c.logger.Printf("game %s speed now %v", c.gameID, c.speed)
}

func (c *Controller) endGame() {
	c.state = Over
	c.scheduler.Cancel()

	c.audio.Play(SoundGameOver)
	c.audio.Play(SoundMusicPause)
	c.overlay.ShowOverlay(OverlayInfo{
		Title:     GameOverTitle,
		Score:     c.score,
		HighScore: c.highScore,
		Mode:      ModeGameOver,
	})

	result := Result{
		GameID:    c.gameID,
		Score:     c.score,
		HighScore: c.highScore,
		StartedAt: c.startedAt,
		EndedAt:   c.now(),
	}
	c.logger.Printf("game %s over: score %d, record %d", c.gameID, c.score, c.highScore)
	for _, l := range c.listeners {
		l.GameOver(result)
	}
}

// TogglePause flips between running and paused. Resuming starts a full
// interval; whatever was left of the paused one is lost.
func (c *Controller) TogglePause() {
	switch c.state {
	case Running:
		c.state = Paused
		c.scheduler.Cancel()
		c.audio.Play(SoundMusicPause)
	case Paused:
		c.state = Running
		c.audio.Play(SoundMusicResume)
		c.scheduler.Schedule(c.speed)
	default:
		return
	}
	c.renderer.Render(c.Frame())
}

// HandleDirection steers the snake while a game is running.
func (c *Controller) HandleDirection(dx, dy int) {
	if c.state != Running {
		return
	}
	c.snake.ChangeDirection(dx, dy)
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Score() int {
	return c.score
}

func (c *Controller) HighScore() int {
	return c.highScore
}

func (c *Controller) Speed() time.Duration {
	return c.speed
}

func (c *Controller) GameID() string {
	return c.gameID
}

func (c *Controller) Rules() Rules {
	return c.rules
}

// Frame snapshots the current board.
func (c *Controller) Frame() Frame {
	f := Frame{
		Grid:      c.rules.Grid,
		Score:     c.score,
		HighScore: c.highScore,
		Speed:     c.speed,
		State:     c.state,
	}
	if c.snake != nil {
		f.Body = c.snake.Body()
		f.Direction = c.snake.Direction()
	}
	if c.fruit != nil {
		f.Fruit = c.fruit.Position()
		f.HasFruit = true
	}
	return f
}
