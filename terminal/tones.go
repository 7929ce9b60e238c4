package terminal

import (
	"io"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"snake-classic/game"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64 // 0 is a rest
	dur  time.Duration
}

var cues = map[game.Sound][]note{
	game.SoundEat: {
		{660, 60 * time.Millisecond},
	},
	game.SoundAchievement: {
		{523, 80 * time.Millisecond},
		{659, 80 * time.Millisecond},
		{784, 160 * time.Millisecond},
	},
	game.SoundGameOver: {
		{392, 150 * time.Millisecond},
		{330, 150 * time.Millisecond},
		{262, 300 * time.Millisecond},
	},
}

var melody = []note{
	{262, 200 * time.Millisecond}, {330, 200 * time.Millisecond},
	{392, 200 * time.Millisecond}, {0, 200 * time.Millisecond},
	{349, 200 * time.Millisecond}, {294, 200 * time.Millisecond},
	{247, 200 * time.Millisecond}, {0, 200 * time.Millisecond},
}

// TonePlayer synthesizes the game cues with beep, no sound files needed.
type TonePlayer struct {
	ready  bool
	music  *beep.Ctrl
	logger *log.Logger
}

// NewTonePlayer opens the speaker. If that fails the player stays silent.
func NewTonePlayer(logger *log.Logger) *TonePlayer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	p := &TonePlayer{logger: logger}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Printf("audio initialization failed: %v", err)
		return p
	}
	p.ready = true
	return p
}

func (p *TonePlayer) Play(s game.Sound) {
	if !p.ready {
		return
	}
	switch s {
	case game.SoundMusicStart:
		p.startMusic()
	case game.SoundMusicPause:
		p.setMusicPaused(true)
	case game.SoundMusicResume:
		p.setMusicPaused(false)
	default:
		if notes, ok := cues[s]; ok {
			speaker.Play(&effects.Volume{Streamer: sequence(notes), Base: 2, Volume: -1})
		}
	}
}

func (p *TonePlayer) startMusic() {
	speaker.Lock()
	if p.music != nil {
		// a Ctrl without a streamer drains out of the mixer
		p.music.Streamer = nil
	}
	speaker.Unlock()

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(sequence(melody))
	loop := beep.Loop(-1, buf.Streamer(0, buf.Len()))
	p.music = &beep.Ctrl{Streamer: &effects.Volume{Streamer: loop, Base: 2, Volume: -3}}
	speaker.Play(p.music)
}

func (p *TonePlayer) setMusicPaused(paused bool) {
	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = paused
	speaker.Unlock()
}

func (p *TonePlayer) Close() {
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

// sequence turns notes into one finite streamer.
func sequence(notes []note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, tone(n))
	}
	return beep.Seq(parts...)
}

func tone(n note) beep.Streamer {
	samples := sampleRate.N(n.dur)
	if n.freq <= 0 {
		return beep.Silence(samples)
	}
	sine, err := generators.SineTone(sampleRate, n.freq)
	if err != nil {
		return beep.Silence(samples)
	}
	return beep.Take(samples, sine)
}
