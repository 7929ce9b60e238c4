package ui

import (
	"io"
	"log"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-classic/game"
)

type soundFile struct {
	name   string
	volume float32
}

var soundFiles = map[game.Sound]soundFile{
	game.SoundEat:         {"eat.wav", 0.5},
	game.SoundAchievement: {"achievement.wav", 0.6},
	game.SoundGameOver:    {"lose.wav", 0.5},
}

const (
	musicFile   = "music.mp3"
	musicVolume = 0.3
)

// SoundPlayer plays the cue files and the looping music through raylib.
// Files that are missing are logged once and skipped.
type SoundPlayer struct {
	sounds   map[game.Sound]rl.Sound
	music    rl.Music
	hasMusic bool
	ready    bool
	logger   *log.Logger
}

func NewSoundPlayer(dir string, logger *log.Logger) *SoundPlayer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	p := &SoundPlayer{
		sounds: make(map[game.Sound]rl.Sound),
		logger: logger,
	}

	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		logger.Printf("audio device unavailable, playing without sound")
		return p
	}
	p.ready = true

	for cue, f := range soundFiles {
		path := filepath.Join(dir, f.name)
		if _, err := os.Stat(path); err != nil {
			logger.Printf("skipping %s cue: %v", cue, err)
			continue
		}
		s := rl.LoadSound(path)
		rl.SetSoundVolume(s, f.volume)
		p.sounds[cue] = s
	}

	path := filepath.Join(dir, musicFile)
	if _, err := os.Stat(path); err != nil {
		logger.Printf("skipping music: %v", err)
		return p
	}
	p.music = rl.LoadMusicStream(path)
	p.music.Looping = true
	rl.SetMusicVolume(p.music, musicVolume)
	p.hasMusic = true
	return p
}

func (p *SoundPlayer) Play(s game.Sound) {
	if !p.ready {
		return
	}
	switch s {
	case game.SoundMusicStart:
		if p.hasMusic {
			// stopping rewinds the stream
			rl.StopMusicStream(p.music)
			rl.PlayMusicStream(p.music)
		}
	case game.SoundMusicPause:
		if p.hasMusic {
			rl.PauseMusicStream(p.music)
		}
	case game.SoundMusicResume:
		if p.hasMusic {
			rl.ResumeMusicStream(p.music)
		}
	default:
		if snd, ok := p.sounds[s]; ok {
			rl.PlaySound(snd)
		}
	}
}

// Update refills the music buffer. Call once per frame.
func (p *SoundPlayer) Update() {
	if p.ready && p.hasMusic {
		rl.UpdateMusicStream(p.music)
	}
}

func (p *SoundPlayer) Close() {
	if !p.ready {
		return
	}
	for _, s := range p.sounds {
		rl.UnloadSound(s)
	}
	if p.hasMusic {
		rl.UnloadMusicStream(p.music)
	}
	rl.CloseAudioDevice()
	p.ready = false
}
