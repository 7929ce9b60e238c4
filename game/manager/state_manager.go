package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"snake-classic/game"
)

const (
	StateFile  = "gamestats.json"
	maxHistory = 100
)

// SavedState is the on-disk shape of the high score file.
type SavedState struct {
	HighScore    int   `json:"highScore"`
	ScoreHistory []int `json:"scoreHistory"`
}

// StateManager persists the record and the recent scores as JSON. It
// satisfies game.HighScoreStore and game.GameOverListener.
type StateManager struct {
	path         string
	highScore    int
	scoreHistory []int
	logger       *log.Logger
}

func NewStateManager(dataDir string, logger *log.Logger) *StateManager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	sm := &StateManager{
		path:         filepath.Join(dataDir, StateFile),
		scoreHistory: make([]int, 0),
		logger:       logger,
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		logger.Printf("could not create data directory: %v", err)
	}

	if err := sm.LoadStats(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Printf("ignoring saved stats: %v", err)
	}
	return sm
}

func (sm *StateManager) Path() string {
	return sm.path
}

func (sm *StateManager) SaveStats() error {
	stats := SavedState{
		HighScore:    sm.highScore,
		ScoreHistory: sm.scoreHistory,
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	if err := os.WriteFile(sm.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", sm.path, err)
	}
	return nil
}

// LoadStats reads the state file. On any failure the in-memory state is reset
// to a zero record.
func (sm *StateManager) LoadStats() error {
	sm.highScore = 0
	sm.scoreHistory = make([]int, 0)

	data, err := os.ReadFile(sm.path)
	if err != nil {
		return err
	}

	var stats SavedState
	if err := json.Unmarshal(data, &stats); err != nil {
		return fmt.Errorf("decode %s: %w", sm.path, err)
	}

	if stats.HighScore > 0 {
		sm.highScore = stats.HighScore
	}
	if stats.ScoreHistory != nil {
		sm.scoreHistory = stats.ScoreHistory
	}
	return nil
}

func (sm *StateManager) LoadHighScore() int {
	return sm.highScore
}

// SaveHighScore records score when it beats the stored record.
func (sm *StateManager) SaveHighScore(score int) {
	if score <= sm.highScore {
		return
	}
	sm.highScore = score
	if err := sm.SaveStats(); err != nil {
		sm.logger.Printf("saving high score: %v", err)
	}
}

func (sm *StateManager) AddToHistory(score int) {
	if len(sm.scoreHistory) >= maxHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
	if err := sm.SaveStats(); err != nil {
		sm.logger.Printf("saving score history: %v", err)
	}
}

// GameOver appends the finished score to the history.
func (sm *StateManager) GameOver(r game.Result) {
	sm.AddToHistory(r.Score)
}

func (sm *StateManager) GetScoreHistory() []int {
	out := make([]int, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}
