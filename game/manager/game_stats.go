package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"snake-classic/game"
)

const (
	StatsFile = "stats.json"
	GroupSize = 100 // records merged into one group per compression level
)

// GameRecord is either a single game (CompressionIndex 0) or a group of
// older games folded together.
type GameRecord struct {
	GameID           string    `json:"gameId,omitempty"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Score            int       `json:"score"`
	CompressionIndex int       `json:"compressionIndex"`
	GamesCount       int       `json:"gamesCount"`
	AverageScore     float64   `json:"averageScore"`
	MaxScore         int       `json:"maxScore"`
	MinScore         int       `json:"minScore"`
	AverageDuration  float64   `json:"averageDuration"`
	MaxDuration      float64   `json:"maxDuration"`
	MinDuration      float64   `json:"minDuration"`
}

// Summary is what the frontends print under the board.
type Summary struct {
	GamesPlayed     int
	AverageScore    float64
	MaxScore        int
	AverageDuration float64
}

// GameStats keeps every finished game, folding old ones into groups so the
// file stays small over long sessions.
type GameStats struct {
	Games     []GameRecord
	path      string
	groupSize int
	logger    *log.Logger
}

func NewGameStats(dataDir string, groupSize int, logger *log.Logger) *GameStats {
	if groupSize < 2 {
		groupSize = GroupSize
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &GameStats{
		Games:     make([]GameRecord, 0),
		path:      filepath.Join(dataDir, StatsFile),
		groupSize: groupSize,
		logger:    logger,
	}
	if err := s.loadFromFile(); err != nil {
		logger.Printf("ignoring saved game records: %v", err)
	}
	return s
}

func (s *GameStats) AddGame(id string, score int, startTime, endTime time.Time) {
	d := endTime.Sub(startTime).Seconds()
	s.Games = append(s.Games, GameRecord{
		GameID:           id,
		StartTime:        startTime,
		EndTime:          endTime,
		Score:            score,
		CompressionIndex: 0,
		GamesCount:       1,
		AverageScore:     float64(score),
		MaxScore:         score,
		MinScore:         score,
		AverageDuration:  d,
		MaxDuration:      d,
		MinDuration:      d,
	})
	s.groupGames()
}

// GameOver records the result and writes the file.
func (s *GameStats) GameOver(r game.Result) {
	s.AddGame(r.GameID, r.Score, r.StartedAt, r.EndedAt)
	if err := s.SaveToFile(); err != nil {
		s.logger.Printf("saving game records: %v", err)
	}
}

// groupGames folds every full run of groupSize records at one level into a
// single record at the next level, then repeats one level up.
func (s *GameStats) groupGames() {
	sort.SliceStable(s.Games, func(i, j int) bool {
		if s.Games[i].CompressionIndex != s.Games[j].CompressionIndex {
			return s.Games[i].CompressionIndex > s.Games[j].CompressionIndex
		}
		return s.Games[i].StartTime.Before(s.Games[j].StartTime)
	})

	for level := 0; ; level++ {
		var records, rest []GameRecord
		for _, g := range s.Games {
			if g.CompressionIndex == level {
				records = append(records, g)
			} else {
				rest = append(rest, g)
			}
		}
		if len(records) < s.groupSize {
			return
		}

		var folded []GameRecord
		i := 0
		for ; i+s.groupSize <= len(records); i += s.groupSize {
			folded = append(folded, mergeRecords(records[i:i+s.groupSize], level+1))
		}
		// merged groups go before the loose records they are older than
		s.Games = append(append(rest, folded...), records[i:]...)
	}
}

func mergeRecords(group []GameRecord, level int) GameRecord {
	out := GameRecord{
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}
	var totalScore, totalDuration float64
	for _, g := range group {
		out.MaxScore = max(out.MaxScore, g.MaxScore)
		out.MinScore = min(out.MinScore, g.MinScore)
		out.MaxDuration = max(out.MaxDuration, g.MaxDuration)
		out.MinDuration = min(out.MinDuration, g.MinDuration)
		if g.StartTime.Before(out.StartTime) {
			out.StartTime = g.StartTime
		}
		if g.EndTime.After(out.EndTime) {
			out.EndTime = g.EndTime
		}
		totalScore += g.AverageScore * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		out.GamesCount += g.GamesCount
	}
	out.AverageScore = totalScore / float64(out.GamesCount)
	out.AverageDuration = totalDuration / float64(out.GamesCount)
	return out
}

func (s *GameStats) Summary() Summary {
	var sum Summary
	var totalScore, totalDuration float64
	for i, g := range s.Games {
		if i == 0 || g.MaxScore > sum.MaxScore {
			sum.MaxScore = g.MaxScore
		}
		totalScore += g.AverageScore * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		sum.GamesPlayed += g.GamesCount
	}
	if sum.GamesPlayed > 0 {
		sum.AverageScore = totalScore / float64(sum.GamesPlayed)
		sum.AverageDuration = totalDuration / float64(sum.GamesPlayed)
	}
	return sum
}

func (s *GameStats) SaveToFile() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	jsonData, err := json.Marshal(s.Games)
	if err != nil {
		return fmt.Errorf("marshal game records: %w", err)
	}

	if err := os.WriteFile(s.path, jsonData, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *GameStats) loadFromFile() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // first run
		}
		return err
	}

	var games []GameRecord
	if err := json.Unmarshal(data, &games); err != nil {
		return fmt.Errorf("decode %s: %w", s.path, err)
	}
	s.Games = games
	return nil
}
