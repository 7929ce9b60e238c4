package manager

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-classic/game"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func addGames(s *GameStats, scores ...int) {
	for i, score := range scores {
		start := epoch.Add(time.Duration(len(s.Games)+i) * time.Minute)
		s.AddGame("", score, start, start.Add(time.Duration(score+1)*time.Second))
	}
}

func TestSummaryEmpty(t *testing.T) {
	s := NewGameStats(t.TempDir(), 0, nil)
	assert.Equal(t, Summary{}, s.Summary())
}

func TestSummaryOfSingleGames(t *testing.T) {
	s := NewGameStats(t.TempDir(), 10, nil)
	addGames(s, 2, 4, 9)

	sum := s.Summary()
	assert.Equal(t, 3, sum.GamesPlayed)
	assert.Equal(t, 9, sum.MaxScore)
	assert.InDelta(t, 5.0, sum.AverageScore, 1e-9)
	assert.InDelta(t, 6.0, sum.AverageDuration, 1e-9)
}

func TestGroupingKeepsTotals(t *testing.T) {
	s := NewGameStats(t.TempDir(), 3, nil)
	addGames(s, 1, 2, 3, 4, 5, 6, 7)

	// two full groups at level 1, one loose game
	require.Len(t, s.Games, 3)
	levels := map[int]int{}
	for _, g := range s.Games {
		levels[g.CompressionIndex]++
	}
	assert.Equal(t, map[int]int{1: 2, 0: 1}, levels)

	sum := s.Summary()
	assert.Equal(t, 7, sum.GamesPlayed)
	assert.Equal(t, 7, sum.MaxScore)
	assert.InDelta(t, 4.0, sum.AverageScore, 1e-9)
}

func TestGroupingCascades(t *testing.T) {
	s := NewGameStats(t.TempDir(), 2, nil)
	addGames(s, 1, 1, 1, 1)

	require.Len(t, s.Games, 1)
	assert.Equal(t, 2, s.Games[0].CompressionIndex)
	assert.Equal(t, 4, s.Games[0].GamesCount)
}

func TestGameOverPersists(t *testing.T) {
	dir := t.TempDir()
	s := NewGameStats(dir, 10, nil)
	s.GameOver(game.Result{GameID: "abc", Score: 5, StartedAt: epoch, EndedAt: epoch.Add(30 * time.Second)})

	reloaded := NewGameStats(dir, 10, nil)
	require.Len(t, reloaded.Games, 1)
	assert.Equal(t, "abc", reloaded.Games[0].GameID)
	assert.InDelta(t, 30.0, reloaded.Summary().AverageDuration, 1e-9)
}

func TestCorruptStatsFileIsIgnored(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, StatsFile), []byte("[{"), 0644))

	s := NewGameStats(dir, 10, nil)
	assert.Empty(t, s.Games)
}
