// Package statistics aggregates the outcomes of simulated games.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameResult represents the outcome of a single game. Team indexes follow the
// order the teams were configured in.
type GameResult struct {
	GameID     string
	Seed       int64  // RNG seed for this game (for replay)
	Winner     int    // Index of the winning team
	Rounds     int    // Rounds played
	Scores     [2]int // Final game scores
	MeldPoints [2]int // Meld bonuses won over the game, before multipliers
}

// Margin is the first team's final lead over the second
func (r GameResult) Margin() int {
	return r.Scores[0] - r.Scores[1]
}

// TeamStats tracks totals for one team
type TeamStats struct {
	Wins       int
	Points     int
	MeldPoints int
}

// Statistics tracks simulation statistics. Spread measures are computed over
// the first team's winning margin.
type Statistics struct {
	Games  int
	Rounds int
	SumM   float64
	SumM2  float64   // Sum of squares for variance calculation
	Values []float64 // Store all margins for median/percentile calculation

	Teams [2]TeamStats

	LongestGame  int // Most rounds in a single game
	ShortestGame int // Fewest rounds in a single game
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	margin := float64(result.Margin())
	s.Games++
	s.Rounds += result.Rounds
	s.SumM += margin
	s.SumM2 += margin * margin
	s.Values = append(s.Values, margin)

	s.Teams[result.Winner].Wins++
	for i := range s.Teams {
		s.Teams[i].Points += result.Scores[i]
		s.Teams[i].MeldPoints += result.MeldPoints[i]
	}

	if result.Rounds > s.LongestGame {
		s.LongestGame = result.Rounds
	}
	if s.ShortestGame == 0 || result.Rounds < s.ShortestGame {
		s.ShortestGame = result.Rounds
	}
}

// WinRate returns the share of games won by the team at index i
func (s *Statistics) WinRate(i int) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Teams[i].Wins) / float64(s.Games)
}

// AverageRounds returns the mean number of rounds per game
func (s *Statistics) AverageRounds() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Rounds) / float64(s.Games)
}

// AverageMelds returns the mean meld bonus per game for the team at index i
func (s *Statistics) AverageMelds(i int) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Teams[i].MeldPoints) / float64(s.Games)
}

// Mean returns the arithmetic mean of the margins
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumM / float64(s.Games)
}

// Variance returns the sample variance of the margins
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumM2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of the margins
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median margin
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the margin at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate performs consistency checks on the collected data
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}
	if wins := s.Teams[0].Wins + s.Teams[1].Wins; wins != s.Games {
		return fmt.Errorf("total wins (%d) does not match games count (%d)", wins, s.Games)
	}
	if s.Rounds < s.Games {
		return fmt.Errorf("rounds (%d) fewer than games (%d)", s.Rounds, s.Games)
	}
	return nil
}
