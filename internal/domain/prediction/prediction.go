// Package prediction estimates a win split between two clubs from their
// league points and goal difference.
package prediction

import (
	"errors"
	"fmt"
	"math"

	"github.com/riskibarqy/football-hub/internal/domain/team"
)

var ErrInvalidSelection = errors.New("invalid team selection")

const (
	pointsWeight         = 0.6
	goalDifferenceWeight = 0.35
	homeAdvantage        = 5.0
	closeMatchMargin     = 10
)

// DrawLabel is reported instead of a team name when the split is within the close-match margin.
const DrawLabel = "Draw / Very Close Match"

type Outcome string

const (
	OutcomeHome Outcome = "home"
	OutcomeAway Outcome = "away"
	OutcomeDraw Outcome = "draw"
)

// Result is a derived prediction; it is never stored.
type Result struct {
	Home           team.Team
	Away           team.Team
	HomeScore      float64
	AwayScore      float64
	HomeWinPercent int
	AwayWinPercent int
	Outcome        Outcome
	// Clamped is set when the raw home percentage fell outside [0, 100].
	Clamped bool
}

// Winner returns the predicted winner's name or DrawLabel.
func (r Result) Winner() string {
	switch r.Outcome {
	case OutcomeHome:
		return r.Home.Name
	case OutcomeAway:
		return r.Away.Name
	default:
		return DrawLabel
	}
}

// Score weighs a team's table position into a strength value.
func Score(t team.Team, isHome bool) float64 {
	score := float64(t.Points)*pointsWeight + float64(t.GoalDifference)*goalDifferenceWeight
	if isHome {
		score += homeAdvantage
	}
	return score
}

// Predict splits the win probability between home and away.
func Predict(home, away team.Team) (Result, error) {
	if home.ID == 0 || away.ID == 0 {
		return Result{}, fmt.Errorf("%w: select two teams", ErrInvalidSelection)
	}
	if home.ID == away.ID {
		return Result{}, fmt.Errorf("%w: teams must be different", ErrInvalidSelection)
	}

	homeScore := Score(home, true)
	awayScore := Score(away, false)
	homePct, clamped := winPercent(homeScore, awayScore)
	awayPct := 100 - homePct

	outcome := OutcomeAway
	if homePct > awayPct {
		outcome = OutcomeHome
	}
	if absInt(homePct-awayPct) < closeMatchMargin {
		outcome = OutcomeDraw
	}

	return Result{
		Home:           home,
		Away:           away,
		HomeScore:      homeScore,
		AwayScore:      awayScore,
		HomeWinPercent: homePct,
		AwayWinPercent: awayPct,
		Outcome:        outcome,
		Clamped:        clamped,
	}, nil
}

// winPercent returns round(home/total*100) clamped into [0, 100]. A zero
// total is replaced by 1.
func winPercent(homeScore, awayScore float64) (int, bool) {
	total := homeScore + awayScore
	if total == 0 {
		total = 1
	}

	pct := math.Round(homeScore / total * 100)
	switch {
	case math.IsNaN(pct) || pct < 0:
		return 0, true
	case pct > 100:
		return 100, true
	default:
		return int(pct), false
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
