package prediction

import (
	"errors"
	"testing"

	"github.com/riskibarqy/football-hub/internal/domain/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict_HomeFavourite(t *testing.T) {
	t.Parallel()

	home := team.Team{ID: 57, Name: "Arsenal", Points: 60, GoalDifference: 20}
	away := team.Team{ID: 61, Name: "Chelsea", Points: 50, GoalDifference: 10}

	got, err := Predict(home, away)
	require.NoError(t, err)

	// 48 / 81.5 -> 58.9
	assert.InDelta(t, 48.0, got.HomeScore, 1e-9)
	assert.InDelta(t, 33.5, got.AwayScore, 1e-9)
	assert.Equal(t, 59, got.HomeWinPercent)
	assert.Equal(t, 41, got.AwayWinPercent)
	assert.Equal(t, OutcomeHome, got.Outcome)
	assert.Equal(t, "Arsenal", got.Winner())
	assert.False(t, got.Clamped)
}

func TestPredict_CloseMatchIsDraw(t *testing.T) {
	t.Parallel()

	home := team.Team{ID: 1, Name: "Home", Points: 40, GoalDifference: 0}
	away := team.Team{ID: 2, Name: "Away", Points: 45, GoalDifference: 0}

	got, err := Predict(home, away)
	require.NoError(t, err)

	// 29 vs 27 -> 52 / 48
	assert.Equal(t, 52, got.HomeWinPercent)
	assert.Equal(t, 48, got.AwayWinPercent)
	assert.Equal(t, OutcomeDraw, got.Outcome)
	assert.Equal(t, DrawLabel, got.Winner())
}

func TestPredict_AwayFavourite(t *testing.T) {
	t.Parallel()

	home := team.Team{ID: 1, Name: "Home", Points: 10, GoalDifference: -10}
	away := team.Team{ID: 2, Name: "Away", Points: 70, GoalDifference: 40}

	got, err := Predict(home, away)
	require.NoError(t, err)

	assert.Equal(t, OutcomeAway, got.Outcome)
	assert.Equal(t, "Away", got.Winner())
	assert.Equal(t, 100, got.HomeWinPercent+got.AwayWinPercent)
}

func TestPredict_InvalidSelection(t *testing.T) {
	t.Parallel()

	a := team.Team{ID: 5, Name: "A"}
	tests := []struct {
		name string
		home team.Team
		away team.Team
	}{
		{name: "same team", home: a, away: a},
		{name: "home unset", home: team.Team{}, away: a},
		{name: "away unset", home: a, away: team.Team{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Predict(tt.home, tt.away)
			if !errors.Is(err, ErrInvalidSelection) {
				t.Fatalf("expected ErrInvalidSelection, got %v", err)
			}
		})
	}
}

func TestPredict_ClampsNegativeTotal(t *testing.T) {
	t.Parallel()

	home := team.Team{ID: 1, Name: "Home"}
	away := team.Team{ID: 2, Name: "Away", GoalDifference: -20}

	got, err := Predict(home, away)
	require.NoError(t, err)

	// 5 / (5 - 7) * 100 = -250 before clamping.
	assert.True(t, got.Clamped)
	assert.Equal(t, 0, got.HomeWinPercent)
	assert.Equal(t, 100, got.AwayWinPercent)
}

func TestWinPercent_ZeroTotalUsesUnitDenominator(t *testing.T) {
	t.Parallel()

	got, clamped := winPercent(5, -5)
	assert.Equal(t, 100, got)
	assert.True(t, clamped)

	got, clamped = winPercent(0, 0)
	assert.Equal(t, 0, got)
	assert.False(t, clamped)
}
