package usecase

import (
	"context"

	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/domain/standing"
)

// FootballDataProvider is the upstream the session reads from.
type FootballDataProvider interface {
	FetchStandings(ctx context.Context, competitionCode string) (standing.Standings, error)
	FetchCompetitionMatches(ctx context.Context, competitionCode string) ([]match.Match, error)
	FetchTodayMatches(ctx context.Context) ([]match.Match, error)
}
