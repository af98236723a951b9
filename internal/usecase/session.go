// Package usecase is the view-model layer between the HTTP handlers and the
// football-data client: it caches standings per competition, keeps the team
// registry used by the prediction form and fans out league overview fetches.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/football-hub/internal/domain/competition"
	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/domain/prediction"
	"github.com/riskibarqy/football-hub/internal/domain/standing"
	"github.com/riskibarqy/football-hub/internal/domain/team"
	"github.com/riskibarqy/football-hub/internal/platform/cache"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
)

// Session is the view-model shared by the page views: a standings cache per
// competition code and the registry of teams offered for predictions.
// Cached standings never expire; the registry only grows.
type Session struct {
	provider  FootballDataProvider
	standings *cache.Store[*standing.Standings]
	logger    *logging.Logger

	mu    sync.RWMutex
	teams []team.Team
	byID  map[int64]team.Team
}

// LeagueOverview is what a league tab shows.
type LeagueOverview struct {
	Competition competition.Competition
	Upcoming    []match.Match
	Standings   *standing.Standings
}

func NewSession(provider FootballDataProvider, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.Default()
	}

	return &Session{
		provider:  provider,
		standings: cache.NewStore[*standing.Standings](0),
		logger:    logger,
		byID:      make(map[int64]team.Team),
	}
}

// GetStandings returns the cached payload for code, fetching it on first use.
// Repeated calls return the same pointer.
func (s *Session) GetStandings(ctx context.Context, code string) (*standing.Standings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Session.GetStandings", competitionAttr(code))
	defer span.End()

	code = competition.NormalizeCode(code)
	if !competition.ValidCode(code) {
		return nil, fmt.Errorf("%w: competition code %q is invalid", ErrInvalidInput, code)
	}

	return s.standings.GetOrLoad(ctx, code, func(ctx context.Context) (*standing.Standings, error) {
		item, err := s.provider.FetchStandings(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("fetch standings competition=%s: %w", code, err)
		}
		if item.CompetitionCode == "" {
			item.CompetitionCode = code
		}

		s.logger.InfoContext(ctx, "standings cached", "competition", code, "rows", len(item.PrimaryTable()))
		return &item, nil
	})
}

// LoadStandings is GetStandings followed by RegisterTeams.
func (s *Session) LoadStandings(ctx context.Context, code string) (*standing.Standings, error) {
	item, err := s.GetStandings(ctx, code)
	if err != nil {
		return nil, err
	}
	s.RegisterTeams(item)
	return item, nil
}

// RegisterTeams adds every team from the primary table that is not yet known
// and keeps the registry sorted by name. It reports whether anything was added.
func (s *Session) RegisterTeams(item *standing.Standings) bool {
	rows := item.PrimaryTable()
	if len(rows) == 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	added := false
	for _, row := range rows {
		if row.Team.ID <= 0 {
			continue
		}
		if _, exists := s.byID[row.Team.ID]; exists {
			continue
		}

		t := row.ToTeam()
		s.byID[t.ID] = t
		s.teams = append(s.teams, t)
		added = true
	}

	if added {
		sort.SliceStable(s.teams, func(i, j int) bool {
			left := strings.ToLower(s.teams[i].Name)
			right := strings.ToLower(s.teams[j].Name)
			if left != right {
				return left < right
			}
			return s.teams[i].ID < s.teams[j].ID
		})
	}

	return added
}

// Teams returns the registry in dropdown order.
func (s *Session) Teams() []team.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]team.Team, len(s.teams))
	copy(out, s.teams)
	return out
}

func (s *Session) Team(id int64) (team.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.byID[id]
	return t, ok
}

// CachedCompetitions lists the competition codes with cached standings.
func (s *Session) CachedCompetitions() []string {
	codes := s.standings.Keys()
	sort.Strings(codes)
	return codes
}

// Predict resolves both teams from the registry and runs the heuristic.
func (s *Session) Predict(ctx context.Context, homeID, awayID int64) (prediction.Result, error) {
	_, span := startUsecaseSpan(ctx, "usecase.Session.Predict",
		attribute.Int64("team.home_id", homeID),
		attribute.Int64("team.away_id", awayID),
	)
	defer span.End()

	if homeID <= 0 || awayID <= 0 {
		return prediction.Result{}, fmt.Errorf("%w: select two teams", prediction.ErrInvalidSelection)
	}
	if homeID == awayID {
		return prediction.Result{}, fmt.Errorf("%w: teams must be different", prediction.ErrInvalidSelection)
	}

	home, ok := s.Team(homeID)
	if !ok {
		return prediction.Result{}, fmt.Errorf("%w: team %d is not registered", prediction.ErrInvalidSelection, homeID)
	}
	away, ok := s.Team(awayID)
	if !ok {
		return prediction.Result{}, fmt.Errorf("%w: team %d is not registered", prediction.ErrInvalidSelection, awayID)
	}

	return prediction.Predict(home, away)
}

func (s *Session) TodayMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Session.TodayMatches")
	defer span.End()

	items, err := s.provider.FetchTodayMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch today matches: %w", err)
	}
	return items, nil
}

// LeagueOverview fetches the competition's matches and standings side by side.
// Either failure fails the whole overview.
func (s *Session) LeagueOverview(ctx context.Context, item competition.Competition) (LeagueOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Session.LeagueOverview", competitionAttr(item.Code))
	defer span.End()

	var (
		matches      []match.Match
		matchesErr   error
		table        *standing.Standings
		standingsErr error
		wg           conc.WaitGroup
	)
	wg.Go(func() {
		matches, matchesErr = s.provider.FetchCompetitionMatches(ctx, item.Code)
		if matchesErr != nil {
			matchesErr = fmt.Errorf("fetch matches competition=%s: %w", item.Code, matchesErr)
		}
	})
	wg.Go(func() {
		table, standingsErr = s.LoadStandings(ctx, item.Code)
	})
	wg.Wait()

	if err := errors.Join(matchesErr, standingsErr); err != nil {
		return LeagueOverview{}, err
	}

	return LeagueOverview{
		Competition: item,
		Upcoming:    match.Upcoming(matches, match.DefaultUpcomingLimit),
		Standings:   table,
	}, nil
}

// Preload warms the standings cache for codes on a bounded worker pool.
// Failures are logged and skipped; the number of loaded codes is returned.
func (s *Session) Preload(ctx context.Context, codes []string, workers int) (int, error) {
	if len(codes) == 0 {
		return 0, nil
	}
	if workers < 1 {
		workers = 1
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return 0, fmt.Errorf("create preload pool: %w", err)
	}
	defer pool.Release()

	var loaded atomic.Int32
	var wg sync.WaitGroup
	for _, code := range codes {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if _, err := s.LoadStandings(ctx, code); err != nil {
				s.logger.WarnContext(ctx, "preload standings failed", "competition", code, "error", err)
				return
			}
			loaded.Add(1)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return int(loaded.Load()), fmt.Errorf("submit preload task: %w", err)
		}
	}
	wg.Wait()

	s.logger.InfoContext(ctx, "standings preload finished", "requested", len(codes), "loaded", loaded.Load())
	return int(loaded.Load()), nil
}
