package footballdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/resilience"
	"github.com/riskibarqy/football-hub/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standingsBody = `{
  "competition": {"id": 2021, "name": "Premier League", "code": "PL"},
  "season": {"id": 2287, "startDate": "2024-08-16", "endDate": "2025-05-25"},
  "standings": [
    {
      "stage": "REGULAR_SEASON",
      "type": "TOTAL",
      "group": null,
      "table": [
        {"position": 1, "team": {"id": 64, "name": "Liverpool FC", "shortName": "Liverpool", "crest": "https://crests.football-data.org/64.png"}, "playedGames": 29, "form": "W,W,D,W,W", "won": 21, "draw": 7, "lost": 1, "points": 70, "goalsFor": 69, "goalsAgainst": 27, "goalDifference": 42},
        {"position": 2, "team": {"id": 57, "name": "Arsenal FC", "shortName": "Arsenal"}, "playedGames": 29, "form": null, "won": 16, "draw": 10, "lost": 3, "points": 58, "goalsFor": 53, "goalsAgainst": 24, "goalDifference": 29}
      ]
    }
  ]
}`

const matchesBody = `{
  "competition": {"id": 2014, "name": "Primera Division", "code": "PD"},
  "matches": [
    {"id": 1001, "utcDate": "2025-03-15T20:00:00Z", "status": "FINISHED", "matchday": 27, "homeTeam": {"id": 86, "name": "Real Madrid CF", "shortName": "Real Madrid"}, "awayTeam": {"id": 81, "name": "FC Barcelona", "shortName": "Barça"}, "score": {"winner": "HOME_TEAM", "fullTime": {"home": 2, "away": 1}}},
    {"id": 1002, "utcDate": "2025-05-31T19:00:00Z", "status": "TIMED", "matchday": null, "homeTeam": {"id": null, "name": null}, "awayTeam": {"id": null, "name": null}, "score": {"winner": null, "fullTime": {"home": null, "away": null}}}
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate ...func(*ClientConfig)) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := ClientConfig{
		BaseURL: server.URL,
		Token:   "secret-token",
		Timeout: 2 * time.Second,
		Logger:  logging.NewNop(),
	}
	for _, fn := range mutate {
		fn(&cfg)
	}
	return NewClient(cfg)
}

func TestClient_RelayStandings_SendsTokenAndReturnsBody(t *testing.T) {
	t.Parallel()

	var gotPath, gotToken string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Auth-Token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(standingsBody))
	})

	raw, err := client.RelayStandings(context.Background(), "pl")
	require.NoError(t, err)

	assert.Equal(t, "/competitions/PL/standings", gotPath)
	assert.Equal(t, "secret-token", gotToken)
	assert.Equal(t, standingsBody, string(raw))
}

func TestClient_FetchStandings_MapsPrimaryTable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(standingsBody))
	})

	item, err := client.FetchStandings(context.Background(), "PL")
	require.NoError(t, err)

	assert.Equal(t, "PL", item.CompetitionCode)
	assert.Equal(t, "Premier League", item.CompetitionName)
	assert.Equal(t, "2024/2025", item.Season)

	rows := item.PrimaryTable()
	require.Len(t, rows, 2)
	assert.Equal(t, int64(64), rows[0].Team.ID)
	assert.Equal(t, "Liverpool", rows[0].Team.DisplayName())
	assert.Equal(t, "W,W,D,W,W", rows[0].Form)
	assert.Equal(t, 42, rows[0].GoalDifference)
	assert.Empty(t, rows[1].Form)

	team := rows[1].ToTeam()
	assert.Equal(t, "Arsenal", team.Name)
	assert.Equal(t, 58, team.Points)
}

func TestClient_FetchCompetitionMatches_MapsScoresAndPlaceholders(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/competitions/PD/matches" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(matchesBody))
	})

	items, err := client.FetchCompetitionMatches(context.Background(), "PD")
	require.NoError(t, err)
	require.Len(t, items, 2)

	finished := items[0]
	assert.True(t, finished.IsFinished())
	assert.Equal(t, "Primera Division", finished.CompetitionName)
	require.NotNil(t, finished.Home.Goals)
	assert.Equal(t, 2, *finished.Home.Goals)
	assert.Equal(t, time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC), finished.UTCDate)

	pending := items[1]
	assert.Nil(t, pending.Home.Goals)
	assert.Equal(t, "TBD", pending.Away.DisplayName())
	assert.True(t, pending.IsUpcoming())
}

func TestClient_NonSuccessStatusIsUpstreamError(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"The resource you are looking for is restricted.","errorCode":403}`))
	}, func(cfg *ClientConfig) { cfg.MaxRetries = 2 })

	_, err := client.RelayTeam(context.Background(), 64)
	require.ErrorIs(t, err, usecase.ErrUpstream)
	assert.Contains(t, err.Error(), "status=403")
	assert.Equal(t, int32(1), hits.Load(), "client errors are not retried")
}

func TestClient_RejectsMalformedAndInvalidPayloads(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"malformed json":   `{"matches": [`,
		"wrong field type": `{"matches": "nope"}`,
		"missing id":       `{"matches": [{"utcDate": "2025-03-15T20:00:00Z", "status": "TIMED"}]}`,
		"bad date":         `{"matches": [{"id": 1, "utcDate": "tomorrow", "status": "TIMED"}]}`,
	}
	for name, body := range tests {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			_, err := client.RelayTodayMatches(context.Background())
			assert.ErrorIs(t, err, usecase.ErrUpstream)
		})
	}
}

func TestClient_RelayTeam_RequiresIdentity(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 0, "name": ""}`))
	})

	_, err := client.RelayTeam(context.Background(), 64)
	assert.ErrorIs(t, err, usecase.ErrUpstream)
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"count": 1, "competitions": [{"id": 2021, "name": "Premier League", "code": "PL"}]}`))
	}, func(cfg *ClientConfig) { cfg.MaxRetries = 1 })

	raw, err := client.RelayCompetitions(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Premier League")
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_CircuitBreakerShortCircuits(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, func(cfg *ClientConfig) {
		cfg.CircuitBreaker = resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute, HalfOpenMaxReq: 1}
	})

	_, err := client.RelayMatch(context.Background(), 1001)
	require.ErrorIs(t, err, usecase.ErrUpstream)

	_, err = client.RelayMatch(context.Background(), 1001)
	require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
	assert.ErrorIs(t, err, usecase.ErrUpstream)
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_CancelledContext(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(standingsBody))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchStandings(ctx, "PL")
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrUpstream))
}

func TestSanitizeSensitiveText(t *testing.T) {
	t.Parallel()

	got := sanitizeSensitiveText("dial failed x-auth-token: abc123 and secret-token", "secret-token")
	assert.NotContains(t, got, "abc123")
	assert.NotContains(t, got, "secret-token")
	assert.Contains(t, got, "REDACTED")
}

func TestSeasonLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024/2025", seasonLabel(Season{StartDate: "2024-08-16", EndDate: "2025-05-25"}))
	assert.Equal(t, "2025", seasonLabel(Season{StartDate: "2025-01-10", EndDate: "2025-12-01"}))
	assert.Empty(t, seasonLabel(Season{}))
}

func TestClient_SharedFetchSurvivesCancelledCaller(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		arrived <- struct{}{}
		<-release
		_, _ = w.Write([]byte(standingsBody))
	})

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := client.FetchStandings(ctx, "PL")
		firstErr <- err
	}()
	<-arrived

	cancel()
	err := <-firstErr
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	type result struct {
		rows int
		err  error
	}
	second := make(chan result, 1)
	go func() {
		item, err := client.FetchStandings(context.Background(), "PL")
		second <- result{rows: len(item.PrimaryTable()), err: err}
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)

	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, 2, got.rows)
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_FetchBudget(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{Timeout: 2 * time.Second, MaxRetries: 2, Logger: logging.NewNop()})
	// three attempts at 2s plus 1s and 2s of backoff
	assert.Equal(t, 9*time.Second, client.fetchBudget())
}
