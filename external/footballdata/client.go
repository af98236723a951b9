package footballdata

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/domain/standing"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/resilience"
	"github.com/riskibarqy/football-hub/internal/usecase"
	"github.com/valyala/fasthttp"
)

const (
	defaultBaseURL  = "https://api.football-data.org/v4"
	defaultTimeout  = 10 * time.Second
	authHeader      = "X-Auth-Token"
	maxResponseSize = 6 << 20
)

var authHeaderRegex = regexp.MustCompile(`(?i)x-auth-token[:=]\s*[^\s"',]+`)
var errFootballDataTransient = crerr.New("football-data transient failure")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to football-data.org. Every call is authenticated with the
// configured token and validated against the endpoint's response shape.
type Client struct {
	httpClient *fasthttp.Client
	baseURL    string
	token      string
	timeout    time.Duration
	maxRetries int
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	validate   *validator.Validate
	flight     resilience.SingleFlight[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "football-hub",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseSize,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      strings.TrimSpace(cfg.Token),
		timeout:    timeout,
		maxRetries: max(cfg.MaxRetries, 0),
		logger:     logger,
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		validate:   validator.New(),
	}
}

// RelayTodayMatches returns the raw body of GET /matches.
func (c *Client) RelayTodayMatches(ctx context.Context) ([]byte, error) {
	var resp MatchesResponse
	return c.doJSON(ctx, "/matches", &resp)
}

func (c *Client) RelayCompetitionMatches(ctx context.Context, competitionCode string) ([]byte, error) {
	var resp MatchesResponse
	return c.doJSON(ctx, competitionPath(competitionCode, "matches"), &resp)
}

func (c *Client) RelayStandings(ctx context.Context, competitionCode string) ([]byte, error) {
	var resp StandingsResponse
	return c.doJSON(ctx, competitionPath(competitionCode, "standings"), &resp)
}

func (c *Client) RelayTeam(ctx context.Context, teamID int64) ([]byte, error) {
	var resp TeamResponse
	return c.doJSON(ctx, "/teams/"+strconv.FormatInt(teamID, 10), &resp)
}

func (c *Client) RelayMatch(ctx context.Context, matchID int64) ([]byte, error) {
	var resp Match
	return c.doJSON(ctx, "/matches/"+strconv.FormatInt(matchID, 10), &resp)
}

func (c *Client) RelayCompetitions(ctx context.Context) ([]byte, error) {
	var resp CompetitionsResponse
	return c.doJSON(ctx, "/competitions", &resp)
}

func (c *Client) FetchStandings(ctx context.Context, competitionCode string) (standing.Standings, error) {
	var resp StandingsResponse
	if _, err := c.doJSON(ctx, competitionPath(competitionCode, "standings"), &resp); err != nil {
		return standing.Standings{}, err
	}
	return mapStandings(competitionCode, resp), nil
}

func (c *Client) FetchCompetitionMatches(ctx context.Context, competitionCode string) ([]match.Match, error) {
	var resp MatchesResponse
	if _, err := c.doJSON(ctx, competitionPath(competitionCode, "matches"), &resp); err != nil {
		return nil, err
	}

	fallback := ""
	if resp.Competition != nil {
		fallback = resp.Competition.Name
	}
	items, err := mapMatches(fallback, resp.Matches)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrUpstream, err)
	}
	return items, nil
}

func (c *Client) FetchTodayMatches(ctx context.Context) ([]match.Match, error) {
	var resp MatchesResponse
	if _, err := c.doJSON(ctx, "/matches", &resp); err != nil {
		return nil, err
	}

	items, err := mapMatches("", resp.Matches)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrUpstream, err)
	}
	return items, nil
}

// doJSON fetches path, decodes it into target and validates it. The raw body
// is returned untouched and may be shared between concurrent callers. The
// shared fetch outlives any one caller and is bounded by fetchBudget.
func (c *Client) doJSON(ctx context.Context, path string, target any) ([]byte, error) {
	raw, err, _ := c.flight.DoContext(ctx, path, func() ([]byte, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchBudget())
		defer cancel()

		var body []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			body, reqErr = c.executeRequest(fetchCtx, path)
			return reqErr
		}, isFootballDataCircuitFailure)
		return body, execErr
	})
	if err != nil {
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "football-data circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: %w: football-data is temporarily unavailable", usecase.ErrUpstream, usecase.ErrDependencyUnavailable)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", usecase.ErrUpstream, ctxErr)
		}
		return nil, fmt.Errorf("%w: %v", usecase.ErrUpstream, err)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return nil, fmt.Errorf("%w: decode %s payload: %v", usecase.ErrUpstream, path, err)
	}
	if err := c.validate.StructCtx(ctx, target); err != nil {
		return nil, fmt.Errorf("%w: invalid %s payload: %v", usecase.ErrUpstream, path, err)
	}

	return raw, nil
}

// fetchBudget covers every attempt at the per-request timeout plus the linear
// backoff between them.
func (c *Client) fetchBudget() time.Duration {
	backoff := time.Duration(c.maxRetries*(c.maxRetries+1)/2) * time.Second
	return time.Duration(c.maxRetries+1)*c.timeout + backoff
}

func (c *Client) executeRequest(ctx context.Context, path string) ([]byte, error) {
	fullURL := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		raw, status, err := c.get(ctx, fullURL)
		switch {
		case err != nil:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			lastErr = crerr.Wrapf(errFootballDataTransient, "send request: %s", sanitizeSensitiveText(err.Error(), c.token))
		case status >= 200 && status < 300:
			return raw, nil
		case isRetryableStatus(status):
			lastErr = crerr.Wrapf(errFootballDataTransient, "provider status=%d body=%s", status, abbreviateBody(raw))
		default:
			lastErr = fmt.Errorf("provider status=%d body=%s", status, abbreviateBody(raw))
			c.logger.WarnContext(ctx, "football-data request rejected", "path", path, "status", status, "error", lastErr)
			return nil, lastErr
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "football-data request failed", "path", path, "attempts", c.maxRetries+1, "error", lastErr)
	return nil, lastErr
}

func (c *Client) get(ctx context.Context, fullURL string) ([]byte, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set(authHeader, c.token)
	}

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return nil, 0, err
	}

	body := append([]byte(nil), resp.Body()...)
	return body, resp.StatusCode(), nil
}

func competitionPath(code, resource string) string {
	return "/competitions/" + url.PathEscape(strings.ToUpper(strings.TrimSpace(code))) + "/" + resource
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return authHeaderRegex.ReplaceAllString(value, "X-Auth-Token: REDACTED")
}

func isFootballDataCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return crerr.Is(err, errFootballDataTransient)
}

func isRetryableStatus(code int) bool {
	return code == fasthttp.StatusTooManyRequests || code >= fasthttp.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
