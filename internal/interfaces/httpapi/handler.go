// Package httpapi serves the football-data relay routes under /api and the
// HTML fragment views polled by the browser.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-hub/internal/domain/competition"
	"github.com/riskibarqy/football-hub/internal/interfaces/render"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

// Relay returns raw upstream bodies for the proxy routes.
type Relay interface {
	RelayTodayMatches(ctx context.Context) ([]byte, error)
	RelayCompetitionMatches(ctx context.Context, competitionCode string) ([]byte, error)
	RelayStandings(ctx context.Context, competitionCode string) ([]byte, error)
	RelayTeam(ctx context.Context, teamID int64) ([]byte, error)
	RelayMatch(ctx context.Context, matchID int64) ([]byte, error)
	RelayCompetitions(ctx context.Context) ([]byte, error)
}

type Handler struct {
	relay     Relay
	session   *usecase.Session
	catalog   *competition.Catalog
	renderer  *render.Renderer
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(
	relay Relay,
	session *usecase.Session,
	catalog *competition.Catalog,
	renderer *render.Renderer,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		relay:     relay,
		session:   session,
		catalog:   catalog,
		renderer:  renderer,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type competitionCodeRequest struct {
	Code string `validate:"required,alphanum,min=2,max=6"`
}

type resourceIDRequest struct {
	ID int64 `validate:"required,gt=0"`
}

type teamSelectionRequest struct {
	Home int64 `validate:"gte=0"`
	Away int64 `validate:"gte=0"`
}

// parseCompetitionCode normalizes and validates a {competitionCode} path value.
func (h *Handler) parseCompetitionCode(ctx context.Context, raw string) (string, error) {
	req := competitionCodeRequest{Code: competition.NormalizeCode(raw)}
	if err := h.validateRequest(ctx, req); err != nil {
		return "", err
	}
	return req.Code, nil
}

func (h *Handler) parseResourceID(ctx context.Context, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not a number", usecase.ErrInvalidInput, raw)
	}
	if err := h.validateRequest(ctx, resourceIDRequest{ID: id}); err != nil {
		return 0, err
	}
	return id, nil
}

// parseTeamSelection reads ?home=&away=. Missing or non-numeric values are
// treated as unset; negative ids are rejected.
func (h *Handler) parseTeamSelection(ctx context.Context, r *http.Request) (teamSelectionRequest, error) {
	query := r.URL.Query()
	req := teamSelectionRequest{
		Home: parseOptionalID(query.Get("home")),
		Away: parseOptionalID(query.Get("away")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return teamSelectionRequest{}, err
	}
	return req, nil
}

func parseOptionalID(raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
