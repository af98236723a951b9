package httpapi

import (
	"context"
	"net/http"
)

// proxy relays one upstream call. Any failure, including a bad path value,
// becomes the 500 envelope carrying the route's label.
func (h *Handler) proxy(ctx context.Context, w http.ResponseWriter, label string, fetch func(context.Context) ([]byte, error)) {
	raw, err := fetch(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "proxy request failed", "label", label, "error", err)
		writeRelayError(ctx, w, label, err)
		return
	}

	writeRaw(ctx, w, http.StatusOK, raw)
}

func (h *Handler) GetTodayMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTodayMatches")
	defer span.End()

	h.proxy(ctx, w, labelMatches, h.relay.RelayTodayMatches)
}

func (h *Handler) GetCompetitionMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCompetitionMatches")
	defer span.End()

	h.proxy(ctx, w, labelMatches, func(ctx context.Context) ([]byte, error) {
		code, err := h.parseCompetitionCode(ctx, r.PathValue("competitionCode"))
		if err != nil {
			return nil, err
		}
		return h.relay.RelayCompetitionMatches(ctx, code)
	})
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	h.proxy(ctx, w, labelStandings, func(ctx context.Context) ([]byte, error) {
		code, err := h.parseCompetitionCode(ctx, r.PathValue("competitionCode"))
		if err != nil {
			return nil, err
		}
		return h.relay.RelayStandings(ctx, code)
	})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	h.proxy(ctx, w, labelTeam, func(ctx context.Context) ([]byte, error) {
		id, err := h.parseResourceID(ctx, r.PathValue("teamId"))
		if err != nil {
			return nil, err
		}
		return h.relay.RelayTeam(ctx, id)
	})
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	h.proxy(ctx, w, labelMatch, func(ctx context.Context) ([]byte, error) {
		id, err := h.parseResourceID(ctx, r.PathValue("matchId"))
		if err != nil {
			return nil, err
		}
		return h.relay.RelayMatch(ctx, id)
	})
}

func (h *Handler) GetCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCompetitions")
	defer span.End()

	h.proxy(ctx, w, labelCompetitions, h.relay.RelayCompetitions)
}
