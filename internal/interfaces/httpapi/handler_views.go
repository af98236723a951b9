package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/riskibarqy/football-hub/internal/domain/prediction"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

const (
	messageSelectTwoTeams = "Please select two teams!"
	messageTeamsDiffer    = "Teams must be different!"
)

func (h *Handler) LiveView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LiveView")
	defer span.End()

	items, err := h.session.TodayMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "live view failed", "error", err)
		h.writeViewError(ctx, w, r, err)
		return
	}

	h.writeFragment(ctx, w, r, http.StatusOK, func(out io.Writer) error {
		return h.renderer.LiveMatches(out, items)
	})
}

func (h *Handler) StandingsView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StandingsView")
	defer span.End()

	code, err := h.parseCompetitionCode(ctx, r.PathValue("competitionCode"))
	if err != nil {
		h.writeViewError(ctx, w, r, err)
		return
	}

	item, err := h.session.LoadStandings(ctx, code)
	if err != nil {
		h.logger.WarnContext(ctx, "standings view failed", "competition", code, "error", err)
		h.writeViewError(ctx, w, r, err)
		return
	}

	h.writeFragment(ctx, w, r, http.StatusOK, func(out io.Writer) error {
		return h.renderer.StandingsTable(out, item)
	})
}

func (h *Handler) LeagueView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeagueView")
	defer span.End()

	slug := r.PathValue("slug")
	item, ok := h.catalog.BySlug(slug)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: league %q", usecase.ErrNotFound, slug))
		return
	}

	overview, err := h.session.LeagueOverview(ctx, item)
	if err != nil {
		h.logger.WarnContext(ctx, "league view failed", "competition", item.Code, "error", err)
		h.writeViewError(ctx, w, r, err)
		return
	}

	h.writeFragment(ctx, w, r, http.StatusOK, func(out io.Writer) error {
		return h.renderer.LeagueOverview(out, overview)
	})
}

func (h *Handler) TeamOptionsView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamOptionsView")
	defer span.End()

	selection, err := h.parseTeamSelection(ctx, r)
	if err != nil {
		h.writeViewError(ctx, w, r, err)
		return
	}

	teams := h.session.Teams()
	h.writeFragment(ctx, w, r, http.StatusOK, func(out io.Writer) error {
		return h.renderer.TeamOptions(out, teams, selection.Home, selection.Away)
	})
}

// PredictionView answers an invalid selection with a message fragment and
// status 200, the way the prediction panel shows it.
func (h *Handler) PredictionView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PredictionView")
	defer span.End()

	selection, err := h.parseTeamSelection(ctx, r)
	if err != nil {
		h.writeViewError(ctx, w, r, err)
		return
	}

	result, err := h.session.Predict(ctx, selection.Home, selection.Away)
	if err != nil {
		if !errors.Is(err, prediction.ErrInvalidSelection) {
			h.writeViewError(ctx, w, r, err)
			return
		}

		message := messageSelectTwoTeams
		if selection.Home != 0 && selection.Home == selection.Away {
			message = messageTeamsDiffer
		}
		h.writeFragment(ctx, w, r, http.StatusOK, func(out io.Writer) error {
			return h.renderer.PredictionMessage(out, message)
		})
		return
	}

	h.writeFragment(ctx, w, r, http.StatusOK, func(out io.Writer) error {
		return h.renderer.Prediction(out, result)
	})
}
