package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-hub/internal/domain/prediction"
	"github.com/riskibarqy/football-hub/internal/domain/team"
)

type teamDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Points         int    `json:"points"`
	GoalDifference int    `json:"goalDifference"`
	Form           string `json:"form,omitempty"`
	Position       int    `json:"position"`
}

type teamsDTO struct {
	Competitions []string  `json:"competitions"`
	Teams        []teamDTO `json:"teams"`
}

type predictionDTO struct {
	Home           teamDTO `json:"home"`
	Away           teamDTO `json:"away"`
	HomeScore      float64 `json:"homeScore"`
	AwayScore      float64 `json:"awayScore"`
	HomeWinPercent int     `json:"homeWinPercent"`
	AwayWinPercent int     `json:"awayWinPercent"`
	Outcome        string  `json:"outcome"`
	Winner         string  `json:"winner"`
	Clamped        bool    `json:"clamped"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:             t.ID,
		Name:           t.Name,
		Points:         t.Points,
		GoalDifference: t.GoalDifference,
		Form:           t.Form,
		Position:       t.Position,
	}
}

func predictionToDTO(result prediction.Result) predictionDTO {
	return predictionDTO{
		Home:           teamToDTO(result.Home),
		Away:           teamToDTO(result.Away),
		HomeScore:      result.HomeScore,
		AwayScore:      result.AwayScore,
		HomeWinPercent: result.HomeWinPercent,
		AwayWinPercent: result.AwayWinPercent,
		Outcome:        string(result.Outcome),
		Winner:         result.Winner(),
		Clamped:        result.Clamped,
	}
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams := h.session.Teams()
	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeJSON(ctx, w, http.StatusOK, teamsDTO{
		Competitions: h.session.CachedCompetitions(),
		Teams:        items,
	})
}

func (h *Handler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPrediction")
	defer span.End()

	selection, err := h.parseTeamSelection(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.session.Predict(ctx, selection.Home, selection.Away)
	if err != nil {
		h.logger.InfoContext(ctx, "prediction rejected", "home", selection.Home, "away", selection.Away, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, predictionToDTO(result))
}
