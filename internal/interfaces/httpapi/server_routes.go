package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerProxyRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/matches/today", handler.GetTodayMatches)
	mux.HandleFunc("GET /api/matches/{competitionCode}", handler.GetCompetitionMatches)
	mux.HandleFunc("GET /api/standings/{competitionCode}", handler.GetStandings)
	mux.HandleFunc("GET /api/team/{teamId}", handler.GetTeam)
	mux.HandleFunc("GET /api/match/{matchId}", handler.GetMatch)
	mux.HandleFunc("GET /api/competitions", handler.GetCompetitions)
}

func registerPredictionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/predict", handler.GetPrediction)
}

func registerViewRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /views/live", handler.LiveView)
	mux.HandleFunc("GET /views/standings/{competitionCode}", handler.StandingsView)
	mux.HandleFunc("GET /views/leagues/{slug}", handler.LeagueView)
	mux.HandleFunc("GET /views/teams/options", handler.TeamOptionsView)
	mux.HandleFunc("GET /views/prediction", handler.PredictionView)
}
