// Package render turns view-model data into the HTML fragments the browser
// swaps into the page, optionally converted to Markdown.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/domain/prediction"
	"github.com/riskibarqy/football-hub/internal/domain/standing"
	"github.com/riskibarqy/football-hub/internal/domain/team"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	StatusClassLive      = "live"
	StatusClassFinished  = "finished"
	StatusClassScheduled = "scheduled"

	unknownCompetition = "Unknown League"
	missingScore       = "-"
)

// DefaultErrorMessage is shown in the error banner when a view cannot load its data.
const DefaultErrorMessage = "Failed to load data. Please try again later."

type Renderer struct {
	templates *template.Template
	markdown  *converter.Converter
	location  *time.Location
}

type teamOptionsView struct {
	Teams []team.Team
	Home  int64
	Away  int64
}

// New parses the embedded templates. Kick-off times are shown in loc, UTC when nil.
func New(loc *time.Location) (*Renderer, error) {
	if loc == nil {
		loc = time.UTC
	}

	r := &Renderer{location: loc}
	tmpl, err := template.New("fragments").Funcs(template.FuncMap{
		"statusClass":     StatusClass,
		"statusText":      r.statusText,
		"matchDate":       r.matchDate,
		"competitionName": competitionName,
		"score":           formatScore,
		"primaryTable":    primaryTable,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse fragment templates: %w", err)
	}

	r.templates = tmpl
	r.markdown = converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return r, nil
}

// LiveMatches renders today's match cards, or the info banner when there are none.
func (r *Renderer) LiveMatches(w io.Writer, items []match.Match) error {
	return r.execute(w, "live_matches", items)
}

func (r *Renderer) MatchCards(w io.Writer, items []match.Match) error {
	return r.execute(w, "match_cards", items)
}

func (r *Renderer) StandingsTable(w io.Writer, item *standing.Standings) error {
	return r.execute(w, "standings_table", item)
}

func (r *Renderer) LeagueOverview(w io.Writer, item usecase.LeagueOverview) error {
	return r.execute(w, "league_overview", item)
}

// TeamOptions renders the home and away selects, keeping the given selection.
func (r *Renderer) TeamOptions(w io.Writer, teams []team.Team, home, away int64) error {
	return r.execute(w, "team_options", teamOptionsView{Teams: teams, Home: home, Away: away})
}

func (r *Renderer) Prediction(w io.Writer, result prediction.Result) error {
	return r.execute(w, "prediction", result)
}

func (r *Renderer) PredictionMessage(w io.Writer, message string) error {
	return r.execute(w, "prediction_message", message)
}

func (r *Renderer) ErrorBanner(w io.Writer, message string) error {
	if strings.TrimSpace(message) == "" {
		message = DefaultErrorMessage
	}
	return r.execute(w, "error_banner", message)
}

// Markdown converts a rendered fragment into Markdown.
func (r *Renderer) Markdown(fragment string) (string, error) {
	out, err := r.markdown.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("convert fragment to markdown: %w", err)
	}
	return out, nil
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// StatusClass buckets a match into the card classes live, finished or scheduled.
func StatusClass(m match.Match) string {
	switch {
	case m.IsLive():
		return StatusClassLive
	case m.IsFinished():
		return StatusClassFinished
	default:
		return StatusClassScheduled
	}
}

// statusText is the badge label. Only matches in play get the live marker;
// paused and upcoming matches show the kick-off time.
func (r *Renderer) statusText(m match.Match) string {
	switch match.NormalizeStatus(m.Status) {
	case match.StatusInPlay:
		return "LIVE 🔴"
	case match.StatusFinished:
		return "FT"
	default:
		return m.UTCDate.In(r.location).Format("15:04")
	}
}

func (r *Renderer) matchDate(m match.Match) string {
	return m.UTCDate.In(r.location).Format("2 Jan")
}

func competitionName(m match.Match) string {
	if name := strings.TrimSpace(m.CompetitionName); name != "" {
		return name
	}
	return unknownCompetition
}

func formatScore(goals *int) string {
	if goals == nil {
		return missingScore
	}
	return strconv.Itoa(*goals)
}

func primaryTable(item *standing.Standings) []standing.Row {
	return item.PrimaryTable()
}
