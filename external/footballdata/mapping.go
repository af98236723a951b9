package footballdata

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/domain/standing"
)

func mapStandings(code string, resp StandingsResponse) standing.Standings {
	out := standing.Standings{
		CompetitionCode: code,
		Groups:          make([]standing.Group, 0, len(resp.Standings)),
	}
	if resp.Competition != nil {
		out.CompetitionName = strings.TrimSpace(resp.Competition.Name)
		if c := strings.TrimSpace(resp.Competition.Code); c != "" {
			out.CompetitionCode = c
		}
	}
	if resp.Season != nil {
		out.Season = seasonLabel(*resp.Season)
	}

	for _, group := range resp.Standings {
		rows := make([]standing.Row, 0, len(group.Table))
		for _, item := range group.Table {
			rows = append(rows, standing.Row{
				Position: item.Position,
				Team: standing.TeamRef{
					ID:        item.Team.ID,
					Name:      strings.TrimSpace(item.Team.Name),
					ShortName: strings.TrimSpace(item.Team.ShortName),
					Crest:     strings.TrimSpace(item.Team.Crest),
				},
				Played:         item.PlayedGames,
				Won:            item.Won,
				Draw:           item.Draw,
				Lost:           item.Lost,
				Points:         item.Points,
				GoalsFor:       item.GoalsFor,
				GoalsAgainst:   item.GoalsAgainst,
				GoalDifference: item.GoalDifference,
				Form:           derefString(item.Form),
			})
		}

		out.Groups = append(out.Groups, standing.Group{
			Stage: group.Stage,
			Type:  group.Type,
			Name:  derefString(group.Group),
			Rows:  rows,
		})
	}

	return out
}

func mapMatches(fallbackCompetition string, items []Match) ([]match.Match, error) {
	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		kickoff, err := time.Parse(time.RFC3339, item.UTCDate)
		if err != nil {
			return nil, fmt.Errorf("parse utcDate match_id=%d: %w", item.ID, err)
		}

		competitionName := fallbackCompetition
		if item.Competition != nil && strings.TrimSpace(item.Competition.Name) != "" {
			competitionName = strings.TrimSpace(item.Competition.Name)
		}

		out = append(out, match.Match{
			ID:              item.ID,
			UTCDate:         kickoff.UTC(),
			Status:          match.NormalizeStatus(item.Status),
			Matchday:        derefInt(item.Matchday),
			CompetitionName: competitionName,
			Home:            mapSide(item.HomeTeam, item.Score.FullTime.Home),
			Away:            mapSide(item.AwayTeam, item.Score.FullTime.Away),
		})
	}
	return out, nil
}

func mapSide(team MatchTeam, goals *int) match.Side {
	side := match.Side{
		Name:      strings.TrimSpace(team.Name),
		ShortName: strings.TrimSpace(team.ShortName),
		Crest:     strings.TrimSpace(team.Crest),
	}
	if team.ID != nil {
		side.ID = *team.ID
	}
	if goals != nil {
		v := *goals
		side.Goals = &v
	}
	return side
}

// seasonLabel renders "2024/2025" from the season's start and end dates.
func seasonLabel(season Season) string {
	start, end := yearOf(season.StartDate), yearOf(season.EndDate)
	switch {
	case start == "":
		return ""
	case end == "" || end == start:
		return start
	default:
		return start + "/" + end
	}
}

func yearOf(date string) string {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
