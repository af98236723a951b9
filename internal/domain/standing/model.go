package standing

import (
	"strings"

	"github.com/riskibarqy/football-hub/internal/domain/team"
)

// Standings is one competition's standings payload as returned upstream.
type Standings struct {
	CompetitionCode string
	CompetitionName string
	Season          string
	Groups          []Group
}

// Group is one table inside a standings payload (TOTAL, HOME, AWAY or a cup group).
type Group struct {
	Stage string
	Type  string
	Name  string
	Rows  []Row
}

// Row is a single team's line in a table.
type Row struct {
	Position       int
	Team           TeamRef
	Played         int
	Won            int
	Draw           int
	Lost           int
	Points         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Form           string
}

type TeamRef struct {
	ID        int64
	Name      string
	ShortName string
	Crest     string
}

// DisplayName prefers the short name the way dropdowns and tables show clubs.
func (r TeamRef) DisplayName() string {
	if name := strings.TrimSpace(r.ShortName); name != "" {
		return name
	}
	return strings.TrimSpace(r.Name)
}

// PrimaryTable returns the first group's rows, or nil when there are no groups.
func (s *Standings) PrimaryTable() []Row {
	if s == nil || len(s.Groups) == 0 {
		return nil
	}
	return s.Groups[0].Rows
}

func (r Row) ToTeam() team.Team {
	return team.Team{
		ID:             r.Team.ID,
		Name:           r.Team.DisplayName(),
		Points:         r.Points,
		GoalDifference: r.GoalDifference,
		Form:           r.Form,
		Position:       r.Position,
	}
}
