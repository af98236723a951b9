package footballdata

// Response shapes for the football-data.org v4 endpoints the service relays.
// Only the fields the service reads are declared; the relay forwards the
// original bytes, so unknown fields survive.

type CompetitionRef struct {
	ID     int64  `json:"id" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required"`
	Code   string `json:"code"`
	Type   string `json:"type"`
	Emblem string `json:"emblem"`
}

type Season struct {
	ID              int64  `json:"id"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	CurrentMatchday *int   `json:"currentMatchday"`
}

type TeamRef struct {
	ID        int64  `json:"id" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
}

type StandingsResponse struct {
	Competition *CompetitionRef `json:"competition"`
	Season      *Season         `json:"season"`
	Standings   []StandingGroup `json:"standings" validate:"dive"`
}

type StandingGroup struct {
	Stage string     `json:"stage"`
	Type  string     `json:"type"`
	Group *string    `json:"group"`
	Table []TableRow `json:"table" validate:"dive"`
}

type TableRow struct {
	Position       int     `json:"position" validate:"gte=0"`
	Team           TeamRef `json:"team"`
	PlayedGames    int     `json:"playedGames" validate:"gte=0"`
	Form           *string `json:"form"`
	Won            int     `json:"won" validate:"gte=0"`
	Draw           int     `json:"draw" validate:"gte=0"`
	Lost           int     `json:"lost" validate:"gte=0"`
	Points         int     `json:"points"`
	GoalsFor       int     `json:"goalsFor" validate:"gte=0"`
	GoalsAgainst   int     `json:"goalsAgainst" validate:"gte=0"`
	GoalDifference int     `json:"goalDifference"`
}

type MatchesResponse struct {
	Competition *CompetitionRef `json:"competition"`
	Matches     []Match         `json:"matches" validate:"dive"`
}

// Match is also the body of the single-match endpoint.
type Match struct {
	ID          int64           `json:"id" validate:"required,gt=0"`
	UTCDate     string          `json:"utcDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Status      string          `json:"status" validate:"required"`
	Matchday    *int            `json:"matchday"`
	Stage       string          `json:"stage"`
	HomeTeam    MatchTeam       `json:"homeTeam"`
	AwayTeam    MatchTeam       `json:"awayTeam"`
	Score       Score           `json:"score"`
	Competition *CompetitionRef `json:"competition"`
}

// MatchTeam is lenient: knockout fixtures carry null teams until the draw.
type MatchTeam struct {
	ID        *int64 `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
}

type Score struct {
	Winner   *string   `json:"winner"`
	Duration string    `json:"duration"`
	FullTime ScoreLine `json:"fullTime"`
	HalfTime ScoreLine `json:"halfTime"`
}

type ScoreLine struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type TeamResponse struct {
	ID         int64  `json:"id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required"`
	ShortName  string `json:"shortName"`
	TLA        string `json:"tla"`
	Crest      string `json:"crest"`
	Venue      string `json:"venue"`
	Founded    *int   `json:"founded"`
	ClubColors string `json:"clubColors"`
}

type CompetitionsResponse struct {
	Count        int              `json:"count" validate:"gte=0"`
	Competitions []CompetitionRef `json:"competitions" validate:"dive"`
}
