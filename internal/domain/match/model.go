package match

import (
	"strings"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusTimed     = "TIMED"
	StatusInPlay    = "IN_PLAY"
	StatusPaused    = "PAUSED"
	StatusFinished  = "FINISHED"
	StatusPostponed = "POSTPONED"
	StatusCancelled = "CANCELLED"
)

// DefaultUpcomingLimit is how many fixtures a league view lists.
const DefaultUpcomingLimit = 8

// Match is one fixture from a matches listing.
type Match struct {
	ID              int64
	UTCDate         time.Time
	Status          string
	Matchday        int
	CompetitionName string
	Home            Side
	Away            Side
}

// Side is one participant of a match with its full-time goals, nil until known.
type Side struct {
	ID        int64
	Name      string
	ShortName string
	Crest     string
	Goals     *int
}

func (s Side) DisplayName() string {
	if name := strings.TrimSpace(s.ShortName); name != "" {
		return name
	}
	if name := strings.TrimSpace(s.Name); name != "" {
		return name
	}
	return "TBD"
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func (m Match) IsLive() bool {
	switch NormalizeStatus(m.Status) {
	case StatusInPlay, StatusPaused:
		return true
	default:
		return false
	}
}

func (m Match) IsFinished() bool {
	return NormalizeStatus(m.Status) == StatusFinished
}

// IsUpcoming reports whether the match belongs in an upcoming-fixtures list.
// Matches already in play are included.
func (m Match) IsUpcoming() bool {
	switch NormalizeStatus(m.Status) {
	case StatusScheduled, StatusTimed, StatusInPlay:
		return true
	default:
		return false
	}
}

// Upcoming keeps upcoming matches in their original order, capped at limit.
func Upcoming(items []Match, limit int) []Match {
	out := make([]Match, 0, min(len(items), max(limit, 0)))
	for _, item := range items {
		if len(out) >= limit {
			break
		}
		if item.IsUpcoming() {
			out = append(out, item)
		}
	}
	return out
}
