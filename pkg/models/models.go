package models

import (
	"fmt"
	"time"
)

// Competition is one row of the competitions table: a single
// (competition, season) edition of a tournament.
type Competition struct {
	CompetitionID   int    `json:"competition_id"`
	CompetitionName string `json:"competition_name"`
	SeasonID        int    `json:"season_id"`
	SeasonName      string `json:"season_name"`
	CountryName     string `json:"country_name,omitempty"`
}

// Label returns the display string used by the competition picker.
func (c Competition) Label() string {
	return fmt.Sprintf("%s - %s", c.CompetitionName, c.SeasonName)
}

// Match is one row of the matches table for a competition season.
type Match struct {
	MatchID   int       `json:"match_id"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
	MatchDate time.Time `json:"match_date"`
}

// Label returns the display string used by the match picker.
func (m Match) Label() string {
	return fmt.Sprintf("%s %d - %d %s", m.HomeTeam, m.HomeScore, m.AwayScore, m.AwayTeam)
}

// Event is one row of the tabulated event table. EventType, TeamName,
// PlayerName and Timestamp are derived columns; Location is nil when the
// source record carried no usable [x, y] pair; Shot is empty except for
// events whose type is "Shot".
type Event struct {
	ID          string         `json:"id"`
	EventType   string         `json:"event_type"`
	Minute      int            `json:"minute"`
	Second      int            `json:"second"`
	Timestamp   int            `json:"timestamp"`
	Possession  int            `json:"possession"`
	PlayPattern string         `json:"play_pattern"`
	TeamName    string         `json:"team_name"`
	PlayerName  string         `json:"player_name"`
	Location    []float64      `json:"location,omitempty"`
	Shot        map[string]any `json:"shot"`
}

// TeamStats is the per-team aggregate over one event table.
type TeamStats struct {
	TeamName       string         `json:"team_name"`
	TotalEvents    int            `json:"total_events"`
	EventBreakdown map[string]int `json:"event_breakdown"`
}

// PlayerStats is the per-(team, player) aggregate over one event table.
type PlayerStats struct {
	TeamName       string         `json:"team_name"`
	PlayerName     string         `json:"player_name"`
	TotalEvents    int            `json:"total_events"`
	EventBreakdown map[string]int `json:"event_breakdown"`
}
