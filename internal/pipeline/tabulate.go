package pipeline

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/esanchezmex/statsbomb-viz/pkg/models"
)

// Accepted match_date layouts. The open data uses plain dates; some
// exports carry a time component.
var matchDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// TabulateCompetitions converts validated competition records into rows
// sorted by (competition_name, season_name).
//
// The tabulators in this file fail hard on a missing or malformed field:
// validation guarantees presence, so an error here is a contract breach
// upstream, not a runtime condition to absorb.
func TabulateCompetitions(records []map[string]any) ([]models.Competition, error) {
	rows := make([]models.Competition, 0, len(records))

	for i, rec := range records {
		compID, err := intField(rec, "competition_id")
		if err != nil {
			return nil, fmt.Errorf("competition record %d: %w", i, err)
		}
		seasonID, err := intField(rec, "season_id")
		if err != nil {
			return nil, fmt.Errorf("competition record %d: %w", i, err)
		}
		compName, err := stringField(rec, "competition_name")
		if err != nil {
			return nil, fmt.Errorf("competition record %d: %w", i, err)
		}
		seasonName, err := stringField(rec, "season_name")
		if err != nil {
			return nil, fmt.Errorf("competition record %d: %w", i, err)
		}

		row := models.Competition{
			CompetitionID:   compID,
			CompetitionName: compName,
			SeasonID:        seasonID,
			SeasonName:      seasonName,
		}
		if country, ok := rec["country_name"].(string); ok {
			row.CountryName = country
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].CompetitionName != rows[j].CompetitionName {
			return rows[i].CompetitionName < rows[j].CompetitionName
		}
		return rows[i].SeasonName < rows[j].SeasonName
	})
	return rows, nil
}

// TabulateMatches converts validated match records into rows sorted by
// match_date ascending. An unparseable match_date is a hard error.
func TabulateMatches(records []map[string]any) ([]models.Match, error) {
	rows := make([]models.Match, 0, len(records))

	for i, rec := range records {
		matchID, err := intField(rec, "match_id")
		if err != nil {
			return nil, fmt.Errorf("match record %d: %w", i, err)
		}
		homeTeam, err := teamField(rec, "home_team", "home_team_name")
		if err != nil {
			return nil, fmt.Errorf("match record %d: %w", i, err)
		}
		awayTeam, err := teamField(rec, "away_team", "away_team_name")
		if err != nil {
			return nil, fmt.Errorf("match record %d: %w", i, err)
		}
		homeScore, err := intField(rec, "home_score")
		if err != nil {
			return nil, fmt.Errorf("match record %d: %w", i, err)
		}
		awayScore, err := intField(rec, "away_score")
		if err != nil {
			return nil, fmt.Errorf("match record %d: %w", i, err)
		}
		dateStr, err := stringField(rec, "match_date")
		if err != nil {
			return nil, fmt.Errorf("match record %d: %w", i, err)
		}
		matchDate, err := parseMatchDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("match record %d: %w", i, err)
		}

		rows = append(rows, models.Match{
			MatchID:   matchID,
			HomeTeam:  homeTeam,
			AwayTeam:  awayTeam,
			HomeScore: homeScore,
			AwayScore: awayScore,
			MatchDate: matchDate,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MatchDate.Before(rows[j].MatchDate)
	})
	return rows, nil
}

// TabulateEvents converts validated event records into rows with the
// derived columns event_type, team_name, player_name and timestamp
// (minute*60 + second). The shot detail object is kept only for "Shot"
// events; every other row gets an empty one. A record without a usable
// two-element location gets a nil Location, which the heatmap step
// filters and counts.
func TabulateEvents(records []map[string]any) ([]models.Event, error) {
	rows := make([]models.Event, 0, len(records))

	for i, rec := range records {
		eventType, err := nestedName(rec, "type")
		if err != nil {
			return nil, fmt.Errorf("event record %d: %w", i, err)
		}
		teamName, err := nestedName(rec, "team")
		if err != nil {
			return nil, fmt.Errorf("event record %d: %w", i, err)
		}
		playerName, err := nestedName(rec, "player")
		if err != nil {
			return nil, fmt.Errorf("event record %d: %w", i, err)
		}
		playPattern, err := nestedName(rec, "play_pattern")
		if err != nil {
			return nil, fmt.Errorf("event record %d: %w", i, err)
		}
		minute, err := intField(rec, "minute")
		if err != nil {
			return nil, fmt.Errorf("event record %d: %w", i, err)
		}
		second, err := intField(rec, "second")
		if err != nil {
			return nil, fmt.Errorf("event record %d: %w", i, err)
		}
		possession, err := intField(rec, "possession")
		if err != nil {
			return nil, fmt.Errorf("event record %d: %w", i, err)
		}

		shot := map[string]any{}
		if eventType == "Shot" {
			if detail, ok := rec["shot"].(map[string]any); ok {
				shot = detail
			}
		}

		rows = append(rows, models.Event{
			ID:          idString(rec["id"]),
			EventType:   eventType,
			Minute:      minute,
			Second:      second,
			Timestamp:   minute*60 + second,
			Possession:  possession,
			PlayPattern: playPattern,
			TeamName:    teamName,
			PlayerName:  playerName,
			Location:    locationField(rec),
			Shot:        shot,
		})
	}
	return rows, nil
}

func parseMatchDate(value string) (time.Time, error) {
	for _, layout := range matchDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable match_date %q", value)
}

// intField reads a numeric field. JSON decoding hands numbers over as
// float64, so both forms are accepted.
func intField(rec map[string]any, key string) (int, error) {
	switch v := rec[key].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("field %s is %T, want number", key, rec[key])
	}
}

func stringField(rec map[string]any, key string) (string, error) {
	if s, ok := rec[key].(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("field %s is %T, want string", key, rec[key])
}

// nestedName reads the name of a nested object field like type or team.
func nestedName(rec map[string]any, key string) (string, error) {
	obj, ok := rec[key].(map[string]any)
	if !ok {
		return "", fmt.Errorf("field %s is %T, want object", key, rec[key])
	}
	name, ok := obj["name"].(string)
	if !ok {
		return "", fmt.Errorf("field %s has no name", key)
	}
	return name, nil
}

// teamField reads a match team name, either a bare string or the nested
// open-data form {"home_team_name": ...}.
func teamField(rec map[string]any, key, nameKey string) (string, error) {
	switch v := rec[key].(type) {
	case string:
		return v, nil
	case map[string]any:
		if name, ok := v[nameKey].(string); ok {
			return name, nil
		}
		if name, ok := v["name"].(string); ok {
			return name, nil
		}
		return "", fmt.Errorf("field %s has no %s", key, nameKey)
	default:
		return "", fmt.Errorf("field %s is %T, want object", key, rec[key])
	}
}

// locationField returns the [x, y] pair when present and well formed,
// nil otherwise. Never an error: heatmap consumption filters nil rows.
func locationField(rec map[string]any) []float64 {
	raw, ok := rec["location"].([]any)
	if !ok || len(raw) < 2 {
		return nil
	}
	coords := make([]float64, 0, 2)
	for _, item := range raw[:2] {
		switch n := item.(type) {
		case float64:
			coords = append(coords, n)
		case int:
			coords = append(coords, float64(n))
		default:
			return nil
		}
	}
	return coords
}

// idString renders an event id, UUID string or numeric, as a string key.
func idString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		if id == math.Trunc(id) {
			return strconv.FormatInt(int64(id), 10)
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	default:
		return fmt.Sprintf("%v", v)
	}
}
