// Package pipeline implements the reshaping pipeline: raw record lists
// are validated, tabulated into typed rows with derived columns, and
// aggregated into team and player stats. Validation must run before
// tabulation; the tabulator assumes every required field is present.
package pipeline

import "log"

var (
	competitionRequiredFields = []string{
		"competition_id", "competition_name", "season_id", "season_name",
	}
	matchRequiredFields = []string{
		"match_id", "home_team", "away_team", "home_score", "away_score", "match_date",
	}
	eventRequiredFields = []string{
		"id", "type", "minute", "second", "possession", "play_pattern", "team", "player",
	}
)

// ValidateCompetitions drops competition records missing required fields.
func ValidateCompetitions(records []map[string]any) []map[string]any {
	return filterRecords("competition", records, competitionRequiredFields)
}

// ValidateMatches drops match records missing required fields.
func ValidateMatches(records []map[string]any) []map[string]any {
	return filterRecords("match", records, matchRequiredFields)
}

// ValidateEvents drops event records missing required fields.
func ValidateEvents(records []map[string]any) []map[string]any {
	return filterRecords("event", records, eventRequiredFields)
}

// filterRecords keeps records containing every required field. Presence
// only; values are not inspected. Dropped records are logged at warning
// level and never surfaced as errors.
func filterRecords(kind string, records []map[string]any, required []string) []map[string]any {
	valid := make([]map[string]any, 0, len(records))

	for _, rec := range records {
		missing := missingFields(rec, required)
		if len(missing) > 0 {
			log.Printf("[validate] warning: dropping %s record, missing fields %v", kind, missing)
			continue
		}
		valid = append(valid, rec)
	}
	return valid
}

func missingFields(rec map[string]any, required []string) []string {
	var missing []string
	for _, field := range required {
		if _, ok := rec[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}
