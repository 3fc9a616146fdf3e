package pipeline

import "github.com/esanchezmex/statsbomb-viz/pkg/models"

// TeamStatsFrom groups an event table by team_name, producing one row
// per distinct team in first-occurrence order: total event count plus a
// per-event-type breakdown. Stats are recomputed from the full table on
// every call; there is no incremental path.
func TeamStatsFrom(events []models.Event) []models.TeamStats {
	index := make(map[string]int)
	stats := make([]models.TeamStats, 0)

	for _, ev := range events {
		i, ok := index[ev.TeamName]
		if !ok {
			i = len(stats)
			index[ev.TeamName] = i
			stats = append(stats, models.TeamStats{
				TeamName:       ev.TeamName,
				EventBreakdown: make(map[string]int),
			})
		}
		stats[i].TotalEvents++
		stats[i].EventBreakdown[ev.EventType]++
	}
	return stats
}

// PlayerStatsFrom groups an event table by (team_name, player_name) in
// first-occurrence order.
func PlayerStatsFrom(events []models.Event) []models.PlayerStats {
	type key struct {
		team   string
		player string
	}
	index := make(map[key]int)
	stats := make([]models.PlayerStats, 0)

	for _, ev := range events {
		k := key{team: ev.TeamName, player: ev.PlayerName}
		i, ok := index[k]
		if !ok {
			i = len(stats)
			index[k] = i
			stats = append(stats, models.PlayerStats{
				TeamName:       ev.TeamName,
				PlayerName:     ev.PlayerName,
				EventBreakdown: make(map[string]int),
			})
		}
		stats[i].TotalEvents++
		stats[i].EventBreakdown[ev.EventType]++
	}
	return stats
}
