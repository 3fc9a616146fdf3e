package pipeline_test

import (
	"testing"

	"github.com/esanchezmex/statsbomb-viz/internal/pipeline"
	"github.com/esanchezmex/statsbomb-viz/pkg/models"
)

func event(team, player, eventType string) models.Event {
	return models.Event{
		EventType:  eventType,
		TeamName:   team,
		PlayerName: player,
	}
}

func TestTeamStatsFrom(t *testing.T) {
	events := []models.Event{
		event("Team A", "Player 1", "Pass"),
		event("Team A", "Player 2", "Shot"),
		event("Team B", "Player 3", "Pass"),
		event("Team A", "Player 1", "Pass"),
	}

	stats := pipeline.TeamStatsFrom(events)

	if len(stats) != 2 {
		t.Fatalf("got %d teams, want 2", len(stats))
	}

	// First-occurrence order.
	if stats[0].TeamName != "Team A" || stats[1].TeamName != "Team B" {
		t.Errorf("team order = (%s, %s), want (Team A, Team B)", stats[0].TeamName, stats[1].TeamName)
	}

	for _, s := range stats {
		breakdownSum := 0
		for _, n := range s.EventBreakdown {
			breakdownSum += n
		}
		if breakdownSum != s.TotalEvents {
			t.Errorf("%s: breakdown sums to %d, total_events is %d", s.TeamName, breakdownSum, s.TotalEvents)
		}
	}

	a := stats[0]
	if a.TotalEvents != 3 {
		t.Errorf("Team A total_events = %d, want 3", a.TotalEvents)
	}
	if a.EventBreakdown["Pass"] != 2 || a.EventBreakdown["Shot"] != 1 {
		t.Errorf("Team A breakdown = %v, want Pass:2 Shot:1", a.EventBreakdown)
	}
	if stats[1].TotalEvents != 1 {
		t.Errorf("Team B total_events = %d, want 1", stats[1].TotalEvents)
	}
}

func TestPlayerStatsFrom(t *testing.T) {
	events := []models.Event{
		event("Team A", "Player 1", "Pass"),
		event("Team A", "Player 1", "Shot"),
		event("Team A", "Player 2", "Pass"),
	}

	stats := pipeline.PlayerStatsFrom(events)

	if len(stats) != 2 {
		t.Fatalf("got %d groups, want 2", len(stats))
	}
	if stats[0].PlayerName != "Player 1" || stats[0].TotalEvents != 2 {
		t.Errorf("first group = (%s, %d), want (Player 1, 2)", stats[0].PlayerName, stats[0].TotalEvents)
	}
	if stats[1].PlayerName != "Player 2" || stats[1].TotalEvents != 1 {
		t.Errorf("second group = (%s, %d), want (Player 2, 1)", stats[1].PlayerName, stats[1].TotalEvents)
	}
}

// Same player name on two teams must form two groups.
func TestPlayerStatsGroupsByTeamAndPlayer(t *testing.T) {
	events := []models.Event{
		event("Team A", "Player 1", "Pass"),
		event("Team B", "Player 1", "Pass"),
	}

	stats := pipeline.PlayerStatsFrom(events)
	if len(stats) != 2 {
		t.Fatalf("got %d groups, want 2", len(stats))
	}
}

func TestStatsFromEmptyTable(t *testing.T) {
	if got := pipeline.TeamStatsFrom(nil); len(got) != 0 {
		t.Errorf("team stats of empty table = %v, want empty", got)
	}
	if got := pipeline.PlayerStatsFrom(nil); len(got) != 0 {
		t.Errorf("player stats of empty table = %v, want empty", got)
	}
}

// Full pipeline pass over a single raw record: validate, tabulate,
// aggregate.
func TestPipelineEndToEnd(t *testing.T) {
	raw := []map[string]any{sampleEvent()}

	valid := pipeline.ValidateEvents(raw)
	if len(valid) != 1 {
		t.Fatalf("validation dropped the record")
	}

	events, err := pipeline.TabulateEvents(valid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ev := events[0]
	if ev.EventType != "Shot" || ev.TeamName != "Team A" || ev.PlayerName != "Player 1" {
		t.Errorf("derived columns = (%s, %s, %s), want (Shot, Team A, Player 1)",
			ev.EventType, ev.TeamName, ev.PlayerName)
	}
	if ev.Timestamp != 630 {
		t.Errorf("Timestamp = %d, want 630", ev.Timestamp)
	}
	if len(ev.Shot) != 0 {
		t.Errorf("Shot = %v, want empty map", ev.Shot)
	}

	teamStats := pipeline.TeamStatsFrom(events)
	if len(teamStats) != 1 {
		t.Fatalf("got %d team rows, want 1", len(teamStats))
	}
	ts := teamStats[0]
	if ts.TeamName != "Team A" || ts.TotalEvents != 1 || ts.EventBreakdown["Shot"] != 1 {
		t.Errorf("team stats = %+v, want Team A with one Shot", ts)
	}

	playerStats := pipeline.PlayerStatsFrom(events)
	if len(playerStats) != 1 {
		t.Fatalf("got %d player rows, want 1", len(playerStats))
	}
	ps := playerStats[0]
	if ps.TeamName != "Team A" || ps.PlayerName != "Player 1" || ps.TotalEvents != 1 || ps.EventBreakdown["Shot"] != 1 {
		t.Errorf("player stats = %+v, want (Team A, Player 1) with one Shot", ps)
	}
}
