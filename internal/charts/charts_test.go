package charts_test

import (
	"reflect"
	"testing"

	"github.com/esanchezmex/statsbomb-viz/internal/charts"
	"github.com/esanchezmex/statsbomb-viz/pkg/models"
)

func locEvent(team, player, eventType string, loc []float64, timestamp int) models.Event {
	return models.Event{
		EventType:  eventType,
		TeamName:   team,
		PlayerName: player,
		Location:   loc,
		Timestamp:  timestamp,
		Minute:     timestamp / 60,
		Second:     timestamp % 60,
	}
}

func TestTimeline(t *testing.T) {
	events := []models.Event{
		locEvent("Team A", "Player 1", "Pass", nil, 30),
		locEvent("Team B", "Player 2", "Shot", nil, 95),
	}

	all := charts.Timeline(events, "")
	if len(all) != 2 {
		t.Fatalf("got %d points, want 2", len(all))
	}
	if all[0].Timestamp != 30 || all[0].EventType != "Pass" {
		t.Errorf("first point = %+v", all[0])
	}

	shots := charts.Timeline(events, "Shot")
	if len(shots) != 1 || shots[0].PlayerName != "Player 2" {
		t.Errorf("filtered timeline = %+v, want only Player 2's shot", shots)
	}
}

func TestTeamBreakdown(t *testing.T) {
	stats := []models.TeamStats{
		{TeamName: "Team A", TotalEvents: 3, EventBreakdown: map[string]int{"Shot": 1, "Pass": 2}},
		{TeamName: "Team B", TotalEvents: 1, EventBreakdown: map[string]int{"Pass": 1}},
	}

	entries := charts.TeamBreakdown(stats)

	want := []charts.BreakdownEntry{
		{Category: "Team A", EventType: "Pass", Count: 2},
		{Category: "Team A", EventType: "Shot", Count: 1},
		{Category: "Team B", EventType: "Pass", Count: 1},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %v, want %v", entries, want)
	}
}

func TestPlayerBreakdownFiltersTeam(t *testing.T) {
	stats := []models.PlayerStats{
		{TeamName: "Team A", PlayerName: "Player 1", TotalEvents: 1, EventBreakdown: map[string]int{"Pass": 1}},
		{TeamName: "Team B", PlayerName: "Player 2", TotalEvents: 1, EventBreakdown: map[string]int{"Shot": 1}},
	}

	entries := charts.PlayerBreakdown(stats, "Team A")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Category != "Player 1" || entries[0].EventType != "Pass" {
		t.Errorf("entry = %+v, want Player 1's Pass", entries[0])
	}
}

func TestBuildHeatmap(t *testing.T) {
	events := []models.Event{
		locEvent("Team A", "Player 1", "Pass", []float64{0, 0}, 0),
		locEvent("Team A", "Player 1", "Pass", []float64{3, 3}, 0),
		locEvent("Team A", "Player 2", "Shot", []float64{119, 79}, 0),
		locEvent("Team A", "Player 2", "Shot", nil, 0), // no location
	}

	hm := charts.BuildHeatmap(events, "")

	if hm.XBins != charts.HeatmapXBins || hm.YBins != charts.HeatmapYBins {
		t.Fatalf("bins = %dx%d, want %dx%d", hm.XBins, hm.YBins, charts.HeatmapXBins, charts.HeatmapYBins)
	}
	if len(hm.Counts) != hm.YBins || len(hm.Counts[0]) != hm.XBins {
		t.Fatalf("counts grid is %dx%d", len(hm.Counts), len(hm.Counts[0]))
	}
	if hm.SampledRows != 3 {
		t.Errorf("SampledRows = %d, want 3", hm.SampledRows)
	}
	if hm.DroppedRows != 1 {
		t.Errorf("DroppedRows = %d, want 1", hm.DroppedRows)
	}
	// (0,0) and (3,3) land in the first bin; (119,79) in the last.
	if hm.Counts[0][0] != 2 {
		t.Errorf("Counts[0][0] = %d, want 2", hm.Counts[0][0])
	}
	if hm.Counts[hm.YBins-1][hm.XBins-1] != 1 {
		t.Errorf("Counts[last][last] = %d, want 1", hm.Counts[hm.YBins-1][hm.XBins-1])
	}
}

func TestBuildHeatmapEventTypeFilter(t *testing.T) {
	events := []models.Event{
		locEvent("Team A", "Player 1", "Pass", []float64{10, 10}, 0),
		locEvent("Team A", "Player 2", "Shot", []float64{110, 40}, 0),
		locEvent("Team A", "Player 2", "Shot", nil, 0),
	}

	hm := charts.BuildHeatmap(events, "Shot")
	if hm.SampledRows != 1 {
		t.Errorf("SampledRows = %d, want 1", hm.SampledRows)
	}
	// The location-less Pass row is outside the filter, not dropped.
	if hm.DroppedRows != 1 {
		t.Errorf("DroppedRows = %d, want 1", hm.DroppedRows)
	}
}

func TestBuildHeatmapClampsBoundary(t *testing.T) {
	events := []models.Event{
		locEvent("Team A", "Player 1", "Pass", []float64{charts.PitchLength, charts.PitchWidth}, 0),
	}

	hm := charts.BuildHeatmap(events, "")
	if hm.Counts[hm.YBins-1][hm.XBins-1] != 1 {
		t.Error("boundary coordinate not clamped into the edge bin")
	}
}

func TestBuildRadar(t *testing.T) {
	events := []models.Event{
		locEvent("Team A", "Player 1", "Pass", nil, 0),
		locEvent("Team A", "Player 1", "Pass", nil, 0),
		locEvent("Team A", "Player 1", "Shot", nil, 0),
		locEvent("Team A", "Player 1", "Foul Committed", nil, 0), // outside radar categories
		locEvent("Team A", "Player 2", "Dribble", nil, 0),
	}

	radar := charts.BuildRadar(events, []string{"Player 1", "Player 2", "Player 3"})

	if !reflect.DeepEqual(radar.Categories, charts.RadarCategories) {
		t.Errorf("categories = %v", radar.Categories)
	}
	// Player 3 has no events and is skipped.
	if len(radar.Series) != 2 {
		t.Fatalf("got %d series, want 2", len(radar.Series))
	}

	p1 := radar.Series[0]
	if p1.PlayerName != "Player 1" {
		t.Fatalf("first series is %s", p1.PlayerName)
	}
	// 4 events: 2 passes (50%), 1 shot (25%), the foul counts toward
	// the total but no category.
	if p1.Values[0] != 50 {
		t.Errorf("Passes = %v, want 50", p1.Values[0])
	}
	if p1.Values[1] != 25 {
		t.Errorf("Shots = %v, want 25", p1.Values[1])
	}
	if p1.Values[2] != 0 {
		t.Errorf("Dribbles = %v, want 0", p1.Values[2])
	}

	p2 := radar.Series[1]
	if p2.Values[2] != 100 {
		t.Errorf("Player 2 Dribbles = %v, want 100", p2.Values[2])
	}
}
