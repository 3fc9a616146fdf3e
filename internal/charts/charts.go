// Package charts reshapes tabulated and aggregated data into the flat
// payloads the dashboard's plotting code consumes.
package charts

import (
	"sort"

	"github.com/esanchezmex/statsbomb-viz/pkg/models"
)

// StatsBomb pitch coordinate space and the heatmap bin grid.
const (
	PitchLength = 120.0
	PitchWidth  = 80.0

	HeatmapXBins = 20
	HeatmapYBins = 10
)

// Radar categories in display order, and the event types feeding them.
var (
	RadarCategories = []string{
		"Passes", "Shots", "Dribbles", "Pressure Actions", "Ball Recoveries",
	}
	radarEventTypes = map[string]string{
		"Pass":          "Passes",
		"Shot":          "Shots",
		"Dribble":       "Dribbles",
		"Pressure":      "Pressure Actions",
		"Ball Recovery": "Ball Recoveries",
	}
)

// TimelinePoint is one marker on the match timeline scatter.
type TimelinePoint struct {
	Timestamp  int    `json:"timestamp"`
	EventType  string `json:"event_type"`
	TeamName   string `json:"team_name"`
	PlayerName string `json:"player_name"`
	Minute     int    `json:"minute"`
	Second     int    `json:"second"`
}

// BreakdownEntry is one (category, event_type, count) triple of a
// stacked bar chart; Category is a team or player name.
type BreakdownEntry struct {
	Category  string `json:"category"`
	EventType string `json:"event_type"`
	Count     int    `json:"count"`
}

// Heatmap is a binned 2D histogram of event locations on the pitch.
// Counts is indexed [y][x]. DroppedRows counts events excluded for
// lacking a usable two-element location.
type Heatmap struct {
	EventType   string  `json:"event_type,omitempty"`
	PitchLength float64 `json:"pitch_length"`
	PitchWidth  float64 `json:"pitch_width"`
	XBins       int     `json:"x_bins"`
	YBins       int     `json:"y_bins"`
	Counts      [][]int `json:"counts"`
	SampledRows int     `json:"sampled_rows"`
	DroppedRows int     `json:"dropped_rows"`
}

// RadarSeries is one player's trace on the radar chart: the share of the
// player's events falling in each radar category, in RadarCategories
// order, as percentages.
type RadarSeries struct {
	PlayerName string    `json:"player_name"`
	Values     []float64 `json:"values"`
}

// Radar is the full radar chart payload.
type Radar struct {
	Categories []string      `json:"categories"`
	Series     []RadarSeries `json:"series"`
}

// Timeline shapes an event table into timeline points, optionally
// filtered to one event type (empty means all).
func Timeline(events []models.Event, eventType string) []TimelinePoint {
	points := make([]TimelinePoint, 0, len(events))
	for _, ev := range events {
		if eventType != "" && ev.EventType != eventType {
			continue
		}
		points = append(points, TimelinePoint{
			Timestamp:  ev.Timestamp,
			EventType:  ev.EventType,
			TeamName:   ev.TeamName,
			PlayerName: ev.PlayerName,
			Minute:     ev.Minute,
			Second:     ev.Second,
		})
	}
	return points
}

// TeamBreakdown unpacks team stats into stacked-bar triples. Teams keep
// their stats order; event types within a team are sorted for stable
// output.
func TeamBreakdown(stats []models.TeamStats) []BreakdownEntry {
	entries := make([]BreakdownEntry, 0, len(stats))
	for _, s := range stats {
		entries = append(entries, breakdownEntries(s.TeamName, s.EventBreakdown)...)
	}
	return entries
}

// PlayerBreakdown unpacks player stats for one team into stacked-bar
// triples keyed by player name.
func PlayerBreakdown(stats []models.PlayerStats, teamName string) []BreakdownEntry {
	entries := make([]BreakdownEntry, 0)
	for _, s := range stats {
		if s.TeamName != teamName {
			continue
		}
		entries = append(entries, breakdownEntries(s.PlayerName, s.EventBreakdown)...)
	}
	return entries
}

func breakdownEntries(category string, breakdown map[string]int) []BreakdownEntry {
	types := make([]string, 0, len(breakdown))
	for t := range breakdown {
		types = append(types, t)
	}
	sort.Strings(types)

	entries := make([]BreakdownEntry, 0, len(types))
	for _, t := range types {
		entries = append(entries, BreakdownEntry{
			Category:  category,
			EventType: t,
			Count:     breakdown[t],
		})
	}
	return entries
}

// BuildHeatmap bins event locations into a HeatmapXBins by HeatmapYBins
// grid over the pitch, optionally filtered to one event type. Rows
// without a usable location are dropped and counted rather than failing
// the chart.
func BuildHeatmap(events []models.Event, eventType string) Heatmap {
	hm := Heatmap{
		EventType:   eventType,
		PitchLength: PitchLength,
		PitchWidth:  PitchWidth,
		XBins:       HeatmapXBins,
		YBins:       HeatmapYBins,
		Counts:      make([][]int, HeatmapYBins),
	}
	for y := range hm.Counts {
		hm.Counts[y] = make([]int, HeatmapXBins)
	}

	for _, ev := range events {
		if eventType != "" && ev.EventType != eventType {
			continue
		}
		if len(ev.Location) < 2 {
			hm.DroppedRows++
			continue
		}
		x := binIndex(ev.Location[0], PitchLength, HeatmapXBins)
		y := binIndex(ev.Location[1], PitchWidth, HeatmapYBins)
		hm.Counts[y][x]++
		hm.SampledRows++
	}
	return hm
}

// binIndex maps a coordinate to its bin, clamping values that sit on or
// past the pitch boundary into the edge bins.
func binIndex(value, extent float64, bins int) int {
	i := int(value / (extent / float64(bins)))
	if i < 0 {
		return 0
	}
	if i >= bins {
		return bins - 1
	}
	return i
}

// BuildRadar computes one radar series per requested player: each
// category's count as a percentage of that player's total events.
// Players with no events in the table are skipped.
func BuildRadar(events []models.Event, playerNames []string) Radar {
	radar := Radar{
		Categories: RadarCategories,
		Series:     make([]RadarSeries, 0, len(playerNames)),
	}

	for _, name := range playerNames {
		total := 0
		counts := make(map[string]int)
		for _, ev := range events {
			if ev.PlayerName != name {
				continue
			}
			total++
			if category, ok := radarEventTypes[ev.EventType]; ok {
				counts[category]++
			}
		}
		if total == 0 {
			continue
		}

		values := make([]float64, len(RadarCategories))
		for i, category := range RadarCategories {
			values[i] = float64(counts[category]) / float64(total) * 100
		}
		radar.Series = append(radar.Series, RadarSeries{
			PlayerName: name,
			Values:     values,
		})
	}
	return radar
}
