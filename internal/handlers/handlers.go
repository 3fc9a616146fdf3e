package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/esanchezmex/statsbomb-viz/internal/charts"
	"github.com/esanchezmex/statsbomb-viz/internal/pipeline"
	"github.com/esanchezmex/statsbomb-viz/pkg/models"
	"github.com/go-chi/chi/v5"
)

// DataSource is the upstream fetch contract the handlers depend on.
// Implemented by the statsbomb client; mocked in tests.
type DataSource interface {
	Competitions(ctx context.Context) ([]map[string]any, error)
	Matches(ctx context.Context, competitionID, seasonID int) ([]map[string]any, error)
	Events(ctx context.Context, matchID int) ([]map[string]any, error)
	Lineups(ctx context.Context, matchID int) ([]map[string]any, error)
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	source DataSource
}

// NewHandler creates a new handler with dependencies
func NewHandler(source DataSource) *Handler {
	return &Handler{source: source}
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "statsbomb-viz",
	})
}

// GetCompetitions returns the validated, sorted competitions table.
func (h *Handler) GetCompetitions(w http.ResponseWriter, r *http.Request) {
	raw, err := h.source.Competitions(r.Context())
	if err != nil {
		// Fetch failures degrade to an empty table for this request.
		log.Printf("[handlers] error fetching competitions: %v", err)
		raw = nil
	}

	rows, err := pipeline.TabulateCompetitions(pipeline.ValidateCompetitions(raw))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to process competitions", err)
		return
	}
	respondRows(w, rows, len(rows))
}

// GetMatches returns the validated, date-sorted match table for a
// competition season.
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	competitionID, ok := urlParamInt(w, r, "competitionID")
	if !ok {
		return
	}
	seasonID, ok := urlParamInt(w, r, "seasonID")
	if !ok {
		return
	}

	raw, err := h.source.Matches(r.Context(), competitionID, seasonID)
	if err != nil {
		log.Printf("[handlers] error fetching matches for %d/%d: %v", competitionID, seasonID, err)
		raw = nil
	}

	rows, err := pipeline.TabulateMatches(pipeline.ValidateMatches(raw))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to process matches", err)
		return
	}
	respondRows(w, rows, len(rows))
}

// GetEvents returns the full tabulated event table for a match.
func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	events, ok := h.loadEvents(w, r)
	if !ok {
		return
	}
	respondRows(w, events, len(events))
}

// GetLineups returns the validated raw lineup records for a match.
func (h *Handler) GetLineups(w http.ResponseWriter, r *http.Request) {
	matchID, ok := urlParamInt(w, r, "matchID")
	if !ok {
		return
	}

	raw, err := h.source.Lineups(r.Context(), matchID)
	if err != nil {
		log.Printf("[handlers] error fetching lineups for %d: %v", matchID, err)
		raw = nil
	}
	if raw == nil {
		raw = []map[string]any{}
	}
	respondRows(w, raw, len(raw))
}

// GetTeamStats returns per-team aggregates for a match.
func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	events, ok := h.loadEvents(w, r)
	if !ok {
		return
	}
	stats := pipeline.TeamStatsFrom(events)
	respondRows(w, stats, len(stats))
}

// GetPlayerStats returns per-(team, player) aggregates for a match,
// optionally filtered by the team query parameter.
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	events, ok := h.loadEvents(w, r)
	if !ok {
		return
	}

	stats := pipeline.PlayerStatsFrom(events)
	if team := r.URL.Query().Get("team"); team != "" {
		filtered := make([]models.PlayerStats, 0, len(stats))
		for _, s := range stats {
			if s.TeamName == team {
				filtered = append(filtered, s)
			}
		}
		stats = filtered
	}
	respondRows(w, stats, len(stats))
}

// GetTimeline returns timeline points for a match, optionally filtered
// by event_type.
func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	events, ok := h.loadEvents(w, r)
	if !ok {
		return
	}
	points := charts.Timeline(events, r.URL.Query().Get("event_type"))
	respondRows(w, points, len(points))
}

// GetTeamBreakdown returns stacked-bar triples per team.
func (h *Handler) GetTeamBreakdown(w http.ResponseWriter, r *http.Request) {
	events, ok := h.loadEvents(w, r)
	if !ok {
		return
	}
	entries := charts.TeamBreakdown(pipeline.TeamStatsFrom(events))
	respondRows(w, entries, len(entries))
}

// GetPlayerBreakdown returns stacked-bar triples per player for one team.
func (h *Handler) GetPlayerBreakdown(w http.ResponseWriter, r *http.Request) {
	team := r.URL.Query().Get("team")
	if team == "" {
		respondError(w, http.StatusBadRequest, "team is required", nil)
		return
	}

	events, ok := h.loadEvents(w, r)
	if !ok {
		return
	}
	entries := charts.PlayerBreakdown(pipeline.PlayerStatsFrom(events), team)
	respondRows(w, entries, len(entries))
}

// GetHeatmap returns binned pitch location counts for a match,
// optionally filtered by event_type.
func (h *Handler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	events, ok := h.loadEvents(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, charts.BuildHeatmap(events, r.URL.Query().Get("event_type")))
}

// GetRadar returns radar series for the players named in the
// comma-separated players query parameter.
func (h *Handler) GetRadar(w http.ResponseWriter, r *http.Request) {
	playersParam := r.URL.Query().Get("players")
	if playersParam == "" {
		respondError(w, http.StatusBadRequest, "players is required", nil)
		return
	}
	var players []string
	for _, name := range strings.Split(playersParam, ",") {
		if name = strings.TrimSpace(name); name != "" {
			players = append(players, name)
		}
	}

	events, ok := h.loadEvents(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, charts.BuildRadar(events, players))
}

// loadEvents runs the front half of the pipeline for a match: fetch,
// validate, tabulate. A fetch failure yields an empty table; a
// tabulation failure is a contract breach and has already been written
// as a 500 when ok is false.
func (h *Handler) loadEvents(w http.ResponseWriter, r *http.Request) ([]models.Event, bool) {
	matchID, ok := urlParamInt(w, r, "matchID")
	if !ok {
		return nil, false
	}

	raw, err := h.source.Events(r.Context(), matchID)
	if err != nil {
		log.Printf("[handlers] error fetching events for match %d: %v", matchID, err)
		raw = nil
	}

	events, err := pipeline.TabulateEvents(pipeline.ValidateEvents(raw))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to process events", err)
		return nil, false
	}
	return events, true
}

// urlParamInt parses an integer URL parameter, writing a 400 on failure.
func urlParamInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		respondError(w, http.StatusBadRequest, name+" must be an integer", err)
		return 0, false
	}
	return value, true
}

// respondRows writes the standard list payload.
func respondRows(w http.ResponseWriter, rows any, count int) {
	respondJSON(w, http.StatusOK, map[string]any{
		"rows":  rows,
		"count": count,
	})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[handlers] error encoding response: %v", err)
	}
}

// respondError logs the underlying error and writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		log.Printf("[handlers] %s: %v", message, err)
	}
	respondJSON(w, status, map[string]string{"error": message})
}
