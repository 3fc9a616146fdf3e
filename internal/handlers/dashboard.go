package handlers

import (
	"html/template"
	"log"
	"net/http"
)

// Plot dimensions carried over from the original dashboard config.
const (
	plotWidth  = 800
	plotHeight = 600
)

var dashboardTemplate = template.Must(template.New("dashboard").Parse(dashboardHTML))

// Dashboard serves the single-page chart UI. The page drives the JSON
// API: picking a competition loads matches, picking a match loads the
// charts.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	data := struct {
		PlotWidth  int
		PlotHeight int
	}{
		PlotWidth:  plotWidth,
		PlotHeight: plotHeight,
	}
	if err := dashboardTemplate.Execute(w, data); err != nil {
		log.Printf("[handlers] error rendering dashboard: %v", err)
	}
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>StatsBomb Free Data Visualizer</title>
    <script src="https://cdn.plot.ly/plotly-2.27.0.min.js"></script>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            color: #2d3748;
            background: #f7fafc;
        }

        .layout {
            display: grid;
            grid-template-columns: 300px 1fr;
            min-height: 100vh;
        }

        .sidebar {
            background: #1a202c;
            color: #e2e8f0;
            padding: 1.5rem;
        }

        .sidebar h2 {
            font-size: 1.1rem;
            margin-bottom: 1rem;
            color: white;
        }

        .sidebar label {
            display: block;
            font-size: 0.8rem;
            text-transform: uppercase;
            letter-spacing: 0.05em;
            margin: 1rem 0 0.35rem;
            color: #a0aec0;
        }

        .sidebar select {
            width: 100%;
            padding: 0.5rem;
            border-radius: 6px;
            border: 1px solid #4a5568;
            background: #2d3748;
            color: #e2e8f0;
        }

        .content {
            padding: 2rem;
        }

        .content h1 {
            font-size: 1.8rem;
            margin-bottom: 0.5rem;
        }

        .content p.lead {
            color: #718096;
            margin-bottom: 2rem;
        }

        .chart-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax({{.PlotWidth}}px, 1fr));
            gap: 1.5rem;
        }

        .chart-card {
            background: white;
            border-radius: 10px;
            padding: 1rem;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
        }

        .chart-card h3 {
            font-size: 1rem;
            margin-bottom: 0.5rem;
        }

        .hidden {
            display: none;
        }
    </style>
</head>
<body>
<div class="layout">
    <div class="sidebar">
        <h2>Filters</h2>
        <label for="competition">Competition &amp; Season</label>
        <select id="competition"></select>
        <label for="match">Match</label>
        <select id="match"></select>
        <label for="team">Team</label>
        <select id="team"></select>
        <label for="player">Player</label>
        <select id="player"></select>
        <label for="event-type">Event Type</label>
        <select id="event-type"><option value="">All</option></select>
    </div>
    <div class="content">
        <h1>&#9917; StatsBomb Free Data Visualizer</h1>
        <p class="lead">Pick a competition, season and match to explore the free
        event data: timelines, event breakdowns, a pitch heatmap and a player radar.</p>
        <div id="charts" class="chart-grid hidden">
            <div class="chart-card"><h3>Match Timeline</h3><div id="timeline"></div></div>
            <div class="chart-card"><h3>Team Event Breakdown</h3><div id="team-breakdown"></div></div>
            <div class="chart-card"><h3>Player Event Breakdown</h3><div id="player-breakdown"></div></div>
            <div class="chart-card"><h3>Event Heatmap</h3><div id="heatmap"></div></div>
            <div class="chart-card"><h3>Player Performance Radar</h3><div id="radar"></div></div>
        </div>
    </div>
</div>

<script>
const PLOT_W = {{.PlotWidth}};
const PLOT_H = {{.PlotHeight}};

const competitionSel = document.getElementById('competition');
const matchSel = document.getElementById('match');
const teamSel = document.getElementById('team');
const playerSel = document.getElementById('player');
const eventTypeSel = document.getElementById('event-type');

async function getRows(url) {
    const resp = await fetch(url);
    const body = await resp.json();
    return body.rows || [];
}

async function getJSON(url) {
    const resp = await fetch(url);
    return resp.json();
}

function fillSelect(sel, options) {
    sel.innerHTML = '';
    for (const opt of options) {
        const el = document.createElement('option');
        el.value = opt.value;
        el.textContent = opt.label;
        sel.appendChild(el);
    }
}

async function loadCompetitions() {
    const rows = await getRows('/api/v1/competitions');
    fillSelect(competitionSel, rows.map(c => ({
        value: c.competition_id + ':' + c.season_id,
        label: c.competition_name + ' - ' + c.season_name
    })));
    if (rows.length > 0) loadMatches();
}

async function loadMatches() {
    const [compID, seasonID] = competitionSel.value.split(':');
    const rows = await getRows('/api/v1/competitions/' + compID + '/seasons/' + seasonID + '/matches');
    fillSelect(matchSel, rows.map(m => ({
        value: m.match_id,
        label: m.home_team + ' ' + m.home_score + ' - ' + m.away_score + ' ' + m.away_team
    })));
    if (rows.length > 0) loadMatch();
}

async function loadMatch() {
    const matchID = matchSel.value;
    if (!matchID) return;

    const teamStats = await getRows('/api/v1/matches/' + matchID + '/stats/teams');
    fillSelect(teamSel, teamStats.map(t => ({value: t.team_name, label: t.team_name})));

    const types = new Set();
    for (const t of teamStats) {
        for (const et of Object.keys(t.event_breakdown)) types.add(et);
    }
    fillSelect(eventTypeSel, [{value: '', label: 'All'}].concat(
        [...types].sort().map(t => ({value: t, label: t}))));

    await loadTeam();
    drawTimeline(matchID);
    drawTeamBreakdown(matchID);
    drawHeatmap(matchID);
    document.getElementById('charts').classList.remove('hidden');
}

async function loadTeam() {
    const matchID = matchSel.value;
    const team = teamSel.value;
    if (!matchID || !team) return;

    const players = await getRows('/api/v1/matches/' + matchID + '/stats/players?team=' + encodeURIComponent(team));
    fillSelect(playerSel, players.map(p => ({value: p.player_name, label: p.player_name})));
    drawPlayerBreakdown(matchID, team);
    drawRadar(matchID, players.map(p => p.player_name).slice(0, 5));
}

function groupBy(rows, key) {
    const groups = new Map();
    for (const row of rows) {
        if (!groups.has(row[key])) groups.set(row[key], []);
        groups.get(row[key]).push(row);
    }
    return groups;
}

async function drawTimeline(matchID) {
    let url = '/api/v1/matches/' + matchID + '/charts/timeline';
    const et = eventTypeSel.value;
    if (et) url += '?event_type=' + encodeURIComponent(et);
    const points = await getRows(url);

    const traces = [];
    for (const [team, rows] of groupBy(points, 'team_name')) {
        traces.push({
            x: rows.map(p => p.timestamp),
            y: rows.map(p => p.event_type),
            mode: 'markers',
            type: 'scatter',
            name: team,
            text: rows.map(p => p.player_name + ' (' + p.minute + "'" + p.second + '")')
        });
    }
    Plotly.newPlot('timeline', traces, {
        width: PLOT_W, height: PLOT_H,
        xaxis: {title: 'Match Time (seconds)'},
        yaxis: {title: 'Event Type'}
    });
}

function drawStackedBars(divID, entries) {
    const traces = [];
    for (const [eventType, rows] of groupBy(entries, 'event_type')) {
        traces.push({
            x: rows.map(e => e.category),
            y: rows.map(e => e.count),
            type: 'bar',
            name: eventType
        });
    }
    Plotly.newPlot(divID, traces, {
        width: PLOT_W, height: PLOT_H,
        barmode: 'stack',
        yaxis: {title: 'Number of Events'}
    });
}

async function drawTeamBreakdown(matchID) {
    drawStackedBars('team-breakdown', await getRows('/api/v1/matches/' + matchID + '/charts/team-breakdown'));
}

async function drawPlayerBreakdown(matchID, team) {
    drawStackedBars('player-breakdown', await getRows('/api/v1/matches/' + matchID + '/charts/player-breakdown?team=' + encodeURIComponent(team)));
}

async function drawHeatmap(matchID) {
    let url = '/api/v1/matches/' + matchID + '/charts/heatmap';
    const et = eventTypeSel.value;
    if (et) url += '?event_type=' + encodeURIComponent(et);
    const hm = await getJSON(url);

    Plotly.newPlot('heatmap', [{
        z: hm.counts,
        type: 'heatmap',
        colorscale: 'Viridis'
    }], {
        width: PLOT_W, height: PLOT_H,
        title: hm.dropped_rows > 0 ? hm.dropped_rows + ' events without location dropped' : '',
        xaxis: {title: 'Pitch Length'},
        yaxis: {title: 'Pitch Width'}
    });
}

async function drawRadar(matchID, players) {
    if (players.length === 0) return;
    const radar = await getJSON('/api/v1/matches/' + matchID + '/charts/radar?players=' + encodeURIComponent(players.join(',')));

    const traces = radar.series.map(s => ({
        type: 'scatterpolar',
        r: s.values.concat([s.values[0]]),
        theta: radar.categories.concat([radar.categories[0]]),
        fill: 'toself',
        name: s.player_name
    }));
    Plotly.newPlot('radar', traces, {
        width: PLOT_W, height: PLOT_H,
        polar: {radialaxis: {visible: true, ticksuffix: '%'}}
    });
}

competitionSel.addEventListener('change', loadMatches);
matchSel.addEventListener('change', loadMatch);
teamSel.addEventListener('change', loadTeam);
eventTypeSel.addEventListener('change', () => {
    drawTimeline(matchSel.value);
    drawHeatmap(matchSel.value);
});

loadCompetitions();
</script>
</body>
</html>
`
