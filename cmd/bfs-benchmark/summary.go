package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-bfs/pkg/config"
	"github.com/dd0wney/cluso-bfs/pkg/graph"
	"github.com/dd0wney/cluso-bfs/pkg/report"
)

// Styles
var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#00FFFF"))

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Width(22)

	summaryBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(1, 2)
)

// runSummary is what -summary prints after the report
type runSummary struct {
	cfg          config.Config
	stats        graph.GenerateStats
	realized     int
	mode         string
	workers      int
	visited      int
	maxDepth     int
	generateTime time.Duration
	traverseTime time.Duration
	reportLines  int
}

func (s *runSummary) rows() [][2]string {
	return [][2]string{
		{"Nodes", fmt.Sprintf("%d", s.cfg.Nodes)},
		{"Edge attempts", fmt.Sprintf("%d", s.stats.Attempts)},
		{"Edges", fmt.Sprintf("%d", s.realized)},
		{"Self-loops rejected", fmt.Sprintf("%d", s.stats.SelfLoopsRejected)},
		{"Random source", fmt.Sprintf("%s (seed %d)", s.cfg.PRNG, s.cfg.Seed)},
		{"Start node", fmt.Sprintf("%d", s.cfg.Start)},
		{"Mode", fmt.Sprintf("%s, %d worker(s)", s.mode, s.workers)},
		{"Reachable nodes", fmt.Sprintf("%d", s.visited)},
		{"Max depth", fmt.Sprintf("%d", s.maxDepth)},
		{"Generation time", s.generateTime.Round(time.Millisecond).String()},
		{"BFS time", report.FormatSeconds(s.traverseTime) + " s"},
		{"Report lines", fmt.Sprintf("%d", s.reportLines)},
	}
}

func (s *runSummary) render() string {
	rows := s.rows()
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, summaryTitleStyle.Render("BFS Benchmark"), "")
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, summaryLabelStyle.Render(r[0]), r[1]))
	}
	return summaryBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
