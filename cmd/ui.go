package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/bfv-tools/bfv-api/bfv"
	"github.com/bfv-tools/bfv-api/standings"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - table headers
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
)

// useColor is resolved in initializeApp once flags and config are known.
var useColor bool

// colorsEnabled reports whether styled output should be produced.
func colorsEnabled() bool {
	if noColor || !cfg.Logging.Color {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// render applies a style only when colors are enabled. Styling is applied
// to pre-padded text so column alignment survives either way.
func render(style lipgloss.Style, s string) string {
	if !useColor {
		return s
	}
	return style.Render(s)
}

// printTitle prints a heading line.
func printTitle(format string, args ...any) {
	fmt.Println(render(styleTitle, fmt.Sprintf(format, args...)))
}

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	fmt.Println(render(styleSuccess, iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// printError prints an error message.
func printError(format string, args ...any) {
	fmt.Println(render(styleError, iconError) + " " + fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	fmt.Println(render(styleWarning, iconWarning) + " " + render(styleWarning, fmt.Sprintf(format, args...)))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	fmt.Println(render(styleDim, iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented detail line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + render(styleDim, fmt.Sprintf(format, args...)))
}

// printMatches prints fixtures as an aligned table.
func printMatches(matches []bfv.Match) {
	if len(matches) == 0 {
		fmt.Println("No matches found.")
		return
	}

	header := fmt.Sprintf("%-10s %-5s %-30s %-30s %8s", "DATE", "TIME", "HOME", "GUEST", "RESULT")
	fmt.Println(render(styleHeader, header))
	fmt.Println(render(styleDim, strings.Repeat("─", len([]rune(header)))))

	for _, m := range matches {
		result := m.Result
		if result == "" {
			result = "-:-"
		}
		fmt.Printf("%-10s %-5s %-30s %-30s %8s\n",
			m.KickoffDate, orEmpty(m.KickoffTime),
			truncate(m.HomeTeamName, 30), truncate(m.GuestTeamName, 30), result)
	}
}

// printOfficialTable prints the rows of an official standings table.
func printOfficialTable(rows []bfv.StandingsRow) {
	if len(rows) == 0 {
		fmt.Println("No table available.")
		return
	}

	header := fmt.Sprintf("%4s %-30s %3s %3s %3s %3s %7s %5s %4s",
		"#", "TEAM", "GP", "W", "D", "L", "GOALS", "DIFF", "PTS")
	fmt.Println(render(styleHeader, header))
	fmt.Println(render(styleDim, strings.Repeat("─", len([]rune(header)))))

	for _, row := range rows {
		name := truncate(row.TeamName, 30)
		if row.Withdrawn != 0 {
			name = truncate(row.TeamName, 26) + " (w)"
		}
		fmt.Printf("%4s %-30s %3d %3d %3d %3d %7s %5s %4d\n",
			row.Rank, name, row.Games, row.Wins, row.Draws, row.Losses,
			row.Goals, row.GoalDifference, row.Points)
	}
}

// printComputedTable prints a table computed by the standings engine.
func printComputedTable(teams []*standings.Team) {
	header := fmt.Sprintf("%4s %-30s %3s %3s %3s %3s %7s %5s %4s",
		"#", "TEAM", "GP", "W", "D", "L", "GOALS", "DIFF", "PTS")
	fmt.Println(render(styleHeader, header))
	fmt.Println(render(styleDim, strings.Repeat("─", len([]rune(header)))))

	for i, t := range teams {
		goals := fmt.Sprintf("%d:%d", t.GoalsFor, t.GoalsAgainst)
		fmt.Printf("%4s %-30s %3d %3d %3d %3d %7s %+5d %4d\n",
			strconv.Itoa(i+1)+".", truncate(t.Name, 30), t.Games,
			t.Wins, t.Draws, t.Losses, goals, t.GoalDifference(), t.Points)
	}
}

// truncate shortens a string to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
