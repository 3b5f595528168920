package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bfv-tools/bfv-api/bfv"
)

// matchCmd groups the match subcommands
var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Show match details",
}

// matchReportCmd represents the match report command
var matchReportCmd = &cobra.Command{
	Use:   "report <matchID>",
	Short: "Show the report of a single match",
	Long: `Show the report of a match: result, venue, officials and, once the
report has been filed, lineups and the event timeline.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatchReport,
}

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.AddCommand(matchReportCmd)
}

func runMatchReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	report, err := client.MatchReport(ctx, args[0])
	if err != nil {
		return err
	}

	guest := orEmpty(report.GuestTeamName)
	if guest == "" {
		printTitle("%s", report.HomeTeamName)
		printWarning("the match has no guest team")
	} else {
		printTitle("%s vs %s", report.HomeTeamName, guest)
	}

	printDetail("league:  %s %s", report.LeagueName, report.DivisionSuffix)
	printDetail("kickoff: %s %s", report.StartDate, report.StartTime)
	if venue := formatVenue(report.Venue); venue != "" {
		printDetail("venue:   %s", venue)
	}
	if report.Referee != "" {
		printDetail("referee: %s", report.Referee)
	}

	score, played, err := report.Score()
	switch {
	case err != nil:
		printWarning("unparseable result %q", report.Result)
	case played:
		fmt.Printf("\nResult: %s\n", render(styleHeader, score.String()))
	default:
		printInfo("the match has not been played yet")
	}

	if report.ReportInfo == nil {
		return nil
	}

	if n := report.ReportInfo.Spectators; n != nil {
		printDetail("spectators: %d", *n)
	}

	printTeamInfo("Home", report.ReportInfo.Home)
	printTeamInfo("Guest", report.ReportInfo.Guest)
	return nil
}

// printTeamInfo prints one side's lineup and events.
func printTeamInfo(label string, info *bfv.MatchTeamInfo) {
	if info == nil {
		return
	}

	fmt.Println()
	printTitle("%s", label)
	if info.Trainer != "" {
		printDetail("trainer: %s", info.Trainer)
	}

	for _, p := range info.Players {
		marker := ""
		switch {
		case p.Captain:
			marker = " (C)"
		case p.Keeper:
			marker = " (GK)"
		case p.Substitute:
			marker = " (sub)"
		}
		fmt.Printf("  %2d %s%s\n", p.Number, p.Name, marker)
	}

	for _, e := range info.MatchEvents {
		minute := fmt.Sprintf("%d'", e.Minute)
		if e.AdditionalTimeMinute > 0 {
			minute = fmt.Sprintf("%d+%d'", e.Minute, e.AdditionalTimeMinute)
		}
		name := ""
		if e.Player != nil {
			name = " " + e.Player.Name
		}
		fmt.Printf("  %6s %s%s\n", minute, e.Type, name)
	}
}

// formatVenue renders a venue as a single line.
func formatVenue(v bfv.Venue) string {
	parts := make([]string, 0, 3)
	if name := orEmpty(v.Name); name != "" {
		parts = append(parts, name)
	}
	if street := orEmpty(v.Street); street != "" {
		parts = append(parts, street)
	}
	if city := orEmpty(v.City); city != "" {
		parts = append(parts, orEmpty(v.ZipCode)+" "+city)
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
