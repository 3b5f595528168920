package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bfv-tools/bfv-api/bfv"
)

var (
	competitionMatchDay  int
	competitionTableType string
)

// competitionCmd groups the competition subcommands
var competitionCmd = &cobra.Command{
	Use:   "competition",
	Short: "Show competitions, official tables and scorer lists",
}

// competitionShowCmd represents the competition show command
var competitionShowCmd = &cobra.Command{
	Use:   "show <compoundID>",
	Short: "Show a competition and its fixtures",
	Long: `Show a competition by its compound ID. By default the current match
day is shown; --matchday selects another one.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompetitionShow,
}

// competitionStandingsCmd represents the competition standings command
var competitionStandingsCmd = &cobra.Command{
	Use:   "standings <compoundID>",
	Short: "Show the official table of a competition",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompetitionStandings,
}

// competitionTopScorerCmd represents the competition topscorer command
var competitionTopScorerCmd = &cobra.Command{
	Use:   "topscorer <compoundID>",
	Short: "Show the scorer list of a competition",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompetitionTopScorer,
}

func init() {
	rootCmd.AddCommand(competitionCmd)
	competitionCmd.AddCommand(competitionShowCmd)
	competitionCmd.AddCommand(competitionStandingsCmd)
	competitionCmd.AddCommand(competitionTopScorerCmd)

	competitionShowCmd.Flags().IntVar(&competitionMatchDay, "matchday", 0, "match day to show (default: current)")
	competitionStandingsCmd.Flags().StringVar(&competitionTableType, "type", "", "table variant (home/away/firsthalfseason/secondhalfseason)")
}

func runCompetitionShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		comp *bfv.Competition
		err  error
	)
	if competitionMatchDay > 0 {
		comp, err = client.CompetitionMatchDay(ctx, args[0], competitionMatchDay)
	} else {
		comp, err = client.Competition(ctx, args[0])
	}
	if err != nil {
		return err
	}

	printTitle("%s (%s)", comp.Name, comp.Season)
	printDetail("type:      %s", comp.TypeName)
	printDetail("match day: %s of %d", comp.SelectedMatchDay, len(comp.MatchDays))

	fmt.Println()
	printMatches(comp.Matches)

	if len(comp.Table) > 0 {
		fmt.Println()
		printOfficialTable(comp.Table)
	}
	return nil
}

func runCompetitionStandings(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	standingsType := bfv.StandingsType(competitionTableType)
	table, err := client.CompetitionStandings(ctx, args[0], standingsType)
	if err != nil {
		return err
	}

	if name := orEmpty(table.CompetitionName); name != "" {
		printTitle("%s", name)
	}
	printOfficialTable(table.Rows)
	return nil
}

func runCompetitionTopScorer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	scorers, err := client.CompetitionTopScorer(ctx, args[0])
	if err != nil {
		return err
	}
	if scorers == nil || len(scorers.Scorers) == 0 {
		fmt.Println("No scorer list available.")
		return nil
	}

	printTitle("Top scorers – %s", scorers.CompetitionName)
	for _, s := range scorers.Scorers {
		team := orEmpty(s.Team.Name)
		fmt.Printf("%4d. %-30s %-30s %3d\n", s.Rank, truncate(s.Name, 30), truncate(team, 30), s.Goals)
	}
	return nil
}
