package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bfv-tools/bfv-api/filter"
)

var teamFilterExpr string

// teamCmd groups the team subcommands
var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Show a team's fixtures and squad",
}

// teamMatchesCmd represents the team matches command
var teamMatchesCmd = &cobra.Command{
	Use:   "matches <teamID>",
	Short: "List a team's fixtures",
	Long: `List all fixtures of a team by its permanent team ID, played and
upcoming. The list can be narrowed with a filter expression, e.g.

  bfv team matches 016PBQ6MGG000000VV0AG80NVV8OQVTB --filter 'Played and GoalDiff > 0'`,
	Args: cobra.ExactArgs(1),
	RunE: runTeamMatches,
}

// teamSquadCmd represents the team squad command
var teamSquadCmd = &cobra.Command{
	Use:   "squad <teamID>",
	Short: "Show a team's squad",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamSquad,
}

func init() {
	rootCmd.AddCommand(teamCmd)
	teamCmd.AddCommand(teamMatchesCmd)
	teamCmd.AddCommand(teamSquadCmd)

	teamMatchesCmd.Flags().StringVarP(&teamFilterExpr, "filter", "f", "", "filter expression")
}

func runTeamMatches(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	matches, err := client.TeamMatches(ctx, args[0])
	if err != nil {
		return err
	}
	if matches == nil {
		printWarning("no match data for team %s", args[0])
		return nil
	}

	selected := matches.Matches
	if teamFilterExpr != "" {
		f, err := filter.Compile(teamFilterExpr)
		if err != nil {
			return err
		}
		selected = f.Apply(selected)
	}

	printTitle("%s – %s", matches.Team.Name, matches.Team.CompetitionName)
	printMatches(selected)
	return nil
}

func runTeamSquad(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	squad, err := client.TeamSquad(ctx, args[0])
	if err != nil {
		return err
	}

	name := orEmpty(squad.Team.Name)
	if name == "" {
		name = squad.Team.PermanentID
	}
	printTitle("Squad %s (%s)", name, squad.Season.Name)

	if !squad.Public {
		printWarning("the squad is not published")
		return nil
	}
	if len(squad.Players) == 0 {
		fmt.Println("No players listed.")
		return nil
	}
	for _, p := range squad.Players {
		fmt.Printf("  • %s\n", p.Test)
	}
	return nil
}
