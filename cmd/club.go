package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bfv-tools/bfv-api/bfv"
	"github.com/bfv-tools/bfv-api/filter"
)

var (
	clubTeamID     string
	clubMatchType  string
	clubFilterExpr string
)

// clubCmd groups the club subcommands
var clubCmd = &cobra.Command{
	Use:   "club",
	Short: "Show club information and fixtures",
}

// clubInfoCmd represents the club info command
var clubInfoCmd = &cobra.Command{
	Use:   "info [clubID]",
	Short: "Show a club's name, number and logo",
	Long: `Show basic information about a club, looked up either by club ID or,
with --team, by the permanent ID of one of its teams.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClubInfo,
}

// clubMatchesCmd represents the club matches command
var clubMatchesCmd = &cobra.Command{
	Use:   "matches <clubID>",
	Short: "List a club's fixtures across all its teams",
	Args:  cobra.ExactArgs(1),
	RunE:  runClubMatches,
}

func init() {
	rootCmd.AddCommand(clubCmd)
	clubCmd.AddCommand(clubInfoCmd)
	clubCmd.AddCommand(clubMatchesCmd)

	clubInfoCmd.Flags().StringVar(&clubTeamID, "team", "", "look the club up by team ID instead")
	clubMatchesCmd.Flags().StringVar(&clubMatchType, "type", "all", "which fixtures to list (all/home/away)")
	clubMatchesCmd.Flags().StringVarP(&clubFilterExpr, "filter", "f", "", "filter expression")
}

func runClubInfo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		info *bfv.ClubInfo
		err  error
	)
	switch {
	case clubTeamID != "":
		info, err = client.ClubInfoByTeam(ctx, clubTeamID)
	case len(args) == 1:
		info, err = client.ClubInfo(ctx, args[0])
	default:
		return fmt.Errorf("either a club ID or --team is required")
	}
	if err != nil {
		return err
	}

	printTitle("%s", info.Club.Name)
	printDetail("id:     %s", info.Club.ID)
	printDetail("number: %s", info.Number)
	if info.Club.LogoPublic && info.Club.LogoURL != "" {
		printDetail("logo:   %s", info.Club.LogoURL)
	}
	return nil
}

func runClubMatches(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	matchType := bfv.MatchType(clubMatchType)
	if !matchType.Valid() {
		return fmt.Errorf("invalid match type %q (must be all, home or away)", clubMatchType)
	}

	matches, err := client.ClubMatches(ctx, args[0], matchType)
	if err != nil {
		return err
	}

	selected := matches.Matches
	if clubFilterExpr != "" {
		f, err := filter.Compile(clubFilterExpr)
		if err != nil {
			return err
		}
		selected = f.Apply(selected)
	}

	printMatches(selected)
	return nil
}
