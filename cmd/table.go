package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bfv-tools/bfv-api/bfv"
	"github.com/bfv-tools/bfv-api/standings"
)

var tableTiebreakers []string

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table <teamID>",
	Short: "Compute a league table from raw results",
	Long: `Compute the table of the competition a team plays in from the raw
match results, instead of using the official table. Useful for variant
orderings: the tiebreaker chain is configurable, including head-to-head
comparison among tied teams.

Available tiebreakers: points, head-to-head, goal-difference, goals-for,
wins, away-goals, random.`,
	Args: cobra.ExactArgs(1),
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().StringSliceVar(&tableTiebreakers, "tiebreakers", nil, "tiebreaker chain (default from config)")
}

func runTable(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	chain, err := cfg.TiebreakerChain()
	if err != nil {
		return err
	}
	if len(tableTiebreakers) > 0 {
		chain, err = standings.ParseChain(tableTiebreakers)
		if err != nil {
			return err
		}
	}
	headToHead, err := cfg.HeadToHeadChain()
	if err != nil {
		return err
	}

	matches, err := client.TeamMatches(ctx, args[0])
	if err != nil {
		return err
	}
	if matches == nil {
		return fmt.Errorf("no match data for team %s", args[0])
	}

	compoundID := matches.Team.CompoundID
	comp, err := client.Competition(ctx, compoundID)
	if err != nil {
		return err
	}
	lastDay, err := comp.CurrentMatchDay()
	if err != nil {
		return err
	}

	logger.Debug().
		Str("compound_id", compoundID).
		Int("match_days", lastDay).
		Msg("Fetching match days")

	days := make([][]bfv.Match, lastDay)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Table.FetchLimit)
	for day := 1; day <= lastDay; day++ {
		day := day
		g.Go(func() error {
			md, err := client.CompetitionMatchDay(gctx, compoundID, day)
			if err != nil {
				return fmt.Errorf("match day %d: %w", day, err)
			}
			days[day-1] = md.Matches
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	results := collectResults(days)
	if len(results) == 0 {
		printWarning("no played matches in %s yet", comp.Name)
		return nil
	}

	teams := standings.Compute(results)
	rows, tied, err := standings.Table(teams, standings.Options{
		Chain:      chain,
		HeadToHead: headToHead,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	printTitle("%s (%s)", comp.Name, comp.Season)
	printComputedTable(rows)
	if tied {
		printWarning("tiebreaker chain exhausted, tied teams are in input order")
	}
	return nil
}

// collectResults extracts the played results from per-day fixture lists.
// A deferred match shows up on its original and its new match day, so
// duplicates are dropped.
func collectResults(days [][]bfv.Match) []standings.Result {
	seen := make(map[standings.Result]bool)
	var results []standings.Result

	for _, dayMatches := range days {
		for _, m := range dayMatches {
			score, played, err := m.Score()
			if err != nil {
				logger.Warn().
					Str("match_id", m.MatchID).
					Str("result", m.Result).
					Msg("Skipping match with unparseable result")
				continue
			}
			if !played {
				continue
			}

			r := standings.Result{
				Home:       m.HomeTeamName,
				Guest:      m.GuestTeamName,
				HomeGoals:  score.Home,
				GuestGoals: score.Guest,
			}
			if seen[r] {
				continue
			}
			seen[r] = true
			results = append(results, r)
		}
	}

	return results
}
