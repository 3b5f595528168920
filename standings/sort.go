package standings

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/rs/zerolog"
)

// Tiebreaker is one criterion for ordering a table.
type Tiebreaker int

// Tiebreakers in their conventional application order.
const (
	Points Tiebreaker = iota + 1
	HeadToHead
	GoalDifference
	GoalsFor
	Wins
	AwayGoalsFor
	Random
)

// DefaultChain orders by every tiebreaker, ending in a random draw so the
// result is always total.
var DefaultChain = []Tiebreaker{Points, HeadToHead, GoalDifference, GoalsFor, Wins, AwayGoalsFor, Random}

// DefaultHeadToHead is the default chain applied within head-to-head
// sub-tables.
var DefaultHeadToHead = []Tiebreaker{Points, GoalDifference, GoalsFor}

// ErrNoHeadToHeadChain is returned when the chain contains HeadToHead but
// no head-to-head tiebreakers are configured.
var ErrNoHeadToHeadChain = errors.New("no tiebreaker given for head-to-head sort")

// String returns the config name of the tiebreaker.
func (t Tiebreaker) String() string {
	switch t {
	case Points:
		return "points"
	case HeadToHead:
		return "head-to-head"
	case GoalDifference:
		return "goal-difference"
	case GoalsFor:
		return "goals-for"
	case Wins:
		return "wins"
	case AwayGoalsFor:
		return "away-goals"
	case Random:
		return "random"
	default:
		return "tiebreaker(" + strconv.Itoa(int(t)) + ")"
	}
}

// ParseTiebreaker converts a config name into a Tiebreaker.
func ParseTiebreaker(name string) (Tiebreaker, error) {
	switch name {
	case "points":
		return Points, nil
	case "head-to-head", "h2h":
		return HeadToHead, nil
	case "goal-difference", "goaldiff":
		return GoalDifference, nil
	case "goals-for":
		return GoalsFor, nil
	case "wins":
		return Wins, nil
	case "away-goals":
		return AwayGoalsFor, nil
	case "random":
		return Random, nil
	default:
		return 0, fmt.Errorf("unknown tiebreaker: %q", name)
	}
}

// ParseChain converts a list of config names into a tiebreaker chain.
func ParseChain(names []string) ([]Tiebreaker, error) {
	chain := make([]Tiebreaker, 0, len(names))
	for _, name := range names {
		t, err := ParseTiebreaker(name)
		if err != nil {
			return nil, err
		}
		chain = append(chain, t)
	}
	return chain, nil
}

// Options configures Sort.
type Options struct {
	// Chain is the tiebreaker order; DefaultChain when empty.
	Chain []Tiebreaker
	// HeadToHead is the chain applied within head-to-head sub-tables;
	// DefaultHeadToHead when empty. It must not contain HeadToHead itself.
	HeadToHead []Tiebreaker
	Logger     zerolog.Logger
}

// Sort orders teams by the configured tiebreaker chain. Each criterion
// splits the teams into groups of equal value; groups larger than one are
// re-sorted by the remaining chain. The returned groups are in final table
// order; a group with more than one team is a tie the chain could not
// resolve.
func Sort(teams []*Team, opts Options) ([][]*Team, error) {
	chain := opts.Chain
	if len(chain) == 0 {
		chain = DefaultChain
	}
	headToHead := opts.HeadToHead
	if len(headToHead) == 0 {
		headToHead = DefaultHeadToHead
	}
	for _, t := range headToHead {
		if t == HeadToHead {
			return nil, fmt.Errorf("head-to-head chain must not contain %s", HeadToHead)
		}
	}
	return sortChain(teams, chain, headToHead, opts.Logger)
}

// Table sorts teams and flattens the result into a ranked list. The
// boolean reports whether any ties remained unresolved; tied teams keep
// their group order.
func Table(teams []*Team, opts Options) ([]*Team, bool, error) {
	groups, err := Sort(teams, opts)
	if err != nil {
		return nil, false, err
	}
	var (
		ordered []*Team
		tied    bool
	)
	for _, group := range groups {
		if len(group) > 1 {
			tied = true
		}
		ordered = append(ordered, group...)
	}
	return ordered, tied, nil
}

func sortChain(teams []*Team, chain, headToHead []Tiebreaker, logger zerolog.Logger) ([][]*Team, error) {
	if len(chain) == 0 {
		return [][]*Team{teams}, nil
	}

	groups, err := splitBy(teams, chain[0], headToHead, logger)
	if err != nil {
		return nil, err
	}

	var sorted [][]*Team
	for _, group := range groups {
		if len(group) > 1 {
			sub, err := sortChain(group, chain[1:], headToHead, logger)
			if err != nil {
				return nil, err
			}
			sorted = append(sorted, sub...)
		} else {
			sorted = append(sorted, group)
		}
	}
	return sorted, nil
}

// splitBy orders teams by a single criterion and groups equal values.
func splitBy(teams []*Team, by Tiebreaker, headToHead []Tiebreaker, logger zerolog.Logger) ([][]*Team, error) {
	if by == HeadToHead {
		return splitHeadToHead(teams, headToHead, logger)
	}

	value := func(t *Team) int64 {
		switch by {
		case Points:
			return int64(t.Points)
		case GoalDifference:
			return int64(t.GoalDifference())
		case GoalsFor:
			return int64(t.GoalsFor)
		case Wins:
			return int64(t.Wins)
		case AwayGoalsFor:
			return int64(t.AwayGoalsFor)
		case Random:
			return randomValue(t)
		default:
			return 0
		}
	}

	sorted := make([]*Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return value(sorted[i]) > value(sorted[j])
	})

	var groups [][]*Team
	for _, team := range sorted {
		if len(groups) == 0 || value(groups[len(groups)-1][0]) != value(team) {
			groups = append(groups, []*Team{team})
		} else {
			last := len(groups) - 1
			groups[last] = append(groups[last], team)
		}
	}
	return groups, nil
}

// splitHeadToHead builds a sub-table from the results among only the tied
// teams and orders the tied teams by it. Teams without any mutual results
// pass through as a single group so the remaining chain can still split
// them.
func splitHeadToHead(teams []*Team, headToHead []Tiebreaker, logger zerolog.Logger) ([][]*Team, error) {
	if len(headToHead) == 0 {
		return nil, ErrNoHeadToHeadChain
	}

	byName := make(map[string]*Team, len(teams))
	for _, t := range teams {
		byName[t.Name] = t
	}

	seen := make(map[Result]bool)
	var mutual []Result
	for _, t := range teams {
		for _, r := range t.results {
			if byName[r.Home] == nil || byName[r.Guest] == nil || seen[r] {
				continue
			}
			seen[r] = true
			mutual = append(mutual, r)
		}
	}

	if len(mutual) == 0 {
		names := make([]string, 0, len(teams))
		for _, t := range teams {
			names = append(names, t.Name)
		}
		logger.Warn().Strs("teams", names).
			Msg("no head-to-head matches found, continuing with whole group")
		return [][]*Team{teams}, nil
	}

	subGroups, err := sortChain(Compute(mutual), headToHead, nil, logger)
	if err != nil {
		return nil, err
	}

	mapped := make(map[string]bool, len(teams))
	groups := make([][]*Team, 0, len(subGroups))
	for _, subGroup := range subGroups {
		group := make([]*Team, 0, len(subGroup))
		for _, sub := range subGroup {
			group = append(group, byName[sub.Name])
			mapped[sub.Name] = true
		}
		groups = append(groups, group)
	}

	// Teams with no mutual match rank behind the compared ones, as a
	// single group for the remaining chain to split.
	var rest []*Team
	for _, t := range teams {
		if !mapped[t.Name] {
			rest = append(rest, t)
		}
	}
	if len(rest) > 0 {
		groups = append(groups, rest)
	}
	return groups, nil
}

// randomValue derives a stable per-team draw from the team's random id,
// mirroring a lot-drawing between fully tied teams.
func randomValue(t *Team) int64 {
	var v int64
	for i := 0; i < len(t.id) && i < 12; i++ {
		c := t.id[i]
		if c == '-' {
			continue
		}
		v = v<<4 | int64(hexVal(c))
	}
	return v
}

func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
