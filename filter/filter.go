// Package filter compiles boolean expressions for selecting fixtures.
//
// Expressions use the expr language and are evaluated against one match at
// a time, e.g.:
//
//	Played and HomeGoals > GuestGoals
//	Competition contains "Kreisliga" and TeamType == "Herren"
//	kickoff(KickoffDate) > daysAgo(14)
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/bfv-tools/bfv-api/bfv"
)

// kickoffDateLayout is the German date format used by the widget API.
const kickoffDateLayout = "02.01.2006"

// MatchFilter is a compiled match expression.
type MatchFilter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable match filter.
func Compile(expression string) (*MatchFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // match fields are bound at run time
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", expression, err)
	}

	return &MatchFilter{expression: expression, program: program}, nil
}

// Expression returns the original expression.
func (f *MatchFilter) Expression() string {
	return f.expression
}

// Evaluate runs the filter against a single match.
func (f *MatchFilter) Evaluate(m bfv.Match) (bool, error) {
	result, err := expr.Run(f.program, environment(m))
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.expression, err)
	}
	return result.(bool), nil
}

// Apply returns the matches the filter accepts. Matches the filter fails
// on are dropped.
func (f *MatchFilter) Apply(matches []bfv.Match) []bfv.Match {
	var selected []bfv.Match
	for _, m := range matches {
		ok, err := f.Evaluate(m)
		if err == nil && ok {
			selected = append(selected, m)
		}
	}
	return selected
}

// environment builds the evaluation environment for one match.
func environment(m bfv.Match) map[string]any {
	env := helperFunctions()

	env["MatchID"] = m.MatchID
	env["CompoundID"] = m.CompoundID
	env["Competition"] = m.CompetitionName
	env["CompetitionType"] = m.CompetitionType
	env["TeamType"] = string(m.TeamType)
	env["KickoffDate"] = m.KickoffDate
	env["KickoffTime"] = deref(m.KickoffTime)
	env["Home"] = m.HomeTeamName
	env["Guest"] = m.GuestTeamName
	env["Result"] = m.Result

	score, played, err := m.Score()
	env["Played"] = err == nil && played
	if err == nil && played {
		env["HomeGoals"] = score.Home
		env["GuestGoals"] = score.Guest
		env["GoalDiff"] = score.Diff()
	} else {
		env["HomeGoals"] = -1
		env["GuestGoals"] = -1
		env["GoalDiff"] = 0
	}

	return env
}

// helperFunctions returns the helpers available inside expressions.
func helperFunctions() map[string]any {
	return map[string]any{
		"lower": strings.ToLower,
		"kickoff": func(date string) time.Time {
			t, err := time.Parse(kickoffDateLayout, date)
			if err != nil {
				return time.Time{}
			}
			return t
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
