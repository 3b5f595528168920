package bfv

import (
	"fmt"
	"strconv"
	"strings"
)

// Result strings with a special meaning.
const (
	resultCalledOff = "Abse." // abgesetzt, match called off
	resultNoShow    = "n.an." // nicht angetreten, one side did not show up
)

// Goals awarded for a forfeit.
const forfeitGoals = 2

// Score is a parsed match result.
type Score struct {
	Home  int
	Guest int
}

// String formats the score the way the API does, e.g. "2:1".
func (s Score) String() string {
	return strconv.Itoa(s.Home) + ":" + strconv.Itoa(s.Guest)
}

// Diff returns the goal difference from the home side's perspective.
func (s Score) Diff() int {
	return s.Home - s.Guest
}

// ParseScore parses a result string like "2:1" into a Score.
//
// The boolean is false when the match simply has no score yet: an empty
// result, a called-off match ("Abse.") or a missing guest team. A no-show
// ("n.an.") is scored as a 0:2 forfeit against the side whose name is
// wrapped in parentheses. Decisions by the association append a "W" or "U"
// suffix to the plain score; the suffix is stripped and the rest parsed
// once more. Anything else is an error.
func ParseScore(result, homeTeam, guestTeam string) (Score, bool, error) {
	return parseScore(result, strings.TrimSpace(homeTeam), strings.TrimSpace(guestTeam), true)
}

func parseScore(result, home, guest string, retry bool) (Score, bool, error) {
	if guest == "" || result == "" || result == resultCalledOff {
		return Score{}, false, nil
	}

	if result == resultNoShow {
		if wrapped(home) {
			return Score{Home: 0, Guest: forfeitGoals}, true, nil
		}
		if wrapped(guest) {
			return Score{Home: forfeitGoals, Guest: 0}, true, nil
		}
		return Score{}, false, invalidResult(result, home, guest)
	}

	lower := strings.ToLower(result)
	if idx := strings.IndexAny(lower, "wu"); idx >= 0 {
		if !retry {
			return Score{}, false, invalidResult(result, home, guest)
		}
		score, ok, err := parseScore(strings.TrimSpace(lower[:idx]), home, guest, false)
		if err != nil {
			return Score{}, false, invalidResult(result, home, guest)
		}
		return score, ok, nil
	}

	homeStr, guestStr, found := strings.Cut(result, ":")
	if !found {
		return Score{}, false, invalidResult(result, home, guest)
	}
	homeGoals, err := strconv.Atoi(homeStr)
	if err != nil {
		return Score{}, false, invalidResult(result, home, guest)
	}
	guestGoals, err := strconv.Atoi(guestStr)
	if err != nil {
		return Score{}, false, invalidResult(result, home, guest)
	}
	return Score{Home: homeGoals, Guest: guestGoals}, true, nil
}

// wrapped reports whether a team name is marked as the forfeiting side,
// i.e. fully enclosed in parentheses.
func wrapped(name string) bool {
	return len(name) >= 2 && name[0] == '(' && name[len(name)-1] == ')'
}

func invalidResult(result, home, guest string) error {
	return fmt.Errorf("%w for %s vs %s: %q", ErrInvalidResult, home, guest, result)
}
