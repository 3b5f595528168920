// Package standings builds league tables from match results.
//
// Compute aggregates results into per-team records; Sort orders them by a
// chain of tiebreakers applied recursively, including head-to-head
// comparison among tied teams.
package standings

import (
	"github.com/google/uuid"
)

// Points awarded per match outcome.
const (
	PointsForWin  = 3
	PointsForDraw = 1
)

// Result is a single played match. Fairplay values are penalty points; a
// lower total ranks better in fairplay tables but is tracked here only as
// an aggregate.
type Result struct {
	Home          string
	Guest         string
	HomeGoals     int
	GuestGoals    int
	HomeFairplay  int
	GuestFairplay int
}

// Team is one row of a computed table.
type Team struct {
	Name         string
	Games        int
	Points       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	AwayGoalsFor int
	GoalsAgainst int
	Fairplay     int

	// results retains the team's matches for head-to-head comparison.
	results []Result
	// id is a random identity used by the Random tiebreaker.
	id string
}

// GoalDifference returns goals scored minus goals conceded.
func (t *Team) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

func newTeam(name string) *Team {
	return &Team{Name: name, id: uuid.NewString()}
}

// Compute aggregates results into one record per team. Teams appear in
// order of first occurrence.
func Compute(results []Result) []*Team {
	byName := make(map[string]*Team)
	var teams []*Team

	team := func(name string) *Team {
		if t, ok := byName[name]; ok {
			return t
		}
		t := newTeam(name)
		byName[name] = t
		teams = append(teams, t)
		return t
	}

	for _, r := range results {
		home := team(r.Home)
		guest := team(r.Guest)

		switch {
		case r.HomeGoals > r.GuestGoals:
			home.Points += PointsForWin
			home.Wins++
			guest.Losses++
		case r.HomeGoals < r.GuestGoals:
			guest.Points += PointsForWin
			guest.Wins++
			home.Losses++
		default:
			home.Points += PointsForDraw
			guest.Points += PointsForDraw
			home.Draws++
			guest.Draws++
		}

		home.Games++
		home.GoalsFor += r.HomeGoals
		home.GoalsAgainst += r.GuestGoals
		home.Fairplay += r.HomeFairplay

		guest.Games++
		guest.GoalsFor += r.GuestGoals
		guest.AwayGoalsFor += r.GuestGoals
		guest.GoalsAgainst += r.HomeGoals
		guest.Fairplay += r.GuestFairplay

		home.results = append(home.results, r)
		guest.results = append(guest.results, r)
	}

	return teams
}
