package bfv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		event    EventType
		expected string
	}{
		{EventSubstituteIn, "substitute in"},
		{EventSubstituteOut, "substitute out"},
		{EventYellow, "yellow card"},
		{EventRed, "red card"},
		{EventSecondYellow, "second yellow card"},
		{EventGoal, "goal"},
		{EventOwnGoal, "own goal"},
		{EventPenaltyGoal, "penalty goal"},
		{EventTimePenalty, "time penalty"},
		{EventType(99), "event(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.String())
		})
	}
}

func TestTeamTypeValid(t *testing.T) {
	assert.True(t, TeamTypeHerren.Valid())
	assert.True(t, TeamTypeCJuniorinnen.Valid())
	assert.False(t, TeamType("Senioren").Valid())
}

func TestStandingsTypeValid(t *testing.T) {
	assert.True(t, StandingsOverall.Valid())
	assert.True(t, StandingsSecondHalf.Valid())
	assert.False(t, StandingsType("thirdhalf").Valid())
}

func TestMatchTypeValid(t *testing.T) {
	assert.True(t, MatchTypeAll.Valid())
	assert.False(t, MatchType("neutral").Valid())
}

func TestCompetitionCurrentMatchDay(t *testing.T) {
	comp := Competition{ActualMatchDay: "17"}
	day, err := comp.CurrentMatchDay()
	require.NoError(t, err)
	assert.Equal(t, 17, day)

	comp.ActualMatchDay = "n/a"
	_, err = comp.CurrentMatchDay()
	var idErr *InvalidIDError
	require.ErrorAs(t, err, &idErr)
}

func TestMatchReportDecoding(t *testing.T) {
	// Trimmed real-world shape: optional fields null, nested report info.
	raw := `{
		"staffelzusatz": "",
		"matchId": "M1",
		"result": "2:1",
		"startDate": "01.09.2025",
		"startTime": "15:00",
		"leageName": "Kreisliga 1",
		"season": "2025/26",
		"homeTeamName": "TSV Kornburg",
		"guestTeamName": "SV Seligenporten",
		"homeTeamClubId": null,
		"guestTeamClubId": null,
		"compoundId": "C1",
		"matchNr": "001",
		"prevMatchId": null,
		"nextMatchId": null,
		"venue": {"type": 1, "typeName": "Rasenplatz", "name": "Sportpark", "street": null, "zipCode": null, "city": "Nürnberg"},
		"referee": "R. Schiri",
		"assistant1": "",
		"assistant2": "",
		"forthOfficial": null,
		"spielTickerId": null,
		"tickerMatchId": null,
		"matchReportInfo": {
			"home": {
				"trainer": "T. Trainer",
				"players": [{"name": "P. Spieler", "number": 9, "captain": true, "keeper": false, "substitute": false, "playerInfo": {"photoUrlThumb": "", "photoUrlStamp": "", "photoUrlImage": ""}}],
				"matchEvents": [{"minute": 23, "additionalTimeMinute": 0, "type": 7, "sortPos": 1, "player": null}]
			},
			"guest": null,
			"endTime": "16:50",
			"extraTimeFirstHalf": 1,
			"extraTimeSecondHalf": 4,
			"spectators": 120
		},
		"adCode": ""
	}`

	var report MatchReport
	require.NoError(t, json.Unmarshal([]byte(raw), &report))

	assert.Equal(t, "Kreisliga 1", report.LeagueName)
	require.NotNil(t, report.ReportInfo)
	require.NotNil(t, report.ReportInfo.Home)
	assert.Nil(t, report.ReportInfo.Guest)
	require.Len(t, report.ReportInfo.Home.MatchEvents, 1)
	assert.Equal(t, EventGoal, report.ReportInfo.Home.MatchEvents[0].Type)
	require.NotNil(t, report.ReportInfo.Spectators)
	assert.Equal(t, 120, *report.ReportInfo.Spectators)

	score, ok, err := report.Score()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Score{Home: 2, Guest: 1}, score)
}

func TestMatchesEmbedsShortMatches(t *testing.T) {
	raw := `{
		"matches": [],
		"actualMatchId": "M1",
		"actualTickeredMatchId": null,
		"team": {"permanentId": "T1", "name": "TSV Kornburg", "typeName": "Herren", "seasonId": "", "clubId": "", "clubName": "", "compoundId": "C1", "competitionName": "", "competitionBreadcrumb": ""}
	}`

	var matches Matches
	require.NoError(t, json.Unmarshal([]byte(raw), &matches))
	assert.Equal(t, "M1", matches.ActualMatchID)
	assert.Equal(t, "T1", matches.Team.PermanentID)
	assert.Nil(t, matches.ActualTickeredMatchID)
}
