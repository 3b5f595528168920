package bfv

import "strconv"

// TeamType classifies a team by age group and gender, e.g. "Herren" or
// "C-Junioren". The widget API uses a fixed set of German labels.
type TeamType string

// Team types returned by the API.
const (
	TeamTypeFrauen       TeamType = "Frauen"
	TeamTypeBJuniorinnen TeamType = "B-Juniorinnen"
	TeamTypeCJuniorinnen TeamType = "C-Juniorinnen"
	TeamTypeHerrenUe50   TeamType = "Herren Ü50"
	TeamTypeHerrenUe45   TeamType = "Herren Ü45"
	TeamTypeHerrenUe40   TeamType = "Herren Ü40"
	TeamTypeHerrenUe32   TeamType = "Herren Ü32"
	TeamTypeHerren       TeamType = "Herren"
	TeamTypeAJunioren    TeamType = "A-Junioren"
	TeamTypeBJunioren    TeamType = "B-Junioren"
	TeamTypeCJunioren    TeamType = "C-Junioren"
	TeamTypeDJunioren    TeamType = "D-Junioren"
	TeamTypeEJunioren    TeamType = "E-Junioren"
	TeamTypeFJunioren    TeamType = "F-Junioren"
)

// Valid reports whether the team type is one of the known API labels.
func (t TeamType) Valid() bool {
	switch t {
	case TeamTypeFrauen, TeamTypeBJuniorinnen, TeamTypeCJuniorinnen,
		TeamTypeHerrenUe50, TeamTypeHerrenUe45, TeamTypeHerrenUe40, TeamTypeHerrenUe32,
		TeamTypeHerren, TeamTypeAJunioren, TeamTypeBJunioren, TeamTypeCJunioren,
		TeamTypeDJunioren, TeamTypeEJunioren, TeamTypeFJunioren:
		return true
	}
	return false
}

// EventType identifies the kind of a match event.
type EventType int

// Event types used in match reports.
const (
	EventSubstituteIn  EventType = -2
	EventSubstituteOut EventType = -1
	EventYellow        EventType = 2
	EventRed           EventType = 3
	EventSecondYellow  EventType = 4
	EventGoal          EventType = 7
	EventOwnGoal       EventType = 8
	EventPenaltyGoal   EventType = 9
	EventTimePenalty   EventType = 13
)

// String returns a human-readable name for the event type.
func (e EventType) String() string {
	switch e {
	case EventSubstituteIn:
		return "substitute in"
	case EventSubstituteOut:
		return "substitute out"
	case EventYellow:
		return "yellow card"
	case EventRed:
		return "red card"
	case EventSecondYellow:
		return "second yellow card"
	case EventGoal:
		return "goal"
	case EventOwnGoal:
		return "own goal"
	case EventPenaltyGoal:
		return "penalty goal"
	case EventTimePenalty:
		return "time penalty"
	default:
		return "event(" + strconv.Itoa(int(e)) + ")"
	}
}

// StandingsType selects which official table variant to fetch.
type StandingsType string

// Standings table variants.
const (
	StandingsOverall    StandingsType = ""
	StandingsHome       StandingsType = "home"
	StandingsAway       StandingsType = "away"
	StandingsFirstHalf  StandingsType = "firsthalfseason"
	StandingsSecondHalf StandingsType = "secondhalfseason"
)

// Valid reports whether the standings type is accepted by the API.
func (s StandingsType) Valid() bool {
	switch s {
	case StandingsOverall, StandingsHome, StandingsAway, StandingsFirstHalf, StandingsSecondHalf:
		return true
	}
	return false
}

// MatchType filters club fixtures by venue side.
type MatchType string

// Match type filters for club fixtures.
const (
	MatchTypeAll  MatchType = "all"
	MatchTypeHome MatchType = "home"
	MatchTypeAway MatchType = "away"
)

// Valid reports whether the match type is accepted by the API.
func (m MatchType) Valid() bool {
	switch m {
	case MatchTypeAll, MatchTypeHome, MatchTypeAway:
		return true
	}
	return false
}

// Competition type IDs ("staffelTypId").
const (
	CompetitionTypeLeague     = 1   // Meisterschaften
	CompetitionTypeFriendly   = 70  // Freundschaftsspiele
	CompetitionTypeTournament = 300 // Turniere
)

// Team describes a team as returned by the team endpoints.
type Team struct {
	PermanentID           string   `json:"permanentId"`
	Name                  string   `json:"name"`
	TypeName              TeamType `json:"typeName"`
	SeasonID              string   `json:"seasonId"`
	ClubID                string   `json:"clubId"`
	ClubName              string   `json:"clubName"`
	CompoundID            string   `json:"compoundId"`
	CompetitionName       string   `json:"competitionName"`
	CompetitionBreadcrumb string   `json:"competitionBreadcrumb"`
}

// Match is a fixture entry from the matches endpoints.
type Match struct {
	MatchID              string   `json:"matchId"`
	CompoundID           string   `json:"compoundId"`
	CompetitionName      string   `json:"competitionName"`
	CompetitionType      string   `json:"competitionType"`
	TeamType             TeamType `json:"teamType"`
	KickoffDate          string   `json:"kickoffDate"`
	KickoffTime          *string  `json:"kickoffTime"`
	HomeTeamName         string   `json:"homeTeamName"`
	HomeTeamPermanentID  *string  `json:"homeTeamPermanentId"`
	HomeClubID           *string  `json:"homeClubId"`
	HomeLogoPrivate      bool     `json:"homeLogoPrivate"`
	GuestTeamName        string   `json:"guestTeamName"`
	GuestTeamPermanentID *string  `json:"guestTeamPermanentId"`
	GuestClubID          *string  `json:"guestClubId"`
	GuestLogoPrivate     bool     `json:"guestLogoPrivate"`
	Result               string   `json:"result"`
	TickerMatchID        *string  `json:"tickerMatchId"`
	PrePublished         *bool    `json:"prePublished,omitempty"`
	ClubTeamNumber       *int     `json:"clubTeamNumber,omitempty"`
}

// Score parses the match result string. See ParseScore for the rules.
func (m *Match) Score() (Score, bool, error) {
	return ParseScore(m.Result, m.HomeTeamName, m.GuestTeamName)
}

// ShortMatches is the fixtures payload of the club endpoints.
type ShortMatches struct {
	Matches       []Match `json:"matches"`
	ActualMatchID string  `json:"actualMatchId"`
}

// Matches is the fixtures payload of the team matches endpoint.
type Matches struct {
	ShortMatches
	Team                  Team    `json:"team"`
	ActualTickeredMatchID *string `json:"actualTickeredMatchId"`
}

// Club holds the basic club record.
type Club struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	LogoURL    string `json:"logoUrl"`
	LogoPublic bool   `json:"logoPublic"`
}

// ClubInfo is the payload of the club info endpoints.
type ClubInfo struct {
	Club   Club   `json:"club"`
	Number string `json:"number"`
}

// Season identifies a season.
type Season struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ShortTeam is a reduced team reference used in squads and scorer lists.
type ShortTeam struct {
	PermanentID string  `json:"permanentId"`
	Name        *string `json:"name"`
}

// Player is a squad list entry. The API currently exposes only this
// placeholder field for players in a squad.
type Player struct {
	Test string `json:"test"`
}

// PlayerInfo carries the photo URLs of a player.
type PlayerInfo struct {
	PhotoURLThumb string `json:"photoUrlThumb"`
	PhotoURLStamp string `json:"photoUrlStamp"`
	PhotoURLImage string `json:"photoUrlImage"`
}

// MatchPlayer is a lineup entry in a match report.
type MatchPlayer struct {
	Name       string     `json:"name"`
	Number     int        `json:"number"`
	Captain    bool       `json:"captain"`
	Keeper     bool       `json:"keeper"`
	Substitute bool       `json:"substitute"`
	PlayerInfo PlayerInfo `json:"playerInfo"`
}

// Squad is the payload of the team squad endpoint.
type Squad struct {
	Public  bool      `json:"public"`
	Season  Season    `json:"season"`
	Team    ShortTeam `json:"team"`
	Players []Player  `json:"players"`
}

// Venue describes where a match takes place.
type Venue struct {
	Type     int     `json:"type"`
	TypeName *string `json:"typeName"`
	Name     *string `json:"name"`
	Street   *string `json:"street"`
	ZipCode  *string `json:"zipCode"`
	City     *string `json:"city"`
}

// MatchEvent is a single event in a match report timeline.
type MatchEvent struct {
	Minute               int          `json:"minute"`
	AdditionalTimeMinute int          `json:"additionalTimeMinute"`
	Type                 EventType    `json:"type"`
	SortPos              int          `json:"sortPos"`
	Player               *MatchPlayer `json:"player"`
}

// MatchTeamInfo holds one side's lineup and events in a match report.
type MatchTeamInfo struct {
	Trainer     string        `json:"trainer"`
	Players     []MatchPlayer `json:"players"`
	MatchEvents []MatchEvent  `json:"matchEvents"`
}

// MatchReportInfo is the detailed part of a match report, present only
// once a report has been filed.
type MatchReportInfo struct {
	Home                *MatchTeamInfo `json:"home"`
	Guest               *MatchTeamInfo `json:"guest"`
	EndTime             *string        `json:"endTime"`
	ExtraTimeFirstHalf  *int           `json:"extraTimeFirstHalf"`
	ExtraTimeSecondHalf *int           `json:"extraTimeSecondHalf"`
	Spectators          *int           `json:"spectators"`
}

// MatchReport is the payload of the match report endpoint.
type MatchReport struct {
	DivisionSuffix  string           `json:"staffelzusatz"`
	MatchID         string           `json:"matchId"`
	Result          string           `json:"result"`
	StartDate       string           `json:"startDate"`
	StartTime       string           `json:"startTime"`
	LeagueName      string           `json:"leageName"` // sic, the API misspells the key
	Season          string           `json:"season"`
	HomeTeamName    string           `json:"homeTeamName"`
	GuestTeamName   *string          `json:"guestTeamName"`
	HomeTeamClubID  *string          `json:"homeTeamClubId"`
	GuestTeamClubID *string          `json:"guestTeamClubId"`
	CompoundID      string           `json:"compoundId"`
	MatchNr         string           `json:"matchNr"`
	PrevMatchID     *string          `json:"prevMatchId"`
	NextMatchID     *string          `json:"nextMatchId"`
	Venue           Venue            `json:"venue"`
	Referee         string           `json:"referee"`
	Assistant1      string           `json:"assistant1"`
	Assistant2      string           `json:"assistant2"`
	FourthOfficial  *string          `json:"forthOfficial"`
	SpielTickerID   *string          `json:"spielTickerId"`
	TickerMatchID   *string          `json:"tickerMatchId"`
	ReportInfo      *MatchReportInfo `json:"matchReportInfo"`
	AdCode          string           `json:"adCode"`
}

// Score parses the report's result string. A report without a guest team
// never has a score.
func (r *MatchReport) Score() (Score, bool, error) {
	guest := ""
	if r.GuestTeamName != nil {
		guest = *r.GuestTeamName
	}
	return ParseScore(r.Result, r.HomeTeamName, guest)
}

// StandingsRow is a single row of an official table. The API keys are
// German: rang (rank), anzspiele (games), punkte (points), s/u/n
// (wins/draws/losses), tore (goals), tordiff (goal difference),
// aufab (promotion/relegation marker), verzicht (withdrawal).
type StandingsRow struct {
	SeasonID       *string `json:"seasonId"`
	SeasonName     string  `json:"seasonName"`
	PermanentID    *string `json:"permanentId"`
	CompetitionID  string  `json:"competitionId"`
	Rank           string  `json:"rang"`
	TeamName       string  `json:"teamname"`
	Games          int     `json:"anzspiele"`
	Points         int     `json:"punkte"`
	Wins           int     `json:"s"`
	Draws          int     `json:"u"`
	Losses         int     `json:"n"`
	Goals          string  `json:"tore"`
	GoalDifference string  `json:"tordiff"`
	PromotionMark  *int    `json:"aufab"`
	Withdrawn      int     `json:"verzicht"`
	ClubID         *string `json:"clubId"`
}

// MatchDay is one entry of a competition's match day list.
type MatchDay struct {
	Number string `json:"spieltag"`
	Label  string `json:"bezeichnung"`
}

// Competition is the payload of the competition endpoints.
type Competition struct {
	Season            string         `json:"saison"`
	CompoundID        string         `json:"compoundId"`
	DivisionID        string         `json:"staffelId"`
	Name              string         `json:"staffelname"`
	NameSuffix        string         `json:"staffelzusatz"`
	Number            string         `json:"staffelnr"`
	TypeID            int            `json:"staffelTypId"`
	TypeName          string         `json:"staffelTypName"`
	AdCode            string         `json:"adCode"`
	Promoted          int            `json:"anzAufsteiger"`
	PromotedPlayoff   int            `json:"anzAufsteigerq"`
	RelegatedPlayoff  int            `json:"anzAbsteigerq"`
	Relegated         int            `json:"anzAbsteiger"`
	LiveTicker        bool           `json:"stLiveticker"`
	Matches           []Match        `json:"matches"`
	Table             []StandingsRow `json:"tabelle"`
	MatchDays         []MatchDay     `json:"spieltage"`
	SelectedMatchDay  string         `json:"selSpieltag"`
	ActualMatchDay    string         `json:"actualMatchDay"`
}

// CurrentMatchDay returns the competition's actual match day as a number.
func (c *Competition) CurrentMatchDay() (int, error) {
	day, err := strconv.Atoi(c.ActualMatchDay)
	if err != nil {
		return 0, &InvalidIDError{Kind: "match day", Value: c.ActualMatchDay}
	}
	return day, nil
}

// TopScorerPlayer is one entry of a competition's scorer list.
type TopScorerPlayer struct {
	PlayerImage          string    `json:"playerImage"`
	PlayerImageStamp     string    `json:"playerImageStamp"`
	PlayerImageCopyright *string   `json:"playerImageCopyright"`
	Name                 string    `json:"name"`
	Team                 ShortTeam `json:"team"`
	Rank                 int       `json:"rank"`
	Goals                int       `json:"goals"`
}

// TopScorer is the payload of the top scorer endpoint.
type TopScorer struct {
	CompoundID      string            `json:"compoundId"`
	CompetitionName string            `json:"competitionName"`
	AdCode          string            `json:"adCode"`
	Scorers         []TopScorerPlayer `json:"scorers"`
}

// Standings is the payload of the official standings endpoint.
type Standings struct {
	CompoundID      string         `json:"compoundId"`
	CompetitionName *string        `json:"competitionName"`
	Rows            []StandingsRow `json:"tabelle"`
}

// Envelope is the common wrapper every widget API endpoint responds with.
type Envelope[T any] struct {
	State   int     `json:"state"`
	Message *string `json:"message"`
	Data    T       `json:"data"`
}
