package bfv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public widget API of the Bayerischer Fußball-Verband.
const DefaultBaseURL = "https://widget-prod.bfv.de"

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "bfv-cli"
)

// Cache stores raw response bodies keyed by request path. Implementations
// must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// Client wraps the BFV widget API.
type Client struct {
	rest     *resty.Client
	logger   zerolog.Logger
	cache    Cache
	cacheTTL time.Duration
}

// NewClient creates a new BFV client. An empty baseURL selects the public
// production API.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, baseURL)
	}

	o := clientOptions{
		timeout:   defaultTimeout,
		retryWait: time.Second,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(&o)
	}

	rest := resty.New()
	if o.httpClient != nil {
		rest = resty.NewWithClient(o.httpClient)
	}
	rest.SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(o.timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", o.userAgent)
	if o.retryCount > 0 {
		rest.SetRetryCount(o.retryCount).SetRetryWaitTime(o.retryWait)
	}

	return &Client{
		rest:     rest,
		logger:   logger,
		cache:    o.cache,
		cacheTTL: o.cacheTTL,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.rest.BaseURL
}

// Ping checks that the API host answers at all. The widget API has no
// dedicated health endpoint, so any non-5xx answer counts.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.rest.R().SetContext(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
		}
	}
	return nil
}

// TeamMatches retrieves a team's fixtures together with its team record.
// Returns nil without error when the API has no data for the team.
func (c *Client) TeamMatches(ctx context.Context, teamID string) (*Matches, error) {
	if teamID == "" {
		return nil, &InvalidIDError{Kind: "team id", Value: teamID}
	}
	return getData[Matches](ctx, c, "/api/service/widget/v1/team/"+url.PathEscape(teamID)+"/matches")
}

// TeamSquad retrieves a team's squad.
func (c *Client) TeamSquad(ctx context.Context, teamID string) (*Squad, error) {
	if teamID == "" {
		return nil, &InvalidIDError{Kind: "team id", Value: teamID}
	}
	squad, err := getData[Squad](ctx, c, "/api/service/widget/v1/team/"+url.PathEscape(teamID)+"/squad")
	if err != nil {
		return nil, err
	}
	if squad == nil {
		return nil, fmt.Errorf("squad for team %s: %w", teamID, ErrNoData)
	}
	return squad, nil
}

// Competition retrieves a competition at its current match day.
func (c *Client) Competition(ctx context.Context, compoundID string) (*Competition, error) {
	if compoundID == "" {
		return nil, &InvalidIDError{Kind: "competition id", Value: compoundID}
	}
	comp, err := getData[Competition](ctx, c, "/rest/competitioncontroller/competition/id/"+url.PathEscape(compoundID))
	if err != nil {
		return nil, err
	}
	if comp == nil {
		return nil, fmt.Errorf("competition %s: %w", compoundID, ErrNoData)
	}
	return comp, nil
}

// CompetitionMatchDay retrieves a competition at the given match day.
func (c *Client) CompetitionMatchDay(ctx context.Context, compoundID string, matchDay int) (*Competition, error) {
	if compoundID == "" {
		return nil, &InvalidIDError{Kind: "competition id", Value: compoundID}
	}
	if matchDay < 1 {
		return nil, &InvalidIDError{Kind: "match day", Value: strconv.Itoa(matchDay)}
	}
	path := "/rest/competitioncontroller/competition/id/" + url.PathEscape(compoundID) +
		"/matchday/" + strconv.Itoa(matchDay)
	comp, err := getData[Competition](ctx, c, path)
	if err != nil {
		return nil, err
	}
	if comp == nil {
		return nil, fmt.Errorf("competition %s match day %d: %w", compoundID, matchDay, ErrNoData)
	}
	return comp, nil
}

// CompetitionTopScorer retrieves a competition's scorer list. Returns nil
// without error when the competition publishes none.
func (c *Client) CompetitionTopScorer(ctx context.Context, compoundID string) (*TopScorer, error) {
	if compoundID == "" {
		return nil, &InvalidIDError{Kind: "competition id", Value: compoundID}
	}
	return getData[TopScorer](ctx, c, "/api/service/widget/v1/competition/"+url.PathEscape(compoundID)+"/topscorer")
}

// CompetitionStandings retrieves a competition's official table.
func (c *Client) CompetitionStandings(ctx context.Context, compoundID string, standingsType StandingsType) (*Standings, error) {
	if compoundID == "" {
		return nil, &InvalidIDError{Kind: "competition id", Value: compoundID}
	}
	if !standingsType.Valid() {
		return nil, &InvalidIDError{Kind: "standings type", Value: string(standingsType)}
	}
	path := "/rest/competitioncontroller/competition/table/" + string(standingsType) +
		"/id/" + url.PathEscape(compoundID)
	standings, err := getData[Standings](ctx, c, path)
	if err != nil {
		return nil, err
	}
	if standings == nil {
		return nil, fmt.Errorf("standings for %s: %w", compoundID, ErrNoData)
	}
	return standings, nil
}

// ClubMatches retrieves a club's fixtures across all of its teams.
func (c *Client) ClubMatches(ctx context.Context, clubID string, matchType MatchType) (*ShortMatches, error) {
	if clubID == "" {
		return nil, &InvalidIDError{Kind: "club id", Value: clubID}
	}
	if matchType == "" {
		matchType = MatchTypeAll
	}
	if !matchType.Valid() {
		return nil, &InvalidIDError{Kind: "match type", Value: string(matchType)}
	}
	path := "/rest/clubcontroller/fixtures/id/" + url.PathEscape(clubID) +
		"/matchtype/" + string(matchType)
	matches, err := getData[ShortMatches](ctx, c, path)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		return nil, fmt.Errorf("fixtures for club %s: %w", clubID, ErrNoData)
	}
	return matches, nil
}

// ClubInfo retrieves a club's basic record.
func (c *Client) ClubInfo(ctx context.Context, clubID string) (*ClubInfo, error) {
	if clubID == "" {
		return nil, &InvalidIDError{Kind: "club id", Value: clubID}
	}
	info, err := getData[ClubInfo](ctx, c, "/api/service/widget/v1/club/"+url.PathEscape(clubID)+"/info")
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, fmt.Errorf("info for club %s: %w", clubID, ErrNoData)
	}
	return info, nil
}

// ClubInfoByTeam retrieves the club record a team belongs to.
func (c *Client) ClubInfoByTeam(ctx context.Context, teamID string) (*ClubInfo, error) {
	if teamID == "" {
		return nil, &InvalidIDError{Kind: "team id", Value: teamID}
	}
	params := url.Values{"teamPermanentId": {teamID}}
	info, err := getData[ClubInfo](ctx, c, "/api/service/widget/v1/club/info?"+params.Encode())
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, fmt.Errorf("club info for team %s: %w", teamID, ErrNoData)
	}
	return info, nil
}

// MatchReport retrieves the report of a single match.
func (c *Client) MatchReport(ctx context.Context, matchID string) (*MatchReport, error) {
	if matchID == "" {
		return nil, &InvalidIDError{Kind: "match id", Value: matchID}
	}
	report, err := getData[MatchReport](ctx, c, "/rest/matchcontroller/matchreport/id/"+url.PathEscape(matchID))
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, fmt.Errorf("report for match %s: %w", matchID, ErrNoData)
	}
	return report, nil
}

// getData fetches a path and unwraps the response envelope. A JSON null
// data field yields (nil, nil); callers decide whether that is an error.
func getData[T any](ctx context.Context, c *Client, path string) (*T, error) {
	body, err := c.fetch(ctx, path)
	if err != nil {
		return nil, err
	}

	var env Envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response for %s: %w", path, err)
	}
	if env.Message != nil && *env.Message != "" {
		c.logger.Debug().Int("state", env.State).Str("message", *env.Message).
			Str("path", path).Msg("API message")
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, nil
	}

	var data T
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to decode data for %s: %w", path, err)
	}
	return &data, nil
}

// fetch performs a GET request, going through the response cache when one
// is configured.
func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	if c.cache != nil {
		body, ok, err := c.cache.Get(ctx, path)
		if err != nil {
			c.logger.Warn().Err(err).Str("path", path).Msg("cache read failed")
		} else if ok {
			c.logger.Debug().Str("path", path).Msg("cache hit")
			return body, nil
		}
	}

	c.logger.Debug().Str("path", path).Msg("making API request")

	resp, err := c.rest.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("request for %s failed: %w", path, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			Body:       string(resp.Body()),
		}
	}

	body := resp.Body()
	if c.cache != nil {
		if err := c.cache.Set(ctx, path, body, c.cacheTTL); err != nil {
			c.logger.Warn().Err(err).Str("path", path).Msg("cache write failed")
		}
	}
	return body, nil
}
