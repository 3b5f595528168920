package bfv

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelope(data any) []byte {
	body, _ := json.Marshal(map[string]any{
		"state":   0,
		"message": nil,
		"data":    data,
	})
	return body
}

func newTestServer(t *testing.T, wantPath string, data any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write(envelope(data))
	}))
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("default base URL", func(t *testing.T) {
		client, err := NewClient("", logger)
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, client.BaseURL())
	})

	t.Run("trailing slash stripped", func(t *testing.T) {
		client, err := NewClient("http://localhost:9000/", logger)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000", client.BaseURL())
	})
}

func TestTeamMatches(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("decodes team and fixtures", func(t *testing.T) {
		server := newTestServer(t, "/api/service/widget/v1/team/TEAM1/matches", map[string]any{
			"matches": []map[string]any{
				{
					"matchId":         "M1",
					"compoundId":      "C1",
					"competitionName": "Kreisliga 1",
					"teamType":        "Herren",
					"homeTeamName":    "TSV Kornburg",
					"guestTeamName":   "SV Seligenporten",
					"result":          "2:1",
				},
			},
			"actualMatchId":         "M1",
			"actualTickeredMatchId": nil,
			"team": map[string]any{
				"permanentId": "TEAM1",
				"name":        "TSV Kornburg",
				"typeName":    "Herren",
				"compoundId":  "C1",
			},
		})
		defer server.Close()

		client, err := NewClient(server.URL, logger)
		require.NoError(t, err)

		matches, err := client.TeamMatches(context.Background(), "TEAM1")
		require.NoError(t, err)
		require.NotNil(t, matches)
		assert.Equal(t, "TSV Kornburg", matches.Team.Name)
		assert.Equal(t, TeamTypeHerren, matches.Team.TypeName)
		assert.Equal(t, "C1", matches.Team.CompoundID)
		require.Len(t, matches.Matches, 1)
		assert.Equal(t, "2:1", matches.Matches[0].Result)
		assert.Nil(t, matches.Matches[0].KickoffTime)
	})

	t.Run("null data yields nil", func(t *testing.T) {
		server := newTestServer(t, "/api/service/widget/v1/team/TEAM1/matches", nil)
		defer server.Close()

		client, err := NewClient(server.URL, logger)
		require.NoError(t, err)

		matches, err := client.TeamMatches(context.Background(), "TEAM1")
		require.NoError(t, err)
		assert.Nil(t, matches)
	})

	t.Run("empty id rejected", func(t *testing.T) {
		client, err := NewClient("http://localhost:9000", logger)
		require.NoError(t, err)

		_, err = client.TeamMatches(context.Background(), "")
		var idErr *InvalidIDError
		require.ErrorAs(t, err, &idErr)
		assert.Equal(t, "team id", idErr.Kind)
	})
}

func TestTeamSquadNoData(t *testing.T) {
	server := newTestServer(t, "/api/service/widget/v1/team/TEAM1/squad", nil)
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)

	_, err = client.TeamSquad(context.Background(), "TEAM1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestCompetitionStandings(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("standings type in path", func(t *testing.T) {
		server := newTestServer(t, "/rest/competitioncontroller/competition/table/home/id/C1", map[string]any{
			"compoundId":      "C1",
			"competitionName": nil,
			"tabelle": []map[string]any{
				{"rang": "1", "teamname": "TSV Kornburg", "anzspiele": 10, "punkte": 30, "s": 10, "u": 0, "n": 0, "tore": "30:5", "tordiff": "25", "verzicht": 0, "competitionId": "C1", "seasonName": "2025/26"},
			},
		})
		defer server.Close()

		client, err := NewClient(server.URL, logger)
		require.NoError(t, err)

		standings, err := client.CompetitionStandings(context.Background(), "C1", StandingsHome)
		require.NoError(t, err)
		require.Len(t, standings.Rows, 1)
		assert.Equal(t, "TSV Kornburg", standings.Rows[0].TeamName)
		assert.Equal(t, 30, standings.Rows[0].Points)
	})

	t.Run("invalid standings type", func(t *testing.T) {
		client, err := NewClient("http://localhost:9000", logger)
		require.NoError(t, err)

		_, err = client.CompetitionStandings(context.Background(), "C1", StandingsType("bogus"))
		var idErr *InvalidIDError
		require.ErrorAs(t, err, &idErr)
		assert.Equal(t, "standings type", idErr.Kind)
	})
}

func TestClubInfoByTeam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/service/widget/v1/club/info", r.URL.Path)
		assert.Equal(t, "TEAM1", r.URL.Query().Get("teamPermanentId"))
		w.Write(envelope(map[string]any{
			"club":   map[string]any{"id": "CLUB1", "name": "TSV Kornburg", "logoUrl": "", "logoPublic": true},
			"number": "00042",
		}))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)

	info, err := client.ClubInfoByTeam(context.Background(), "TEAM1")
	require.NoError(t, err)
	assert.Equal(t, "CLUB1", info.Club.ID)
	assert.Equal(t, "00042", info.Number)
}

func TestClubMatchesDefaultsToAll(t *testing.T) {
	server := newTestServer(t, "/rest/clubcontroller/fixtures/id/CLUB1/matchtype/all", map[string]any{
		"matches":       []map[string]any{},
		"actualMatchId": "",
	})
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)

	matches, err := client.ClubMatches(context.Background(), "CLUB1", "")
	require.NoError(t, err)
	assert.Empty(t, matches.Matches)
}

func TestCompetitionMatchDayValidation(t *testing.T) {
	client, err := NewClient("http://localhost:9000", zerolog.Nop())
	require.NoError(t, err)

	_, err = client.CompetitionMatchDay(context.Background(), "C1", 0)
	var idErr *InvalidIDError
	require.ErrorAs(t, err, &idErr)
	assert.Equal(t, "match day", idErr.Kind)
}

func TestAPIErrorOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)

	_, err = client.Competition(context.Background(), "C1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.True(t, apiErr.IsServerError())
	assert.False(t, apiErr.IsNotFound())
}

// memoryCache is a minimal Cache for testing the caching path.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	sets    int
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body, ok := m.entries[key]
	return body, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[string][]byte)
	}
	m.entries[key] = data
	m.sets++
	return nil
}

func TestResponseCaching(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write(envelope(map[string]any{
			"club":   map[string]any{"id": "CLUB1", "name": "TSV Kornburg", "logoUrl": "", "logoPublic": true},
			"number": "00042",
		}))
	}))
	defer server.Close()

	cache := &memoryCache{}
	client, err := NewClient(server.URL, zerolog.Nop(), WithCache(cache, time.Minute))
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		info, err := client.ClubInfo(ctx, "CLUB1")
		require.NoError(t, err)
		assert.Equal(t, "CLUB1", info.Club.ID)
	}

	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, cache.sets)
}
