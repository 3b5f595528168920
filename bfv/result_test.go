package bfv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name    string
		result  string
		home    string
		guest   string
		want    Score
		wantOK  bool
		wantErr bool
	}{
		{
			name:   "plain score",
			result: "2:1",
			home:   "TSV Kornburg",
			guest:  "SV Seligenporten",
			want:   Score{Home: 2, Guest: 1},
			wantOK: true,
		},
		{
			name:   "goalless draw",
			result: "0:0",
			home:   "A",
			guest:  "B",
			want:   Score{},
			wantOK: true,
		},
		{
			name:   "double digits",
			result: "11:0",
			home:   "A",
			guest:  "B",
			want:   Score{Home: 11},
			wantOK: true,
		},
		{
			name:   "not yet played",
			result: "",
			home:   "A",
			guest:  "B",
			wantOK: false,
		},
		{
			name:   "called off",
			result: "Abse.",
			home:   "A",
			guest:  "B",
			wantOK: false,
		},
		{
			name:   "no guest team",
			result: "2:1",
			home:   "A",
			guest:  "",
			wantOK: false,
		},
		{
			name:   "no-show by home side",
			result: "n.an.",
			home:   "(TSV Kornburg)",
			guest:  "SV Seligenporten",
			want:   Score{Home: 0, Guest: 2},
			wantOK: true,
		},
		{
			name:   "no-show by guest side",
			result: "n.an.",
			home:   "TSV Kornburg",
			guest:  "(SV Seligenporten)",
			want:   Score{Home: 2, Guest: 0},
			wantOK: true,
		},
		{
			name:    "no-show without marked side",
			result:  "n.an.",
			home:    "A",
			guest:   "B",
			wantErr: true,
		},
		{
			name:   "decision suffix",
			result: "2:0 W",
			home:   "A",
			guest:  "B",
			want:   Score{Home: 2},
			wantOK: true,
		},
		{
			name:   "lowercase decision suffix without space",
			result: "0:3u",
			home:   "A",
			guest:  "B",
			want:   Score{Guest: 3},
			wantOK: true,
		},
		{
			name:   "bare decision marker",
			result: "W",
			home:   "A",
			guest:  "B",
			wantOK: false,
		},
		{
			name:    "garbage",
			result:  "abc",
			home:    "A",
			guest:   "B",
			wantErr: true,
		},
		{
			name:    "missing separator",
			result:  "2-1",
			home:    "A",
			guest:   "B",
			wantErr: true,
		},
		{
			name:    "non-numeric side",
			result:  "2:x",
			home:    "A",
			guest:   "B",
			wantErr: true,
		},
		{
			name:    "decision suffix hiding garbage",
			result:  "2-1 W",
			home:    "A",
			guest:   "B",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok, err := ParseScore(tt.result, tt.home, tt.guest)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidResult)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, score)
			}
		})
	}
}

func TestParseScoreTrimsTeamNames(t *testing.T) {
	score, ok, err := ParseScore("n.an.", "  (TSV Kornburg)  ", "SV Seligenporten")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Score{Home: 0, Guest: 2}, score)
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "2:1", Score{Home: 2, Guest: 1}.String())
	assert.Equal(t, "0:0", Score{}.String())
}

func TestScoreDiff(t *testing.T) {
	assert.Equal(t, 1, Score{Home: 2, Guest: 1}.Diff())
	assert.Equal(t, -3, Score{Home: 0, Guest: 3}.Diff())
}

func TestMatchScore(t *testing.T) {
	m := Match{HomeTeamName: "A", GuestTeamName: "B", Result: "3:2"}
	score, ok, err := m.Score()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Score{Home: 3, Guest: 2}, score)
}

func TestMatchReportScore(t *testing.T) {
	t.Run("with guest team", func(t *testing.T) {
		guest := "B"
		r := MatchReport{HomeTeamName: "A", GuestTeamName: &guest, Result: "1:1"}
		score, ok, err := r.Score()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, Score{Home: 1, Guest: 1}, score)
	})

	t.Run("without guest team", func(t *testing.T) {
		r := MatchReport{HomeTeamName: "A", Result: "1:1"}
		_, ok, err := r.Score()
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
