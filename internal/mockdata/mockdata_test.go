package mockdata

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGamesAreDatedRelativeToNow(t *testing.T) {
	now := time.Date(2026, 1, 18, 18, 0, 0, 0, time.UTC)

	got := Games(now)

	require.Len(t, got, 3)
	assert.True(t, got[0].Date.Equal(now))
	assert.True(t, got[1].Date.Equal(now))
	assert.True(t, got[2].Date.Equal(now.Add(3*time.Hour)))
	assert.Equal(t, "NJD", got[0].AwayAbbrev)
	assert.Equal(t, "NYR", got[0].HomeAbbrev)
	assert.Equal(t, "7:00 PM", got[0].StartTimeText)
	require.NotNil(t, got[0].HomeWinProb)
	assert.InDelta(t, 0.54, *got[0].HomeWinProb, 1e-9)
	assert.Nil(t, got[2].HomeWinProb)
	require.NotNil(t, got[2].Venue)
	assert.Equal(t, "T-Mobile Arena", *got[2].Venue)
}

func TestIDsAreStableWithinProcess(t *testing.T) {
	first := Games(time.Now())
	second := Games(time.Now())
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		_, err := uuid.Parse(first[i].ID)
		assert.NoError(t, err)
	}
	assert.Equal(t, Teams()[0].ID, Teams()[0].ID)
	assert.NotEqual(t, Teams()[0].ID, Teams()[1].ID)
}

func TestTeamsCarryProjections(t *testing.T) {
	got := Teams()

	require.Len(t, got, 6)
	assert.Equal(t, "Buffalo Sabres", got[0].Name)
	assert.Equal(t, "Colorado Avalanche", got[5].Name)
	assert.Equal(t, "Western", got[5].Conference)
	assert.Equal(t, "Central", got[5].Division)
	require.NotNil(t, got[5].Rating)
	assert.InDelta(t, 1.2, *got[5].Rating, 1e-9)
	require.NotNil(t, got[5].PlayoffOdds)
	assert.Nil(t, got[0].LogoURL)
}

func TestResultsAreIndependentCopies(t *testing.T) {
	a := Games(time.Now())
	*a[0].HomeWinProb = 0.99
	b := Games(time.Now())
	assert.InDelta(t, 0.54, *b[0].HomeWinProb, 1e-9)
}
