package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/devstage/models"
	"github.com/akinalp/devstage/pkg"
	"github.com/akinalp/devstage/pkg/cache"
	"github.com/akinalp/devstage/pkg/eventapi"
)

func TestGetRankingDecoratesTopThree(t *testing.T) {
	api := &fakeAPI{ranking: []eventapi.RankingEntry{
		{ID: "d", Name: "Diego", Score: 10},
		{ID: "m", Name: "Mayk", Score: 8},
		{ID: "r", Name: "Rodrigo", Score: 8},
		{ID: "f", Name: "Fernanda", Score: 2},
	}}
	svc := NewRankingService(api, nil)

	entries, err := svc.GetRanking(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, models.RankingEntry{ID: "d", Name: "Diego", Score: 10, Position: 1, Medal: models.MedalGold}, entries[0])
	assert.Equal(t, models.MedalSilver, entries[1].Medal)
	assert.Equal(t, models.MedalCopper, entries[2].Medal)
	assert.Equal(t, 3, entries[2].Position)
	assert.Equal(t, models.MedalNone, entries[3].Medal)
	assert.Equal(t, 4, entries[3].Position)
}

func TestGetRankingKeepsUpstreamOrder(t *testing.T) {
	api := &fakeAPI{ranking: []eventapi.RankingEntry{
		{ID: "low", Score: 1},
		{ID: "high", Score: 99},
	}}
	svc := NewRankingService(api, nil)

	entries, err := svc.GetRanking(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "low", entries[0].ID)
	assert.Equal(t, models.MedalGold, entries[0].Medal)
}

func TestGetRankingEmpty(t *testing.T) {
	svc := NewRankingService(&fakeAPI{ranking: []eventapi.RankingEntry{}}, nil)

	entries, err := svc.GetRanking(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetRankingUsesCache(t *testing.T) {
	api := &fakeAPI{ranking: []eventapi.RankingEntry{{ID: "a", Name: "Ana", Score: 1}}}
	c := cache.New[string, []models.RankingEntry](time.Minute, time.Minute)
	defer c.Close()
	svc := NewRankingService(api, c)

	first, err := svc.GetRanking(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := svc.GetRanking(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ana", second[0].Name)
	assert.Equal(t, 1, api.rankingHits)
}

func TestGetRankingErrorIsNotCached(t *testing.T) {
	api := &fakeAPI{rankingErr: &eventapi.StatusError{Op: eventapi.OpRanking, StatusCode: http.StatusServiceUnavailable}}
	c := cache.New[string, []models.RankingEntry](time.Minute, time.Minute)
	defer c.Close()
	svc := NewRankingService(api, c)

	_, err := svc.GetRanking(context.Background())
	assert.ErrorIs(t, err, pkg.ErrUpstream)

	api.rankingErr = nil
	api.ranking = []eventapi.RankingEntry{{ID: "a"}}
	entries, err := svc.GetRanking(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 2, api.rankingHits)
}
