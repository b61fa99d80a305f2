package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/devstage/pkg"
	"github.com/akinalp/devstage/pkg/eventapi"
)

const subscriberID = "0f8fad5b-d9cb-469f-a165-70867728950e"

func TestGetStats(t *testing.T) {
	pos := 3
	api := &fakeAPI{clicks: 12, count: 4, position: &pos}
	svc := NewInviteService(api)

	stats, err := svc.GetStats(context.Background(), subscriberID)
	require.NoError(t, err)

	assert.Equal(t, subscriberID, stats.SubscriberID)
	assert.Equal(t, "http://api.test/invites/"+subscriberID, stats.InviteURL)
	assert.Equal(t, 12, stats.Clicks)
	assert.Equal(t, 4, stats.Subscriptions)
	require.NotNil(t, stats.Position)
	assert.Equal(t, 3, *stats.Position)

	assert.Equal(t, []string{
		"clicks:" + subscriberID,
		"count:" + subscriberID,
		"position:" + subscriberID,
	}, api.statsCalls)
}

func TestGetStatsNoPosition(t *testing.T) {
	svc := NewInviteService(&fakeAPI{})

	stats, err := svc.GetStats(context.Background(), subscriberID)
	require.NoError(t, err)
	assert.Nil(t, stats.Position)
}

func TestGetStatsRejectsNonUUID(t *testing.T) {
	api := &fakeAPI{}
	svc := NewInviteService(api)

	_, err := svc.GetStats(context.Background(), "../../admin")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
	assert.Empty(t, api.statsCalls)
}

func TestParseSubscriberIDCanonicalizes(t *testing.T) {
	svc := NewInviteService(&fakeAPI{})

	id, err := svc.ParseSubscriberID("0F8FAD5B-D9CB-469F-A165-70867728950E")
	require.NoError(t, err)
	assert.Equal(t, subscriberID, id)
}

func TestGetStatsUpstreamNotFound(t *testing.T) {
	api := &fakeAPI{statsErr: &eventapi.StatusError{Op: eventapi.OpInviteClicks, StatusCode: http.StatusNotFound}}
	svc := NewInviteService(api)

	_, err := svc.GetStats(context.Background(), subscriberID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
	assert.Len(t, api.statsCalls, 1)
}
