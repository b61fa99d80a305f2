package services

import (
	"context"
	"sync"

	"github.com/akinalp/devstage/pkg/email"
	"github.com/akinalp/devstage/pkg/eventapi"
)

// fakeAPI, EventAPI'nin test implementasyonu.
type fakeAPI struct {
	mu sync.Mutex

	subscribeID  string
	subscribeErr error
	subscribed   []eventapi.SubscribeInput

	ranking     []eventapi.RankingEntry
	rankingErr  error
	rankingHits int

	clicks, count int
	position      *int
	statsErr      error
	statsCalls    []string
}

func (f *fakeAPI) Subscribe(_ context.Context, in eventapi.SubscribeInput) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subscribed = append(f.subscribed, in)
	return f.subscribeID, f.subscribeErr
}

func (f *fakeAPI) Ranking(context.Context) ([]eventapi.RankingEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rankingHits++
	return f.ranking, f.rankingErr
}

func (f *fakeAPI) InviteClicks(_ context.Context, id string) (int, error) {
	f.statsCalls = append(f.statsCalls, "clicks:"+id)
	return f.clicks, f.statsErr
}

func (f *fakeAPI) InviteCount(_ context.Context, id string) (int, error) {
	f.statsCalls = append(f.statsCalls, "count:"+id)
	return f.count, f.statsErr
}

func (f *fakeAPI) RankingPosition(_ context.Context, id string) (*int, error) {
	f.statsCalls = append(f.statsCalls, "position:"+id)
	return f.position, f.statsErr
}

func (f *fakeAPI) InviteURL(id string) string {
	return "http://api.test/invites/" + id
}

// recordingMailer, gönderilen email'leri kaydeder.
type recordingMailer struct {
	sent []email.Welcome
	err  error
}

func (m *recordingMailer) SendWelcome(_ context.Context, msg email.Welcome) error {
	m.sent = append(m.sent, msg)
	return m.err
}
