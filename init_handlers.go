// Package main — Handler katmanı başlatma.
//
// initHandlers, tüm HTTP handler'larını oluşturur.
// Handler'lar "thin" dir — sadece HTTP parse + service call + response write.
package main

import (
	"github.com/akinalp/devstage/handlers"
	"github.com/akinalp/devstage/views"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Page         *handlers.PageHandler
	Subscription *handlers.SubscriptionHandler
	Ranking      *handlers.RankingHandler
	Invite       *handlers.InviteHandler
}

// initHandlers, tüm handler'ları service ve rate limiter dependency'leri ile oluşturur.
func initHandlers(svcs *Services, limiters *RateLimiters, renderer *views.Renderer) *Handlers {
	return &Handlers{
		Page: handlers.NewPageHandler(
			svcs.Subscription, svcs.Ranking, svcs.Invite, renderer, limiters.Subscribe,
		),
		Subscription: handlers.NewSubscriptionHandler(svcs.Subscription, limiters.Subscribe),
		Ranking:      handlers.NewRankingHandler(svcs.Ranking),
		Invite:       handlers.NewInviteHandler(svcs.Invite),
	}
}
