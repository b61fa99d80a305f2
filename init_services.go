// Package main — Service katmanı başlatma.
//
// initServices, service implementasyonlarını oluşturur.
// Her service upstream client'ı (EventAPI interface'i) ve diğer
// dependency'leri constructor injection ile alır.
package main

import (
	"log"
	"time"

	"github.com/akinalp/devstage/config"
	"github.com/akinalp/devstage/models"
	"github.com/akinalp/devstage/pkg/cache"
	"github.com/akinalp/devstage/pkg/email"
	"github.com/akinalp/devstage/pkg/ratelimit"
	"github.com/akinalp/devstage/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Subscription services.SubscriptionService
	Ranking      services.RankingService
	Invite       services.InviteService

	rankingCache *cache.TTLCache[string, []models.RankingEntry]
}

// Close, service'lerin arka plan goroutine'lerini durdurur.
func (s *Services) Close() {
	if s.rankingCache != nil {
		s.rankingCache.Close()
	}
}

// RateLimiters, tüm rate limiter instance'larını tutan container.
type RateLimiters struct {
	Subscribe *ratelimit.Limiter
}

// Close, limiter temizleme goroutine'lerini durdurur.
func (l *RateLimiters) Close() {
	l.Subscribe.Close()
}

// initServices, tüm service'leri oluşturur.
//
// RANKING_CACHE_TTL=0 ise ranking her istekte upstream'den okunur.
func initServices(api services.EventAPI, cfg *config.Config) *Services {
	var rankingCache *cache.TTLCache[string, []models.RankingEntry]
	if cfg.Ranking.CacheTTL > 0 {
		rankingCache = cache.New[string, []models.RankingEntry](cfg.Ranking.CacheTTL, time.Minute)
	}

	return &Services{
		Subscription: services.NewSubscriptionService(api, initMailer(cfg)),
		Ranking:      services.NewRankingService(api, rankingCache),
		Invite:       services.NewInviteService(api),
		rankingCache: rankingCache,
	}
}

// initMailer, RESEND_API_KEY varsa Resend sender'ı, yoksa no-op sender döner.
func initMailer(cfg *config.Config) email.WelcomeSender {
	if cfg.Email.ResendAPIKey == "" {
		log.Println("[main] email service disabled (RESEND_API_KEY not set)")
		return email.NopSender{}
	}
	log.Printf("[main] email service enabled (from=%s)", cfg.Email.From)
	return email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.From, "devstage")
}

// initRateLimiters, kayıt akışının rate limiter'ını oluşturur.
// HTML form ve JSON API aynı limiter'ı paylaşır — aynı IP iki yoldan
// kotayı ikiye katlayamaz.
func initRateLimiters(cfg *config.Config) *RateLimiters {
	return &RateLimiters{
		Subscribe: ratelimit.New(
			cfg.RateLimit.SubscribeLimit, cfg.RateLimit.SubscribeWindow, cfg.RateLimit.TrustProxy,
		),
	}
}
