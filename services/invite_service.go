// Package services — InviteService: davet sayfası verisi.
//
// Subscriber ID'ler upstream'de UUID olarak üretilir. UUID olmayan ID'ler
// upstream'e hiç gitmeden ErrNotFound ile reddedilir.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/akinalp/devstage/models"
	"github.com/akinalp/devstage/pkg"
)

// InviteService, davet iş mantığı interface'i.
type InviteService interface {
	// ParseSubscriberID, path'ten gelen ID'yi doğrular ve kanonik formda döner.
	ParseSubscriberID(raw string) (string, error)

	// InviteURL, subscriber'ın paylaşacağı davet linki.
	InviteURL(subscriberID string) string

	// GetStats, davet linki ve istatistiklerini döner
	// (tıklama → kayıt sayısı → ranking sırası, bu sırayla okunur).
	GetStats(ctx context.Context, subscriberID string) (*models.InviteStats, error)
}

type inviteService struct {
	api EventAPI
}

// NewInviteService, constructor.
func NewInviteService(api EventAPI) InviteService {
	return &inviteService{api: api}
}

func (s *inviteService) ParseSubscriberID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("subscriber %q: %w", raw, pkg.ErrNotFound)
	}
	return id.String(), nil
}

func (s *inviteService) InviteURL(subscriberID string) string {
	return s.api.InviteURL(subscriberID)
}

func (s *inviteService) GetStats(ctx context.Context, subscriberID string) (*models.InviteStats, error) {
	id, err := s.ParseSubscriberID(subscriberID)
	if err != nil {
		return nil, err
	}

	clicks, err := s.api.InviteClicks(ctx, id)
	if err != nil {
		return nil, upstreamError("invite clicks", err)
	}

	count, err := s.api.InviteCount(ctx, id)
	if err != nil {
		return nil, upstreamError("invite count", err)
	}

	position, err := s.api.RankingPosition(ctx, id)
	if err != nil {
		return nil, upstreamError("ranking position", err)
	}

	return &models.InviteStats{
		SubscriberID:  id,
		InviteURL:     s.api.InviteURL(id),
		Clicks:        clicks,
		Subscriptions: count,
		Position:      position,
	}, nil
}
