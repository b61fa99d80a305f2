// Package services — SubscriptionService: etkinlik kaydı iş mantığı.
package services

import (
	"context"
	"log"
	"time"

	"github.com/akinalp/devstage/models"
	"github.com/akinalp/devstage/pkg/email"
	"github.com/akinalp/devstage/pkg/eventapi"
	"github.com/akinalp/devstage/pkg/i18n"
)

// welcomeTimeout, hoş geldin email'i için üst süre. Email kaydı bloklamamalı.
const welcomeTimeout = 5 * time.Second

// SubscriptionService, kayıt iş mantığı interface'i.
type SubscriptionService interface {
	// Subscribe, isteği normalize edip doğrular, upstream'e kaydeder ve
	// subscriber ID'yi döner. Validasyon hatası *pkg.ValidationError'dır.
	Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.Subscription, error)
}

type subscriptionService struct {
	api    EventAPI
	mailer email.WelcomeSender
}

// NewSubscriptionService, constructor. mailer nil ise email gönderilmez.
func NewSubscriptionService(api EventAPI, mailer email.WelcomeSender) SubscriptionService {
	if mailer == nil {
		mailer = email.NopSender{}
	}
	return &subscriptionService{api: api, mailer: mailer}
}

// Subscribe, kayıt akışı:
// 1. Normalize + Validate (upstream'e geçersiz istek gitmez)
// 2. POST /subscriptions
// 3. Hoş geldin email'i (başarısızlık sadece loglanır)
func (s *subscriptionService) Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.Subscription, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := s.api.Subscribe(ctx, eventapi.SubscribeInput{
		Name:     req.Name,
		Email:    req.Email,
		Referrer: req.Referrer,
	})
	if err != nil {
		return nil, upstreamError("subscribe", err)
	}

	if req.Referrer != nil {
		log.Printf("[subscription] subscriber %s created (referrer=%s)", id, *req.Referrer)
	} else {
		log.Printf("[subscription] subscriber %s created", id)
	}

	s.sendWelcome(ctx, id, req)

	return &models.Subscription{SubscriberID: id}, nil
}

func (s *subscriptionService) sendWelcome(ctx context.Context, id string, req *models.SubscribeRequest) {
	loc := i18n.FromContext(ctx)
	event := loc.T("app.event")

	// Client bağlantıyı kapatsa bile email gönderimi tamamlansın.
	mailCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), welcomeTimeout)
	defer cancel()

	err := s.mailer.SendWelcome(mailCtx, email.Welcome{
		To:        req.Email,
		Subject:   loc.TWithParams("email.welcomeSubject", map[string]string{"event": event}),
		Heading:   loc.TWithParams("email.welcomeHeading", map[string]string{"name": req.Name}),
		Body:      loc.T("email.welcomeBody"),
		InviteURL: s.api.InviteURL(id),
	})
	if err != nil {
		log.Printf("[subscription] welcome email for %s failed: %v", id, err)
	}
}
