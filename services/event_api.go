// Package services — iş mantığı katmanı.
//
// Landing server'ın kendi verisi yoktur; her service upstream events API'yi
// EventAPI interface'i üzerinden çağırır ve upstream hatalarını domain
// error'larına (pkg.Err*) çevirir. Handler'lar sadece domain error'ları görür.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/akinalp/devstage/pkg"
	"github.com/akinalp/devstage/pkg/eventapi"
)

// EventAPI, service'lerin upstream'den ihtiyaç duyduğu işlemler.
// *eventapi.Client bu interface'i karşılar; testlerde fake kullanılır.
type EventAPI interface {
	Subscribe(ctx context.Context, in eventapi.SubscribeInput) (string, error)
	Ranking(ctx context.Context) ([]eventapi.RankingEntry, error)
	InviteClicks(ctx context.Context, subscriberID string) (int, error)
	InviteCount(ctx context.Context, subscriberID string) (int, error)
	RankingPosition(ctx context.Context, subscriberID string) (*int, error)
	InviteURL(subscriberID string) string
}

// upstreamError, eventapi hatasını domain error'ına çevirir.
//
//	404        → pkg.ErrNotFound
//	diğer 4xx  → pkg.ErrBadRequest
//	5xx / ağ   → pkg.ErrUpstream
//
// Orijinal hata mesajı %v ile korunur (log için); chain'de sadece sentinel kalır.
func upstreamError(op string, err error) error {
	switch {
	case eventapi.IsNotFound(err):
		return fmt.Errorf("%s: %w: %v", op, pkg.ErrNotFound, err)
	case eventapi.IsClientError(err):
		return fmt.Errorf("%s: %w: %v", op, pkg.ErrBadRequest, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %v", op, pkg.ErrUpstream, err)
	}
}
