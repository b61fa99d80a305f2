// Package services — RankingService: referral ranking okuma.
//
// Ranking upstream'de hesaplanır; bu service sadece okur, sırayı korur ve
// ilk üç sıraya madalya ekler. Aynı liste TTL süresince cache'ten döner.
package services

import (
	"context"
	"slices"

	"github.com/akinalp/devstage/models"
	"github.com/akinalp/devstage/pkg/cache"
	"github.com/akinalp/devstage/pkg/metrics"
)

const rankingCacheKey = "ranking"

// RankingService, ranking iş mantığı interface'i.
type RankingService interface {
	// GetRanking, upstream sırasıyla, pozisyon ve madalya eklenmiş listeyi döner.
	// Boş ranking hata değildir.
	GetRanking(ctx context.Context) ([]models.RankingEntry, error)
}

type rankingService struct {
	api   EventAPI
	cache *cache.TTLCache[string, []models.RankingEntry]
}

// NewRankingService, constructor. c nil ise her çağrı upstream'e gider.
func NewRankingService(api EventAPI, c *cache.TTLCache[string, []models.RankingEntry]) RankingService {
	return &rankingService{api: api, cache: c}
}

func (s *rankingService) GetRanking(ctx context.Context) ([]models.RankingEntry, error) {
	if s.cache == nil {
		return s.load(ctx)
	}

	entries, hit, err := s.cache.GetOrLoad(ctx, rankingCacheKey, s.load)
	if err != nil {
		return nil, err
	}
	metrics.RankingCache(hit)

	// Cache'teki slice paylaşımlı — çağıran tarafın değişiklikleri cache'i bozmasın.
	return slices.Clone(entries), nil
}

func (s *rankingService) load(ctx context.Context) ([]models.RankingEntry, error) {
	raw, err := s.api.Ranking(ctx)
	if err != nil {
		return nil, upstreamError("ranking", err)
	}

	entries := make([]models.RankingEntry, len(raw))
	for i, r := range raw {
		position := i + 1
		entries[i] = models.RankingEntry{
			ID:       r.ID,
			Name:     r.Name,
			Score:    r.Score,
			Position: position,
			Medal:    models.MedalFor(position),
		}
	}
	return entries, nil
}
