// Package handlers — RankingHandler: referral ranking JSON API'si.
//
// Route'lar:
//
//	GET /api/ranking → List
package handlers

import (
	"net/http"

	"github.com/akinalp/devstage/models"
	"github.com/akinalp/devstage/pkg"
	"github.com/akinalp/devstage/services"
)

// RankingHandler, ranking endpoint'ini yöneten struct.
type RankingHandler struct {
	rankingService services.RankingService
}

// NewRankingHandler, constructor.
func NewRankingHandler(rankingService services.RankingService) *RankingHandler {
	return &RankingHandler{rankingService: rankingService}
}

// List godoc
// GET /api/ranking
func (h *RankingHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.rankingService.GetRanking(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, models.Ranking{Ranking: entries})
}
