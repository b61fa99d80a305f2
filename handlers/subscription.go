// Package handlers — SubscriptionHandler: kayıt JSON API'si.
//
// Route'lar:
//
//	POST /api/subscriptions → Create
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/akinalp/devstage/models"
	"github.com/akinalp/devstage/pkg"
	"github.com/akinalp/devstage/pkg/i18n"
	"github.com/akinalp/devstage/pkg/metrics"
	"github.com/akinalp/devstage/pkg/ratelimit"
	"github.com/akinalp/devstage/services"
)

// maxBodyBytes, kayıt isteği gövdesi için üst sınır.
const maxBodyBytes = 64 << 10

// SubscriptionHandler, kayıt endpoint'lerini yöneten struct.
type SubscriptionHandler struct {
	subscriptionService services.SubscriptionService
	limiter             *ratelimit.Limiter
}

// NewSubscriptionHandler, constructor.
func NewSubscriptionHandler(subscriptionService services.SubscriptionService, limiter *ratelimit.Limiter) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService, limiter: limiter}
}

// Create godoc
// POST /api/subscriptions?referrer={subscriberId}
// Body: { "name": "Diego", "email": "diego@example.com", "referrer": "..." }
//
// Referrer gövdede yoksa query parametresinden okunur.
func (h *SubscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	var req models.SubscribeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Referrer == nil {
		req.Referrer = referrerParam(r)
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		h.writeInvalid(w, loc, err)
		return
	}

	if retryAfter, err := allowSubscribe(h.limiter, w, r); err != nil {
		metrics.Subscription(metrics.OutcomeRateLimited)
		log.Printf("[subscription] %v", err)
		pkg.ErrorWithMessage(w, pkg.StatusFor(err),
			loc.TWithParams("subscription.rateLimited", map[string]string{
				"retry": ratelimit.FormatRetry(retryAfter),
			}))
		return
	}

	sub, err := h.subscriptionService.Subscribe(r.Context(), &req)
	if err != nil {
		if _, ok := pkg.AsValidationError(err); ok {
			h.writeInvalid(w, loc, err)
			return
		}
		metrics.Subscription(metrics.OutcomeFailed)
		log.Printf("[subscription] subscribe failed: %v", err)
		pkg.Error(w, err)
		return
	}

	metrics.Subscription(metrics.OutcomeCreated)
	pkg.JSON(w, http.StatusCreated, sub)
}

func (h *SubscriptionHandler) writeInvalid(w http.ResponseWriter, loc *i18n.Localizer, err error) {
	metrics.Subscription(metrics.OutcomeInvalid)

	var fields map[string]string
	if verr, ok := pkg.AsValidationError(err); ok {
		fields = translateFields(loc, verr.Fields)
	}
	pkg.ValidationErrorResponse(w, loc.T("subscription.invalid"), fields)
}
