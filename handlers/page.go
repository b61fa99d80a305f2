// Package handlers — PageHandler: server-rendered landing page akışı.
//
// Route'lar:
//
//	GET  /                         → Home (kayıt formu)
//	POST /subscribe                → Subscribe (form post → 303 /invite/{id})
//	GET  /invite/{subscriberId}    → Invite (davet linki, istatistik, ranking)
package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/csrf"

	"github.com/akinalp/devstage/models"
	"github.com/akinalp/devstage/pkg"
	"github.com/akinalp/devstage/pkg/i18n"
	"github.com/akinalp/devstage/pkg/metrics"
	"github.com/akinalp/devstage/pkg/ratelimit"
	"github.com/akinalp/devstage/services"
	"github.com/akinalp/devstage/views"
)

// PageHandler, HTML sayfalarını yöneten struct.
type PageHandler struct {
	subscriptionService services.SubscriptionService
	rankingService      services.RankingService
	inviteService       services.InviteService
	renderer            *views.Renderer
	limiter             *ratelimit.Limiter
}

// NewPageHandler, constructor. limiter nil ise rate limit uygulanmaz.
func NewPageHandler(
	subscriptionService services.SubscriptionService,
	rankingService services.RankingService,
	inviteService services.InviteService,
	renderer *views.Renderer,
	limiter *ratelimit.Limiter,
) *PageHandler {
	return &PageHandler{
		subscriptionService: subscriptionService,
		rankingService:      rankingService,
		inviteService:       inviteService,
		renderer:            renderer,
		limiter:             limiter,
	}
}

// Home godoc
// GET /?referrer={subscriberId}
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, views.PageHome, h.homeData(r))
}

// Subscribe godoc
// POST /subscribe?referrer={subscriberId}
// Body (form): name, email
//
// Validasyon hatasında form girilen değerlerle ve alan mesajlarıyla tekrar
// render edilir (422). Başarıda tarayıcı davet sayfasına yönlendirilir; 303
// sayesinde yenileme formu tekrar göndermez.
func (h *PageHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, pkg.ErrBadRequest)
		return
	}

	data := h.homeData(r)
	data.Name = r.PostForm.Get("name")
	data.Email = r.PostForm.Get("email")

	req := &models.SubscribeRequest{
		Name:     data.Name,
		Email:    data.Email,
		Referrer: referrerParam(r),
	}

	// Hatalı giriş rate limit kotasını tüketmesin — önce validasyon.
	req.Normalize()
	if err := req.Validate(); err != nil {
		h.renderInvalid(w, loc, data, err)
		return
	}

	if retryAfter, err := allowSubscribe(h.limiter, w, r); err != nil {
		metrics.Subscription(metrics.OutcomeRateLimited)
		log.Printf("[subscription] %v", err)
		data.FormError = loc.TWithParams("subscription.rateLimited", map[string]string{
			"retry": ratelimit.FormatRetry(retryAfter),
		})
		h.renderer.Render(w, pkg.StatusFor(err), views.PageHome, data)
		return
	}

	sub, err := h.subscriptionService.Subscribe(r.Context(), req)
	if err != nil {
		if _, ok := pkg.AsValidationError(err); ok {
			h.renderInvalid(w, loc, data, err)
			return
		}

		metrics.Subscription(metrics.OutcomeFailed)
		log.Printf("[subscription] subscribe failed: %v", err)
		data.FormError = loc.T("subscription.failed")
		h.renderer.Render(w, pkg.StatusFor(err), views.PageHome, data)
		return
	}

	metrics.Subscription(metrics.OutcomeCreated)
	http.Redirect(w, r, invitePath(sub.SubscriberID, r), http.StatusSeeOther)
}

// Invite godoc
// GET /invite/{subscriberId}
//
// Geçersiz ID → 404. İstatistik veya ranking alınamazsa sayfa yine render
// edilir, ilgili bölümde "şu an kullanılamıyor" mesajı gösterilir.
func (h *PageHandler) Invite(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())

	id, err := h.inviteService.ParseSubscriberID(r.PathValue("subscriberId"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := views.InviteData{
		Page:      h.page(r),
		InviteURL: h.inviteService.InviteURL(id),
	}

	stats, err := h.inviteService.GetStats(r.Context(), id)
	switch {
	case errors.Is(err, pkg.ErrNotFound):
		h.renderError(w, r, err)
		return
	case err != nil:
		log.Printf("[invite] stats for %s unavailable: %v", id, err)
		data.StatsError = loc.T("invite.statsUnavailable")
	default:
		data.Stats = stats
	}

	ranking, err := h.rankingService.GetRanking(r.Context())
	if err != nil {
		log.Printf("[invite] ranking unavailable: %v", err)
		data.RankingError = loc.T("ranking.unavailable")
	} else {
		data.Ranking = ranking
	}

	h.renderer.Render(w, http.StatusOK, views.PageInvite, data)
}

// NotFound, eşleşmeyen tüm path'ler için 404 sayfası.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, pkg.ErrNotFound)
}

// CSRFFailure, gorilla/csrf doğrulaması başarısız olduğunda çağrılır.
func (h *PageHandler) CSRFFailure(w http.ResponseWriter, r *http.Request) {
	log.Printf("[csrf] rejected %s %s: %v", r.Method, r.URL.Path, csrf.FailureReason(r))

	loc := i18n.FromContext(r.Context())
	h.renderer.Render(w, http.StatusForbidden, views.PageError, views.ErrorData{
		Page:    h.page(r),
		Status:  http.StatusForbidden,
		Message: loc.T("errors.badRequest"),
	})
}

func (h *PageHandler) renderInvalid(w http.ResponseWriter, loc *i18n.Localizer, data views.HomeData, err error) {
	metrics.Subscription(metrics.OutcomeInvalid)

	if verr, ok := pkg.AsValidationError(err); ok {
		data.Errors = translateFields(loc, verr.Fields)
	}
	h.renderer.Render(w, http.StatusUnprocessableEntity, views.PageHome, data)
}

func (h *PageHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	loc := i18n.FromContext(r.Context())
	status := pkg.StatusFor(err)

	h.renderer.Render(w, status, views.PageError, views.ErrorData{
		Page:    h.page(r),
		Status:  status,
		Message: loc.T(errorMessageKey(err)),
	})
}

func (h *PageHandler) page(r *http.Request) views.Page {
	return views.Page{
		Loc:       i18n.FromContext(r.Context()),
		CSRFField: csrf.TemplateField(r),
	}
}

func (h *PageHandler) homeData(r *http.Request) views.HomeData {
	return views.HomeData{
		Page:   h.page(r),
		Action: "/subscribe" + carryQuery(r),
	}
}

// invitePath, kayıt sonrası yönlendirme adresi. Dil seçimi korunur.
func invitePath(subscriberID string, r *http.Request) string {
	path := "/invite/" + url.PathEscape(subscriberID)
	if lang := r.URL.Query().Get("lang"); lang != "" {
		path += "?" + url.Values{"lang": {lang}}.Encode()
	}
	return path
}

// carryQuery, landing page'den form action'a taşınacak query parametreleri
// (referrer, lang). Yoksa boş string.
func carryQuery(r *http.Request) string {
	q := url.Values{}
	for _, key := range []string{"referrer", "lang"} {
		if v := r.URL.Query().Get(key); v != "" {
			q.Set(key, v)
		}
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
