// Package handlers, HTTP endpoint'lerini barındırır.
//
// Thin handler prensibi: Parse → Service → Response.
// HTML sayfaları views.Renderer ile, JSON API pkg.JSON/pkg.Error ile yanıt verir.
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/akinalp/devstage/pkg"
	"github.com/akinalp/devstage/pkg/i18n"
	"github.com/akinalp/devstage/pkg/ratelimit"
)

// referrerParam, ?referrer= query parametresini döner; yoksa nil.
func referrerParam(r *http.Request) *string {
	ref := r.URL.Query().Get("referrer")
	if ref == "" {
		return nil
	}
	return &ref
}

// translateFields, i18n anahtarlı alan hatalarını kullanıcının diline çevirir.
func translateFields(loc *i18n.Localizer, fields pkg.FieldErrors) map[string]string {
	out := make(map[string]string, len(fields))
	for field, key := range fields {
		out[field] = loc.T(key)
	}
	return out
}

// allowSubscribe, rate limit kontrolü yapar. Limit aşıldıysa Retry-After
// header'ını yazar, kalan süreyi ve pkg.ErrTooManyRequests döner.
func allowSubscribe(limiter *ratelimit.Limiter, w http.ResponseWriter, r *http.Request) (retryAfter int, err error) {
	if limiter == nil {
		return 0, nil
	}

	ip := limiter.ClientIP(r)
	if limiter.Allow(ip) {
		return 0, nil
	}

	retryAfter = limiter.RetryAfterSeconds(ip)
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	return retryAfter, fmt.Errorf("subscribe from %s: %w", ip, pkg.ErrTooManyRequests)
}

// errorMessageKey, domain error'ı kullanıcıya gösterilecek i18n anahtarına eşler.
func errorMessageKey(err error) string {
	switch {
	case errors.Is(err, pkg.ErrNotFound):
		return "errors.notFound"
	case errors.Is(err, pkg.ErrBadRequest):
		return "errors.badRequest"
	case errors.Is(err, pkg.ErrTooManyRequests):
		return "errors.tooManyRequests"
	case errors.Is(err, pkg.ErrUpstream):
		return "errors.upstream"
	default:
		return "errors.internal"
	}
}
