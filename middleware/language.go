package middleware

import (
	"net/http"

	"github.com/akinalp/devstage/pkg/i18n"
)

// Language, isteğin dilini belirler ve Localizer'ı context'e koyar.
//
// Öncelik: ?lang= query parametresi → Accept-Language → varsayılan (pt).
// Handler'lar ve service'ler i18n.FromContext(ctx) ile erişir.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := r.URL.Query().Get("lang")
		if lang == "" {
			lang = i18n.DetectLanguage(r.Header.Get("Accept-Language"))
		}

		loc := i18n.NewLocalizer(lang)
		w.Header().Set("Content-Language", loc.Lang())

		next.ServeHTTP(w, r.WithContext(i18n.NewContext(r.Context(), loc)))
	})
}
