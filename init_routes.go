// Package main — HTTP route registration.
//
// initRoutes, tüm endpoint'leri mux'a bağlar ve global middleware zincirini kurar.
// Middleware chain helper'ları burada tanımlıdır:
//   - page: CSRF korumalı HTML sayfaları
//   - api: CORS açık JSON endpoint'leri
package main

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/akinalp/devstage/config"
	"github.com/akinalp/devstage/handlers"
	"github.com/akinalp/devstage/middleware"
	"github.com/akinalp/devstage/static"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
// Dönen handler server'a doğrudan verilir.
func initRoutes(mux *http.ServeMux, h *Handlers, cfg *config.Config) http.Handler {
	// ─── Middleware ───
	csrfMw := csrf.Protect(cfg.CSRF.Key,
		csrf.Secure(cfg.CSRF.Secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(h.Page.CSRFFailure)),
	)
	corsMw := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Retry-After"},
	})

	// ─── Middleware Chain Helpers ───
	page := func(handler http.HandlerFunc) http.Handler {
		protected := csrfMw(handler)
		if cfg.CSRF.Secure {
			return protected
		}
		// HTTPS yokken gorilla/csrf'in Referer kontrolü her POST'u reddeder.
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
	api := func(handler http.HandlerFunc) http.Handler {
		return corsMw.Handler(handler)
	}

	// ╔══════════════════════════════════════════╗
	// ║  HTML SAYFALARI                          ║
	// ╚══════════════════════════════════════════╝

	mux.Handle("GET /{$}", page(h.Page.Home))
	mux.Handle("POST /subscribe", page(h.Page.Subscribe))
	mux.Handle("GET /invite/{subscriberId}", page(h.Page.Invite))

	mux.Handle("GET /static/", static.Handler("/static/"))

	// ╔══════════════════════════════════════════╗
	// ║  JSON API                                ║
	// ╚══════════════════════════════════════════╝

	mux.Handle("POST /api/subscriptions", api(h.Subscription.Create))
	mux.Handle("GET /api/ranking", api(h.Ranking.List))
	mux.Handle("GET /api/subscribers/{subscriberId}/stats", api(h.Invite.Stats))
	mux.Handle("GET /api/health", api(handlers.Health))
	// CORS preflight'ları corsMw cevaplar; Origin'siz OPTIONS 204 alır.
	mux.Handle("OPTIONS /api/", api(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	// ─── Ops ───
	mux.Handle("GET /metrics", promhttp.Handler())

	// Eşleşmeyen her şey HTML 404 sayfası.
	mux.HandleFunc("/", h.Page.NotFound)

	return middleware.RequestLogger(middleware.Language(mux))
}
