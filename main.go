// Package main, devstage landing server'ının giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//  1. Config'i yükle
//  2. i18n çevirilerini yükle
//  3. Upstream events API client'ını oluştur
//  4. Service'leri ve rate limiter'ları oluştur
//  5. Şablonları parse et, handler'ları oluştur
//  6. HTTP router'ı kur, route'ları bağla (CSRF, CORS, logging, dil)
//  7. HTTP Server'ı başlat
//  8. Graceful shutdown
//
// Global değişken YOK — her şey bu fonksiyonda oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akinalp/devstage/config"
	"github.com/akinalp/devstage/pkg/i18n"
	"github.com/akinalp/devstage/views"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] devstage server starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (port=%d, api=%s)", cfg.Server.Port, cfg.EventAPI.URL)

	// CSRF_KEY verilmediyse her başlangıçta rastgele üretilir.
	// Restart sonrası açık formların token'ı geçersiz olur; production'da sabit key verin.
	if len(cfg.CSRF.Key) == 0 {
		cfg.CSRF.Key = make([]byte, 32)
		if _, err := rand.Read(cfg.CSRF.Key); err != nil {
			log.Fatalf("[main] failed to generate csrf key: %v", err)
		}
		log.Println("[main] CSRF_KEY not set, using a random key for this process")
	}

	// ─── 2. i18n (Çoklu Dil Desteği) ───
	if err := i18n.Load(i18n.Locales()); err != nil {
		log.Fatalf("[main] failed to load i18n translations: %v", err)
	}

	// ─── 3. Upstream ───
	api, err := initUpstream(cfg)
	if err != nil {
		log.Fatalf("[main] %v", err)
	}

	// ─── 4. Service Layer ───
	svcs := initServices(api, cfg)
	defer svcs.Close()

	limiters := initRateLimiters(cfg)
	defer limiters.Close()

	// ─── 5. Views + Handlers ───
	renderer, err := views.New()
	if err != nil {
		log.Fatalf("[main] failed to parse templates: %v", err)
	}

	h := initHandlers(svcs, limiters, renderer)

	// ─── 6. Router ───
	handler := initRoutes(http.NewServeMux(), h, cfg)

	// ─── 7. HTTP Server ───
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[main] server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	// ─── 8. Graceful Shutdown ───
	<-done
	log.Println("[main] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[main] forced shutdown: %v", err)
		return
	}

	log.Println("[main] server stopped gracefully")
}
