// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
package config

import (
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct — her struct tek bir concern'ü temsil eder.
type Config struct {
	Server    ServerConfig
	EventAPI  EventAPIConfig
	Ranking   RankingConfig
	RateLimit RateLimitConfig
	CSRF      CSRFConfig
	CORS      CORSConfig
	Email     EmailConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// EventAPIConfig, upstream events API ayarları.
type EventAPIConfig struct {
	URL     string        // ör: http://localhost:3333
	Timeout time.Duration // tek HTTP denemesi için
}

// RankingConfig, ranking cache ayarları.
type RankingConfig struct {
	CacheTTL time.Duration // 0 = cache kapalı
}

// RateLimitConfig, kayıt formu rate limit ayarları.
type RateLimitConfig struct {
	SubscribeLimit  int // pencere başına kayıt; 0 = kapalı
	SubscribeWindow time.Duration
	TrustProxy      bool // X-Forwarded-For'a güven — sadece reverse proxy arkasında
}

// CSRFConfig, form CSRF koruması.
type CSRFConfig struct {
	Key    []byte // 32 byte; boşsa main.go başlangıçta rastgele üretir
	Secure bool   // cookie Secure flag'i — HTTPS arkasında true olmalı
}

// CORSConfig, /api/* için izin verilen origin'ler.
type CORSConfig struct {
	AllowedOrigins []string
}

// EmailConfig, hoş geldin email'i (Resend). APIKey boşsa email gönderilmez.
type EmailConfig struct {
	ResendAPIKey string
	From         string
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
func Load() (*Config, error) {
	// .env yoksa hata vermez — production'da gerçek env variable'lar kullanılır.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	apiURL := getEnv("API_URL", "")
	if apiURL == "" {
		return nil, fmt.Errorf("API_URL environment variable is required")
	}
	if u, err := url.Parse(apiURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid API_URL %q: must be an absolute http(s) url", apiURL)
	}

	apiTimeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("RANKING_CACHE_TTL", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RANKING_CACHE_TTL: %w", err)
	}

	limit, err := strconv.Atoi(getEnv("SUBSCRIBE_RATE_LIMIT", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid SUBSCRIBE_RATE_LIMIT: %w", err)
	}

	window, err := time.ParseDuration(getEnv("SUBSCRIBE_RATE_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SUBSCRIBE_RATE_WINDOW: %w", err)
	}

	trustProxy, err := strconv.ParseBool(getEnv("TRUST_PROXY_HEADERS", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRUST_PROXY_HEADERS: %w", err)
	}

	var csrfKey []byte
	if raw := getEnv("CSRF_KEY", ""); raw != "" {
		csrfKey, err = hex.DecodeString(raw)
		if err != nil || len(csrfKey) != 32 {
			return nil, fmt.Errorf("invalid CSRF_KEY: must be 64 hex characters (32 bytes)")
		}
	}

	csrfSecure, err := strconv.ParseBool(getEnv("CSRF_SECURE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid CSRF_SECURE: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		EventAPI: EventAPIConfig{
			URL:     apiURL,
			Timeout: apiTimeout,
		},
		Ranking: RankingConfig{
			CacheTTL: cacheTTL,
		},
		RateLimit: RateLimitConfig{
			SubscribeLimit:  limit,
			SubscribeWindow: window,
			TrustProxy:      trustProxy,
		},
		CSRF: CSRFConfig{
			Key:    csrfKey,
			Secure: csrfSecure,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("EMAIL_FROM", "noreply@devstage.app"),
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:3000").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// splitList, virgülle ayrılmış listeyi böler; boş elemanları atar.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
