// Package main — Upstream (data access) katmanı başlatma.
//
// Landing server'ın kendi veritabanı yoktur; tüm veri upstream events
// API'de yaşar. initUpstream, bu API'nin client'ını oluşturur —
// service'ler için repository katmanının karşılığıdır.
package main

import (
	"fmt"

	"github.com/akinalp/devstage/config"
	"github.com/akinalp/devstage/pkg/eventapi"
	"github.com/akinalp/devstage/pkg/metrics"
)

// initUpstream, events API client'ını config'e göre oluşturur.
// Her upstream çağrısının süresi Prometheus histogram'ına yazılır.
func initUpstream(cfg *config.Config) (*eventapi.Client, error) {
	client, err := eventapi.New(cfg.EventAPI.URL, cfg.EventAPI.Timeout,
		eventapi.WithObserver(metrics.ObserveUpstream),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create events api client: %w", err)
	}
	return client, nil
}
