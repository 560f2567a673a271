package main

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// pinger — зависимость readiness-пробы (хранилище).
type pinger interface {
	Ping(ctx context.Context) error
}

// readinessHandler отвечает 200, только если сервис запущен и БД доступна.
func readinessHandler(ready *atomic.Bool, db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !ready.Load() {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

// revocationCollector удаляет из журнала отзыва записи с истёкшим сроком.
type revocationCollector interface {
	CollectExpiredRevocations(ctx context.Context) (int64, error)
}

// runBlocklistJanitor периодически чистит журнал отзыва до отмены ctx.
// period <= 0 отключает очистку.
func runBlocklistJanitor(ctx context.Context, c revocationCollector, log *slog.Logger, period time.Duration) {
	if period <= 0 {
		return
	}

	t := time.NewTicker(period)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := c.CollectExpiredRevocations(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Error("blocklist_janitor_failed", slog.String("err", err.Error()))
				continue
			}
			if n > 0 {
				log.Debug("blocklist_janitor_collected", slog.Int64("deleted", n))
			}
		}
	}
}
