// Package ops runs the operational sidecar: health and metrics endpoints
// for whoever supervises the dashboard process. It carries no business
// routes; the storefront API owns those.
package ops

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/danghq/shopdesk/config"
	"github.com/danghq/shopdesk/pkg/cache"
	"github.com/danghq/shopdesk/pkg/logger"
	"github.com/danghq/shopdesk/pkg/metrics"
	"github.com/danghq/shopdesk/pkg/storage"
)

var bootOnce sync.Once

// Boot loads config and connects the ambient services (log sink, storage
// disks, cache). Idempotent; failures past config degrade to no-ops and
// are logged.
func Boot() error {
	if err := config.Load(); err != nil {
		return err
	}

	bootOnce.Do(func() {
		logger.Connect()
		storage.Connect()
		if err := cache.Connect(); err != nil {
			logger.Warn("ops: cache unavailable", "error", err)
		}
	})
	return nil
}

// Router builds the ops router. Split out so tests can drive it without
// binding a port.
func Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}

// Start boots the ambient services and serves the ops endpoints until the
// process exits.
func Start() error {
	if err := Boot(); err != nil {
		return err
	}

	addr := config.OpsAddr()
	logger.Info("ops server listening", "addr", addr)
	return http.ListenAndServe(addr, Router())
}
