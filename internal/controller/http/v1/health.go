package v1

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const healthCheckTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	log    *slog.Logger
	pinger Pinger
}

func NewHealthHandler(log *slog.Logger, pinger Pinger) *HealthHandler {
	return &HealthHandler{
		log:    log,
		pinger: pinger,
	}
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.log.WarnContext(ctx, "health check failed", slog.String("err", err.Error()))
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "DOWN", Timestamp: time.Now().UTC()})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "UP", Timestamp: time.Now().UTC()})
}
