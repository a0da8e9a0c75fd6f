package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/AbdelazizSaid250/membership-service/internal/repository"
)

const healthTimeout = 2 * time.Second

// HealthHandler обрабатывает health check
type HealthHandler struct {
	db  repository.Pinger
	log *zap.Logger
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(db repository.Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log.Named("health")}
}

// Check обрабатывает GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("database ping failed", zap.Error(err))
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
