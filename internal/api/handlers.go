package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/db"
	"github.com/rs/zerolog/log"
)

const healthCheckTimeout = 3 * time.Second

type handlers struct {
	db db.DbInterface
}

type healthCheckResponse struct {
	Status string `json:"status"`
}

func (h *handlers) healthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("health check failed")
		writeJSON(w, http.StatusServiceUnavailable, healthCheckResponse{Status: "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, healthCheckResponse{Status: "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}
