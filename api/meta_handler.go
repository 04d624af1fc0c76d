package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rpupo63/editorial-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type metaHandler struct {
	responder   Responder
	logger      zerolog.Logger
	store       database.Storage
	startupTime time.Time
}

func newMetaHandler(store database.Storage, startupTime time.Time) metaHandler {
	logger := log.With().Str("handlerName", "metaHandler").Logger()

	return metaHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		store:       store,
		startupTime: startupTime,
	}
}

type healthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
	Uptime string `json:"uptime"`
}

// health reports liveness and database reachability
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /api/health [get]
func (h metaHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		resp := healthResponse{
			Status: "ok",
			Time:   now.Format(time.RFC3339),
			Uptime: now.Sub(h.startupTime).Round(time.Second).String(),
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			h.logger.Error().Err(err).Msg("database ping failed")
			resp.Status = "unavailable"
			h.responder.WriteJSON(w, http.StatusServiceUnavailable, resp)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, resp)
	}
}

// hello is a connectivity check for the frontend
// @Router /api/hello [get]
func (h metaHandler) hello() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, map[string]string{"message": "Hello from API"})
	}
}
