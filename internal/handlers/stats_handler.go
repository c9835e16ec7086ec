// internal/handlers/stats_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_drill/internal/service"
	"go_vocab_drill/internal/webutil"
)

type StatsHandler struct {
	service service.StatsService
	logger  *slog.Logger
}

func NewStatsHandler(s service.StatsService, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsHandler{service: s, logger: logger}
}

func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		logger.Error("Error getting stats from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
