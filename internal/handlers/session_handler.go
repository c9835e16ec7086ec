// internal/handlers/session_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_drill/internal/model"
	"go_vocab_drill/internal/service"
	"go_vocab_drill/internal/webutil"
)

type SessionHandler struct {
	service service.SessionService
	logger  *slog.Logger
}

func NewSessionHandler(s service.SessionService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{
		service: s,
		logger:  logger,
	}
}

// GetSession は今日の学習セッションを返します。?goal= を省略すると設定の既定値を使います。
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSession"))

	goal, err := webutil.ParseIntQuery(r, "goal", 0)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if r.URL.Query().Has("goal") && goal <= 0 {
		webutil.HandleError(w, logger,
			model.NewAppError("VALIDATION_ERROR", "goalは1以上で指定してください。", "goal", model.ErrInvalidInput))
		return
	}

	plan, err := h.service.GetDailySession(r.Context(), goal)
	if err != nil {
		logger.Error("Error composing session in service", slog.Any("error", err), slog.Int("goal", goal))
		webutil.HandleError(w, logger, err)
		return
	}

	if plan.Pairs == nil {
		plan.Pairs = []model.SessionPair{}
	}
	logger.Info("Session returned",
		slog.String("status", string(plan.Status)),
		slog.Int("pairs", len(plan.Pairs)),
	)
	webutil.RespondWithJSON(w, http.StatusOK, plan, logger)
}
