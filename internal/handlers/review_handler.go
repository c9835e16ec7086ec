// internal/handlers/review_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_vocab_drill/internal/model"
	"go_vocab_drill/internal/service"
	"go_vocab_drill/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		logger:  logger,
	}
}

// PutReviewResult は (単語, 例文) ペアの採点結果を記録し、更新後のレコードを返します。
func (h *ReviewHandler) PutReviewResult(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutReviewResult"))

	itemID, err := webutil.ParseUUIDParam(chi.URLParam(r, "item_id"), "item_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	sentenceID, err := webutil.ParseUUIDParam(chi.URLParam(r, "sentence_id"), "sentence_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(
		slog.String("item_id", itemID.String()),
		slog.String("sentence_id", sentenceID.String()),
	)

	var req model.SubmitReviewRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid review request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	record, err := h.service.SubmitReview(r.Context(), itemID, sentenceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrConflict):
			logger.Info("Review not recorded", slog.Any("error", err))
		default:
			logger.Error("Error submitting review in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review result recorded", slog.Int("interval", record.Interval), slog.Bool("is_mistake", record.IsMistake))
	webutil.RespondWithJSON(w, http.StatusOK, record, logger)
}
