// internal/handlers/item_handler.go
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

// 単語一覧のページング既定値
const (
	defaultListLimit = 50
	maxListLimit     = 500
)

type ItemHandler struct {
	service service.ItemService
	logger  *slog.Logger
}

func NewItemHandler(s service.ItemService, logger *slog.Logger) *ItemHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ItemHandler{
		service: s,
		logger:  logger,
	}
}

// PostItem は単語を登録します。
func (h *ItemHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostItem"))

	var req model.PostItemRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid item request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	item, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		logger.Warn("Error creating item in service", slog.Any("error", err), slog.String("headword", req.Headword))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Item created successfully", slog.String("item_id", item.ItemID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, item, logger)
}

// GetItems は単語を出現頻度の降順で返します (?limit=&offset=)。
func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetItems"))

	limit, err := webutil.ParseIntQuery(r, "limit", defaultListLimit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	offset, err := webutil.ParseIntQuery(r, "offset", 0)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	items, err := h.service.ListItems(r.Context(), limit, offset)
	if err != nil {
		logger.Error("Error listing items in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if items == nil {
		items = []*model.VocabularyItem{}
	}
	logger.Info("Items listed successfully", slog.Int("count", len(items)))
	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

// GetItem は例文を含めて単語を返します。
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetItem"))

	itemID, err := webutil.ParseUUIDParam(chi.URLParam(r, "item_id"), "item_id")
	if err != nil {
		logger.Warn("Invalid item ID format in URL", slog.String("item_id", chi.URLParam(r, "item_id")))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("item_id", itemID.String()))

	item, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Item not found in service")
		} else {
			logger.Error("Error getting item from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, item, logger)
}

// PostSentence は単語に例文を追加します。
func (h *ItemHandler) PostSentence(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSentence"))

	itemID, err := webutil.ParseUUIDParam(chi.URLParam(r, "item_id"), "item_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("item_id", itemID.String()))

	var req model.PostSentenceRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid sentence request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	sentence, err := h.service.AddSentence(r.Context(), itemID, &req)
	if err != nil {
		logger.Warn("Error adding sentence in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Sentence added successfully", slog.String("sentence_id", sentence.SentenceID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, sentence, logger)
}
