//go:generate mockery --name ItemService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"

	"go_vocab_drill/internal/middleware"
	"go_vocab_drill/internal/model"
	"go_vocab_drill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemService interface {
	CreateItem(ctx context.Context, req *model.PostItemRequest) (*model.VocabularyItem, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*model.VocabularyItem, error)
	ListItems(ctx context.Context, limit, offset int) ([]*model.VocabularyItem, error)
	AddSentence(ctx context.Context, itemID uuid.UUID, req *model.PostSentenceRequest) (*model.ExampleSentence, error)
}

type itemService struct {
	db       *gorm.DB
	itemRepo repository.ItemRepository
}

func NewItemService(db *gorm.DB, itemRepo repository.ItemRepository) ItemService {
	return &itemService{
		db:       db,
		itemRepo: itemRepo,
	}
}

func (s *itemService) CreateItem(ctx context.Context, req *model.PostItemRequest) (*model.VocabularyItem, error) {
	headword := strings.TrimSpace(req.Headword)
	logger := middleware.GetLogger(ctx).With("headword", headword)
	if headword == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "見出し語は必須項目です。", "headword", model.ErrInvalidInput)
	}

	var created *model.VocabularyItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.itemRepo.CheckHeadwordExists(ctx, tx, headword)
		if err != nil {
			return err
		}
		if exists {
			return conflictError("DUPLICATE_HEADWORD", "この見出し語は既に登録されています。")
		}

		item := &model.VocabularyItem{
			ItemID:       uuid.New(),
			Headword:     headword,
			Meaning:      strings.TrimSpace(req.Meaning),
			PartOfSpeech: req.PartOfSpeech,
			Frequency:    req.Frequency,
		}
		if err := s.itemRepo.Create(ctx, tx, item); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return conflictError("DUPLICATE_HEADWORD", "この見出し語は既に登録されています。")
			}
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		logger.Warn("Failed to create item", "error", err)
		return nil, passThrough("単語の登録に失敗しました。", err)
	}

	logger.Info("Item created", "item_id", created.ItemID.String())
	return created, nil
}

func (s *itemService) GetItem(ctx context.Context, itemID uuid.UUID) (*model.VocabularyItem, error) {
	item, err := s.itemRepo.FindByID(ctx, s.db, itemID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, notFoundError("指定された単語が見つかりません。", "item_id")
		}
		return nil, dependencyError("単語の取得に失敗しました。", err)
	}
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context, limit, offset int) ([]*model.VocabularyItem, error) {
	if limit <= 0 || offset < 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "limit と offset の値が正しくありません。", "limit", model.ErrInvalidInput)
	}
	items, err := s.itemRepo.List(ctx, s.db, limit, offset)
	if err != nil {
		return nil, dependencyError("単語一覧の取得に失敗しました。", err)
	}
	return items, nil
}

// AddSentence は既存の単語に例文を追加します。追加された例文は新出ペアとして出題対象になります。
func (s *itemService) AddSentence(ctx context.Context, itemID uuid.UUID, req *model.PostSentenceRequest) (*model.ExampleSentence, error) {
	logger := middleware.GetLogger(ctx).With("item_id", itemID.String())
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "例文は必須項目です。", "text", model.ErrInvalidInput)
	}

	var created *model.ExampleSentence
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.itemRepo.FindByID(ctx, tx, itemID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return notFoundError("指定された単語が見つかりません。", "item_id")
			}
			return err
		}
		sentence := &model.ExampleSentence{
			SentenceID:  uuid.New(),
			ItemID:      itemID,
			Text:        text,
			Translation: strings.TrimSpace(req.Translation),
			Year:        req.Year,
			Section:     req.Section,
			Label:       req.Label,
		}
		if err := s.itemRepo.CreateSentence(ctx, tx, sentence); err != nil {
			return err
		}
		created = sentence
		return nil
	})
	if err != nil {
		logger.Warn("Failed to add sentence", "error", err)
		return nil, passThrough("例文の登録に失敗しました。", err)
	}

	logger.Info("Sentence added", "sentence_id", created.SentenceID.String())
	return created, nil
}
