//go:generate mockery --name ItemRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_vocab_drill/internal/middleware"
	"go_vocab_drill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(ctx context.Context, tx *gorm.DB, item *model.VocabularyItem) error
	FindByID(ctx context.Context, db *gorm.DB, itemID uuid.UUID) (*model.VocabularyItem, error)
	List(ctx context.Context, db *gorm.DB, limit, offset int) ([]*model.VocabularyItem, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	CheckHeadwordExists(ctx context.Context, db *gorm.DB, headword string) (bool, error)
	CreateSentence(ctx context.Context, tx *gorm.DB, sentence *model.ExampleSentence) error
	FindSentence(ctx context.Context, db *gorm.DB, itemID, sentenceID uuid.UUID) (*model.ExampleSentence, error)
}

type gormItemRepository struct{}

func NewGormItemRepository() ItemRepository {
	return &gormItemRepository{}
}

func (r *gormItemRepository) Create(ctx context.Context, tx *gorm.DB, item *model.VocabularyItem) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(item)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Warn("Duplicate headword on create item", "headword", item.Headword)
			return model.ErrConflict
		}
		logger.Error("Error creating item in DB",
			"error", result.Error,
			"headword", item.Headword,
		)
		return fmt.Errorf("gormItemRepository.Create: %w", result.Error)
	}
	return nil
}

// FindByID は例文を含めて単語を取得します。
func (r *gormItemRepository) FindByID(ctx context.Context, db *gorm.DB, itemID uuid.UUID) (*model.VocabularyItem, error) {
	logger := middleware.GetLogger(ctx)
	var item model.VocabularyItem
	result := db.WithContext(ctx).
		Preload("Sentences", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("item_id = ?", itemID).
		First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding item by ID in DB",
			"error", result.Error,
			"item_id", itemID.String(),
		)
		return nil, fmt.Errorf("gormItemRepository.FindByID: %w", result.Error)
	}
	return &item, nil
}

// List は出現頻度の降順で単語を返します (例文は含めない)。
func (r *gormItemRepository) List(ctx context.Context, db *gorm.DB, limit, offset int) ([]*model.VocabularyItem, error) {
	logger := middleware.GetLogger(ctx)
	var items []*model.VocabularyItem
	result := db.WithContext(ctx).
		Order("frequency DESC, headword ASC").
		Limit(limit).
		Offset(offset).
		Find(&items)
	if result.Error != nil {
		logger.Error("Error listing items in DB", "error", result.Error)
		return nil, fmt.Errorf("gormItemRepository.List: %w", result.Error)
	}
	return items, nil
}

func (r *gormItemRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.VocabularyItem{}).Count(&count).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error counting items in DB", "error", err)
		return 0, fmt.Errorf("gormItemRepository.Count: %w", err)
	}
	return count, nil
}

func (r *gormItemRepository) CheckHeadwordExists(ctx context.Context, db *gorm.DB, headword string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.VocabularyItem{}).Where("headword = ?", headword).Count(&count)
	if result.Error != nil {
		logger.Error("Error checking headword existence in DB",
			"error", result.Error,
			"headword", headword,
		)
		return false, fmt.Errorf("gormItemRepository.CheckHeadwordExists: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormItemRepository) CreateSentence(ctx context.Context, tx *gorm.DB, sentence *model.ExampleSentence) error {
	if err := tx.WithContext(ctx).Create(sentence).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating sentence in DB",
			"error", err,
			"item_id", sentence.ItemID.String(),
		)
		return fmt.Errorf("gormItemRepository.CreateSentence: %w", err)
	}
	return nil
}

// FindSentence は itemID に属する例文を返します。別の単語の例文なら ErrNotFound です。
func (r *gormItemRepository) FindSentence(ctx context.Context, db *gorm.DB, itemID, sentenceID uuid.UUID) (*model.ExampleSentence, error) {
	var sentence model.ExampleSentence
	result := db.WithContext(ctx).Where("item_id = ? AND sentence_id = ?", itemID, sentenceID).First(&sentence)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding sentence in DB",
			"error", result.Error,
			"item_id", itemID.String(),
			"sentence_id", sentenceID.String(),
		)
		return nil, fmt.Errorf("gormItemRepository.FindSentence: %w", result.Error)
	}
	return &sentence, nil
}
