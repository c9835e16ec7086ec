//go:generate mockery --name RecordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_vocab_drill/internal/middleware"
	"go_vocab_drill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecordRepository interface {
	FindByPair(ctx context.Context, db *gorm.DB, itemID, sentenceID uuid.UUID) (*model.ReviewRecord, error)
	Create(ctx context.Context, tx *gorm.DB, record *model.ReviewRecord) error
	// Update は record.Version が expectedVersion と一致する場合のみ更新し、Version を1つ進めます。
	Update(ctx context.Context, tx *gorm.DB, record *model.ReviewRecord, expectedVersion int) error
	CountMistakes(ctx context.Context, db *gorm.DB) (int64, error)
	ListMistakes(ctx context.Context, db *gorm.DB, limit int) ([]model.SessionPair, error)
	ListDue(ctx context.Context, db *gorm.DB, dueBefore time.Time, limit int) ([]model.SessionPair, error)
	ListFresh(ctx context.Context, db *gorm.DB, limit int) ([]model.SessionPair, error)
	ListAll(ctx context.Context, db *gorm.DB) ([]model.ReviewRecord, error)
	CreateLog(ctx context.Context, tx *gorm.DB, log *model.ReviewLog) error
	ListLogsSince(ctx context.Context, db *gorm.DB, since time.Time) ([]model.ReviewLog, error)
}

type gormRecordRepository struct{}

func NewGormRecordRepository() RecordRepository {
	return &gormRecordRepository{}
}

func (r *gormRecordRepository) FindByPair(ctx context.Context, db *gorm.DB, itemID, sentenceID uuid.UUID) (*model.ReviewRecord, error) {
	var record model.ReviewRecord
	result := db.WithContext(ctx).Where("item_id = ? AND sentence_id = ?", itemID, sentenceID).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding record by pair in DB",
			"error", result.Error,
			"item_id", itemID.String(),
			"sentence_id", sentenceID.String(),
		)
		return nil, fmt.Errorf("gormRecordRepository.FindByPair: %w", result.Error)
	}
	return &record, nil
}

// Create は新しいレコードを作成します。同じペアが同時に作成された場合は ErrConflict です。
func (r *gormRecordRepository) Create(ctx context.Context, tx *gorm.DB, record *model.ReviewRecord) error {
	logger := middleware.GetLogger(ctx)
	if record.Version == 0 {
		record.Version = 1
	}
	result := tx.WithContext(ctx).Create(record)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Warn("Record for pair already exists",
				"item_id", record.ItemID.String(),
				"sentence_id", record.SentenceID.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating record in DB", "error", result.Error)
		return fmt.Errorf("gormRecordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormRecordRepository) Update(ctx context.Context, tx *gorm.DB, record *model.ReviewRecord, expectedVersion int) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.ReviewRecord{}).
		Where("record_id = ? AND version = ?", record.RecordID, expectedVersion).
		Updates(map[string]interface{}{
			"repetition":          record.Repetition,
			"easiness_factor":     record.EasinessFactor,
			"interval":            record.Interval,
			"next_review":         record.NextReview,
			"last_review":         record.LastReview,
			"consecutive_correct": record.ConsecutiveCorrect,
			"is_mistake":          record.IsMistake,
			"total_reviews":       record.TotalReviews,
			"correct_reviews":     record.CorrectReviews,
			"version":             expectedVersion + 1,
		})
	if result.Error != nil {
		logger.Error("Error updating record in DB",
			"error", result.Error,
			"record_id", record.RecordID.String(),
		)
		return fmt.Errorf("gormRecordRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// 他の採点が先にコミットした
		logger.Warn("Record version mismatch on update",
			"record_id", record.RecordID.String(),
			"expected_version", expectedVersion,
		)
		return model.ErrConflict
	}
	record.Version = expectedVersion + 1
	return nil
}

func (r *gormRecordRepository) CountMistakes(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.ReviewRecord{}).Where("is_mistake = ?", true).Count(&count).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error counting mistakes in DB", "error", err)
		return 0, fmt.Errorf("gormRecordRepository.CountMistakes: %w", err)
	}
	return count, nil
}

// ListMistakes は誤答フラグ付きのペアを期日に関係なくランダムに返します。
func (r *gormRecordRepository) ListMistakes(ctx context.Context, db *gorm.DB, limit int) ([]model.SessionPair, error) {
	var records []model.ReviewRecord
	result := withPair(db.WithContext(ctx)).
		Where("is_mistake = ?", true).
		Order("RANDOM()").
		Limit(limit).
		Find(&records)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error listing mistakes in DB", "error", result.Error)
		return nil, fmt.Errorf("gormRecordRepository.ListMistakes: %w", result.Error)
	}
	return recordsToPairs(records), nil
}

// ListDue は next_review < dueBefore のペアを期日の古い順に返します。
func (r *gormRecordRepository) ListDue(ctx context.Context, db *gorm.DB, dueBefore time.Time, limit int) ([]model.SessionPair, error) {
	var records []model.ReviewRecord
	result := withPair(db.WithContext(ctx)).
		Where("next_review < ?", dueBefore.UTC()).
		Order("next_review ASC").
		Limit(limit).
		Find(&records)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error listing due records in DB",
			"error", result.Error,
			"due_before", dueBefore,
		)
		return nil, fmt.Errorf("gormRecordRepository.ListDue: %w", result.Error)
	}
	return recordsToPairs(records), nil
}

// freshRow は新出ペア検索の結果行です。
type freshRow struct {
	ItemID       uuid.UUID
	Headword     string
	Meaning      string
	PartOfSpeech *string
	Frequency    int
	SentenceID   uuid.UUID
	Text         string
	Translation  string
	Year         *int
	Section      *string
	Label        *string
}

// ListFresh はレコードが無いペアを出現頻度の降順で返します。同じ頻度の中ではランダムです。
func (r *gormRecordRepository) ListFresh(ctx context.Context, db *gorm.DB, limit int) ([]model.SessionPair, error) {
	var rows []freshRow
	result := db.WithContext(ctx).
		Table("example_sentences AS s").
		Select("i.item_id, i.headword, i.meaning, i.part_of_speech, i.frequency, " +
			"s.sentence_id, s.text, s.translation, s.year, s.section, s.label").
		Joins("JOIN vocabulary_items AS i ON i.item_id = s.item_id").
		Joins("LEFT JOIN review_records AS r ON r.item_id = s.item_id AND r.sentence_id = s.sentence_id").
		Where("r.record_id IS NULL").
		Order("i.frequency DESC, RANDOM()").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error listing fresh pairs in DB", "error", result.Error)
		return nil, fmt.Errorf("gormRecordRepository.ListFresh: %w", result.Error)
	}

	pairs := make([]model.SessionPair, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, model.SessionPair{
			Item: model.VocabularyItem{
				ItemID:       row.ItemID,
				Headword:     row.Headword,
				Meaning:      row.Meaning,
				PartOfSpeech: row.PartOfSpeech,
				Frequency:    row.Frequency,
			},
			Sentence: model.ExampleSentence{
				SentenceID:  row.SentenceID,
				ItemID:      row.ItemID,
				Text:        row.Text,
				Translation: row.Translation,
				Year:        row.Year,
				Section:     row.Section,
				Label:       row.Label,
			},
		})
	}
	return pairs, nil
}

func (r *gormRecordRepository) ListAll(ctx context.Context, db *gorm.DB) ([]model.ReviewRecord, error) {
	var records []model.ReviewRecord
	if err := db.WithContext(ctx).Find(&records).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing records in DB", "error", err)
		return nil, fmt.Errorf("gormRecordRepository.ListAll: %w", err)
	}
	return records, nil
}

func (r *gormRecordRepository) CreateLog(ctx context.Context, tx *gorm.DB, log *model.ReviewLog) error {
	if err := tx.WithContext(ctx).Create(log).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating review log in DB", "error", err)
		return fmt.Errorf("gormRecordRepository.CreateLog: %w", err)
	}
	return nil
}

func (r *gormRecordRepository) ListLogsSince(ctx context.Context, db *gorm.DB, since time.Time) ([]model.ReviewLog, error) {
	var logs []model.ReviewLog
	result := db.WithContext(ctx).
		Where("reviewed_at >= ?", since.UTC()).
		Order("reviewed_at ASC").
		Find(&logs)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error listing review logs in DB", "error", result.Error)
		return nil, fmt.Errorf("gormRecordRepository.ListLogsSince: %w", result.Error)
	}
	return logs, nil
}

// withPair は単語と例文を Preload し、どちらかが存在しないレコードを除外します。
func withPair(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Item").
		Preload("Sentence").
		Where("EXISTS (SELECT 1 FROM example_sentences s WHERE s.sentence_id = review_records.sentence_id AND s.item_id = review_records.item_id)")
}

func recordsToPairs(records []model.ReviewRecord) []model.SessionPair {
	pairs := make([]model.SessionPair, 0, len(records))
	for _, rec := range records {
		if rec.Item == nil || rec.Sentence == nil {
			continue
		}
		pairs = append(pairs, model.SessionPair{Item: *rec.Item, Sentence: *rec.Sentence})
	}
	return pairs
}
