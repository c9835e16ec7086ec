//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_vocab_drill/internal/learning"
	"go_vocab_drill/internal/metrics"
	"go_vocab_drill/internal/middleware"
	"go_vocab_drill/internal/model"
	"go_vocab_drill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService interface {
	// SubmitReview は (単語, 例文) ペアの採点結果を記録し、更新後のレコードを返します。
	SubmitReview(ctx context.Context, itemID, sentenceID uuid.UUID, req *model.SubmitReviewRequest) (*model.ReviewRecord, error)
}

type reviewService struct {
	db         *gorm.DB
	itemRepo   repository.ItemRepository
	recordRepo repository.RecordRepository
	now        func() time.Time
}

func NewReviewService(db *gorm.DB, itemRepo repository.ItemRepository, recordRepo repository.RecordRepository) ReviewService {
	return &reviewService{
		db:         db,
		itemRepo:   itemRepo,
		recordRepo: recordRepo,
		now:        time.Now,
	}
}

// resolveQuality は明示された quality を優先し、無ければ正誤と easy シグナルから導出します。
func resolveQuality(req *model.SubmitReviewRequest) (learning.Quality, error) {
	if req.Quality != nil {
		q := learning.Quality(*req.Quality)
		if err := q.Validate(); err != nil {
			return 0, model.NewAppError("VALIDATION_ERROR", "想起の質は0以上5以下で指定してください。", "quality", err)
		}
		return q, nil
	}
	return learning.AnswerToQuality(*req.IsCorrect, req.IsEasy), nil
}

func (s *reviewService) SubmitReview(ctx context.Context, itemID, sentenceID uuid.UUID, req *model.SubmitReviewRequest) (*model.ReviewRecord, error) {
	logger := middleware.GetLogger(ctx).With("item_id", itemID.String(), "sentence_id", sentenceID.String())
	if req.IsCorrect == nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "回答の正誤は必須項目です。", "is_correct", model.ErrInvalidInput)
	}
	isCorrect := *req.IsCorrect
	quality, err := resolveQuality(req)
	if err != nil {
		return nil, err
	}

	var saved *model.ReviewRecord
	var before learning.MistakeState
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.itemRepo.FindSentence(ctx, tx, itemID, sentenceID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return notFoundError("指定された単語と例文の組が見つかりません。", "sentence_id")
			}
			return err
		}

		rec, err := s.recordRepo.FindByPair(ctx, tx, itemID, sentenceID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}
		wasNew := rec == nil

		state := learning.StateFromRecord(rec)
		if err := state.Validate(); err != nil {
			logger.Error("Stored review state is invalid", "error", err)
			return model.NewAppError("INVALID_RECORD_STATE", "保存されている復習状態が不正です。", "", fmt.Errorf("%w: %v", model.ErrInternalServer, err))
		}
		before = state.Mistake

		now := s.now().UTC()
		outcome := learning.Grade(state, quality, isCorrect, now)

		if wasNew {
			rec = &model.ReviewRecord{
				RecordID:   uuid.New(),
				ItemID:     itemID,
				SentenceID: sentenceID,
			}
			outcome.ApplyTo(rec)
			if err := s.recordRepo.Create(ctx, tx, rec); err != nil {
				return err
			}
		} else {
			version := rec.Version
			outcome.ApplyTo(rec)
			if err := s.recordRepo.Update(ctx, tx, rec, version); err != nil {
				return err
			}
		}

		if err := s.recordRepo.CreateLog(ctx, tx, &model.ReviewLog{
			LogID:      uuid.New(),
			ItemID:     itemID,
			SentenceID: sentenceID,
			Quality:    int(quality),
			IsCorrect:  isCorrect,
			WasNew:     wasNew,
			Interval:   rec.Interval,
			ReviewedAt: now,
		}); err != nil {
			return err
		}
		saved = rec
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			metrics.Gradings.WithLabelValues(metrics.OutcomeConflict).Inc()
			logger.Warn("Concurrent grading detected", "error", err)
			return nil, conflictError("CONCURRENT_REVIEW", "同じ組が同時に採点されました。再度お試しください。")
		}
		metrics.Gradings.WithLabelValues(metrics.OutcomeError).Inc()
		logger.Error("Failed to record review", "error", err)
		return nil, passThrough("復習結果の保存に失敗しました。", err)
	}

	outcomeLabel := metrics.OutcomeIncorrect
	if isCorrect {
		outcomeLabel = metrics.OutcomeCorrect
	}
	metrics.Gradings.WithLabelValues(outcomeLabel).Inc()
	switch {
	case !before.IsMistake && saved.IsMistake:
		metrics.MistakeFlagTransitions.WithLabelValues("raised").Inc()
	case before.IsMistake && !saved.IsMistake:
		metrics.MistakeFlagTransitions.WithLabelValues("cleared").Inc()
	}

	logger.Info("Review recorded",
		"quality", int(quality),
		"is_correct", isCorrect,
		"interval", saved.Interval,
		"is_mistake", saved.IsMistake,
	)
	return saved, nil
}
