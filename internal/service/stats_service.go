//go:generate mockery --name StatsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"time"

	"go_vocab_drill/internal/learning"
	"go_vocab_drill/internal/model"
	"go_vocab_drill/internal/repository"

	"gorm.io/gorm"
)

type StatsService interface {
	GetStats(ctx context.Context) (*model.StatsResponse, error)
}

type statsService struct {
	db         *gorm.DB
	itemRepo   repository.ItemRepository
	recordRepo repository.RecordRepository
	now        func() time.Time
}

func NewStatsService(db *gorm.DB, itemRepo repository.ItemRepository, recordRepo repository.RecordRepository) StatsService {
	return &statsService{db: db, itemRepo: itemRepo, recordRepo: recordRepo, now: time.Now}
}

func (s *statsService) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	total, err := s.itemRepo.Count(ctx, s.db)
	if err != nil {
		return nil, dependencyError("統計の取得に失敗しました。", err)
	}
	records, err := s.recordRepo.ListAll(ctx, s.db)
	if err != nil {
		return nil, dependencyError("統計の取得に失敗しました。", err)
	}
	startOfToday := learning.StartOfNextDay(s.now()).AddDate(0, 0, -1)
	logs, err := s.recordRepo.ListLogsSince(ctx, s.db, startOfToday)
	if err != nil {
		return nil, dependencyError("統計の取得に失敗しました。", err)
	}

	return &model.StatsResponse{
		TotalItems: total,
		Records:    learning.SummarizeRecords(records),
		Today:      learning.SummarizeDay(logs),
	}, nil
}
