//go:generate mockery --name SessionService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go_vocab_drill/internal/config"
	"go_vocab_drill/internal/learning"
	"go_vocab_drill/internal/metrics"
	"go_vocab_drill/internal/middleware"
	"go_vocab_drill/internal/model"
	"go_vocab_drill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionService interface {
	// GetDailySession は goal 件 (0 なら設定の既定値) のセッションを組み立てます。
	GetDailySession(ctx context.Context, goal int) (*model.DailySessionPlan, error)
}

type sessionService struct {
	db         *gorm.DB
	recordRepo repository.RecordRepository
	composer   *learning.Composer
	cfg        config.AppConfig
}

func NewSessionService(db *gorm.DB, recordRepo repository.RecordRepository, composer *learning.Composer, cfg config.AppConfig) SessionService {
	return &sessionService{
		db:         db,
		recordRepo: recordRepo,
		composer:   composer,
		cfg:        cfg,
	}
}

func (s *sessionService) GetDailySession(ctx context.Context, goal int) (*model.DailySessionPlan, error) {
	if goal == 0 {
		goal = s.cfg.DailyGoal
	}
	logger := middleware.GetLogger(ctx).With("daily_goal", goal)
	if goal < 0 || (s.cfg.MaxDailyGoal > 0 && goal > s.cfg.MaxDailyGoal) {
		return nil, model.NewAppError("VALIDATION_ERROR",
			fmt.Sprintf("goalは1以上%d以下で指定してください。", s.cfg.MaxDailyGoal), "goal", model.ErrInvalidInput)
	}

	// 3つのプールを同じスナップショットから読む
	var plan *model.DailySessionPlan
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		plan, err = s.composer.ComposeDailySession(ctx, NewRecordStore(tx, s.recordRepo), goal)
		return err
	}, snapshotOptions(s.db)...)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			return nil, model.NewAppError("VALIDATION_ERROR", "goalは1以上で指定してください。", "goal", err)
		}
		logger.Error("Failed to compose daily session", "error", err)
		return nil, dependencyError("学習セッションの作成に失敗しました。", err)
	}

	metrics.SessionsComposed.WithLabelValues(string(plan.Status)).Inc()
	metrics.SessionSize.Observe(float64(len(plan.Pairs)))
	logger.Info("Daily session composed",
		"status", plan.Status,
		"mistakes", plan.MistakeCount,
		"reviews", plan.ReviewCount,
		"fresh", plan.FreshCount,
	)
	return plan, nil
}

// snapshotOptions は Postgres では読み取り専用の REPEATABLE READ を指定します。
// SQLite のトランザクションはもともと直列化されるため指定しません。
func snapshotOptions(db *gorm.DB) []*sql.TxOptions {
	if db.Dialector.Name() == config.DriverPostgres {
		return []*sql.TxOptions{{Isolation: sql.LevelRepeatableRead, ReadOnly: true}}
	}
	return nil
}

// recordStore は RecordRepository を特定の接続 (トランザクション) に束縛して learning.RecordStore にします。
type recordStore struct {
	db   *gorm.DB
	repo repository.RecordRepository
}

func NewRecordStore(db *gorm.DB, repo repository.RecordRepository) learning.RecordStore {
	return &recordStore{db: db, repo: repo}
}

func (s *recordStore) GetRecord(ctx context.Context, itemID, sentenceID uuid.UUID) (*model.ReviewRecord, error) {
	rec, err := s.repo.FindByPair(ctx, s.db, itemID, sentenceID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	return rec, err
}

func (s *recordStore) CountMistakes(ctx context.Context) (int64, error) {
	return s.repo.CountMistakes(ctx, s.db)
}

func (s *recordStore) ListMistakes(ctx context.Context, limit int) ([]model.SessionPair, error) {
	return s.repo.ListMistakes(ctx, s.db, limit)
}

func (s *recordStore) ListDue(ctx context.Context, dueBefore time.Time, limit int) ([]model.SessionPair, error) {
	return s.repo.ListDue(ctx, s.db, dueBefore, limit)
}

func (s *recordStore) ListFresh(ctx context.Context, limit int) ([]model.SessionPair, error) {
	return s.repo.ListFresh(ctx, s.db, limit)
}
