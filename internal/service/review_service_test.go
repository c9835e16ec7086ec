// internal/service/review_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_vocab_drill/internal/model"
	"go_vocab_drill/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はトランザクションを張るためだけの接続です。DB操作はモックします。
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func Test_reviewService_SubmitReview(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	itemID := uuid.New()
	sentenceID := uuid.New()
	sentence := &model.ExampleSentence{SentenceID: sentenceID, ItemID: itemID, Text: "He abandoned the plan."}

	existing := func() *model.ReviewRecord {
		return &model.ReviewRecord{
			RecordID:           uuid.New(),
			ItemID:             itemID,
			SentenceID:         sentenceID,
			Repetition:         2,
			EasinessFactor:     2.5,
			Interval:           6,
			ConsecutiveCorrect: 2,
			IsMistake:          true,
			TotalReviews:       5,
			CorrectReviews:     3,
			Version:            3,
		}
	}

	tests := []struct {
		name      string
		req       *model.SubmitReviewRequest
		setupMock func(items *mocks.ItemRepository, records *mocks.RecordRepository)
		wantErr   error
		check     func(t *testing.T, rec *model.ReviewRecord)
	}{
		{
			name: "正常系: 初回の正解でレコードを作成 (q=4)",
			req:  &model.SubmitReviewRequest{IsCorrect: boolPtr(true)},
			setupMock: func(items *mocks.ItemRepository, records *mocks.RecordRepository) {
				items.On("FindSentence", ctx, mock.Anything, itemID, sentenceID).Return(sentence, nil).Once()
				records.On("FindByPair", ctx, mock.Anything, itemID, sentenceID).Return(nil, model.ErrNotFound).Once()
				records.On("Create", ctx, mock.Anything, mock.MatchedBy(func(r *model.ReviewRecord) bool {
					return r.Repetition == 1 && r.Interval == 1 && r.EasinessFactor == 2.5 &&
						!r.IsMistake && r.ConsecutiveCorrect == 1 && r.TotalReviews == 1 && r.CorrectReviews == 1
				})).Return(nil).Once()
				records.On("CreateLog", ctx, mock.Anything, mock.MatchedBy(func(l *model.ReviewLog) bool {
					return l.WasNew && l.Quality == 4 && l.IsCorrect && l.Interval == 1 && l.ReviewedAt.Equal(fixedNow)
				})).Return(nil).Once()
			},
			check: func(t *testing.T, rec *model.ReviewRecord) {
				assert.Equal(t, fixedNow.AddDate(0, 0, 1), rec.NextReview)
				assert.Equal(t, fixedNow, rec.LastReview)
			},
		},
		{
			name: "正常系: 誤答フラグ付きで3回目の正解 (easy) -> フラグ解除",
			req:  &model.SubmitReviewRequest{IsCorrect: boolPtr(true), IsEasy: boolPtr(true)},
			setupMock: func(items *mocks.ItemRepository, records *mocks.RecordRepository) {
				items.On("FindSentence", ctx, mock.Anything, itemID, sentenceID).Return(sentence, nil).Once()
				records.On("FindByPair", ctx, mock.Anything, itemID, sentenceID).Return(existing(), nil).Once()
				records.On("Update", ctx, mock.Anything, mock.AnythingOfType("*model.ReviewRecord"), 3).Return(nil).Once()
				records.On("CreateLog", ctx, mock.Anything, mock.MatchedBy(func(l *model.ReviewLog) bool {
					return !l.WasNew && l.Quality == 5
				})).Return(nil).Once()
			},
			check: func(t *testing.T, rec *model.ReviewRecord) {
				assert.Equal(t, 3, rec.Repetition)
				assert.InDelta(t, 2.6, rec.EasinessFactor, 1e-9)
				assert.Equal(t, 16, rec.Interval) // round(6 * 2.6)
				assert.False(t, rec.IsMistake)
				assert.Equal(t, 0, rec.ConsecutiveCorrect)
				assert.Equal(t, 6, rec.TotalReviews)
				assert.Equal(t, 4, rec.CorrectReviews)
			},
		},
		{
			name: "正常系: 既存レコードでの誤答 -> リセットして当日再出題",
			req:  &model.SubmitReviewRequest{IsCorrect: boolPtr(false)},
			setupMock: func(items *mocks.ItemRepository, records *mocks.RecordRepository) {
				items.On("FindSentence", ctx, mock.Anything, itemID, sentenceID).Return(sentence, nil).Once()
				records.On("FindByPair", ctx, mock.Anything, itemID, sentenceID).Return(existing(), nil).Once()
				records.On("Update", ctx, mock.Anything, mock.AnythingOfType("*model.ReviewRecord"), 3).Return(nil).Once()
				records.On("CreateLog", ctx, mock.Anything, mock.AnythingOfType("*model.ReviewLog")).Return(nil).Once()
			},
			check: func(t *testing.T, rec *model.ReviewRecord) {
				assert.Equal(t, 0, rec.Repetition)
				assert.Equal(t, 0, rec.Interval)
				assert.InDelta(t, 1.96, rec.EasinessFactor, 1e-9)
				assert.Equal(t, fixedNow, rec.NextReview)
				assert.True(t, rec.IsMistake)
				assert.Equal(t, 0, rec.ConsecutiveCorrect)
				assert.Equal(t, 3, rec.CorrectReviews)
			},
		},
		{
			name: "正常系: 明示した quality は正誤より優先 (スケジュールと誤答帳は独立)",
			req:  &model.SubmitReviewRequest{IsCorrect: boolPtr(true), Quality: intPtr(2)},
			setupMock: func(items *mocks.ItemRepository, records *mocks.RecordRepository) {
				items.On("FindSentence", ctx, mock.Anything, itemID, sentenceID).Return(sentence, nil).Once()
				records.On("FindByPair", ctx, mock.Anything, itemID, sentenceID).Return(existing(), nil).Once()
				records.On("Update", ctx, mock.Anything, mock.AnythingOfType("*model.ReviewRecord"), 3).Return(nil).Once()
				records.On("CreateLog", ctx, mock.Anything, mock.MatchedBy(func(l *model.ReviewLog) bool {
					return l.Quality == 2 && l.IsCorrect
				})).Return(nil).Once()
			},
			check: func(t *testing.T, rec *model.ReviewRecord) {
				assert.Equal(t, 0, rec.Repetition)
				assert.Equal(t, 0, rec.Interval)
				assert.False(t, rec.IsMistake)
			},
		},
		{
			name: "異常系: 単語と例文の組が存在しない",
			req:  &model.SubmitReviewRequest{IsCorrect: boolPtr(true)},
			setupMock: func(items *mocks.ItemRepository, records *mocks.RecordRepository) {
				items.On("FindSentence", ctx, mock.Anything, itemID, sentenceID).Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: 同時採点によるバージョン競合",
			req:  &model.SubmitReviewRequest{IsCorrect: boolPtr(true)},
			setupMock: func(items *mocks.ItemRepository, records *mocks.RecordRepository) {
				items.On("FindSentence", ctx, mock.Anything, itemID, sentenceID).Return(sentence, nil).Once()
				records.On("FindByPair", ctx, mock.Anything, itemID, sentenceID).Return(existing(), nil).Once()
				records.On("Update", ctx, mock.Anything, mock.Anything, 3).Return(model.ErrConflict).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "異常系: 初回採点が同時に作成された",
			req:  &model.SubmitReviewRequest{IsCorrect: boolPtr(false)},
			setupMock: func(items *mocks.ItemRepository, records *mocks.RecordRepository) {
				items.On("FindSentence", ctx, mock.Anything, itemID, sentenceID).Return(sentence, nil).Once()
				records.On("FindByPair", ctx, mock.Anything, itemID, sentenceID).Return(nil, model.ErrNotFound).Once()
				records.On("Create", ctx, mock.Anything, mock.Anything).Return(model.ErrConflict).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "異常系: レコードストアに到達できない",
			req:  &model.SubmitReviewRequest{IsCorrect: boolPtr(true)},
			setupMock: func(items *mocks.ItemRepository, records *mocks.RecordRepository) {
				items.On("FindSentence", ctx, mock.Anything, itemID, sentenceID).Return(sentence, nil).Once()
				records.On("FindByPair", ctx, mock.Anything, itemID, sentenceID).Return(nil, errors.New("connection reset")).Once()
			},
			wantErr: model.ErrDependency,
		},
		{
			name: "異常系: 保存済みの状態が壊れている",
			req:  &model.SubmitReviewRequest{IsCorrect: boolPtr(true)},
			setupMock: func(items *mocks.ItemRepository, records *mocks.RecordRepository) {
				broken := existing()
				broken.EasinessFactor = 0.5
				items.On("FindSentence", ctx, mock.Anything, itemID, sentenceID).Return(sentence, nil).Once()
				records.On("FindByPair", ctx, mock.Anything, itemID, sentenceID).Return(broken, nil).Once()
			},
			wantErr: model.ErrInternalServer,
		},
		{
			name:      "異常系: quality が範囲外",
			req:       &model.SubmitReviewRequest{IsCorrect: boolPtr(true), Quality: intPtr(7)},
			setupMock: func(items *mocks.ItemRepository, records *mocks.RecordRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name:      "異常系: is_correct 未指定",
			req:       &model.SubmitReviewRequest{},
			setupMock: func(items *mocks.ItemRepository, records *mocks.RecordRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			itemRepo := mocks.NewItemRepository(t)
			recordRepo := mocks.NewRecordRepository(t)
			tt.setupMock(itemRepo, recordRepo)

			svc := NewReviewService(db, itemRepo, recordRepo).(*reviewService)
			svc.now = func() time.Time { return fixedNow }

			rec, err := svc.SubmitReview(ctx, itemID, sentenceID, tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, rec)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, rec)
			assert.Equal(t, itemID, rec.ItemID)
			assert.Equal(t, sentenceID, rec.SentenceID)
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}
