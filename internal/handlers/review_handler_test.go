package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"go_vocab_drill/internal/handlers"
	"go_vocab_drill/internal/model"
	svc_mocks "go_vocab_drill/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewHandler_PutReviewResult(t *testing.T) {
	itemID := uuid.New()
	sentenceID := uuid.New()
	validPath := "/reviews/" + itemID.String() + "/" + sentenceID.String() + "/result"

	tests := []struct {
		name       string
		path       string
		body       interface{}
		setupMock  func(m *svc_mocks.ReviewService)
		wantStatus int
		wantCode   string
		wantField  string
	}{
		{
			name: "正常系: 正解 (easy)",
			path: validPath,
			body: map[string]interface{}{"is_correct": true, "is_easy": true},
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("SubmitReview", mock.Anything, itemID, sentenceID, mock.MatchedBy(func(r *model.SubmitReviewRequest) bool {
					return *r.IsCorrect && r.IsEasy != nil && *r.IsEasy && r.Quality == nil
				})).Return(&model.ReviewRecord{ItemID: itemID, SentenceID: sentenceID, Repetition: 1, Interval: 1, EasinessFactor: 2.6, Version: 1}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "正常系: quality を明示",
			path: validPath,
			body: map[string]interface{}{"is_correct": false, "quality": 0},
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("SubmitReview", mock.Anything, itemID, sentenceID, mock.MatchedBy(func(r *model.SubmitReviewRequest) bool {
					return !*r.IsCorrect && r.Quality != nil && *r.Quality == 0
				})).Return(&model.ReviewRecord{ItemID: itemID, SentenceID: sentenceID, IsMistake: true, EasinessFactor: 1.7}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "異常系: is_correct なし",
			path:       validPath,
			body:       map[string]interface{}{"is_easy": true},
			setupMock:  func(m *svc_mocks.ReviewService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
			wantField:  "is_correct",
		},
		{
			name:       "異常系: quality が範囲外",
			path:       validPath,
			body:       map[string]interface{}{"is_correct": true, "quality": 6},
			setupMock:  func(m *svc_mocks.ReviewService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
			wantField:  "quality",
		},
		{
			name:       "異常系: sentence_id が不正",
			path:       "/reviews/" + itemID.String() + "/xyz/result",
			body:       map[string]interface{}{"is_correct": true},
			setupMock:  func(m *svc_mocks.ReviewService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_URL_PARAM",
			wantField:  "sentence_id",
		},
		{
			name: "異常系: ペアが存在しない",
			path: validPath,
			body: map[string]interface{}{"is_correct": true},
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("SubmitReview", mock.Anything, itemID, sentenceID, mock.Anything).
					Return(nil, model.NewAppError("NOT_FOUND", "指定された単語と例文の組が見つかりません。", "sentence_id", model.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name: "異常系: 同時採点",
			path: validPath,
			body: map[string]interface{}{"is_correct": true},
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("SubmitReview", mock.Anything, itemID, sentenceID, mock.Anything).
					Return(nil, model.NewAppError("CONCURRENT_REVIEW", "同じ組が同時に採点されました。再度お試しください。", "", model.ErrConflict)).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   "CONCURRENT_REVIEW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := svc_mocks.NewReviewService(t)
			tt.setupMock(m)
			h := handlers.NewReviewHandler(m, testLogger)

			rr := serve(http.MethodPut, "/reviews/{item_id}/{sentence_id}/result", h.PutReviewResult,
				newJSONRequest(t, http.MethodPut, tt.path, tt.body))
			if tt.wantStatus >= 400 {
				detail := assertErrorResponse(t, rr, tt.wantStatus, tt.wantCode)
				if tt.wantField != "" {
					assert.Equal(t, tt.wantField, detail.Field)
				}
				return
			}
			assert.Equal(t, tt.wantStatus, rr.Code)
			var rec model.ReviewRecord
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
			assert.Equal(t, itemID, rec.ItemID)
			assert.Equal(t, sentenceID, rec.SentenceID)
		})
	}
}
