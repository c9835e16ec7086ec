// internal/handlers/api_integration_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_vocab_drill/internal/config"
	"go_vocab_drill/internal/handlers"
	"go_vocab_drill/internal/learning"
	"go_vocab_drill/internal/model"
	"go_vocab_drill/internal/repository"
	"go_vocab_drill/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupAPIServer は SQLite 上の実際のサービス一式でサーバーを起動します。
func setupAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.NewDB(config.DriverSQLite, dsn, testLogger)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)

	itemRepo := repository.NewGormItemRepository()
	recordRepo := repository.NewGormRecordRepository()
	appCfg := config.AppConfig{DailyGoal: 10, MaxDailyGoal: 50}

	r := handlers.NewRouter(handlers.Handlers{
		Item:    handlers.NewItemHandler(service.NewItemService(db, itemRepo), testLogger),
		Session: handlers.NewSessionHandler(service.NewSessionService(db, recordRepo, learning.NewComposer(), appCfg), testLogger),
		Review:  handlers.NewReviewHandler(service.NewReviewService(db, itemRepo, recordRepo), testLogger),
		Stats:   handlers.NewStatsHandler(service.NewStatsService(db, itemRepo, recordRepo), testLogger),
	}, handlers.RouterOptions{
		Logger:         testLogger,
		CORS:           config.CORSConfig{AllowedOrigins: []string{"*"}, AllowedMethods: []string{"GET", "POST", "PUT"}},
		MetricsEnabled: true,
		DB:             sqlDB,
	})

	server := httptest.NewServer(r)
	t.Cleanup(func() {
		server.Close()
		sqlDB.Close()
	})
	return server
}

func doJSON(t *testing.T, server *httptest.Server, method, path string, body interface{}, out interface{}) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", string(raw))
	}
	return resp.StatusCode
}

func TestAPI_DrillFlow(t *testing.T) {
	server := setupAPIServer(t)

	// 単語と例文を登録
	var item model.VocabularyItem
	status := doJSON(t, server, http.MethodPost, "/api/v1/items/",
		map[string]interface{}{"headword": "abandon", "meaning": "見捨てる", "frequency": 5}, &item)
	require.Equal(t, http.StatusCreated, status)

	status = doJSON(t, server, http.MethodPost, "/api/v1/items/",
		map[string]interface{}{"headword": "abandon", "meaning": "重複"}, nil)
	assert.Equal(t, http.StatusConflict, status)

	var sentence model.ExampleSentence
	status = doJSON(t, server, http.MethodPost, "/api/v1/items/"+item.ItemID.String()+"/sentences",
		map[string]interface{}{"text": "They abandoned the car.", "translation": "彼らは車を乗り捨てた。"}, &sentence)
	require.Equal(t, http.StatusCreated, status)

	// 新出ペアとして出題される
	var plan model.DailySessionPlan
	status = doJSON(t, server, http.MethodGet, "/api/v1/session", nil, &plan)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, plan.Pairs, 1)
	assert.Equal(t, model.SourceFresh, plan.Pairs[0].Source)
	assert.Equal(t, 10, plan.DailyGoal)

	// 誤答 -> 当日中に再出題 (誤答と期日到来の両方に該当するが1回だけ)
	resultPath := fmt.Sprintf("/api/v1/reviews/%s/%s/result", item.ItemID, sentence.SentenceID)
	var rec model.ReviewRecord
	status = doJSON(t, server, http.MethodPut, resultPath, map[string]interface{}{"is_correct": false}, &rec)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, rec.IsMistake)
	assert.Equal(t, 0, rec.Interval)
	assert.Equal(t, 1, rec.Version)

	status = doJSON(t, server, http.MethodGet, "/api/v1/session?goal=10", nil, &plan)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, plan.Pairs, 1)
	assert.Equal(t, model.SourceMistake, plan.Pairs[0].Source)

	// 正解で次回は翌日以降
	status = doJSON(t, server, http.MethodPut, resultPath, map[string]interface{}{"is_correct": true}, &rec)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, rec.Interval)
	assert.Equal(t, 2, rec.Version)
	assert.True(t, rec.IsMistake)

	var stats model.StatsResponse
	status = doJSON(t, server, http.MethodGet, "/api/v1/stats", nil, &stats)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), stats.TotalItems)
	assert.Equal(t, 1, stats.Records.MistakePairs)
	assert.Equal(t, 2, stats.Today.GradedToday)
	assert.Equal(t, 1, stats.Today.LearnedToday)
	assert.InDelta(t, 50.0, stats.Today.Accuracy, 1e-9)

	// 存在しない組の採点
	status = doJSON(t, server, http.MethodPut,
		fmt.Sprintf("/api/v1/reviews/%s/%s/result", item.ItemID, uuid.New()), map[string]interface{}{"is_correct": true}, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status = doJSON(t, server, http.MethodGet, "/api/v1/session?goal=51", nil, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	server := setupAPIServer(t)

	resp, err := server.Client().Get(server.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// 1回リクエストしてからメトリクスを確認
	doJSON(t, server, http.MethodGet, "/api/v1/stats", nil, nil)
	resp, err = server.Client().Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "vocab_drill_http_requests_total")
}
