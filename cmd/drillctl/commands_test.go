package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"go_vocab_drill/internal/config"
	"go_vocab_drill/internal/model"
	"go_vocab_drill/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDrillctl(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "drill.db")
	t.Setenv("APP_DATABASE_DRIVER", config.DriverSQLite)
	t.Setenv("APP_DATABASE_URL", dbPath)
	t.Setenv("APP_LOG_LEVEL", "error")

	out, err := runCmd(t, "migrate", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "migration completed")

	out, err = runCmd(t, "session", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to study today")

	// 単語を1件入れて新出として出ることを確認
	db, err := repository.NewDB(config.DriverSQLite, dbPath, testLogger())
	require.NoError(t, err)
	items := repository.NewGormItemRepository()
	item := &model.VocabularyItem{ItemID: uuid.New(), Headword: "zeal", Meaning: "熱意", Frequency: 2}
	require.NoError(t, items.Create(context.Background(), db, item))
	require.NoError(t, items.CreateSentence(context.Background(), db,
		&model.ExampleSentence{SentenceID: uuid.New(), ItemID: item.ItemID, Text: "She worked with zeal."}))
	sqlDB, _ := db.DB()
	sqlDB.Close()

	out, err = runCmd(t, "session", "--goal", "5", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "goal=5 pairs=1")
	assert.Contains(t, out, "zeal")

	out, err = runCmd(t, "stats", "--json", "--config", dir)
	require.NoError(t, err)
	var stats model.StatsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, int64(1), stats.TotalItems)

	_, err = runCmd(t, "session", "--goal=-3", "--config", dir)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
