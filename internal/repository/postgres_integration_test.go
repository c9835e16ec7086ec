package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_vocab_drill/internal/config"
	"go_vocab_drill/internal/model"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// startPostgres は使い捨ての PostgreSQL コンテナを起動し、マイグレーション済みの接続を返します。
// Docker が使えない環境ではテストをスキップします。
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in -short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not reachable: %v", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=vocab_drill",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "could not start PostgreSQL resource")
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("could not purge resource: %v", err)
		}
	})
	_ = resource.Expire(300)

	dsn := fmt.Sprintf("host=localhost port=%s user=user password=secret dbname=vocab_drill sslmode=disable TimeZone=UTC",
		resource.GetPort("5432/tcp"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var db *gorm.DB
	err = pool.Retry(func() error {
		var openErr error
		db, openErr = NewDB(config.DriverPostgres, dsn, logger)
		return openErr
	})
	require.NoError(t, err, "could not connect to PostgreSQL")
	require.NoError(t, Migrate(db))
	return db
}

func TestPostgres_RecordLifecycle(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	items := NewGormItemRepository()
	records := NewGormRecordRepository()

	item := &model.VocabularyItem{ItemID: uuid.New(), Headword: "diligent", Meaning: "勤勉な", Frequency: 4}
	require.NoError(t, items.Create(ctx, db, item))
	assert.ErrorIs(t, items.Create(ctx, db, &model.VocabularyItem{ItemID: uuid.New(), Headword: "diligent", Meaning: "x"}), model.ErrConflict)

	s := &model.ExampleSentence{SentenceID: uuid.New(), ItemID: item.ItemID, Text: "She is diligent."}
	require.NoError(t, items.CreateSentence(ctx, db, s))

	fresh, err := records.ListFresh(ctx, db, 10)
	require.NoError(t, err)
	require.Len(t, fresh, 1)

	now := time.Now().UTC()
	rec := newRecord(s, now.Add(-time.Hour), true)
	require.NoError(t, records.Create(ctx, db, rec))
	assert.ErrorIs(t, records.Create(ctx, db, newRecord(s, now, false)), model.ErrConflict)

	due, err := records.ListDue(ctx, db, now.Add(time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "diligent", due[0].Item.Headword)

	mistakes, err := records.ListMistakes(ctx, db, 10)
	require.NoError(t, err)
	assert.Len(t, mistakes, 1)

	require.NoError(t, records.Update(ctx, db, rec, 1))
	assert.ErrorIs(t, records.Update(ctx, db, rec, 1), model.ErrConflict)
}
