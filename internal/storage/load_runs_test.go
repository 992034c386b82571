package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Oignontom8283/timeclass/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// каждое соединение к :memory:: отдельная база
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestGormLoadRunRepository_CreateAndListRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewGormLoadRunRepository(openTestDB(t))

	base := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		run := &models.LoadRun{
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			FinishedAt: base.Add(time.Duration(i)*time.Minute + time.Second),
			Trigger:    "cron",
			Listed:     2,
			Loaded:     1,
			Skipped:    datatypes.JSON(`[{"id":"b","kind":"fetch","reason":"status 404"}]`),
		}
		require.NoError(t, repo.Create(ctx, run))
		assert.NotEqual(t, uuid.Nil, run.ID)
	}

	runs, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].StartedAt.After(runs[1].StartedAt))
	assert.Equal(t, 1, runs[0].Loaded)
	assert.JSONEq(t, `[{"id":"b","kind":"fetch","reason":"status 404"}]`, string(runs[0].Skipped))
}

func TestGormLoadRunRepository_FailedRun(t *testing.T) {
	ctx := context.Background()
	repo := NewGormLoadRunRepository(openTestDB(t))

	id := uuid.New()
	require.NoError(t, repo.Create(ctx, &models.LoadRun{
		ID:         id,
		StartedAt:  time.Now(),
		FinishedAt: time.Now(),
		Trigger:    "startup",
		Failed:     true,
		Error:      "fetch school list: status 500",
	}))

	runs, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
	assert.True(t, runs[0].Failed)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "school_lorgues", cacheKey("lorgues"))
}
