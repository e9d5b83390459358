package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/infrast-go/internal/adapters/persistence"
	"github.com/andrescamacho/infrast-go/internal/domain/shared"
	"github.com/andrescamacho/infrast-go/test/helpers"
)

func TestCompileLogRepository_LogAndGet(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	repo := persistence.NewGormCompileLogRepository(db, clock)
	ctx := context.Background()

	// Act
	require.NoError(t, repo.Log(ctx, "infrast-1", "infrast params compiled", "INFO", map[string]interface{}{"units": 6}))
	clock.Advance(time.Second)
	require.NoError(t, repo.Log(ctx, "infrast-1", "failed to build facility list", "ERROR", nil))
	require.NoError(t, repo.Log(ctx, "infrast-2", "infrast params compiled", "INFO", nil))

	entries, err := repo.GetLogs(ctx, "infrast-1", 10, nil)

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "failed to build facility list", entries[0].Message)
	assert.Equal(t, "ERROR", entries[0].Level)
	assert.Nil(t, entries[0].Metadata)
	assert.Equal(t, "infrast params compiled", entries[1].Message)
	assert.EqualValues(t, 6, entries[1].Metadata["units"])
}

func TestCompileLogRepository_LevelFilterAndLimit(t *testing.T) {
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	repo := persistence.NewGormCompileLogRepository(db, clock)
	ctx := context.Background()

	for _, msg := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Log(ctx, "infrast-1", msg, "WARN", nil))
		clock.Advance(time.Second)
	}
	require.NoError(t, repo.Log(ctx, "infrast-1", "d", "INFO", nil))

	warn := "WARN"
	entries, err := repo.GetLogs(ctx, "infrast-1", 2, &warn)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].Message)
	assert.Equal(t, "b", entries[1].Message)
}

func TestCompileLogRepository_Deduplication(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	repo := persistence.NewGormCompileLogRepository(db, clock)
	ctx := context.Background()

	// Act - same message inside the window is dropped
	require.NoError(t, repo.Log(ctx, "infrast-1", "repeat", "INFO", nil))
	clock.Advance(30 * time.Second)
	require.NoError(t, repo.Log(ctx, "infrast-1", "repeat", "INFO", nil))

	// same message at a different level is kept
	require.NoError(t, repo.Log(ctx, "infrast-1", "repeat", "WARN", nil))

	// window elapsed
	clock.Advance(31 * time.Second)
	require.NoError(t, repo.Log(ctx, "infrast-1", "repeat", "INFO", nil))

	// Assert
	entries, err := repo.GetLogs(ctx, "infrast-1", 10, nil)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestRepositoryLogger_ForwardsAndReportsErrors(t *testing.T) {
	repo := helpers.NewMockCompileLogRepository()
	logger := persistence.NewRepositoryLogger(repo, "infrast-9", nil)

	logger.Log("INFO", "hello", map[string]interface{}{"k": "v"})

	assert.Equal(t, []string{"hello"}, repo.Messages("infrast-9", "INFO"))

	var reported error
	repo.LogErr = errors.New("disk full")
	failing := persistence.NewRepositoryLogger(repo, "infrast-9", func(err error) { reported = err })
	failing.Log("INFO", "lost", nil)

	assert.EqualError(t, reported, "disk full")
}
