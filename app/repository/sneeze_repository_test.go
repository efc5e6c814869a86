package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sneezelab/SneezeBot/app/models"
)

func setupTestRepo(t *testing.T) SneezeRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SneezeRecord{}))

	return NewSneezeRepository(db)
}

func TestUpsertOverwrites(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Upsert(1, "2024-12-15", 5))
	require.NoError(t, repo.Upsert(1, "2024-12-15", 9))

	count, found, err := repo.GetDay(1, "2024-12-15")
	require.NoError(t, err)
	assert.True(t, found)
	// Overwrite, not additive.
	assert.Equal(t, 9, count)
}

func TestUpsertRejectsNegativeCount(t *testing.T) {
	repo := setupTestRepo(t)

	assert.Error(t, repo.Upsert(1, "2024-12-15", -1))
}

func TestUpsertRejectsMalformedDay(t *testing.T) {
	repo := setupTestRepo(t)

	assert.Error(t, repo.Upsert(1, "15.12.2024", 5))
}

func TestIncrement(t *testing.T) {
	repo := setupTestRepo(t)

	count, err := repo.Increment(1, "2024-12-15")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.Increment(1, "2024-12-15")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestIncrementAfterUpsert(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Upsert(1, "2024-12-15", 5))

	count, err := repo.Increment(1, "2024-12-15")
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestGetDayAbsent(t *testing.T) {
	repo := setupTestRepo(t)

	count, found, err := repo.GetDay(1, "2024-12-15")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, count)
}

func TestRangeScan(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Upsert(1, "2024-12-15", 3))
	require.NoError(t, repo.Upsert(1, "2024-12-13", 1))
	require.NoError(t, repo.Upsert(1, "2024-12-20", 9))
	require.NoError(t, repo.Upsert(2, "2024-12-14", 100)) // other user

	rows, err := repo.RangeScan(1, "2024-12-13", "2024-12-20")
	require.NoError(t, err)

	// End bound is exclusive and rows come back in ascending day order.
	require.Len(t, rows, 2)
	assert.Equal(t, models.DailyCount{Day: "2024-12-13", Count: 1}, rows[0])
	assert.Equal(t, models.DailyCount{Day: "2024-12-15", Count: 3}, rows[1])
}

func TestRangeScanEmpty(t *testing.T) {
	repo := setupTestRepo(t)

	rows, err := repo.RangeScan(1, "2024-01-01", "2024-02-01")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGroupTotals(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Upsert(1, "2024-12-13", 2))
	require.NoError(t, repo.Upsert(1, "2024-12-14", 3))
	require.NoError(t, repo.Upsert(2, "2024-12-13", 50))
	require.NoError(t, repo.Upsert(3, "2025-01-10", 1))

	totals, err := repo.GroupTotals("", "")
	require.NoError(t, err)
	require.Len(t, totals, 3)
	// Descending by total.
	assert.Equal(t, models.UserTotal{UserID: 2, Total: 50}, totals[0])
	assert.Equal(t, models.UserTotal{UserID: 1, Total: 5}, totals[1])
	assert.Equal(t, models.UserTotal{UserID: 3, Total: 1}, totals[2])

	// Bounded query drops records outside the range.
	totals, err = repo.GroupTotals("2024-12-01", "2025-01-01")
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, int64(2), totals[0].UserID)
	assert.Equal(t, int64(1), totals[1].UserID)
}

func TestAllDetailed(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Upsert(2, "2024-12-13", 4))
	require.NoError(t, repo.Upsert(1, "2024-12-14", 2))
	require.NoError(t, repo.Upsert(1, "2024-12-13", 1))

	records, err := repo.AllDetailed("", "")
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Ordered by user then day.
	assert.Equal(t, int64(1), records[0].UserID)
	assert.Equal(t, "2024-12-13", records[0].Day)
	assert.Equal(t, int64(1), records[1].UserID)
	assert.Equal(t, "2024-12-14", records[1].Day)
	assert.Equal(t, int64(2), records[2].UserID)
}
