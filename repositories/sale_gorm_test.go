package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/foodpoint-pos/models"
)

func TestSaleRepository_Sums(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleGormRepository(setupTestDB(t))

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	sales := []models.Sale{
		{Amount: 10, CreatedAt: day.Add(9 * time.Hour)},
		{Amount: 15, CreatedAt: day.Add(18 * time.Hour)},
		{Amount: 100, CreatedAt: day.Add(-time.Hour)},
		{Amount: 1, CreatedAt: day.AddDate(0, 0, 1)},
	}
	for i := range sales {
		require.NoError(t, repo.Create(ctx, &sales[i]))
	}

	today, err := repo.SumBetween(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 25.0, today)

	all, err := repo.SumAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 126.0, all)
}

func TestSaleRepository_EmptySumsAreZero(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleGormRepository(setupTestDB(t))

	all, err := repo.SumAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, all)

	now := time.Now().UTC()
	between, err := repo.SumBetween(ctx, now.Add(-time.Hour), now)
	require.NoError(t, err)
	assert.Zero(t, between)
}

func TestSaleRepository_FindRecentLimitAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleGormRepository(setupTestDB(t))

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.Sale{Amount: float64(i + 1), CreatedAt: base.Add(time.Duration(i) * time.Hour)}))
	}

	recent, err := repo.FindRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 5.0, recent[0].Amount)
	assert.Equal(t, 4.0, recent[1].Amount)
	assert.Equal(t, 3.0, recent[2].Amount)
}

func TestSaleRepository_FindSince(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleGormRepository(setupTestDB(t))

	cut := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &models.Sale{Amount: 1, CreatedAt: cut.Add(-time.Second)}))
	require.NoError(t, repo.Create(ctx, &models.Sale{Amount: 2, CreatedAt: cut}))
	require.NoError(t, repo.Create(ctx, &models.Sale{Amount: 3, CreatedAt: cut.Add(48 * time.Hour)}))

	since, err := repo.FindSince(ctx, cut)
	require.NoError(t, err)
	require.Len(t, since, 2)
	assert.Equal(t, 3.0, since[0].Amount)
	assert.Equal(t, 2.0, since[1].Amount)
}
