package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/atsmatch/pkg/analysis"
)

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	repo := NewAnalysisRepository()
	ctx := context.Background()

	a, err := repo.Create(ctx, "resume a", "job a", analysis.Report{OverallScore: 10})
	require.NoError(t, err)
	b, err := repo.Create(ctx, "resume b", "job b", analysis.Report{OverallScore: 20})
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)
}

func TestListOrdersByCreatedAt(t *testing.T) {
	repo := NewAnalysisRepository()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{base.Add(time.Hour), base, base.Add(time.Hour)}
	i := 0
	repo.now = func() time.Time { ts := times[i]; i++; return ts }

	for range times {
		_, err := repo.Create(context.Background(), "r", "j", analysis.Report{})
		require.NoError(t, err)
	}

	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	ids := []int64{list[0].ID, list[1].ID, list[2].ID}
	assert.Equal(t, []int64{3, 1, 2}, ids)
}

func TestGetByID(t *testing.T) {
	repo := NewAnalysisRepository()
	rec, err := repo.Create(context.Background(), "r", "j", analysis.Report{OverallScore: 42})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Result.OverallScore)

	_, err = repo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, analysis.ErrNotFound)
}

func TestConcurrentCreateNoDuplicateIDs(t *testing.T) {
	repo := NewAnalysisRepository()
	const n = 50

	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := repo.Create(context.Background(), "r", "j", analysis.Report{})
			if err == nil {
				ids <- rec.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	for id := int64(1); id <= n; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
}
