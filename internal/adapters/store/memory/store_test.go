package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-item-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/go-item-service/internal/domain"
	"github.com/jsamuelsen11/go-item-service/internal/domain/item"
)

func TestStore_SaveAssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.New()

	a, err := s.Save(ctx, item.New("itemA", 10000, 10))
	require.NoError(t, err)
	b, err := s.Save(ctx, item.New("itemB", 20000, 20))
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.Equal(t, 2, s.Len())
}

func TestStore_SaveCopiesInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.New()
	in := item.New("itemA", 10000, 10)

	saved, err := s.Save(ctx, in)
	require.NoError(t, err)
	assert.Zero(t, in.ID, "input must not be mutated")

	*in.ItemName = "changed"
	*saved.Price = 1

	got, err := s.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "itemA", *got.ItemName)
	assert.Equal(t, int64(10000), *got.Price)
}

func TestStore_FindAllOrderedByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.New()
	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := s.Save(ctx, item.New(name, 1000, 1))
		require.NoError(t, err)
	}

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i, it := range all {
		assert.Equal(t, int64(i+1), it.ID)
	}
}

func TestStore_FindAllEmpty(t *testing.T) {
	t.Parallel()

	all, err := memory.New().FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestStore_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.New()

	_, err := s.FindByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = s.Update(ctx, 42, item.New("x", 1, 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, s.Len())
}

func TestStore_UpdateReplacesFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.New()
	saved, err := s.Save(ctx, item.New("itemA", 10000, 10))
	require.NoError(t, err)

	// Absent fields overwrite stored ones: edit is not a partial update.
	update := &item.Item{ID: 999, ItemName: saved.ItemName}
	require.NoError(t, s.Update(ctx, saved.ID, update))

	got, err := s.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "itemA", *got.ItemName)
	assert.Nil(t, got.Price)
	assert.Nil(t, got.Quantity)
}

func TestStore_SaveNilItem(t *testing.T) {
	t.Parallel()

	saved, err := memory.New().Save(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
}

func TestStore_ConcurrentSaves(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.New()

	const n = 100
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			saved, err := s.Save(ctx, item.New("x", 1000, 10))
			assert.NoError(t, err)
			ids <- saved.ID
			_, _ = s.FindAll(ctx)
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestStore_Health(t *testing.T) {
	t.Parallel()

	s := memory.New()
	assert.Equal(t, "memory", s.Name())
	assert.NoError(t, s.HealthCheck(context.Background()))
}
