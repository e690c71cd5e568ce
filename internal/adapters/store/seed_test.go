package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-item-service/internal/adapters/store"
	"github.com/jsamuelsen11/go-item-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/go-item-service/internal/domain"
	"github.com/jsamuelsen11/go-item-service/internal/domain/item"
	"github.com/jsamuelsen11/go-item-service/mocks"
)

func TestSeed_EmptyStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.New()

	n, err := store.Seed(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "itemA", *all[0].ItemName)
	assert.Equal(t, int64(20000), *all[1].Price)
}

func TestSeed_SkipsPopulatedStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.New()
	_, err := s.Save(ctx, item.New("existing", 1000, 10))
	require.NoError(t, err)

	n, err := store.Seed(ctx, s)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 1, s.Len())
}

func TestSeed_StoreErrors(t *testing.T) {
	t.Parallel()

	t.Run("find all", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewMockItemStore(t)
		m.EXPECT().FindAll(mock.Anything).Return(nil, domain.ErrUnavailable)

		_, err := store.Seed(context.Background(), m)
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})

	t.Run("save", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewMockItemStore(t)
		m.EXPECT().FindAll(mock.Anything).Return([]item.Item{}, nil)
		m.EXPECT().Save(mock.Anything, mock.Anything).Return(nil, domain.ErrConflict).Once()

		_, err := store.Seed(context.Background(), m)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.ErrorContains(t, err, "itemA")
	})
}
