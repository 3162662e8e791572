package spotrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRepositorySeededCatalog(t *testing.T) {
	repo := NewMemoryRepository()

	spots, err := repo.ListSpots(context.Background())
	require.NoError(t, err)
	require.Len(t, spots, 5)

	ids := make([]string, 0, len(spots))
	for _, spot := range spots {
		ids = append(ids, spot.ID)
	}
	require.ElementsMatch(t, []string{"malibu", "pipeline", "teahupoo", "waimea", "jaws"}, ids)
}

func TestMemoryRepositoryGetSpot(t *testing.T) {
	repo := NewMemoryRepository()

	spot, ok, err := repo.GetSpot(context.Background(), "pipeline")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Pipeline", spot.Name)
	require.InDelta(t, 21.6644, spot.Latitude, 1e-9)

	_, ok, err = repo.GetSpot(context.Background(), "mavericks")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryRepositoryListReturnsCopy(t *testing.T) {
	repo := NewMemoryRepository()

	first, err := repo.ListSpots(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := repo.ListSpots(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, "mutated", second[0].Name)
}
