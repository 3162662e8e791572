package spotrepo

import (
	"context"
	"sync"

	"github.com/Jacob-Northcote/WaveView/internal/domain/surfreport"
)

// MemoryRepository serves the spot catalog from process memory. It is the
// default when no database is configured and ships seeded with the classic
// breaks the service launched with.
type MemoryRepository struct {
	mu    sync.RWMutex
	spots []surfreport.Spot
}

// NewMemoryRepository constructs a repository seeded with the default catalog.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{spots: defaultCatalog()}
}

// ListSpots implements surfreport.SpotRepository.
func (r *MemoryRepository) ListSpots(_ context.Context) ([]surfreport.Spot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]surfreport.Spot, len(r.spots))
	copy(out, r.spots)
	return out, nil
}

// GetSpot implements surfreport.SpotRepository.
func (r *MemoryRepository) GetSpot(_ context.Context, id string) (surfreport.Spot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, spot := range r.spots {
		if spot.ID == id {
			return spot, true, nil
		}
	}
	return surfreport.Spot{}, false, nil
}

func defaultCatalog() []surfreport.Spot {
	return []surfreport.Spot{
		{
			ID:          "malibu",
			Name:        "Malibu",
			Latitude:    34.0370,
			Longitude:   -118.6770,
			Description: "Famous point break in Southern California",
		},
		{
			ID:          "pipeline",
			Name:        "Pipeline",
			Latitude:    21.6644,
			Longitude:   -158.0533,
			Description: "World-famous reef break on North Shore",
		},
		{
			ID:          "teahupoo",
			Name:        "Teahupoo",
			Latitude:    -17.8444,
			Longitude:   -149.2672,
			Description: "Heavy reef break known for massive barrels",
		},
		{
			ID:          "waimea",
			Name:        "Waimea Bay",
			Latitude:    21.6389,
			Longitude:   -158.0667,
			Description: "Big wave spot on North Shore",
		},
		{
			ID:          "jaws",
			Name:        "Jaws (Peahi)",
			Latitude:    20.9333,
			Longitude:   -156.3000,
			Description: "Epic big wave spot on Maui",
		},
	}
}
