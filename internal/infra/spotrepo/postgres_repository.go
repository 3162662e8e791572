package spotrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jacob-Northcote/WaveView/internal/domain/surfreport"
)

// PostgresRepository implements surfreport.SpotRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListSpots returns the full catalog ordered by name.
func (r *PostgresRepository) ListSpots(ctx context.Context) ([]surfreport.Spot, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, latitude, longitude, description
		FROM surf_spots
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var spots []surfreport.Spot
	for rows.Next() {
		var spot surfreport.Spot
		if err := rows.Scan(&spot.ID, &spot.Name, &spot.Latitude, &spot.Longitude, &spot.Description); err != nil {
			return nil, err
		}
		spots = append(spots, spot)
	}
	return spots, rows.Err()
}

// GetSpot fetches one spot by its identifier.
func (r *PostgresRepository) GetSpot(ctx context.Context, id string) (surfreport.Spot, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, latitude, longitude, description
		FROM surf_spots
		WHERE id = $1
		LIMIT 1
	`, id)
	if err != nil {
		return surfreport.Spot{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return surfreport.Spot{}, false, rows.Err()
	}
	var spot surfreport.Spot
	if err := rows.Scan(&spot.ID, &spot.Name, &spot.Latitude, &spot.Longitude, &spot.Description); err != nil {
		return surfreport.Spot{}, false, err
	}
	return spot, true, rows.Err()
}
