package repository

import (
	"context"
	"errors"

	"github.com/slyouthjobs/api/internal/database"
	"github.com/slyouthjobs/api/internal/model"
)

// DistrictRepository handles district reference data access
type DistrictRepository struct {
	db database.Database
}

// NewDistrictRepository creates a new district repository
func NewDistrictRepository(db database.Database) *DistrictRepository {
	return &DistrictRepository{db: db}
}

// Seed upserts the canonical district list in one atomic batch. The unique
// index on name makes re-running this a no-op style operation: UPDATE-or-
// CREATE semantics keep existing records stable.
func (r *DistrictRepository) Seed(ctx context.Context, districts []model.District) error {
	batch := database.NewAtomicBatch()
	for _, d := range districts {
		batch.Add(
			`UPSERT district SET name = $name, region = $region, coordinates = $coordinates WHERE name = $name`,
			map[string]interface{}{
				"name":        d.Name,
				"region":      d.Region,
				"coordinates": d.Coordinates,
			},
		)
	}
	return batch.Execute(ctx, r.db)
}

// List returns all districts in alphabetical order by name.
func (r *DistrictRepository) List(ctx context.Context) ([]*model.District, error) {
	query := `SELECT * FROM district ORDER BY name ASC`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	districts := make([]*model.District, 0)
	rows, ok := extractQueryResults(result)
	if !ok {
		return districts, nil
	}

	for _, row := range rows {
		data, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		d := &model.District{
			Name:        getString(data, "name"),
			Region:      getString(data, "region"),
			Coordinates: getString(data, "coordinates"),
		}
		if id, ok := data["id"]; ok {
			d.ID = convertSurrealID(id)
		}
		if d.Name == "" {
			continue
		}
		districts = append(districts, d)
	}

	return districts, nil
}

// Count returns the number of seeded districts.
func (r *DistrictRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT count() FROM district GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	if data, ok := result.(map[string]interface{}); ok {
		return extractCountValue(data["count"]), nil
	}
	return extractCount(result), nil
}
