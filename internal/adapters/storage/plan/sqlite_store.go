package plan

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	domain "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/plan"
)

const planColumns = "id, name, price, period, features, limits, max_academies, max_students_per_academy, popular"

// SQLiteStore implements Store using SQLite. The ordered feature list
// is stored as a JSON array in a text column.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new plan store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Plan by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Plan, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+planColumns+" FROM plan WHERE id = ?", id)
	entity, err := scanPlan(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Plan{}, fmt.Errorf("plan not found: %w", err)
	}
	return entity, err
}

// Save persists a Plan to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Plan) error {
	features, err := json.Marshal(entity.Features)
	if err != nil {
		return fmt.Errorf("marshal features: %w", err)
	}

	query := `INSERT INTO plan (` + planColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			price=excluded.price,
			period=excluded.period,
			features=excluded.features,
			limits=excluded.limits,
			max_academies=excluded.max_academies,
			max_students_per_academy=excluded.max_students_per_academy,
			popular=excluded.popular`

	popular := 0
	if entity.Popular {
		popular = 1
	}

	_, err = s.db.ExecContext(ctx, query,
		entity.ID,
		entity.Name,
		entity.Price,
		entity.Period,
		string(features),
		entity.Limits,
		entity.MaxAcademies,
		entity.MaxStudentsPerAcademy,
		popular,
	)
	return err
}

// Delete removes a Plan from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM plan WHERE id = ?", id)
	return err
}

// List retrieves Plans based on the filter, cheapest first.
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Plan, error) {
	query := "SELECT " + planColumns + " FROM plan"
	var args []interface{}
	if filter.Period != "" {
		query += " WHERE period = ?"
		args = append(args, filter.Period)
	}
	query += " ORDER BY price ASC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Plan
	for rows.Next() {
		entity, err := scanPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Count returns the total number of plans.
// PRE: none
// POST: Returns total plan count
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM plan").Scan(&count)
	return count, err
}

// scanPlan extracts a Plan from a row scanner function.
func scanPlan(scan func(dest ...interface{}) error) (domain.Plan, error) {
	var entity domain.Plan
	var features string
	var popular int
	err := scan(
		&entity.ID,
		&entity.Name,
		&entity.Price,
		&entity.Period,
		&features,
		&entity.Limits,
		&entity.MaxAcademies,
		&entity.MaxStudentsPerAcademy,
		&popular,
	)
	if err != nil {
		return domain.Plan{}, err
	}
	entity.Popular = popular != 0
	if features != "" {
		if err := json.Unmarshal([]byte(features), &entity.Features); err != nil {
			return domain.Plan{}, fmt.Errorf("unmarshal features: %w", err)
		}
	}
	return entity, nil
}
