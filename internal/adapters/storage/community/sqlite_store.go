package community

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	domain "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/community"
)

const communityColumns = "id, name, display_name, description, category, target_audience, welcome_message, plan_id, plan_name, plan_price, plan_period, status, created_by, created_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new community store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Community by its ID.
// PRE: id is non-empty
// POST: Returns the entity or domain.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Community, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+communityColumns+" FROM community WHERE id = ?", id)
	entity, err := scanCommunity(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Community{}, domain.ErrNotFound
	}
	return entity, err
}

// GetByName retrieves a Community by its unique slug. This backs the
// community-segment verification in the route guard.
// PRE: name is non-empty
// POST: Returns the entity or domain.ErrNotFound
func (s *SQLiteStore) GetByName(ctx context.Context, name string) (domain.Community, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+communityColumns+" FROM community WHERE name = ?", name)
	entity, err := scanCommunity(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Community{}, domain.ErrNotFound
	}
	return entity, err
}

// Save persists a Community to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Community) error {
	query := `INSERT INTO community (` + communityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name,
			display_name=excluded.display_name,
			description=excluded.description,
			category=excluded.category,
			target_audience=excluded.target_audience,
			welcome_message=excluded.welcome_message,
			plan_id=excluded.plan_id,
			plan_name=excluded.plan_name,
			plan_price=excluded.plan_price,
			plan_period=excluded.plan_period,
			status=excluded.status`

	var createdBy interface{}
	if entity.CreatedBy != "" {
		createdBy = entity.CreatedBy
	}

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.Name,
		entity.DisplayName,
		entity.Description,
		entity.Category,
		entity.TargetAudience,
		entity.WelcomeMessage,
		entity.PlanID,
		entity.PlanName,
		entity.PlanPrice,
		entity.PlanPeriod,
		entity.Status,
		createdBy,
		entity.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// Delete removes a Community from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM community WHERE id = ?", id)
	return err
}

// List retrieves Communities based on the filter, newest first.
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Community, error) {
	where, args := buildWhere(filter)
	query := "SELECT " + communityColumns + " FROM community" + where + " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Community
	for rows.Next() {
		entity, err := scanCommunity(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Count returns the number of communities matching the filter.
// PRE: none
// POST: Returns matching count
func (s *SQLiteStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	where, args := buildWhere(filter)
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM community"+where, args...).Scan(&count)
	return count, err
}

func buildWhere(filter ListFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}
	if filter.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		clauses = append(clauses, "(display_name LIKE ? OR description LIKE ?)")
		like := "%" + filter.Search + "%"
		args = append(args, like, like)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// scanCommunity extracts a Community from a row scanner function.
func scanCommunity(scan func(dest ...interface{}) error) (domain.Community, error) {
	var entity domain.Community
	var createdAt string
	var createdBy sql.NullString
	err := scan(
		&entity.ID,
		&entity.Name,
		&entity.DisplayName,
		&entity.Description,
		&entity.Category,
		&entity.TargetAudience,
		&entity.WelcomeMessage,
		&entity.PlanID,
		&entity.PlanName,
		&entity.PlanPrice,
		&entity.PlanPeriod,
		&entity.Status,
		&createdBy,
		&createdAt,
	)
	if err != nil {
		return domain.Community{}, err
	}
	entity.CreatedBy = createdBy.String
	entity.CreatedAt, _ = parseTime(createdAt)
	return entity, nil
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		t, err := time.Parse(f, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time: %s", s)
}
