package academy

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	domain "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/academy"
)

const academyColumns = "id, community_id, name, address, contact_email, status, created_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new academy store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves an Academy by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Academy, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+academyColumns+" FROM academy WHERE id = ?", id)
	entity, err := scanAcademy(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Academy{}, fmt.Errorf("academy not found: %w", err)
	}
	return entity, err
}

// Save persists an Academy to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Academy) error {
	query := `INSERT INTO academy (` + academyColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			community_id=excluded.community_id,
			name=excluded.name,
			address=excluded.address,
			contact_email=excluded.contact_email,
			status=excluded.status`

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.CommunityID,
		entity.Name,
		entity.Address,
		entity.ContactEmail,
		entity.Status,
		entity.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// Delete removes an Academy from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM academy WHERE id = ?", id)
	return err
}

// List retrieves Academies based on the filter.
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Academy, error) {
	where, args := buildWhere(filter)
	query := "SELECT " + academyColumns + " FROM academy" + where + " ORDER BY name ASC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Academy
	for rows.Next() {
		entity, err := scanAcademy(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Count returns the number of academies matching the filter.
// PRE: none
// POST: Returns matching count
func (s *SQLiteStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	where, args := buildWhere(filter)
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM academy"+where, args...).Scan(&count)
	return count, err
}

func buildWhere(filter ListFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}
	if filter.CommunityID != "" {
		clauses = append(clauses, "community_id = ?")
		args = append(args, filter.CommunityID)
	}
	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		clauses = append(clauses, "name LIKE ?")
		args = append(args, "%"+filter.Search+"%")
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// scanAcademy extracts an Academy from a row scanner function.
func scanAcademy(scan func(dest ...interface{}) error) (domain.Academy, error) {
	var entity domain.Academy
	var createdAt string
	err := scan(
		&entity.ID,
		&entity.CommunityID,
		&entity.Name,
		&entity.Address,
		&entity.ContactEmail,
		&entity.Status,
		&createdAt,
	)
	if err != nil {
		return domain.Academy{}, err
	}
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
