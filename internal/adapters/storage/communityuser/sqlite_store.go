package communityuser

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	domain "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/communityuser"
)

const userColumns = "id, first_name, last_name, email, password_hash, approval_status, decided_by, decided_at, created_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new community user store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a CommunityUser by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.CommunityUser, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM community_user WHERE id = ?", id)
	entity, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return domain.CommunityUser{}, fmt.Errorf("community user not found: %w", err)
	}
	return entity, err
}

// GetByEmail retrieves a CommunityUser by email.
// PRE: email is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.CommunityUser, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM community_user WHERE email = ?", email)
	entity, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return domain.CommunityUser{}, fmt.Errorf("community user not found: %w", err)
	}
	return entity, err
}

// Save persists a CommunityUser to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.CommunityUser) error {
	query := `INSERT INTO community_user (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name=excluded.first_name,
			last_name=excluded.last_name,
			email=excluded.email,
			password_hash=excluded.password_hash,
			approval_status=excluded.approval_status,
			decided_by=excluded.decided_by,
			decided_at=excluded.decided_at`

	var decidedBy, decidedAt interface{}
	if entity.DecidedBy != "" {
		decidedBy = entity.DecidedBy
	}
	if !entity.DecidedAt.IsZero() {
		decidedAt = entity.DecidedAt.Format(time.RFC3339Nano)
	}

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.FirstName,
		entity.LastName,
		entity.Email,
		entity.PasswordHash,
		entity.ApprovalStatus,
		decidedBy,
		decidedAt,
		entity.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// Delete removes a CommunityUser from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM community_user WHERE id = ?", id)
	return err
}

// List retrieves CommunityUsers based on the filter, newest first.
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.CommunityUser, error) {
	where, args := buildWhere(filter)
	query := "SELECT " + userColumns + " FROM community_user" + where + " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.CommunityUser
	for rows.Next() {
		entity, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Count returns the number of community users matching the filter.
// PRE: none
// POST: Returns matching count
func (s *SQLiteStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	where, args := buildWhere(filter)
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM community_user"+where, args...).Scan(&count)
	return count, err
}

func buildWhere(filter ListFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}
	if filter.Status != "" {
		clauses = append(clauses, "approval_status = ?")
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		clauses = append(clauses, "(email LIKE ? OR first_name LIKE ? OR last_name LIKE ?)")
		like := "%" + filter.Search + "%"
		args = append(args, like, like, like)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// scanUser extracts a CommunityUser from a row scanner function.
func scanUser(scan func(dest ...interface{}) error) (domain.CommunityUser, error) {
	var entity domain.CommunityUser
	var createdAt string
	var decidedBy, decidedAt sql.NullString
	err := scan(
		&entity.ID,
		&entity.FirstName,
		&entity.LastName,
		&entity.Email,
		&entity.PasswordHash,
		&entity.ApprovalStatus,
		&decidedBy,
		&decidedAt,
		&createdAt,
	)
	if err != nil {
		return domain.CommunityUser{}, err
	}
	entity.DecidedBy = decidedBy.String
	if decidedAt.Valid && decidedAt.String != "" {
		entity.DecidedAt, _ = parseTime(decidedAt.String)
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
