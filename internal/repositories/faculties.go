package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/campus-accounts/internal/models"
)

const facultyColumns = "id, username, name, email, section, dept, coordinator, password_hash, role, created_at, updated_at"

// FacultyReadRepository reads faculty records from Postgres.
type FacultyReadRepository struct {
	db *sqlx.DB
}

func NewFacultyReadRepository(db *sqlx.DB) *FacultyReadRepository {
	return &FacultyReadRepository{db: db}
}

// GetByUsername returns the faculty with the given username, or nil when absent.
func (r *FacultyReadRepository) GetByUsername(ctx context.Context, username string) (*models.FacultyDB, error) {
	const query = `SELECT ` + facultyColumns + ` FROM faculties WHERE username = $1 LIMIT 1`

	var faculty models.FacultyDB
	err := r.db.GetContext(ctx, &faculty, query, username)
	logQuery(query, []any{username}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &faculty, nil
}

// GetByID returns the faculty with the given id, or nil when absent.
func (r *FacultyReadRepository) GetByID(ctx context.Context, id int64) (*models.FacultyDB, error) {
	const query = `SELECT ` + facultyColumns + ` FROM faculties WHERE id = $1 LIMIT 1`

	var faculty models.FacultyDB
	err := r.db.GetContext(ctx, &faculty, query, id)
	logQuery(query, []any{id}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &faculty, nil
}

// GetByUsernameOrEmail returns a faculty matching either key, or nil when
// none matches.
func (r *FacultyReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.FacultyDB, error) {
	const query = `
		SELECT ` + facultyColumns + `
		FROM faculties
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		LIMIT 1
	`

	var faculty models.FacultyDB
	err := r.db.GetContext(ctx, &faculty, query, username, email)
	logQuery(query, []any{username, email}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &faculty, nil
}

// List returns all faculty records ordered by id.
func (r *FacultyReadRepository) List(ctx context.Context) ([]models.FacultyDB, error) {
	const query = `SELECT ` + facultyColumns + ` FROM faculties ORDER BY id`

	var faculties []models.FacultyDB
	err := r.db.SelectContext(ctx, &faculties, query)
	logQuery(query, nil, err)
	if err != nil {
		return nil, err
	}

	return faculties, nil
}

// FacultyWriteRepository writes faculty records to Postgres.
type FacultyWriteRepository struct {
	db *sqlx.DB
}

func NewFacultyWriteRepository(db *sqlx.DB) *FacultyWriteRepository {
	return &FacultyWriteRepository{db: db}
}

// Create inserts a new faculty and returns the persisted record. The
// password field of the input must already hold a bcrypt hash.
func (r *FacultyWriteRepository) Create(ctx context.Context, faculty *models.FacultyDB) (*models.FacultyDB, error) {
	const query = `
		INSERT INTO faculties (username, name, email, section, dept, coordinator, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + facultyColumns

	var created models.FacultyDB
	err := r.db.GetContext(ctx, &created, query,
		faculty.Username, faculty.Name, faculty.Email,
		faculty.Section, faculty.Dept, faculty.Coordinator,
		faculty.PasswordHash, faculty.Role,
	)
	logQuery(query, []any{faculty.Username, faculty.Email}, err)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Update overwrites the mutable fields of an existing faculty.
func (r *FacultyWriteRepository) Update(ctx context.Context, faculty *models.FacultyDB) error {
	const query = `
		UPDATE faculties
		SET username = $1, name = $2, email = $3, section = $4, dept = $5, coordinator = $6, updated_at = NOW()
		WHERE id = $7
	`

	_, err := r.db.ExecContext(ctx, query,
		faculty.Username, faculty.Name, faculty.Email,
		faculty.Section, faculty.Dept, faculty.Coordinator, faculty.ID,
	)
	logQuery(query, []any{faculty.Username, faculty.ID}, err)
	return err
}

// UpdatePassword replaces the stored password hash.
func (r *FacultyWriteRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE faculties SET password_hash = $1, updated_at = NOW() WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, passwordHash, id)
	logQuery(query, []any{id}, err)
	return err
}
