package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/campus-accounts/internal/models"
)

const studentColumns = "id, username, name, email, section, dept, password_hash, role, created_at, updated_at"

// StudentReadRepository reads student records from Postgres.
type StudentReadRepository struct {
	db *sqlx.DB
}

func NewStudentReadRepository(db *sqlx.DB) *StudentReadRepository {
	return &StudentReadRepository{db: db}
}

// GetByUsername returns the student with the given username, or nil when absent.
func (r *StudentReadRepository) GetByUsername(ctx context.Context, username string) (*models.StudentDB, error) {
	const query = `SELECT ` + studentColumns + ` FROM students WHERE username = $1 LIMIT 1`

	var student models.StudentDB
	err := r.db.GetContext(ctx, &student, query, username)
	logQuery(query, []any{username}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &student, nil
}

// GetByID returns the student with the given id, or nil when absent.
func (r *StudentReadRepository) GetByID(ctx context.Context, id int64) (*models.StudentDB, error) {
	const query = `SELECT ` + studentColumns + ` FROM students WHERE id = $1 LIMIT 1`

	var student models.StudentDB
	err := r.db.GetContext(ctx, &student, query, id)
	logQuery(query, []any{id}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &student, nil
}

// GetByUsernameOrEmail returns a student matching either key, or nil when
// none matches. Used by creation and import to detect duplicates.
func (r *StudentReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.StudentDB, error) {
	const query = `
		SELECT ` + studentColumns + `
		FROM students
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		LIMIT 1
	`

	var student models.StudentDB
	err := r.db.GetContext(ctx, &student, query, username, email)
	logQuery(query, []any{username, email}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &student, nil
}

// List returns all student records ordered by id.
func (r *StudentReadRepository) List(ctx context.Context) ([]models.StudentDB, error) {
	const query = `SELECT ` + studentColumns + ` FROM students ORDER BY id`

	var students []models.StudentDB
	err := r.db.SelectContext(ctx, &students, query)
	logQuery(query, nil, err)
	if err != nil {
		return nil, err
	}

	return students, nil
}

// ListBySection returns the students whose section equals the given value.
func (r *StudentReadRepository) ListBySection(ctx context.Context, section string) ([]models.StudentDB, error) {
	const query = `SELECT ` + studentColumns + ` FROM students WHERE section = $1 ORDER BY id`

	var students []models.StudentDB
	err := r.db.SelectContext(ctx, &students, query, section)
	logQuery(query, []any{section}, err)
	if err != nil {
		return nil, err
	}

	return students, nil
}

// StudentWriteRepository writes student records to Postgres.
type StudentWriteRepository struct {
	db *sqlx.DB
}

func NewStudentWriteRepository(db *sqlx.DB) *StudentWriteRepository {
	return &StudentWriteRepository{db: db}
}

// Create inserts a new student and returns the persisted record. The
// password field of the input must already hold a bcrypt hash.
func (r *StudentWriteRepository) Create(ctx context.Context, student *models.StudentDB) (*models.StudentDB, error) {
	const query = `
		INSERT INTO students (username, name, email, section, dept, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + studentColumns

	var created models.StudentDB
	err := r.db.GetContext(ctx, &created, query,
		student.Username, student.Name, student.Email,
		student.Section, student.Dept, student.PasswordHash, student.Role,
	)
	logQuery(query, []any{student.Username, student.Email}, err)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Update overwrites the mutable fields of an existing student.
func (r *StudentWriteRepository) Update(ctx context.Context, student *models.StudentDB) error {
	const query = `
		UPDATE students
		SET username = $1, name = $2, email = $3, section = $4, dept = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := r.db.ExecContext(ctx, query,
		student.Username, student.Name, student.Email,
		student.Section, student.Dept, student.ID,
	)
	logQuery(query, []any{student.Username, student.ID}, err)
	return err
}

// UpdatePassword replaces the stored password hash.
func (r *StudentWriteRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE students SET password_hash = $1, updated_at = NOW() WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, passwordHash, id)
	logQuery(query, []any{id}, err)
	return err
}
