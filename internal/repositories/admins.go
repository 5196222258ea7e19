package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/campus-accounts/internal/logger"
	"github.com/campushub/campus-accounts/internal/models"
)

const adminColumns = "id, name, email, password_hash, role, created_at, updated_at"

// AdminReadRepository reads admin records from Postgres.
type AdminReadRepository struct {
	db *sqlx.DB
}

func NewAdminReadRepository(db *sqlx.DB) *AdminReadRepository {
	return &AdminReadRepository{db: db}
}

// GetByEmail returns the admin with the given email, or nil when absent.
func (r *AdminReadRepository) GetByEmail(ctx context.Context, email string) (*models.AdminDB, error) {
	const query = `SELECT ` + adminColumns + ` FROM admins WHERE email = $1 LIMIT 1`

	var admin models.AdminDB
	err := r.db.GetContext(ctx, &admin, query, email)
	logQuery(query, []any{email}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

// GetByID returns the admin with the given id, or nil when absent.
func (r *AdminReadRepository) GetByID(ctx context.Context, id int64) (*models.AdminDB, error) {
	const query = `SELECT ` + adminColumns + ` FROM admins WHERE id = $1 LIMIT 1`

	var admin models.AdminDB
	err := r.db.GetContext(ctx, &admin, query, id)
	logQuery(query, []any{id}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

// List returns all admin records ordered by id.
func (r *AdminReadRepository) List(ctx context.Context) ([]models.AdminDB, error) {
	const query = `SELECT ` + adminColumns + ` FROM admins ORDER BY id`

	var admins []models.AdminDB
	err := r.db.SelectContext(ctx, &admins, query)
	logQuery(query, nil, err)
	if err != nil {
		return nil, err
	}

	return admins, nil
}

// AdminWriteRepository writes admin records to Postgres.
type AdminWriteRepository struct {
	db *sqlx.DB
}

func NewAdminWriteRepository(db *sqlx.DB) *AdminWriteRepository {
	return &AdminWriteRepository{db: db}
}

// Create inserts a new admin and returns the persisted record.
func (r *AdminWriteRepository) Create(ctx context.Context, name, email, passwordHash string, role models.Role) (*models.AdminDB, error) {
	const query = `
		INSERT INTO admins (name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + adminColumns

	var admin models.AdminDB
	err := r.db.GetContext(ctx, &admin, query, name, email, passwordHash, role)
	logQuery(query, []any{name, email, role}, err)
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

// Update overwrites the mutable fields of an existing admin.
func (r *AdminWriteRepository) Update(ctx context.Context, admin *models.AdminDB) error {
	const query = `
		UPDATE admins
		SET name = $1, email = $2, role = $3, updated_at = NOW()
		WHERE id = $4
	`

	_, err := r.db.ExecContext(ctx, query, admin.Name, admin.Email, admin.Role, admin.ID)
	logQuery(query, []any{admin.Name, admin.Email, admin.Role, admin.ID}, err)
	return err
}

// UpdatePassword replaces the stored password hash.
func (r *AdminWriteRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE admins SET password_hash = $1, updated_at = NOW() WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, passwordHash, id)
	logQuery(query, []any{id}, err)
	return err
}

// logQuery logs a statement on a single line. Password hashes are kept out
// of the args by the callers.
func logQuery(query string, args []any, err error) {
	logger.Log.Debugw("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)
}
