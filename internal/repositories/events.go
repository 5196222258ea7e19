package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/campus-accounts/internal/models"
)

const eventColumns = "id, short_name, name, coordinators, max_team_size, is_enabled, created_at, updated_at"

// EventReadRepository reads project event records from Postgres.
type EventReadRepository struct {
	db *sqlx.DB
}

func NewEventReadRepository(db *sqlx.DB) *EventReadRepository {
	return &EventReadRepository{db: db}
}

// GetByID returns the event with the given id, or nil when absent.
func (r *EventReadRepository) GetByID(ctx context.Context, id int64) (*models.ProjectEventDB, error) {
	const query = `SELECT ` + eventColumns + ` FROM project_events WHERE id = $1 LIMIT 1`

	var event models.ProjectEventDB
	err := r.db.GetContext(ctx, &event, query, id)
	logQuery(query, []any{id}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// GetByShortName returns the event with the given short name, or nil when absent.
func (r *EventReadRepository) GetByShortName(ctx context.Context, shortName string) (*models.ProjectEventDB, error) {
	const query = `SELECT ` + eventColumns + ` FROM project_events WHERE short_name = $1 LIMIT 1`

	var event models.ProjectEventDB
	err := r.db.GetContext(ctx, &event, query, shortName)
	logQuery(query, []any{shortName}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// EventWriteRepository writes project event records to Postgres.
type EventWriteRepository struct {
	db *sqlx.DB
}

func NewEventWriteRepository(db *sqlx.DB) *EventWriteRepository {
	return &EventWriteRepository{db: db}
}

// Create inserts a new event and returns the persisted record.
func (r *EventWriteRepository) Create(ctx context.Context, shortName, name string, coordinators models.StringList, maxTeamSize int, isEnabled bool) (*models.ProjectEventDB, error) {
	const query = `
		INSERT INTO project_events (short_name, name, coordinators, max_team_size, is_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + eventColumns

	var event models.ProjectEventDB
	err := r.db.GetContext(ctx, &event, query, shortName, name, coordinators, maxTeamSize, isEnabled)
	logQuery(query, []any{shortName, name, maxTeamSize, isEnabled}, err)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// UpdateCoordinators replaces the coordinator list of an existing event and
// returns the updated record.
func (r *EventWriteRepository) UpdateCoordinators(ctx context.Context, id int64, coordinators models.StringList) (*models.ProjectEventDB, error) {
	const query = `
		UPDATE project_events
		SET coordinators = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + eventColumns

	var event models.ProjectEventDB
	err := r.db.GetContext(ctx, &event, query, coordinators, id)
	logQuery(query, []any{id}, err)
	if err != nil {
		return nil, err
	}

	return &event, nil
}
