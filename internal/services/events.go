package services

import (
	"context"
	"errors"

	"github.com/campushub/campus-accounts/internal/logger"
	"github.com/campushub/campus-accounts/internal/models"
)

var (
	ErrEventAlreadyExists = errors.New("event already exists")
	ErrEventNotFound      = errors.New("event not found")
)

// EventReader defines read-only operations for project events.
type EventReader interface {
	GetByID(ctx context.Context, id int64) (*models.ProjectEventDB, error)
	GetByShortName(ctx context.Context, shortName string) (*models.ProjectEventDB, error)
}

// EventWriter defines write operations for project events.
type EventWriter interface {
	Create(ctx context.Context, shortName, name string, coordinators models.StringList, maxTeamSize int, isEnabled bool) (*models.ProjectEventDB, error)
	UpdateCoordinators(ctx context.Context, id int64, coordinators models.StringList) (*models.ProjectEventDB, error)
}

// EventInput carries the fields of a new project event. IsEnabled defaults
// to true when nil.
type EventInput struct {
	ShortName    string
	Name         string
	Coordinators []string
	MaxTeamSize  int
	IsEnabled    *bool
}

// EventService implements project event management. Events have no
// deletion path; coordinators may be reassigned after creation.
type EventService struct {
	reader EventReader
	writer EventWriter
}

// NewEventService creates a new EventService instance.
func NewEventService(reader EventReader, writer EventWriter) *EventService {
	return &EventService{reader: reader, writer: writer}
}

// Create registers a new project event. Fails when the short name is taken.
func (svc *EventService) Create(ctx context.Context, in EventInput) (*models.ProjectEventDB, error) {
	existing, err := svc.reader.GetByShortName(ctx, in.ShortName)
	if err != nil {
		logger.Log.Errorw("failed to check event exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEventAlreadyExists
	}

	coordinators := models.StringList(in.Coordinators)
	if coordinators == nil {
		coordinators = models.StringList{}
	}

	enabled := true
	if in.IsEnabled != nil {
		enabled = *in.IsEnabled
	}

	event, err := svc.writer.Create(ctx, in.ShortName, in.Name, coordinators, in.MaxTeamSize, enabled)
	if err != nil {
		logger.Log.Errorw("failed to save event", "err", err)
		return nil, err
	}

	return event, nil
}

// AssignCoordinators replaces the coordinator list of an existing event.
func (svc *EventService) AssignCoordinators(ctx context.Context, eventID int64, coordinators []string) (*models.ProjectEventDB, error) {
	event, err := svc.reader.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	updated, err := svc.writer.UpdateCoordinators(ctx, eventID, models.StringList(coordinators))
	if err != nil {
		logger.Log.Errorw("failed to assign coordinators", "eventId", eventID, "err", err)
		return nil, err
	}

	return updated, nil
}
