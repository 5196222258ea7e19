package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campushub/campus-accounts/internal/logger"
	"github.com/campushub/campus-accounts/internal/models"
	"github.com/campushub/campus-accounts/internal/services"
)

// EventCreator defines the interface that the event creation service must implement.
type EventCreator interface {
	Create(ctx context.Context, in services.EventInput) (*models.ProjectEventDB, error)
}

// CoordinatorAssigner defines the interface that the coordinator assignment service must implement.
type CoordinatorAssigner interface {
	AssignCoordinators(ctx context.Context, eventID int64, coordinators []string) (*models.ProjectEventDB, error)
}

// CreateEventRequest represents the JSON body for event creation
// swagger:model CreateEventRequest
type CreateEventRequest struct {
	ShortName    string   `json:"short_name" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Coordinators []string `json:"coordinators"`
	MaxTeamSize  int      `json:"max_team_size" validate:"required,gt=0"`
	IsEnabled    *bool    `json:"is_enabled"`
}

// AssignCoordinatorsRequest represents the JSON body for replacing an
// event's coordinator list
// swagger:model AssignCoordinatorsRequest
type AssignCoordinatorsRequest struct {
	EventID      int64    `json:"eventId" validate:"required"`
	Coordinators []string `json:"coordinators" validate:"required"`
}

// EventResponse wraps one project event
// swagger:model EventResponse
type EventResponse struct {
	Message string                 `json:"message"`
	Event   *models.ProjectEventDB `json:"event"`
}

// NewCreateEventHandler returns an HTTP handler for project event creation.
// @Summary Create a project event
// @Tags admin
// @Accept json
// @Produce json
// @Param createRequest body handlers.CreateEventRequest true "Event fields"
// @Success 201 {object} handlers.EventResponse "Event created"
// @Failure 400 {object} handlers.MessageResponse "Validation failure or duplicate"
// @Failure 401 {object} handlers.MessageResponse "Admin role required"
// @Router /admin/create-event [post]
// @Security BearerAuth
func NewCreateEventHandler(svc EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		var req CreateEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		event, err := svc.Create(r.Context(), services.EventInput{
			ShortName:    req.ShortName,
			Name:         req.Name,
			Coordinators: req.Coordinators,
			MaxTeamSize:  req.MaxTeamSize,
			IsEnabled:    req.IsEnabled,
		})
		if err != nil {
			if errors.Is(err, services.ErrEventAlreadyExists) {
				writeMessage(w, http.StatusBadRequest, "Event already exists")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, EventResponse{
			Message: "Event created successfully",
			Event:   event,
		})
	}
}

// NewAssignCoordinatorsHandler returns an HTTP handler replacing an event's
// coordinator list.
// @Summary Assign event coordinators
// @Tags admin
// @Accept json
// @Produce json
// @Param assignRequest body handlers.AssignCoordinatorsRequest true "Event id and coordinator usernames"
// @Success 200 {object} handlers.EventResponse "Coordinators assigned"
// @Failure 400 {object} handlers.MessageResponse "Validation failure"
// @Failure 401 {object} handlers.MessageResponse "Admin role required"
// @Failure 404 {object} handlers.MessageResponse "Event not found"
// @Router /admin/assign-coordinators [put]
// @Security BearerAuth
func NewAssignCoordinatorsHandler(svc CoordinatorAssigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		var req AssignCoordinatorsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		event, err := svc.AssignCoordinators(r.Context(), req.EventID, req.Coordinators)
		if err != nil {
			if errors.Is(err, services.ErrEventNotFound) {
				writeMessage(w, http.StatusNotFound, "Event not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, EventResponse{
			Message: "Coordinators assigned successfully",
			Event:   event,
		})
	}
}
