package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/campushub/campus-accounts/internal/logger"
	"github.com/campushub/campus-accounts/internal/models"
	"github.com/campushub/campus-accounts/internal/services"
)

// AdminUpdater defines the interface that the admin update service must implement.
type AdminUpdater interface {
	Update(ctx context.Context, id int64, upd services.AdminUpdate) (*models.AdminDB, error)
}

// FacultyUpdater defines the interface that the faculty update service must implement.
type FacultyUpdater interface {
	Update(ctx context.Context, id int64, upd services.FacultyUpdate) (*models.FacultyDB, error)
}

// StudentUpdater defines the interface that the student update service must implement.
type StudentUpdater interface {
	Update(ctx context.Context, id int64, upd services.StudentUpdate) (*models.StudentDB, error)
}

// UpdateAdminRequest represents the JSON body for a partial admin update.
// Omitted or empty fields leave the stored values unchanged.
// swagger:model UpdateAdminRequest
type UpdateAdminRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"role"`
}

// UpdateFacultyRequest represents the JSON body for a partial faculty update
// swagger:model UpdateFacultyRequest
type UpdateFacultyRequest struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	Email       string `json:"email" validate:"omitempty,email"`
	Section     string `json:"section"`
	Dept        string `json:"dept"`
	Coordinator string `json:"coordinator"`
}

// UpdateStudentRequest represents the JSON body for a partial student update
// swagger:model UpdateStudentRequest
type UpdateStudentRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Section  string `json:"section"`
	Dept     string `json:"dept"`
}

// NewUpdateAdminHandler returns an HTTP handler for partial admin updates.
// @Summary Update an admin
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Admin id"
// @Param updateRequest body handlers.UpdateAdminRequest true "Fields to overwrite"
// @Success 200 {object} handlers.AdminResponse "Updated admin"
// @Failure 400 {object} handlers.MessageResponse "Invalid request"
// @Failure 401 {object} handlers.MessageResponse "Admin role required"
// @Failure 404 {object} handlers.MessageResponse "Admin not found"
// @Router /admin/update-admin/{id} [put]
// @Security BearerAuth
func NewUpdateAdminHandler(svc AdminUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req UpdateAdminRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		admin, err := svc.Update(r.Context(), id, services.AdminUpdate{
			Name:  req.Name,
			Email: req.Email,
			Role:  req.Role,
		})
		if err != nil {
			updateError(w, err, "Admin not found")
			return
		}

		writeJSON(w, http.StatusOK, AdminResponse{
			Message: "Admin updated successfully",
			Admin:   admin,
		})
	}
}

// NewUpdateFacultyHandler returns an HTTP handler for partial faculty updates.
// @Summary Update a faculty member
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Faculty id"
// @Param updateRequest body handlers.UpdateFacultyRequest true "Fields to overwrite"
// @Success 200 {object} handlers.FacultyResponse "Updated faculty"
// @Failure 400 {object} handlers.MessageResponse "Invalid request"
// @Failure 401 {object} handlers.MessageResponse "Admin role required"
// @Failure 404 {object} handlers.MessageResponse "Faculty not found"
// @Router /admin/update-faculty/{id} [put]
// @Security BearerAuth
func NewUpdateFacultyHandler(svc FacultyUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req UpdateFacultyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		faculty, err := svc.Update(r.Context(), id, services.FacultyUpdate{
			Username:    req.Username,
			Name:        req.Name,
			Email:       req.Email,
			Section:     req.Section,
			Dept:        req.Dept,
			Coordinator: req.Coordinator,
		})
		if err != nil {
			updateError(w, err, "Faculty not found")
			return
		}

		writeJSON(w, http.StatusOK, FacultyResponse{
			Message: "Faculty updated successfully",
			Faculty: faculty,
		})
	}
}

// NewUpdateStudentHandler returns an HTTP handler for partial student updates.
// @Summary Update a student
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Student id"
// @Param updateRequest body handlers.UpdateStudentRequest true "Fields to overwrite"
// @Success 200 {object} handlers.StudentResponse "Updated student"
// @Failure 400 {object} handlers.MessageResponse "Invalid request"
// @Failure 401 {object} handlers.MessageResponse "Admin role required"
// @Failure 404 {object} handlers.MessageResponse "Student not found"
// @Router /admin/update-student/{id} [put]
// @Security BearerAuth
func NewUpdateStudentHandler(svc StudentUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req UpdateStudentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		student, err := svc.Update(r.Context(), id, services.StudentUpdate{
			Username: req.Username,
			Name:     req.Name,
			Email:    req.Email,
			Section:  req.Section,
			Dept:     req.Dept,
		})
		if err != nil {
			updateError(w, err, "Student not found")
			return
		}

		writeJSON(w, http.StatusOK, StudentResponse{
			Message: "Student updated successfully",
			Student: student,
		})
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func updateError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrAccountNotFound):
		writeMessage(w, http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrInvalidRole):
		writeMessage(w, http.StatusBadRequest, "invalid role")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
