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

// AdminCreator defines the interface that the admin creation service must implement.
type AdminCreator interface {
	Create(ctx context.Context, name, email, password string) (*models.AdminDB, error)
}

// FacultyCreator defines the interface that the faculty creation service must implement.
type FacultyCreator interface {
	Create(ctx context.Context, in services.FacultyInput) (*models.FacultyDB, error)
}

// StudentCreator defines the interface that the student creation service must implement.
type StudentCreator interface {
	Create(ctx context.Context, in services.StudentInput) (*models.StudentDB, error)
}

// CreateAdminRequest represents the JSON body for admin creation
// swagger:model CreateAdminRequest
type CreateAdminRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateFacultyRequest represents the JSON body for faculty creation
// swagger:model CreateFacultyRequest
type CreateFacultyRequest struct {
	Username    string `json:"username" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Section     string `json:"section" validate:"required"`
	Dept        string `json:"dept" validate:"required"`
	Coordinator string `json:"coordinator"`
	Password    string `json:"password" validate:"required"`
}

// CreateStudentRequest represents the JSON body for student creation
// swagger:model CreateStudentRequest
type CreateStudentRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Section  string `json:"section" validate:"required"`
	Dept     string `json:"dept" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminResponse wraps one admin record
// swagger:model AdminResponse
type AdminResponse struct {
	Message string          `json:"message"`
	Admin   *models.AdminDB `json:"admin"`
}

// FacultyResponse wraps one faculty record
// swagger:model FacultyResponse
type FacultyResponse struct {
	Message string            `json:"message"`
	Faculty *models.FacultyDB `json:"faculty"`
}

// StudentResponse wraps one student record
// swagger:model StudentResponse
type StudentResponse struct {
	Message string            `json:"message"`
	Student *models.StudentDB `json:"student"`
}

// NewCreateAdminHandler returns an HTTP handler for admin creation. The
// route is deliberately unauthenticated.
// @Summary Create an admin account
// @Tags admin
// @Accept json
// @Produce json
// @Param createRequest body handlers.CreateAdminRequest true "Admin fields"
// @Success 201 {object} handlers.AdminResponse "Admin created"
// @Failure 400 {object} handlers.MessageResponse "Validation failure or duplicate"
// @Router /admin/create-admin [post]
func NewCreateAdminHandler(svc AdminCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAdminRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		admin, err := svc.Create(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrAdminAlreadyExists) {
				writeMessage(w, http.StatusBadRequest, "Admin already exists")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, AdminResponse{
			Message: "Admin created successfully",
			Admin:   admin,
		})
	}
}

// NewCreateFacultyHandler returns an HTTP handler for faculty creation.
// @Summary Create a faculty account
// @Tags admin
// @Accept json
// @Produce json
// @Param createRequest body handlers.CreateFacultyRequest true "Faculty fields"
// @Success 201 {object} handlers.FacultyResponse "Faculty created"
// @Failure 400 {object} handlers.MessageResponse "Validation failure or duplicate"
// @Failure 401 {object} handlers.MessageResponse "Admin role required"
// @Router /admin/create-faculty [post]
// @Security BearerAuth
func NewCreateFacultyHandler(svc FacultyCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		var req CreateFacultyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		faculty, err := svc.Create(r.Context(), services.FacultyInput{
			Username:    req.Username,
			Name:        req.Name,
			Email:       req.Email,
			Section:     req.Section,
			Dept:        req.Dept,
			Coordinator: req.Coordinator,
			Password:    req.Password,
		})
		if err != nil {
			if errors.Is(err, services.ErrFacultyAlreadyExists) {
				writeMessage(w, http.StatusBadRequest, "Faculty already exists")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, FacultyResponse{
			Message: "Faculty created successfully",
			Faculty: faculty,
		})
	}
}

// NewCreateStudentHandler returns an HTTP handler for student creation.
// @Summary Create a student account
// @Tags admin
// @Accept json
// @Produce json
// @Param createRequest body handlers.CreateStudentRequest true "Student fields"
// @Success 201 {object} handlers.StudentResponse "Student created"
// @Failure 400 {object} handlers.MessageResponse "Validation failure or duplicate"
// @Failure 401 {object} handlers.MessageResponse "Admin role required"
// @Router /admin/create-student [post]
// @Security BearerAuth
func NewCreateStudentHandler(svc StudentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		var req CreateStudentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		student, err := svc.Create(r.Context(), services.StudentInput{
			Username: req.Username,
			Name:     req.Name,
			Email:    req.Email,
			Section:  req.Section,
			Dept:     req.Dept,
			Password: req.Password,
		})
		if err != nil {
			if errors.Is(err, services.ErrStudentAlreadyExists) {
				writeMessage(w, http.StatusBadRequest, "Student already exists")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, StudentResponse{
			Message: "Student created successfully",
			Student: student,
		})
	}
}
