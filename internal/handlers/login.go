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

// AdminLoginer defines the interface that the admin login service must implement.
type AdminLoginer interface {
	AdminLogin(ctx context.Context, email, password string) (string, *models.AdminDB, error)
}

// FacultyLoginer defines the interface that the faculty login service must implement.
type FacultyLoginer interface {
	FacultyLogin(ctx context.Context, username, password string) (string, *models.FacultyDB, error)
}

// StudentLoginer defines the interface that the student login service must implement.
type StudentLoginer interface {
	StudentLogin(ctx context.Context, username, password string) (string, *models.StudentDB, error)
}

// AdminLoginRequest represents the JSON body for admin login
// swagger:model AdminLoginRequest
type AdminLoginRequest struct {
	// Email
	// required: true
	// default: admin@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// CredentialsRequest represents the JSON body for faculty and student login
// swagger:model CredentialsRequest
type CredentialsRequest struct {
	// Username
	// required: true
	// default: jdoe
	Username string `json:"username" validate:"required"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// AdminLoginResponse represents a successful admin login
// swagger:model AdminLoginResponse
type AdminLoginResponse struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Admin   *models.AdminDB `json:"admin"`
}

// FacultyLoginResponse represents a successful faculty login
// swagger:model FacultyLoginResponse
type FacultyLoginResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	Faculty *models.FacultyDB `json:"faculty"`
}

// StudentLoginResponse represents a successful student login
// swagger:model StudentLoginResponse
type StudentLoginResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	Student *models.StudentDB `json:"student"`
}

// NewAdminLoginHandler returns an HTTP handler for admin login.
// @Summary Admin login
// @Description Exchanges email and password for a 24h bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} handlers.AdminLoginResponse "Token issued"
// @Failure 400 {object} handlers.MessageResponse "Invalid request body"
// @Failure 401 {object} handlers.MessageResponse "Invalid password"
// @Failure 404 {object} handlers.MessageResponse "Admin not found"
// @Router /admin/login [post]
func NewAdminLoginHandler(svc AdminLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminLoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		token, admin, err := svc.AdminLogin(r.Context(), req.Email, req.Password)
		if err != nil {
			loginError(w, err, "Admin not found")
			return
		}

		writeJSON(w, http.StatusOK, AdminLoginResponse{
			Message: "Login successful",
			Token:   token,
			Admin:   admin,
		})
	}
}

// NewFacultyLoginHandler returns an HTTP handler for faculty login.
// @Summary Faculty login
// @Description Exchanges username and password for a 24h bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.CredentialsRequest true "Faculty credentials"
// @Success 200 {object} handlers.FacultyLoginResponse "Token issued"
// @Failure 400 {object} handlers.MessageResponse "Invalid request body"
// @Failure 401 {object} handlers.MessageResponse "Invalid password"
// @Failure 404 {object} handlers.MessageResponse "Faculty not found"
// @Router /faculty/login [post]
func NewFacultyLoginHandler(svc FacultyLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		token, faculty, err := svc.FacultyLogin(r.Context(), req.Username, req.Password)
		if err != nil {
			loginError(w, err, "Faculty not found")
			return
		}

		writeJSON(w, http.StatusOK, FacultyLoginResponse{
			Message: "Login successful",
			Token:   token,
			Faculty: faculty,
		})
	}
}

// NewStudentLoginHandler returns an HTTP handler for student login.
// @Summary Student login
// @Description Exchanges username and password for a 24h bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.CredentialsRequest true "Student credentials"
// @Success 200 {object} handlers.StudentLoginResponse "Token issued"
// @Failure 400 {object} handlers.MessageResponse "Invalid request body"
// @Failure 401 {object} handlers.MessageResponse "Invalid password"
// @Failure 404 {object} handlers.MessageResponse "Student not found"
// @Router /student/login [post]
func NewStudentLoginHandler(svc StudentLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeMessage(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		token, student, err := svc.StudentLogin(r.Context(), req.Username, req.Password)
		if err != nil {
			loginError(w, err, "Student not found")
			return
		}

		writeJSON(w, http.StatusOK, StudentLoginResponse{
			Message: "Login successful",
			Token:   token,
			Student: student,
		})
	}
}

// loginError maps service errors onto the login status contract: unknown
// login key is 404, bad password is 401, anything else is 500.
func loginError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrAccountNotFound):
		writeMessage(w, http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrInvalidPassword):
		writeMessage(w, http.StatusUnauthorized, "Invalid password")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
