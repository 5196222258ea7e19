package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/campushub/campus-accounts/internal/logger"
	"github.com/campushub/campus-accounts/internal/models"
	"github.com/campushub/campus-accounts/internal/services"
)

// AdminLister defines the interface that the admin listing service must implement.
type AdminLister interface {
	List(ctx context.Context) ([]models.AdminDB, error)
}

// FacultyLister defines the interface that the faculty listing service must implement.
type FacultyLister interface {
	List(ctx context.Context) ([]models.FacultyDB, error)
}

// StudentLister defines the interface that the student listing service must implement.
type StudentLister interface {
	List(ctx context.Context) ([]models.StudentDB, error)
}

// AdminsResponse wraps the admin listing
// swagger:model AdminsResponse
type AdminsResponse struct {
	Message string           `json:"message"`
	Admins  []models.AdminDB `json:"admins"`
}

// FacultiesResponse wraps the faculty listing
// swagger:model FacultiesResponse
type FacultiesResponse struct {
	Message string             `json:"message"`
	Faculty []models.FacultyDB `json:"faculty"`
}

// StudentsResponse wraps the student listing
// swagger:model StudentsResponse
type StudentsResponse struct {
	Message  string             `json:"message"`
	Students []models.StudentDB `json:"students"`
}

// NewListAdminsHandler returns an HTTP handler listing all admins.
// An empty collection responds 404, not an empty array; existing clients
// depend on that behavior.
// @Summary List all admins
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.AdminsResponse "Admins"
// @Failure 401 {object} handlers.MessageResponse "Admin role required"
// @Failure 404 {object} handlers.MessageResponse "No admins found"
// @Router /admin/all-admins [get]
// @Security BearerAuth
func NewListAdminsHandler(svc AdminLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		admins, err := svc.List(r.Context())
		if err != nil {
			listError(w, err, "No admins found")
			return
		}

		writeJSON(w, http.StatusOK, AdminsResponse{
			Message: "Admins fetched successfully",
			Admins:  admins,
		})
	}
}

// NewListFacultyHandler returns an HTTP handler listing all faculty.
// @Summary List all faculty
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.FacultiesResponse "Faculty"
// @Failure 401 {object} handlers.MessageResponse "Admin role required"
// @Failure 404 {object} handlers.MessageResponse "No faculty found"
// @Router /admin/all-faculty [get]
// @Security BearerAuth
func NewListFacultyHandler(svc FacultyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		faculty, err := svc.List(r.Context())
		if err != nil {
			listError(w, err, "No faculty found")
			return
		}

		writeJSON(w, http.StatusOK, FacultiesResponse{
			Message: "Faculty fetched successfully",
			Faculty: faculty,
		})
	}
}

// NewListStudentsHandler returns an HTTP handler listing all students.
// @Summary List all students
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.StudentsResponse "Students"
// @Failure 401 {object} handlers.MessageResponse "Admin role required"
// @Failure 404 {object} handlers.MessageResponse "No students found"
// @Router /admin/all-students [get]
// @Security BearerAuth
func NewListStudentsHandler(svc StudentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		students, err := svc.List(r.Context())
		if err != nil {
			listError(w, err, "No students found")
			return
		}

		writeJSON(w, http.StatusOK, StudentsResponse{
			Message:  "Students fetched successfully",
			Students: students,
		})
	}
}

func listError(w http.ResponseWriter, err error, notFound string) {
	if errors.Is(err, services.ErrAccountNotFound) {
		writeMessage(w, http.StatusNotFound, notFound)
		return
	}
	logger.Log.Errorw("internal server error", "err", err)
	writeMessage(w, http.StatusInternalServerError, "Internal server error")
}
