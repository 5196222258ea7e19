package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/campushub/campus-accounts/internal/logger"
	"github.com/campushub/campus-accounts/internal/models"
	"github.com/campushub/campus-accounts/internal/services"
)

// AdminGetter defines the interface that the admin profile service must implement.
type AdminGetter interface {
	Get(ctx context.Context, id int64) (*models.AdminDB, error)
}

// FacultyGetter defines the interface that the faculty profile service must implement.
type FacultyGetter interface {
	Get(ctx context.Context, id int64) (*models.FacultyDB, error)
}

// StudentGetter defines the interface that the student profile service must implement.
type StudentGetter interface {
	Get(ctx context.Context, id int64) (*models.StudentDB, error)
}

// NewAdminProfileHandler returns an HTTP handler for the admin self profile.
// @Summary Admin profile
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.AdminResponse "Profile"
// @Failure 401 {object} handlers.MessageResponse "Admin role required"
// @Failure 404 {object} handlers.MessageResponse "Admin not found"
// @Router /admin/profile [get]
// @Security BearerAuth
func NewAdminProfileHandler(svc AdminGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireAdmin(w, r)
		if !ok {
			return
		}

		admin, err := svc.Get(r.Context(), identity.ID)
		if err != nil {
			profileError(w, err, "Admin not found")
			return
		}

		writeJSON(w, http.StatusOK, AdminResponse{
			Message: "Admin details fetched successfully",
			Admin:   admin,
		})
	}
}

// NewFacultyProfileHandler returns an HTTP handler for the faculty self profile.
// @Summary Faculty profile
// @Tags faculty
// @Produce json
// @Success 200 {object} handlers.FacultyResponse "Profile"
// @Failure 401 {object} handlers.MessageResponse "Faculty role required"
// @Failure 404 {object} handlers.MessageResponse "Faculty not found"
// @Router /faculty/profile [get]
// @Security BearerAuth
func NewFacultyProfileHandler(svc FacultyGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireRole(w, r, models.RoleFaculty)
		if !ok {
			return
		}

		faculty, err := svc.Get(r.Context(), identity.ID)
		if err != nil {
			profileError(w, err, "Faculty not found")
			return
		}

		writeJSON(w, http.StatusOK, FacultyResponse{
			Message: "Faculty profile retrieved successfully",
			Faculty: faculty,
		})
	}
}

// NewStudentProfileHandler returns an HTTP handler for the student self profile.
// @Summary Student profile
// @Tags student
// @Produce json
// @Success 200 {object} handlers.StudentResponse "Profile"
// @Failure 401 {object} handlers.MessageResponse "Student role required"
// @Failure 404 {object} handlers.MessageResponse "Student not found"
// @Router /student/profile [get]
// @Security BearerAuth
func NewStudentProfileHandler(svc StudentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireRole(w, r, models.RoleStudent)
		if !ok {
			return
		}

		student, err := svc.Get(r.Context(), identity.ID)
		if err != nil {
			profileError(w, err, "Student not found")
			return
		}

		writeJSON(w, http.StatusOK, StudentResponse{
			Message: "Student profile retrieved successfully",
			Student: student,
		})
	}
}

func profileError(w http.ResponseWriter, err error, notFound string) {
	if errors.Is(err, services.ErrAccountNotFound) {
		writeMessage(w, http.StatusNotFound, notFound)
		return
	}
	logger.Log.Errorw("internal server error", "err", err)
	writeMessage(w, http.StatusInternalServerError, "Internal server error")
}
