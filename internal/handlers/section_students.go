package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/campushub/campus-accounts/internal/logger"
	"github.com/campushub/campus-accounts/internal/models"
	"github.com/campushub/campus-accounts/internal/services"
)

// SectionRosterGetter defines the interface that the section roster service must implement.
type SectionRosterGetter interface {
	SectionStudents(ctx context.Context, facultyID int64) ([]models.StudentDB, error)
}

// NewSectionStudentsHandler returns an HTTP handler listing the students in
// the calling faculty member's section. An empty roster is a 200, not a 404.
// @Summary Students in the caller's section
// @Tags faculty
// @Produce json
// @Success 200 {object} handlers.StudentsResponse "Section roster"
// @Failure 401 {object} handlers.MessageResponse "Faculty role required"
// @Failure 404 {object} handlers.MessageResponse "Faculty not found"
// @Router /faculty/section-students [get]
// @Security BearerAuth
func NewSectionStudentsHandler(svc SectionRosterGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireRole(w, r, models.RoleFaculty)
		if !ok {
			return
		}

		students, err := svc.SectionStudents(r.Context(), identity.ID)
		if err != nil {
			if errors.Is(err, services.ErrAccountNotFound) {
				writeMessage(w, http.StatusNotFound, "Faculty not found")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if students == nil {
			students = []models.StudentDB{}
		}

		writeJSON(w, http.StatusOK, StudentsResponse{
			Message:  "Students from section retrieved successfully",
			Students: students,
		})
	}
}
