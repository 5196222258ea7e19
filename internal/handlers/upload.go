package handlers

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/campushub/campus-accounts/internal/logger"
	"github.com/campushub/campus-accounts/internal/models"
	"github.com/campushub/campus-accounts/internal/spreadsheet"
)

// maxUploadSize caps workbook uploads at 10MB.
const maxUploadSize = 10 << 20

// StudentImporter defines the interface that the student import service must implement.
type StudentImporter interface {
	ImportStudents(ctx context.Context, rows []models.ImportRow) models.ImportReport
}

// FacultyImporter defines the interface that the faculty import service must implement.
type FacultyImporter interface {
	ImportFaculty(ctx context.Context, rows []models.ImportRow) models.ImportReport
}

// ImportResponse wraps the per-row outcome of a bulk upload
// swagger:model ImportResponse
type ImportResponse struct {
	Message string              `json:"message"`
	Report  models.ImportReport `json:"report"`
}

// NewUploadStudentsHandler returns an HTTP handler for bulk student import
// from an Excel workbook. Responds 201 when every row succeeded and 207
// when the batch partially failed.
// @Summary Bulk-create students from a workbook
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook (.xlsx or .xls), first sheet, header row required"
// @Success 201 {object} handlers.ImportResponse "All rows imported"
// @Success 207 {object} handlers.ImportResponse "Partial success"
// @Failure 400 {object} handlers.MessageResponse "Bad upload"
// @Failure 401 {object} handlers.MessageResponse "Admin role required"
// @Router /admin/upload-student [post]
// @Security BearerAuth
func NewUploadStudentsHandler(svc StudentImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		rows, ok := uploadRows(w, r)
		if !ok {
			return
		}

		report := svc.ImportStudents(r.Context(), rows)
		writeReport(w, report, "Students")
	}
}

// NewUploadFacultyHandler returns an HTTP handler for bulk faculty import
// from an Excel workbook.
// @Summary Bulk-create faculty from a workbook
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook (.xlsx or .xls), first sheet, header row required"
// @Success 201 {object} handlers.ImportResponse "All rows imported"
// @Success 207 {object} handlers.ImportResponse "Partial success"
// @Failure 400 {object} handlers.MessageResponse "Bad upload"
// @Failure 401 {object} handlers.MessageResponse "Admin role required"
// @Router /admin/upload-faculty [post]
// @Security BearerAuth
func NewUploadFacultyHandler(svc FacultyImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		rows, ok := uploadRows(w, r)
		if !ok {
			return
		}

		report := svc.ImportFaculty(r.Context(), rows)
		writeReport(w, report, "Faculty")
	}
}

// uploadRows extracts the spreadsheet rows from the multipart "file" field.
// On failure it writes the error response and returns ok=false.
func uploadRows(w http.ResponseWriter, r *http.Request) ([]models.ImportRow, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeMessage(w, http.StatusBadRequest, "File too large or malformed upload")
		return nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "No file uploaded")
		return nil, false
	}
	defer file.Close()

	var rows []models.ImportRow
	switch ext := strings.ToLower(filepath.Ext(header.Filename)); ext {
	case ".xlsx":
		rows, err = spreadsheet.ReadFirstSheet(file)
	case ".xls":
		rows, err = spreadsheet.ReadLegacyFirstSheet(file)
	default:
		writeMessage(w, http.StatusBadRequest, "Only .xlsx and .xls files are supported")
		return nil, false
	}
	if err != nil {
		logger.Log.Errorw("failed to read workbook", "filename", header.Filename, "err", err)
		writeMessage(w, http.StatusBadRequest, "Could not read the uploaded workbook")
		return nil, false
	}
	if len(rows) == 0 {
		writeMessage(w, http.StatusBadRequest, "The uploaded file contains no data rows")
		return nil, false
	}

	return rows, true
}

func writeReport(w http.ResponseWriter, report models.ImportReport, what string) {
	status := http.StatusCreated
	message := what + " imported successfully"
	if report.ErrorCount > 0 {
		status = http.StatusMultiStatus
		message = what + " import completed with errors"
	}

	writeJSON(w, status, ImportResponse{
		Message: message,
		Report:  report,
	})
}
