package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/campus-accounts/internal/logger"
	"github.com/campushub/campus-accounts/internal/models"
)

// Required spreadsheet columns per import target.
var (
	studentImportColumns = []string{"username", "name", "email", "section", "dept", "password"}
	facultyImportColumns = []string{"username", "name", "email", "section", "dept", "coordinator", "password"}
)

// StudentImportChecker covers the per-row duplicate check.
type StudentImportChecker interface {
	GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.StudentDB, error)
}

// StudentImportCreator covers the per-row insert.
type StudentImportCreator interface {
	Create(ctx context.Context, student *models.StudentDB) (*models.StudentDB, error)
}

// FacultyImportChecker covers the per-row duplicate check.
type FacultyImportChecker interface {
	GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.FacultyDB, error)
}

// FacultyImportCreator covers the per-row insert.
type FacultyImportCreator interface {
	Create(ctx context.Context, faculty *models.FacultyDB) (*models.FacultyDB, error)
}

// ImportService turns spreadsheet rows into student or faculty accounts.
//
// Rows are processed sequentially and independently: a row failure is
// recorded in the report and never aborts the batch. Inserts are
// synchronous, so a duplicate appearing twice in the same upload is caught
// by the existence check of the later row.
type ImportService struct {
	studentChecker StudentImportChecker
	studentCreator StudentImportCreator
	facultyChecker FacultyImportChecker
	facultyCreator FacultyImportCreator
	validate       *validator.Validate
}

// NewImportService creates a new ImportService instance.
func NewImportService(
	studentChecker StudentImportChecker,
	studentCreator StudentImportCreator,
	facultyChecker FacultyImportChecker,
	facultyCreator FacultyImportCreator,
) *ImportService {
	return &ImportService{
		studentChecker: studentChecker,
		studentCreator: studentCreator,
		facultyChecker: facultyChecker,
		facultyCreator: facultyCreator,
		validate:       validator.New(),
	}
}

// ImportStudents folds the rows into an ImportReport, creating one student
// account per valid row.
func (svc *ImportService) ImportStudents(ctx context.Context, rows []models.ImportRow) models.ImportReport {
	report := newReport(len(rows))

	for _, row := range rows {
		fields, reason := svc.checkRow(row, studentImportColumns)
		if reason != "" {
			report.AddError(row, reason)
			continue
		}

		existing, err := svc.studentChecker.GetByUsernameOrEmail(ctx, ptr(fields["username"]), ptr(fields["email"]))
		if err != nil {
			report.AddError(row, err.Error())
			continue
		}
		if existing != nil {
			report.AddError(row, "student with this username or email already exists")
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(fields["password"]), bcrypt.DefaultCost)
		if err != nil {
			report.AddError(row, err.Error())
			continue
		}

		created, err := svc.studentCreator.Create(ctx, &models.StudentDB{
			Username:     fields["username"],
			Name:         strings.ToUpper(fields["name"]),
			Email:        fields["email"],
			Section:      strings.ToUpper(fields["section"]),
			Dept:         strings.ToUpper(fields["dept"]),
			PasswordHash: string(hash),
			Role:         models.RoleStudent,
		})
		if err != nil {
			report.AddError(row, err.Error())
			continue
		}

		report.AddSuccess(created)
	}

	logger.Log.Infow("student import finished",
		"total", report.TotalRows,
		"succeeded", report.SuccessCount,
		"failed", report.ErrorCount,
	)
	return report
}

// ImportFaculty folds the rows into an ImportReport, creating one faculty
// account per valid row. The coordinator column is lowercased to keep the
// stored "true"/"false" strings uniform.
func (svc *ImportService) ImportFaculty(ctx context.Context, rows []models.ImportRow) models.ImportReport {
	report := newReport(len(rows))

	for _, row := range rows {
		fields, reason := svc.checkRow(row, facultyImportColumns)
		if reason != "" {
			report.AddError(row, reason)
			continue
		}

		existing, err := svc.facultyChecker.GetByUsernameOrEmail(ctx, ptr(fields["username"]), ptr(fields["email"]))
		if err != nil {
			report.AddError(row, err.Error())
			continue
		}
		if existing != nil {
			report.AddError(row, "faculty with this username or email already exists")
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(fields["password"]), bcrypt.DefaultCost)
		if err != nil {
			report.AddError(row, err.Error())
			continue
		}

		created, err := svc.facultyCreator.Create(ctx, &models.FacultyDB{
			Username:     fields["username"],
			Name:         strings.ToUpper(fields["name"]),
			Email:        fields["email"],
			Section:      strings.ToUpper(fields["section"]),
			Dept:         strings.ToUpper(fields["dept"]),
			Coordinator:  strings.ToLower(fields["coordinator"]),
			PasswordHash: string(hash),
			Role:         models.RoleFaculty,
		})
		if err != nil {
			report.AddError(row, err.Error())
			continue
		}

		report.AddSuccess(created)
	}

	logger.Log.Infow("faculty import finished",
		"total", report.TotalRows,
		"succeeded", report.SuccessCount,
		"failed", report.ErrorCount,
	)
	return report
}

// checkRow trims every cell, verifies the required columns are present and
// the email is well-formed, and lowercases the email. Returns the cleaned
// fields, or a non-empty reason when the row must be rejected.
func (svc *ImportService) checkRow(row models.ImportRow, required []string) (map[string]string, string) {
	fields := make(map[string]string, len(row.Fields))
	for k, v := range row.Fields {
		fields[k] = strings.TrimSpace(v)
	}

	var missing []string
	for _, col := range required {
		if fields[col] == "" {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, "missing required fields: " + strings.Join(missing, ", ")
	}

	fields["email"] = strings.ToLower(fields["email"])
	if err := svc.validate.Var(fields["email"], "email"); err != nil {
		return nil, "invalid email address"
	}

	return fields, ""
}

func newReport(total int) models.ImportReport {
	return models.ImportReport{
		TotalRows:         total,
		SuccessfulRecords: []any{},
		Errors:            []models.ImportRowError{},
	}
}

func ptr(s string) *string {
	return &s
}
