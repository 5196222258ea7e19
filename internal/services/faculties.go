package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/campus-accounts/internal/logger"
	"github.com/campushub/campus-accounts/internal/models"
)

var ErrFacultyAlreadyExists = errors.New("faculty already exists")

// FacultyReader defines read-only operations for faculty.
type FacultyReader interface {
	GetByID(ctx context.Context, id int64) (*models.FacultyDB, error)
	GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.FacultyDB, error)
	List(ctx context.Context) ([]models.FacultyDB, error)
}

// FacultyWriter defines write operations for faculty.
type FacultyWriter interface {
	Create(ctx context.Context, faculty *models.FacultyDB) (*models.FacultyDB, error)
	Update(ctx context.Context, faculty *models.FacultyDB) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// SectionStudentLister returns students belonging to a section.
type SectionStudentLister interface {
	ListBySection(ctx context.Context, section string) ([]models.StudentDB, error)
}

// FacultyInput carries the fields of a new faculty account.
type FacultyInput struct {
	Username    string
	Name        string
	Email       string
	Section     string
	Dept        string
	Coordinator string
	Password    string
}

// FacultyUpdate carries a partial update; empty fields leave the stored
// values unchanged.
type FacultyUpdate struct {
	Username    string
	Name        string
	Email       string
	Section     string
	Dept        string
	Coordinator string
}

// FacultyService implements faculty account management, including the
// section roster lookup.
type FacultyService struct {
	reader   FacultyReader
	writer   FacultyWriter
	students SectionStudentLister
}

// NewFacultyService creates a new FacultyService instance.
func NewFacultyService(reader FacultyReader, writer FacultyWriter, students SectionStudentLister) *FacultyService {
	return &FacultyService{reader: reader, writer: writer, students: students}
}

// Create registers a new faculty member. Fails when one with the same
// username or email already exists. Coordinator defaults to "false".
func (svc *FacultyService) Create(ctx context.Context, in FacultyInput) (*models.FacultyDB, error) {
	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &in.Username, &in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check faculty exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrFacultyAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	coordinator := in.Coordinator
	if coordinator == "" {
		coordinator = "false"
	}

	faculty, err := svc.writer.Create(ctx, &models.FacultyDB{
		Username:     in.Username,
		Name:         in.Name,
		Email:        in.Email,
		Section:      in.Section,
		Dept:         in.Dept,
		Coordinator:  coordinator,
		PasswordHash: string(hash),
		Role:         models.RoleFaculty,
	})
	if err != nil {
		logger.Log.Errorw("failed to save faculty", "err", err)
		return nil, err
	}

	return faculty, nil
}

// Get returns the faculty member with the given id.
func (svc *FacultyService) Get(ctx context.Context, id int64) (*models.FacultyDB, error) {
	faculty, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, ErrAccountNotFound
	}
	return faculty, nil
}

// List returns all faculty; an empty collection reports ErrAccountNotFound.
func (svc *FacultyService) List(ctx context.Context) ([]models.FacultyDB, error) {
	faculties, err := svc.reader.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(faculties) == 0 {
		return nil, ErrAccountNotFound
	}
	return faculties, nil
}

// Update merges the non-empty fields of upd into the stored record.
func (svc *FacultyService) Update(ctx context.Context, id int64, upd FacultyUpdate) (*models.FacultyDB, error) {
	faculty, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, ErrAccountNotFound
	}

	if upd.Username != "" {
		faculty.Username = upd.Username
	}
	if upd.Name != "" {
		faculty.Name = upd.Name
	}
	if upd.Email != "" {
		faculty.Email = upd.Email
	}
	if upd.Section != "" {
		faculty.Section = upd.Section
	}
	if upd.Dept != "" {
		faculty.Dept = upd.Dept
	}
	if upd.Coordinator != "" {
		faculty.Coordinator = upd.Coordinator
	}

	if err := svc.writer.Update(ctx, faculty); err != nil {
		logger.Log.Errorw("failed to update faculty", "id", id, "err", err)
		return nil, err
	}

	return faculty, nil
}

// ChangePassword verifies the old password and replaces the stored hash.
func (svc *FacultyService) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	faculty, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if faculty == nil {
		return ErrAccountNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(faculty.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	return svc.writer.UpdatePassword(ctx, id, string(hash))
}

// SectionStudents resolves the calling faculty's section and returns the
// students belonging to it. An empty roster is a valid result.
func (svc *FacultyService) SectionStudents(ctx context.Context, facultyID int64) ([]models.StudentDB, error) {
	faculty, err := svc.reader.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, ErrAccountNotFound
	}

	return svc.students.ListBySection(ctx, faculty.Section)
}
