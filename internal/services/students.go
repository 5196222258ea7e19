package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/campus-accounts/internal/logger"
	"github.com/campushub/campus-accounts/internal/models"
)

var ErrStudentAlreadyExists = errors.New("student already exists")

// StudentReader defines read-only operations for students.
type StudentReader interface {
	GetByID(ctx context.Context, id int64) (*models.StudentDB, error)
	GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.StudentDB, error)
	List(ctx context.Context) ([]models.StudentDB, error)
}

// StudentWriter defines write operations for students.
type StudentWriter interface {
	Create(ctx context.Context, student *models.StudentDB) (*models.StudentDB, error)
	Update(ctx context.Context, student *models.StudentDB) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// StudentInput carries the fields of a new student account.
type StudentInput struct {
	Username string
	Name     string
	Email    string
	Section  string
	Dept     string
	Password string
}

// StudentUpdate carries a partial update; empty fields leave the stored
// values unchanged.
type StudentUpdate struct {
	Username string
	Name     string
	Email    string
	Section  string
	Dept     string
}

// StudentService implements student account management.
type StudentService struct {
	reader StudentReader
	writer StudentWriter
}

// NewStudentService creates a new StudentService instance.
func NewStudentService(reader StudentReader, writer StudentWriter) *StudentService {
	return &StudentService{reader: reader, writer: writer}
}

// Create registers a new student. Fails when a student with the same
// username or email already exists.
func (svc *StudentService) Create(ctx context.Context, in StudentInput) (*models.StudentDB, error) {
	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &in.Username, &in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check student exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrStudentAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	student, err := svc.writer.Create(ctx, &models.StudentDB{
		Username:     in.Username,
		Name:         in.Name,
		Email:        in.Email,
		Section:      in.Section,
		Dept:         in.Dept,
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
	})
	if err != nil {
		logger.Log.Errorw("failed to save student", "err", err)
		return nil, err
	}

	return student, nil
}

// Get returns the student with the given id.
func (svc *StudentService) Get(ctx context.Context, id int64) (*models.StudentDB, error) {
	student, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrAccountNotFound
	}
	return student, nil
}

// List returns all students; an empty collection reports ErrAccountNotFound.
func (svc *StudentService) List(ctx context.Context) ([]models.StudentDB, error) {
	students, err := svc.reader.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, ErrAccountNotFound
	}
	return students, nil
}

// Update merges the non-empty fields of upd into the stored record.
func (svc *StudentService) Update(ctx context.Context, id int64, upd StudentUpdate) (*models.StudentDB, error) {
	student, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrAccountNotFound
	}

	if upd.Username != "" {
		student.Username = upd.Username
	}
	if upd.Name != "" {
		student.Name = upd.Name
	}
	if upd.Email != "" {
		student.Email = upd.Email
	}
	if upd.Section != "" {
		student.Section = upd.Section
	}
	if upd.Dept != "" {
		student.Dept = upd.Dept
	}

	if err := svc.writer.Update(ctx, student); err != nil {
		logger.Log.Errorw("failed to update student", "id", id, "err", err)
		return nil, err
	}

	return student, nil
}

// ChangePassword verifies the old password and replaces the stored hash.
func (svc *StudentService) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	student, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if student == nil {
		return ErrAccountNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	return svc.writer.UpdatePassword(ctx, id, string(hash))
}
