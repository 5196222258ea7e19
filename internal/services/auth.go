package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/campus-accounts/internal/logger"
	"github.com/campushub/campus-accounts/internal/models"
)

// Error variables shared across the account services.
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidOldPassword = errors.New("invalid old password")
)

// AdminByEmailGetter looks up admins by their login key.
type AdminByEmailGetter interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminDB, error)
}

// FacultyByUsernameGetter looks up faculty by their login key.
type FacultyByUsernameGetter interface {
	GetByUsername(ctx context.Context, username string) (*models.FacultyDB, error)
}

// StudentByUsernameGetter looks up students by their login key.
type StudentByUsernameGetter interface {
	GetByUsername(ctx context.Context, username string) (*models.StudentDB, error)
}

// TokenGenerator issues a signed bearer token for an account.
type TokenGenerator interface {
	Generate(ctx context.Context, id int64, role models.Role) (string, error)
}

// AuthService exchanges credentials for bearer tokens, one login per
// account variant. Admins log in by email, faculty and students by
// username.
type AuthService struct {
	admins    AdminByEmailGetter
	faculties FacultyByUsernameGetter
	students  StudentByUsernameGetter
	jwt       TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(admins AdminByEmailGetter, faculties FacultyByUsernameGetter, students StudentByUsernameGetter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		admins:    admins,
		faculties: faculties,
		students:  students,
		jwt:       jwt,
	}
}

// AdminLogin authenticates an admin and returns a token plus the record.
func (svc *AuthService) AdminLogin(ctx context.Context, email, password string) (string, *models.AdminDB, error) {
	admin, err := svc.admins.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get admin", "err", err)
		return "", nil, err
	}
	if admin == nil {
		return "", nil, ErrAccountNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid admin credentials", "email", email)
		return "", nil, ErrInvalidPassword
	}

	token, err := svc.jwt.Generate(ctx, admin.ID, admin.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, admin, nil
}

// FacultyLogin authenticates a faculty member and returns a token plus the record.
func (svc *AuthService) FacultyLogin(ctx context.Context, username, password string) (string, *models.FacultyDB, error) {
	faculty, err := svc.faculties.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get faculty", "err", err)
		return "", nil, err
	}
	if faculty == nil {
		return "", nil, ErrAccountNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(faculty.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid faculty credentials", "username", username)
		return "", nil, ErrInvalidPassword
	}

	token, err := svc.jwt.Generate(ctx, faculty.ID, faculty.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, faculty, nil
}

// StudentLogin authenticates a student and returns a token plus the record.
func (svc *AuthService) StudentLogin(ctx context.Context, username, password string) (string, *models.StudentDB, error) {
	student, err := svc.students.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get student", "err", err)
		return "", nil, err
	}
	if student == nil {
		return "", nil, ErrAccountNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid student credentials", "username", username)
		return "", nil, ErrInvalidPassword
	}

	token, err := svc.jwt.Generate(ctx, student.ID, student.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, student, nil
}
