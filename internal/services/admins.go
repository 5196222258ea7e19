package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/campus-accounts/internal/logger"
	"github.com/campushub/campus-accounts/internal/models"
)

var (
	ErrAdminAlreadyExists = errors.New("admin already exists")
	ErrInvalidRole        = errors.New("invalid role")
)

// AdminReader defines read-only operations for admins.
type AdminReader interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminDB, error)
	GetByID(ctx context.Context, id int64) (*models.AdminDB, error)
	List(ctx context.Context) ([]models.AdminDB, error)
}

// AdminWriter defines write operations for admins.
type AdminWriter interface {
	Create(ctx context.Context, name, email, passwordHash string, role models.Role) (*models.AdminDB, error)
	Update(ctx context.Context, admin *models.AdminDB) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// AdminUpdate carries a partial update; empty fields leave the stored
// values unchanged (last-write-wins merge, no null-clearing).
type AdminUpdate struct {
	Name  string
	Email string
	Role  string
}

// AdminService implements admin account management.
type AdminService struct {
	reader AdminReader
	writer AdminWriter
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(reader AdminReader, writer AdminWriter) *AdminService {
	return &AdminService{reader: reader, writer: writer}
}

// Create registers a new admin with the default role. Fails when an admin
// with the same email already exists.
func (svc *AdminService) Create(ctx context.Context, name, email, password string) (*models.AdminDB, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check admin exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAdminAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	admin, err := svc.writer.Create(ctx, name, email, string(hash), models.RoleAdmin)
	if err != nil {
		logger.Log.Errorw("failed to save admin", "err", err)
		return nil, err
	}

	return admin, nil
}

// Get returns the admin with the given id.
func (svc *AdminService) Get(ctx context.Context, id int64) (*models.AdminDB, error) {
	admin, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAccountNotFound
	}
	return admin, nil
}

// List returns all admins. An empty collection reports ErrAccountNotFound,
// which the handler maps to 404; clients depend on this contract.
func (svc *AdminService) List(ctx context.Context) ([]models.AdminDB, error) {
	admins, err := svc.reader.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		return nil, ErrAccountNotFound
	}
	return admins, nil
}

// Update merges the non-empty fields of upd into the stored record.
func (svc *AdminService) Update(ctx context.Context, id int64, upd AdminUpdate) (*models.AdminDB, error) {
	admin, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAccountNotFound
	}

	if upd.Name != "" {
		admin.Name = upd.Name
	}
	if upd.Email != "" {
		admin.Email = upd.Email
	}
	if upd.Role != "" {
		role := models.Role(upd.Role)
		if !role.IsAdmin() {
			return nil, ErrInvalidRole
		}
		admin.Role = role
	}

	if err := svc.writer.Update(ctx, admin); err != nil {
		logger.Log.Errorw("failed to update admin", "id", id, "err", err)
		return nil, err
	}

	return admin, nil
}

// ChangePassword verifies the old password and replaces the stored hash.
func (svc *AdminService) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	admin, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrAccountNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	return svc.writer.UpdatePassword(ctx, id, string(hash))
}
