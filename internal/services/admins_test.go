package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/campus-accounts/internal/models"
)

func TestAdminService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		email     string
		existing  *models.AdminDB
		readerErr error
		writerErr error
		wantErr   error
	}{
		{
			name:  "successful creation",
			email: "new@example.com",
		},
		{
			name:     "admin already exists",
			email:    "taken@example.com",
			existing: &models.AdminDB{ID: 1, Email: "taken@example.com"},
			wantErr:  ErrAdminAlreadyExists,
		},
		{
			name:      "reader error",
			email:     "new@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			email:     "new@example.com",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := NewMockAdminReader(ctrl)
			mockWriter := NewMockAdminWriter(ctrl)

			mockReader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.existing, tt.readerErr)
			if tt.existing == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Create(gomock.Any(), "New Admin", tt.email, gomock.Any(), models.RoleAdmin).
					DoAndReturn(func(_ context.Context, name, email, hash string, role models.Role) (*models.AdminDB, error) {
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						// stored hash must verify against the plain password
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pass123")))
						return &models.AdminDB{ID: 7, Name: name, Email: email, PasswordHash: hash, Role: role}, nil
					})
			}

			svc := NewAdminService(mockReader, mockWriter)
			admin, err := svc.Create(context.Background(), "New Admin", tt.email, "pass123")

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, admin)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(7), admin.ID)
				assert.Equal(t, models.RoleAdmin, admin.Role)
			}
		})
	}
}

func TestAdminService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockAdminReader(ctrl)
	mockWriter := NewMockAdminWriter(ctrl)
	svc := NewAdminService(mockReader, mockWriter)

	admin := &models.AdminDB{ID: 1, Name: "A"}
	mockReader.EXPECT().GetByID(gomock.Any(), int64(1)).Return(admin, nil)
	got, err := svc.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, admin, got)

	mockReader.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)
	got, err = svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Nil(t, got)
}

func TestAdminService_List_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockAdminReader(ctrl)
	mockWriter := NewMockAdminWriter(ctrl)
	svc := NewAdminService(mockReader, mockWriter)

	mockReader.EXPECT().List(gomock.Any()).Return(nil, nil)
	admins, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Nil(t, admins)
}

func TestAdminService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := models.AdminDB{ID: 5, Name: "Old Name", Email: "old@example.com", Role: models.RoleAdmin}

	tests := []struct {
		name    string
		upd     AdminUpdate
		want    models.AdminDB
		wantErr error
	}{
		{
			name: "merge non-empty fields",
			upd:  AdminUpdate{Name: "New Name"},
			want: models.AdminDB{ID: 5, Name: "New Name", Email: "old@example.com", Role: models.RoleAdmin},
		},
		{
			name: "promote to superadmin",
			upd:  AdminUpdate{Role: "superadmin"},
			want: models.AdminDB{ID: 5, Name: "Old Name", Email: "old@example.com", Role: models.RoleSuperAdmin},
		},
		{
			name:    "non-admin role rejected",
			upd:     AdminUpdate{Role: "student"},
			wantErr: ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := NewMockAdminReader(ctrl)
			mockWriter := NewMockAdminWriter(ctrl)
			svc := NewAdminService(mockReader, mockWriter)

			record := stored
			mockReader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&record, nil)
			if tt.wantErr == nil {
				mockWriter.EXPECT().Update(gomock.Any(), &tt.want).Return(nil)
			}

			got, err := svc.Update(context.Background(), 5, tt.upd)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, &tt.want, got)
			}
		})
	}
}

func TestAdminService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockAdminReader(ctrl)
	mockWriter := NewMockAdminWriter(ctrl)
	svc := NewAdminService(mockReader, mockWriter)

	mockReader.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, nil)
	got, err := svc.Update(context.Background(), 404, AdminUpdate{Name: "X"})
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Nil(t, got)
}

func TestAdminService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oldPassword := "old-secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(oldPassword), bcrypt.DefaultCost)
	admin := &models.AdminDB{ID: 9, PasswordHash: string(hashed)}

	t.Run("success", func(t *testing.T) {
		mockReader := NewMockAdminReader(ctrl)
		mockWriter := NewMockAdminWriter(ctrl)
		svc := NewAdminService(mockReader, mockWriter)

		mockReader.EXPECT().GetByID(gomock.Any(), int64(9)).Return(admin, nil)
		mockWriter.EXPECT().
			UpdatePassword(gomock.Any(), int64(9), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-secret")))
				return nil
			})

		err := svc.ChangePassword(context.Background(), 9, oldPassword, "new-secret")
		assert.NoError(t, err)
	})

	t.Run("wrong old password", func(t *testing.T) {
		mockReader := NewMockAdminReader(ctrl)
		mockWriter := NewMockAdminWriter(ctrl)
		svc := NewAdminService(mockReader, mockWriter)

		mockReader.EXPECT().GetByID(gomock.Any(), int64(9)).Return(admin, nil)

		err := svc.ChangePassword(context.Background(), 9, "not-the-old-one", "new-secret")
		assert.ErrorIs(t, err, ErrInvalidOldPassword)
	})

	t.Run("account missing", func(t *testing.T) {
		mockReader := NewMockAdminReader(ctrl)
		mockWriter := NewMockAdminWriter(ctrl)
		svc := NewAdminService(mockReader, mockWriter)

		mockReader.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, nil)

		err := svc.ChangePassword(context.Background(), 9, oldPassword, "new-secret")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}
