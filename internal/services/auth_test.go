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

func TestAuthService_AdminLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "secret123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name      string
		email     string
		password  string
		admin     *models.AdminDB
		readerErr error
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			email:     "admin@example.com",
			password:  password,
			admin:     &models.AdminDB{ID: 1, Email: "admin@example.com", PasswordHash: string(hashed), Role: models.RoleAdmin},
			wantToken: "token123",
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: password,
			admin:    nil,
			wantErr:  ErrAccountNotFound,
		},
		{
			name:     "wrong password",
			email:    "admin@example.com",
			password: "wrong",
			admin:    &models.AdminDB{ID: 1, Email: "admin@example.com", PasswordHash: string(hashed), Role: models.RoleAdmin},
			wantErr:  ErrInvalidPassword,
		},
		{
			name:      "reader error",
			email:     "admin@example.com",
			password:  password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "token generation error",
			email:    "admin@example.com",
			password: password,
			admin:    &models.AdminDB{ID: 1, Email: "admin@example.com", PasswordHash: string(hashed), Role: models.RoleAdmin},
			jwtErr:   errors.New("no secret"),
			wantErr:  errors.New("no secret"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAdmins := NewMockAdminByEmailGetter(ctrl)
			mockFaculty := NewMockFacultyByUsernameGetter(ctrl)
			mockStudents := NewMockStudentByUsernameGetter(ctrl)
			mockJWT := NewMockTokenGenerator(ctrl)

			mockAdmins.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.admin, tt.readerErr)
			if tt.admin != nil && tt.readerErr == nil && tt.password == password {
				mockJWT.EXPECT().Generate(gomock.Any(), tt.admin.ID, tt.admin.Role).Return(tt.wantToken, tt.jwtErr)
			}

			svc := NewAuthService(mockAdmins, mockFaculty, mockStudents, mockJWT)
			token, admin, err := svc.AdminLogin(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, admin)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				assert.Equal(t, tt.admin, admin)
			}
		})
	}
}

func TestAuthService_FacultyLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "secret123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	faculty := &models.FacultyDB{ID: 2, Username: "fjones", PasswordHash: string(hashed), Role: models.RoleFaculty}

	mockAdmins := NewMockAdminByEmailGetter(ctrl)
	mockFaculty := NewMockFacultyByUsernameGetter(ctrl)
	mockStudents := NewMockStudentByUsernameGetter(ctrl)
	mockJWT := NewMockTokenGenerator(ctrl)

	mockFaculty.EXPECT().GetByUsername(gomock.Any(), "fjones").Return(faculty, nil)
	mockJWT.EXPECT().Generate(gomock.Any(), int64(2), models.RoleFaculty).Return("ftoken", nil)

	svc := NewAuthService(mockAdmins, mockFaculty, mockStudents, mockJWT)
	token, got, err := svc.FacultyLogin(context.Background(), "fjones", password)

	assert.NoError(t, err)
	assert.Equal(t, "ftoken", token)
	assert.Equal(t, faculty, got)
}

func TestAuthService_StudentLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "secret123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	mockAdmins := NewMockAdminByEmailGetter(ctrl)
	mockFaculty := NewMockFacultyByUsernameGetter(ctrl)
	mockStudents := NewMockStudentByUsernameGetter(ctrl)
	mockJWT := NewMockTokenGenerator(ctrl)

	svc := NewAuthService(mockAdmins, mockFaculty, mockStudents, mockJWT)

	// unknown username
	mockStudents.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
	_, _, err := svc.StudentLogin(context.Background(), "ghost", password)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	// wrong password
	student := &models.StudentDB{ID: 3, Username: "sdoe", PasswordHash: string(hashed), Role: models.RoleStudent}
	mockStudents.EXPECT().GetByUsername(gomock.Any(), "sdoe").Return(student, nil)
	_, _, err = svc.StudentLogin(context.Background(), "sdoe", "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	// success
	mockStudents.EXPECT().GetByUsername(gomock.Any(), "sdoe").Return(student, nil)
	mockJWT.EXPECT().Generate(gomock.Any(), int64(3), models.RoleStudent).Return("stoken", nil)
	token, got, err := svc.StudentLogin(context.Background(), "sdoe", password)
	assert.NoError(t, err)
	assert.Equal(t, "stoken", token)
	assert.Equal(t, student, got)
}
