package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/campushub/campus-accounts/internal/models"
)

func TestStudentService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := StudentInput{
		Username: "sdoe",
		Name:     "S DOE",
		Email:    "sdoe@example.com",
		Section:  "A",
		Dept:     "ECE",
		Password: "pass123",
	}

	t.Run("success", func(t *testing.T) {
		mockReader := NewMockStudentReader(ctrl)
		mockWriter := NewMockStudentWriter(ctrl)
		svc := NewStudentService(mockReader, mockWriter)

		mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), &input.Username, &input.Email).Return(nil, nil)
		mockWriter.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *models.StudentDB) (*models.StudentDB, error) {
				assert.Equal(t, models.RoleStudent, s.Role)
				assert.NotEmpty(t, s.PasswordHash)
				assert.NotEqual(t, "pass123", s.PasswordHash)
				s.ID = 31
				return s, nil
			})

		student, err := svc.Create(context.Background(), input)
		assert.NoError(t, err)
		assert.Equal(t, int64(31), student.ID)
	})

	t.Run("duplicate", func(t *testing.T) {
		mockReader := NewMockStudentReader(ctrl)
		mockWriter := NewMockStudentWriter(ctrl)
		svc := NewStudentService(mockReader, mockWriter)

		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &input.Username, &input.Email).
			Return(&models.StudentDB{ID: 1}, nil)

		student, err := svc.Create(context.Background(), input)
		assert.ErrorIs(t, err, ErrStudentAlreadyExists)
		assert.Nil(t, student)
	})
}

func TestStudentService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockStudentReader(ctrl)
	mockWriter := NewMockStudentWriter(ctrl)
	svc := NewStudentService(mockReader, mockWriter)

	stored := &models.StudentDB{ID: 8, Username: "sdoe", Section: "A", Dept: "ECE"}
	mockReader.EXPECT().GetByID(gomock.Any(), int64(8)).Return(stored, nil)
	mockWriter.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.StudentDB) error {
			assert.Equal(t, "B", s.Section)
			assert.Equal(t, "sdoe", s.Username)
			return nil
		})

	got, err := svc.Update(context.Background(), 8, StudentUpdate{Section: "B"})
	assert.NoError(t, err)
	assert.Equal(t, "B", got.Section)
}

func TestStudentService_List_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockStudentReader(ctrl)
	mockWriter := NewMockStudentWriter(ctrl)
	svc := NewStudentService(mockReader, mockWriter)

	mockReader.EXPECT().List(gomock.Any()).Return([]models.StudentDB{}, nil)
	students, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Nil(t, students)
}
