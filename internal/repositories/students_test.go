package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/campushub/campus-accounts/internal/models"
)

var now = time.Now()

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "pgx"), mock
}

func studentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "username", "name", "email", "section", "dept",
		"password_hash", "role", "created_at", "updated_at",
	})
}

func TestStudentReadRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentReadRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM students WHERE username = \$1 LIMIT 1`).
		WithArgs("sdoe").
		WillReturnRows(studentRows().AddRow(
			3, "sdoe", "S DOE", "sdoe@example.com", "A", "ECE",
			"hash", "student", now, now,
		))

	student, err := repo.GetByUsername(context.Background(), "sdoe")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), student.ID)
	assert.Equal(t, "sdoe", student.Username)
	assert.Equal(t, models.RoleStudent, student.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentReadRepository_GetByUsername_Absent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentReadRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM students WHERE username = \$1 LIMIT 1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	student, err := repo.GetByUsername(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, student)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentReadRepository(db)

	username := "sdoe"
	email := "sdoe@example.com"

	mock.ExpectQuery(`SELECT (.+) FROM students WHERE (.+) OR (.+) LIMIT 1`).
		WithArgs(&username, &email).
		WillReturnRows(studentRows().AddRow(
			3, "sdoe", "S DOE", "sdoe@example.com", "A", "ECE",
			"hash", "student", now, now,
		))

	student, err := repo.GetByUsernameOrEmail(context.Background(), &username, &email)
	assert.NoError(t, err)
	assert.Equal(t, "sdoe", student.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentReadRepository_ListBySection(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentReadRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM students WHERE section = \$1 ORDER BY id`).
		WithArgs("B").
		WillReturnRows(studentRows().
			AddRow(1, "a", "A", "a@example.com", "B", "CSE", "h", "student", now, now).
			AddRow(2, "b", "B", "b@example.com", "B", "CSE", "h", "student", now, now))

	students, err := repo.ListBySection(context.Background(), "B")
	assert.NoError(t, err)
	assert.Len(t, students, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentWriteRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentWriteRepository(db)

	input := &models.StudentDB{
		Username: "sdoe", Name: "S DOE", Email: "sdoe@example.com",
		Section: "A", Dept: "ECE", PasswordHash: "hash", Role: models.RoleStudent,
	}

	mock.ExpectQuery(`INSERT INTO students (.+) RETURNING`).
		WithArgs("sdoe", "S DOE", "sdoe@example.com", "A", "ECE", "hash", models.RoleStudent).
		WillReturnRows(studentRows().AddRow(
			10, "sdoe", "S DOE", "sdoe@example.com", "A", "ECE",
			"hash", "student", now, now,
		))

	created, err := repo.Create(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentWriteRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentWriteRepository(db)

	mock.ExpectExec(`UPDATE students SET`).
		WithArgs("sdoe", "S DOE", "sdoe@example.com", "B", "ECE", int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &models.StudentDB{
		ID: 10, Username: "sdoe", Name: "S DOE",
		Email: "sdoe@example.com", Section: "B", Dept: "ECE",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentWriteRepository_UpdatePassword(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentWriteRepository(db)

	mock.ExpectExec(`UPDATE students SET password_hash = \$1`).
		WithArgs("newhash", int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePassword(context.Background(), 10, "newhash")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentReadRepository_List_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentReadRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM students ORDER BY id`).
		WillReturnError(errors.New("db down"))

	students, err := repo.List(context.Background())
	assert.Error(t, err)
	assert.Nil(t, students)
	assert.NoError(t, mock.ExpectationsWereMet())
}
