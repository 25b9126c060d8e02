package repository

import (
	"testing"
	"time"

	"codefix_backend/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "created_at", "updated_at"})
}

func TestCreateIfNewRegistersAndCountsOnce(t *testing.T) {
	gdb, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewUserRepository(gdb)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `users` .*FOR UPDATE").
		WillReturnRows(userColumns())
	mock.ExpectQuery("SELECT .* FROM `global_stats` .*FOR UPDATE").
		WillReturnRows(statsColumns().AddRow(1, 0, 4, now))
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("UPDATE `global_stats` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "hash", Role: model.Student}
	created, err := repo.CreateIfNew(user)
	require.NoError(t, err)

	assert.True(t, created)
	assert.Equal(t, uint(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A repeat registration commits without writing anything: no user
// insert, no student-counter bump.
func TestCreateIfNewSkipsExistingEmail(t *testing.T) {
	gdb, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewUserRepository(gdb)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `users` .*FOR UPDATE").
		WillReturnRows(userColumns().AddRow(3, "Ada", "ada@example.com", "hash", "student", now, now))
	mock.ExpectCommit()

	created, err := repo.CreateIfNew(&model.User{Name: "Ada", Email: "ada@example.com", Password: "other"})
	require.NoError(t, err)

	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}
