package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "lesson_id", "created_at", "updated_at"})
}

func TestMarkCompleteCreatesRow(t *testing.T) {
	gdb, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewProgressRepository(gdb)

	mock.ExpectQuery("SELECT .* FROM `lesson_completions`").
		WillReturnRows(completionColumns())
	mock.ExpectExec("INSERT INTO `lesson_completions`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.MarkComplete(1, "html-intro"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkCompleteIsIdempotent(t *testing.T) {
	gdb, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewProgressRepository(gdb)

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `lesson_completions`").
		WillReturnRows(completionColumns().AddRow(5, 1, "html-intro", now, now))

	// no INSERT expected
	require.NoError(t, repo.MarkComplete(1, "html-intro"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCompletions(t *testing.T) {
	gdb, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewProgressRepository(gdb)

	mock.ExpectQuery("SELECT `lesson_id` FROM `lesson_completions`").
		WillReturnRows(sqlmock.NewRows([]string{"lesson_id"}).
			AddRow("html-intro").
			AddRow("html-lists"))

	ids, err := repo.ListCompletions(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"html-intro", "html-lists"}, ids)
}

func TestDeleteCompletionAbsentRowIsNoop(t *testing.T) {
	gdb, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewProgressRepository(gdb)

	mock.ExpectExec("DELETE FROM `lesson_completions`").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteCompletion(1, "never-done"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
