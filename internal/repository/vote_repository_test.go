package repository

import (
	"errors"
	"testing"
	"time"

	"codefix_backend/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gdb, mock, func() { db.Close() }
}

func voteColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "lesson_id", "type", "created_at", "updated_at"})
}

func ratingColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "lesson_id", "score", "likes", "dislikes", "created_at", "updated_at"})
}

func statsColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "total_score", "total_students", "updated_at"})
}

// First vote on a lesson nobody has voted on: both aggregate rows are
// created zero-valued inside the transaction, and every read (with its
// row lock) happens before the first write. Expectations are matched
// in order, so a write issued before a read would fail the test.
func TestCastVoteFirstVote(t *testing.T) {
	gdb, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewVoteRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `user_votes` .*FOR UPDATE").
		WillReturnRows(voteColumns())
	mock.ExpectQuery("SELECT .* FROM `lesson_ratings` .*FOR UPDATE").
		WillReturnRows(ratingColumns())
	mock.ExpectExec("INSERT INTO `lesson_ratings`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT .* FROM `global_stats` .*FOR UPDATE").
		WillReturnRows(statsColumns())
	mock.ExpectExec("INSERT INTO `global_stats`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `user_votes`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE `lesson_ratings` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `global_stats` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	effect, err := repo.CastVote(1, "html-intro", model.VoteUp)
	require.NoError(t, err)

	assert.Equal(t, model.VoteUp, effect.Next)
	assert.Equal(t, 1, effect.Score)
	assert.Equal(t, 1, effect.Likes)
	assert.Equal(t, 0, effect.Dislikes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Clicking the same direction again removes the vote row and reverses
// the aggregates.
func TestCastVoteToggleOff(t *testing.T) {
	gdb, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewVoteRepository(gdb)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `user_votes` .*FOR UPDATE").
		WillReturnRows(voteColumns().AddRow(10, 1, "html-intro", "up", now, now))
	mock.ExpectQuery("SELECT .* FROM `lesson_ratings` .*FOR UPDATE").
		WillReturnRows(ratingColumns().AddRow(3, "html-intro", 1, 1, 0, now, now))
	mock.ExpectQuery("SELECT .* FROM `global_stats` .*FOR UPDATE").
		WillReturnRows(statsColumns().AddRow(1, 5, 12, now))
	mock.ExpectExec("DELETE FROM `user_votes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `lesson_ratings` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `global_stats` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	effect, err := repo.CastVote(1, "html-intro", model.VoteUp)
	require.NoError(t, err)

	assert.Equal(t, model.NoVote, effect.Next)
	assert.Equal(t, -1, effect.Score)
	assert.Equal(t, -1, effect.Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Switching direction updates the existing vote row in place.
func TestCastVoteSwitch(t *testing.T) {
	gdb, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewVoteRepository(gdb)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `user_votes` .*FOR UPDATE").
		WillReturnRows(voteColumns().AddRow(10, 1, "html-intro", "up", now, now))
	mock.ExpectQuery("SELECT .* FROM `lesson_ratings` .*FOR UPDATE").
		WillReturnRows(ratingColumns().AddRow(3, "html-intro", 1, 1, 0, now, now))
	mock.ExpectQuery("SELECT .* FROM `global_stats` .*FOR UPDATE").
		WillReturnRows(statsColumns().AddRow(1, 5, 12, now))
	mock.ExpectExec("UPDATE `user_votes` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `lesson_ratings` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `global_stats` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	effect, err := repo.CastVote(1, "html-intro", model.VoteDown)
	require.NoError(t, err)

	assert.Equal(t, model.VoteDown, effect.Next)
	assert.Equal(t, -2, effect.Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failure mid-transaction rolls everything back; no partial effect
// survives.
func TestCastVoteRollsBackOnFailure(t *testing.T) {
	gdb, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewVoteRepository(gdb)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `user_votes` .*FOR UPDATE").
		WillReturnRows(voteColumns())
	mock.ExpectQuery("SELECT .* FROM `lesson_ratings` .*FOR UPDATE").
		WillReturnRows(ratingColumns().AddRow(3, "html-intro", 0, 0, 0, now, now))
	mock.ExpectQuery("SELECT .* FROM `global_stats` .*FOR UPDATE").
		WillReturnRows(statsColumns().AddRow(1, 0, 0, now))
	mock.ExpectExec("INSERT INTO `user_votes`").
		WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	_, err := repo.CastVote(1, "html-intro", model.VoteUp)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserVoteAbsent(t *testing.T) {
	gdb, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewVoteRepository(gdb)

	mock.ExpectQuery("SELECT .* FROM `user_votes`").
		WillReturnRows(voteColumns())

	dir, err := repo.FindUserVote(1, "html-intro")
	require.NoError(t, err)
	assert.Equal(t, model.NoVote, dir)
}

func TestFindRatingDefaultsWhenMissing(t *testing.T) {
	gdb, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewVoteRepository(gdb)

	mock.ExpectQuery("SELECT .* FROM `lesson_ratings`").
		WillReturnRows(ratingColumns())

	rating, err := repo.FindRating("html-intro")
	require.NoError(t, err)
	assert.Equal(t, "html-intro", rating.LessonID)
	assert.Zero(t, rating.Score)
	assert.Zero(t, rating.Likes)
	assert.Zero(t, rating.Dislikes)
}
