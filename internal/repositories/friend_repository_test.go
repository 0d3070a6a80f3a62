package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mroshb/fitness_tracker/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAddFriend_CanonicalOrdering(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFriendRepository(db)

	// The pair is stored lower-id-first no matter which side initiated.
	mock.ExpectExec(`INSERT INTO "friends"`).
		WithArgs(2, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddFriend(5, 2)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFriend_Self(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewFriendRepository(db)

	err := repo.AddFriend(3, 3)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}

func TestAddFriend_AlreadyFriends(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFriendRepository(db)

	mock.ExpectExec(`INSERT INTO "friends"`).
		WillReturnError(gorm.ErrDuplicatedKey)

	err := repo.AddFriend(2, 5)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeAlreadyExists))
}

func TestRemoveFriend(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFriendRepository(db)

	mock.ExpectExec(`DELETE FROM "friends"`).
		WithArgs(5, 2, 2, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RemoveFriend(5, 2)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveFriend_NotFriends(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFriendRepository(db)

	mock.ExpectExec(`DELETE FROM "friends"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RemoveFriend(5, 2)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}

func TestGetFriends(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFriendRepository(db)

	rows := sqlmock.NewRows([]string{"user_id", "name", "email"}).
		AddRow(2, "Bob", "bob@example.com").
		AddRow(7, "Carol", "carol@example.com")
	mock.ExpectQuery(`SELECT users.user_id, users.name, users.email FROM "users" JOIN friends`).
		WithArgs(5, 5).
		WillReturnRows(rows)

	friends, err := repo.GetFriends(5)

	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, uint(2), friends[0].UserID)
	assert.Equal(t, "Bob", friends[0].Name)
	assert.Equal(t, "carol@example.com", friends[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFriends_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFriendRepository(db)

	mock.ExpectQuery(`SELECT users.user_id, users.name, users.email FROM "users" JOIN friends`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email"}))

	friends, err := repo.GetFriends(5)

	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestAreFriends(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFriendRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "friends"`).
		WithArgs(5, 2, 2, 5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := repo.AreFriends(5, 2)

	require.NoError(t, err)
	assert.True(t, ok)
}
