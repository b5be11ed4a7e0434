package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFollowAuthor(t *testing.T) {
	resetDB(t)
	reader, err := UserCreate("reader", "pass")
	require.NoError(t, err)
	author, err := UserCreate("author", "pass")
	require.NoError(t, err)

	t.Run("follow is idempotent", func(t *testing.T) {
		require.NoError(t, FollowAuthor(reader.ID, author.ID))
		require.NoError(t, FollowAuthor(reader.ID, author.ID))
		assert.EqualValues(t, 1, FollowCount(reader.ID, author.ID))
	})

	t.Run("self follow creates nothing", func(t *testing.T) {
		err := FollowAuthor(reader.ID, reader.ID)
		assert.ErrorIs(t, err, ErrSelfFollow)
		assert.EqualValues(t, 0, FollowCount(reader.ID, reader.ID))
	})
}

func TestUnfollowAuthor(t *testing.T) {
	resetDB(t)
	reader, err := UserCreate("reader", "pass")
	require.NoError(t, err)
	author, err := UserCreate("author", "pass")
	require.NoError(t, err)

	t.Run("missing edge is not found", func(t *testing.T) {
		err := UnfollowAuthor(reader.ID, author.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("existing edge is removed", func(t *testing.T) {
		require.NoError(t, FollowAuthor(reader.ID, author.ID))
		require.NoError(t, UnfollowAuthor(reader.ID, author.ID))
		assert.EqualValues(t, 0, FollowCount(reader.ID, author.ID))
	})
}

func TestIsFollowing(t *testing.T) {
	resetDB(t)
	reader, err := UserCreate("reader", "pass")
	require.NoError(t, err)
	author, err := UserCreate("author", "pass")
	require.NoError(t, err)
	require.NoError(t, FollowAuthor(reader.ID, author.ID))

	assert.True(t, IsFollowing(reader.ID, author.ID))
	assert.False(t, IsFollowing(author.ID, reader.ID), "edges are directed")
	assert.False(t, IsFollowing(0, author.ID), "anonymous never follows")
	assert.False(t, IsFollowing(author.ID, author.ID), "self is never followed")
}
