package feed

import (
	"fmt"
	"os"
	"testing"

	"microblog/config"
	"microblog/db"
	"microblog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = "file::memory:?cache=shared"
	config.COUNT_POSTS_ON_PAGE = 10
	db.Init()
	models.Init()
	os.Exit(m.Run())
}

func resetDB(t *testing.T) {
	t.Helper()
	for _, table := range []string{"follows", "comments", "posts", "groups", "users"} {
		if err := db.Instance.Exec("delete from " + table).Error; err != nil {
			t.Fatalf("reset %s: %v", table, err)
		}
	}
}

// createPost inserts directly so tests control pub_date
func createPost(t *testing.T, authorID uint64, groupID *uint64, text string, pubDate int64) models.Post {
	t.Helper()
	post := models.Post{Text: text, PubDate: pubDate, AuthorID: authorID, GroupID: groupID}
	require.NoError(t, db.Instance.Create(&post).Error)
	return post
}

func TestComposePaginationBoundaries(t *testing.T) {
	resetDB(t)
	author, err := models.UserCreate("author", "pass")
	require.NoError(t, err)
	for i := 0; i < 27; i++ {
		createPost(t, author.ID, nil, fmt.Sprintf("post %d", i), int64(1000+i))
	}

	t.Run("first page is full", func(t *testing.T) {
		page, err := Compose(Global(), 1)
		require.NoError(t, err)
		assert.Len(t, page.Posts, 10)
		assert.Equal(t, 1, page.Number)
		assert.Equal(t, 3, page.TotalPages)
		assert.EqualValues(t, 27, page.TotalPosts)
		assert.True(t, page.HasNext())
		assert.False(t, page.HasPrev())
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		page, err := Compose(Global(), 3)
		require.NoError(t, err)
		assert.Len(t, page.Posts, 7)
		assert.False(t, page.HasNext())
		assert.True(t, page.HasPrev())
	})

	t.Run("page below one clamps to the first page", func(t *testing.T) {
		page, err := Compose(Global(), 0)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Number)
		assert.Len(t, page.Posts, 10)
	})

	t.Run("page beyond the end clamps to the last page", func(t *testing.T) {
		page, err := Compose(Global(), 99)
		require.NoError(t, err)
		assert.Equal(t, 3, page.Number)
		assert.Len(t, page.Posts, 7)
	})
}

func TestComposeEmptyStore(t *testing.T) {
	resetDB(t)
	page, err := Compose(Global(), 1)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
}

func TestComposeOrdering(t *testing.T) {
	resetDB(t)
	author, err := models.UserCreate("author", "pass")
	require.NoError(t, err)
	newer := createPost(t, author.ID, nil, "newer", 2000)
	older := createPost(t, author.ID, nil, "older", 1000)
	tieFirst := createPost(t, author.ID, nil, "tie a", 3000)
	tieSecond := createPost(t, author.ID, nil, "tie b", 3000)

	page, err := Compose(Global(), 1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 4)
	assert.Equal(t, older.ID, page.Posts[0].ID, "oldest first")
	assert.Equal(t, newer.ID, page.Posts[1].ID)
	assert.Equal(t, tieFirst.ID, page.Posts[2].ID, "ties break by id")
	assert.Equal(t, tieSecond.ID, page.Posts[3].ID)
}

func TestComposeScopes(t *testing.T) {
	resetDB(t)
	authorA, err := models.UserCreate("a", "pass")
	require.NoError(t, err)
	authorB, err := models.UserCreate("b", "pass")
	require.NoError(t, err)
	reader, err := models.UserCreate("reader", "pass")
	require.NoError(t, err)
	group, err := models.GroupCreate("Cats", "cats", "")
	require.NoError(t, err)

	inGroup := createPost(t, authorA.ID, &group.ID, "by a in g", 1000)
	loose := createPost(t, authorB.ID, nil, "by b", 2000)

	ids := func(scope Scope) []uint64 {
		page, err := Compose(scope, 1)
		require.NoError(t, err)
		var out []uint64
		for _, p := range page.Posts {
			out = append(out, p.ID)
		}
		return out
	}

	assert.ElementsMatch(t, []uint64{inGroup.ID, loose.ID}, ids(Global()))
	assert.ElementsMatch(t, []uint64{inGroup.ID}, ids(ByGroup(group.ID)))
	assert.ElementsMatch(t, []uint64{inGroup.ID}, ids(ByAuthor(authorA.ID)))
	assert.ElementsMatch(t, []uint64{loose.ID}, ids(ByAuthor(authorB.ID)))

	t.Run("followed feed tracks the social graph", func(t *testing.T) {
		assert.Empty(t, ids(ByFollowed(reader.ID)))

		require.NoError(t, models.FollowAuthor(reader.ID, authorA.ID))
		assert.ElementsMatch(t, []uint64{inGroup.ID}, ids(ByFollowed(reader.ID)))

		require.NoError(t, models.FollowAuthor(reader.ID, authorB.ID))
		assert.ElementsMatch(t, []uint64{inGroup.ID, loose.ID}, ids(ByFollowed(reader.ID)))

		require.NoError(t, models.UnfollowAuthor(reader.ID, authorA.ID))
		assert.ElementsMatch(t, []uint64{loose.ID}, ids(ByFollowed(reader.ID)))
	})

	t.Run("author resolution is preloaded", func(t *testing.T) {
		page, err := Compose(ByGroup(group.ID), 1)
		require.NoError(t, err)
		require.Len(t, page.Posts, 1)
		assert.Equal(t, "a", page.Posts[0].Author.Username)
		require.NotNil(t, page.Posts[0].Group)
		assert.Equal(t, "cats", page.Posts[0].Group.Slug)
	})
}
