package handlers

import (
	"errors"
	"net/http"

	"microblog/feed"
	"microblog/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FollowIndex shows posts by the authors the user follows
func FollowIndex(c *gin.Context, user *models.User) {
	page, err := feed.Compose(feed.ByFollowed(user.ID), pageNumber(c))
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "follow.tmpl", gin.H{
		"page_obj": page,
		"user":     user,
	})
}

// ProfileFollow subscribes the user to an author. Following twice is a no-op
// and so is trying to follow yourself.
func ProfileFollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		notFound(c)
		return
	}
	if err := models.FollowAuthor(user.ID, author.ID); err != nil && !errors.Is(err, models.ErrSelfFollow) {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(author.Username))
}

// ProfileUnfollow removes the edge; unfollowing someone never followed is a 404
func ProfileUnfollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		notFound(c)
		return
	}
	if err := models.UnfollowAuthor(user.ID, author.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(author.Username))
}
