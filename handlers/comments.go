package handlers

import (
	"net/http"

	"microblog/models"

	"github.com/gin-gonic/gin"
)

type CommentForm struct {
	Text  string
	Error string
}

// AddComment appends a comment to an existing post. A failed validation
// re-renders the post page with the entered text intact and persists nothing.
func AddComment(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	form := CommentForm{Text: c.PostForm("text")}
	if form.Text == "" {
		form.Error = "Text must not be empty"
		comments, err := models.CommentsForPost(post.ID)
		if err != nil {
			serverError(c, err)
			return
		}
		c.HTML(http.StatusOK, "post_detail.tmpl", gin.H{
			"post":     post,
			"comments": comments,
			"form":     form,
			"user":     user,
		})
		return
	}
	if _, err := models.CommentCreate(post.ID, user.ID, form.Text); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, postURL(post.ID))
}
