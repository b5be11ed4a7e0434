package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"microblog/auth"
	"microblog/config"
	"microblog/feed"
	"microblog/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PostForm carries entered values back to the template on validation failure
type PostForm struct {
	Text    string
	GroupID string
	Error   string
}

func Index(c *gin.Context) {
	page, err := feed.Compose(feed.Global(), pageNumber(c))
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"page_obj": page,
		"user":     auth.LoadSession(c).User(),
	})
}

func GroupPosts(c *gin.Context) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if err != nil {
		notFound(c)
		return
	}
	page, err := feed.Compose(feed.ByGroup(group.ID), pageNumber(c))
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "group_list.tmpl", gin.H{
		"group":    group,
		"page_obj": page,
		"user":     auth.LoadSession(c).User(),
	})
}

func Profile(c *gin.Context) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		notFound(c)
		return
	}
	viewer := auth.LoadSession(c).User()
	page, err := feed.Compose(feed.ByAuthor(author.ID), pageNumber(c))
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "profile.tmpl", gin.H{
		"author":    author,
		"following": models.IsFollowing(viewer.ID, author.ID),
		"page_obj":  page,
		"user":      viewer,
	})
}

func PostDetail(c *gin.Context) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	comments, err := models.CommentsForPost(post.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "post_detail.tmpl", gin.H{
		"post":     post,
		"comments": comments,
		"form":     CommentForm{},
		"user":     auth.LoadSession(c).User(),
	})
}

func PostCreateForm(c *gin.Context, user *models.User) {
	renderPostForm(c, user, PostForm{}, false)
}

func PostCreate(c *gin.Context, user *models.User) {
	form := PostForm{
		Text:    c.PostForm("text"),
		GroupID: c.PostForm("group"),
	}
	groupID, ok := resolveGroup(&form)
	if form.Text == "" {
		form.Error = "Text must not be empty"
	}
	if form.Error != "" || !ok {
		renderPostForm(c, user, form, false)
		return
	}
	image, err := saveUploadedImage(c)
	if err != nil {
		serverError(c, err)
		return
	}
	if _, err := models.PostCreate(user.ID, form.Text, groupID, image); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(user.Username))
}

func PostEditForm(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, postURL(post.ID))
		return
	}
	form := PostForm{Text: post.Text}
	if post.GroupID != nil {
		form.GroupID = strconv.FormatUint(*post.GroupID, 10)
	}
	renderPostForm(c, user, form, true)
}

func PostEdit(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	// Non-authors are deflected to the post page, never shown an error
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, postURL(post.ID))
		return
	}
	form := PostForm{
		Text:    c.PostForm("text"),
		GroupID: c.PostForm("group"),
	}
	groupID, ok := resolveGroup(&form)
	if form.Text == "" {
		form.Error = "Text must not be empty"
	}
	if form.Error != "" || !ok {
		renderPostForm(c, user, form, true)
		return
	}
	image, err := saveUploadedImage(c)
	if err != nil {
		serverError(c, err)
		return
	}
	post.Text = form.Text
	post.GroupID = groupID
	if image != "" {
		post.Image = image
	}
	if err := post.Save(); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, postURL(post.ID))
}

func loadPost(c *gin.Context) (post models.Post, ok bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return post, false
	}
	post, err = models.PostByID(id)
	if err != nil {
		notFound(c)
		return post, false
	}
	return post, true
}

func renderPostForm(c *gin.Context, user *models.User, form PostForm, isEdit bool) {
	groups, _ := models.GroupList()
	c.HTML(http.StatusOK, "create_post.tmpl", gin.H{
		"form":    form,
		"groups":  groups,
		"is_edit": isEdit,
		"user":    user,
	})
}

// resolveGroup turns the submitted group select value into a group ID.
// Empty means no group; anything else must reference an existing group.
func resolveGroup(form *PostForm) (*uint64, bool) {
	if form.GroupID == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(form.GroupID, 10, 64)
	if err != nil {
		form.Error = "Unknown group"
		return nil, false
	}
	group, err := models.GroupByID(id)
	if err != nil {
		form.Error = "Unknown group"
		return nil, false
	}
	return &group.ID, true
}

func saveUploadedImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil // image is optional
	}
	if err := os.MkdirAll(config.MEDIA_DIR, 0o755); err != nil {
		return "", err
	}
	name := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(config.MEDIA_DIR, name)); err != nil {
		return "", err
	}
	return name, nil
}
