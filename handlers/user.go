package handlers

import (
	"net/http"
	"strings"

	"microblog/auth"
	"microblog/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type SignUpRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type LogInRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func SignUpForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", gin.H{"error": "", "username": ""})
}

func SignUp(c *gin.Context) {
	req := SignUpRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		c.HTML(http.StatusOK, "signup.tmpl", gin.H{"error": "Username and password are required", "username": req.Username})
		return
	}
	user, err := models.UserCreate(req.Username, req.Password)
	if err != nil {
		c.HTML(http.StatusOK, "signup.tmpl", gin.H{"error": "That username is taken", "username": req.Username})
		return
	}
	auth.LoadSession(c).LoginUser(user.ID)
	c.Redirect(http.StatusFound, "/")
}

func LogInForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{"error": "", "username": "", "next": c.Query("next")})
}

func LogIn(c *gin.Context) {
	req := LogInRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{"error": "Username and password are required", "username": req.Username, "next": c.PostForm("next")})
		return
	}
	user, success := models.UserLogin(req.Username, req.Password)
	if !success {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{"error": "Wrong username or password", "username": req.Username, "next": c.PostForm("next")})
		return
	}
	auth.LoadSession(c).LoginUser(user.ID)
	c.Redirect(http.StatusFound, safeNext(c.PostForm("next")))
}

func LogOut(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}

// safeNext only follows relative in-site destinations
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}
