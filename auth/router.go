package auth

import (
	"net/http"
	"net/url"

	"microblog/models"

	"github.com/gin-gonic/gin"
)

const LoginPath = "/auth/login/"

// Handler runs with an authenticated user pre-loaded from the session
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper that gates routes behind authentication. Anonymous
// requests are redirected to the login page, carrying the intended
// destination so the user lands back there afterwards.
type Router struct {
	Base *gin.Engine
}

// RedirectToLogin sends an anonymous visitor to the login page with the
// current URL preserved in the next parameter
func RedirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	session := LoadSession(c)
	user := session.User()
	if user.ID == 0 {
		RedirectToLogin(c)
		return
	}
	handler(c, &user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
