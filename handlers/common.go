package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.tmpl", gin.H{})
	c.Abort()
}

func serverError(c *gin.Context, err error) {
	c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{"error": err.Error()})
	c.Abort()
}

// pageNumber never fails: garbage and out-of-range values are clamped later
// by the feed composer
func pageNumber(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return n
}

func profileURL(username string) string {
	return "/profile/" + username + "/"
}

func postURL(id uint64) string {
	return fmt.Sprintf("/posts/%d/", id)
}
