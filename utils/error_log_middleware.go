package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type errorLogWriter struct {
	gin.ResponseWriter
	gc *gin.Context
}

func (w errorLogWriter) Write(b []byte) (int, error) {
	status := w.gc.Writer.Status()
	if status >= 400 {
		log.Debug().
			Int("status", status).
			Str("method", w.gc.Request.Method).
			Str("path", w.gc.Request.URL.Path).
			Str("body", string(b)).
			Msg("error response")
	}
	return w.ResponseWriter.Write(b)
}

// ErrorLogMiddleware doesn't work with GZIP
func ErrorLogMiddleware(c *gin.Context) {
	blw := &errorLogWriter{gc: c, ResponseWriter: c.Writer}
	c.Writer = blw
	c.Next()
}
