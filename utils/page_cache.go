package utils

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
)

type cachedPage struct {
	body        []byte
	contentType string
	expires     time.Time
}

// PageCache keeps fully rendered responses keyed by request URI, so every
// ?page= of a feed is cached on its own. Entries live for TTL and are served
// verbatim until then, no matter what happens to the underlying records.
type PageCache struct {
	TTL   time.Duration
	Now   func() time.Time // swappable in tests
	pages cmap.ConcurrentMap[string, cachedPage]
}

func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{
		TTL:   ttl,
		Now:   time.Now,
		pages: cmap.New[cachedPage](),
	}
}

type pageCaptureWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *pageCaptureWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

func (w *pageCaptureWriter) WriteString(s string) (int, error) {
	w.body = append(w.body, s...)
	return w.ResponseWriter.WriteString(s)
}

// Middleware serves a warm entry and aborts the chain, or captures the
// response of the wrapped handler. Two concurrent misses both recompute and
// the last writer wins.
func (pc *PageCache) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := c.Request.URL.RequestURI()
		if page, ok := pc.pages.Get(key); ok && pc.Now().Before(page.expires) {
			c.Header("cache-control", "private, max-age="+strconv.Itoa(int(pc.TTL/time.Second)))
			c.Data(http.StatusOK, page.contentType, page.body)
			c.Abort()
			return
		}
		writer := &pageCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()
		if writer.Status() != http.StatusOK {
			return
		}
		pc.pages.Set(key, cachedPage{
			body:        writer.body,
			contentType: writer.Header().Get("Content-Type"),
			expires:     pc.Now().Add(pc.TTL),
		})
	}
}

// Clear drops every cached page
func (pc *PageCache) Clear() {
	pc.pages.Clear()
}
