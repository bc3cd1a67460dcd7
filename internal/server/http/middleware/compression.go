package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	gingzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// CompressResponse gzips responses of GET and POST, the only methods here that
// write a body.
func CompressResponse(level int) gin.HandlerFunc {
	compress := gingzip.Gzip(level)
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodPost:
			compress(c)
		default:
			c.Next()
		}
	}
}

// DecompressBody unwraps gzip encoded request bodies before they reach the
// handlers. Any other content coding is refused with 415.
func DecompressBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch encoding := strings.ToLower(strings.TrimSpace(c.GetHeader("Content-Encoding"))); encoding {
		case "", "identity":
			c.Next()
			return
		case "gzip", "x-gzip":
		default:
			c.AbortWithStatus(http.StatusUnsupportedMediaType)
			return
		}

		body := c.Request.Body
		reader, err := gzip.NewReader(body)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer body.Close()
		defer reader.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.ContentLength = -1
		c.Request.Header.Del("Content-Encoding")
		c.Request.Header.Del("Content-Length")
		c.Next()
	}
}
