package middlewares

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImagesOnly rejects requests for uploaded files that are not images.
func ImagesOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		ext := strings.ToLower(filepath.Ext(c.Request.URL.Path))
		if !imageExtensions[ext] {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
