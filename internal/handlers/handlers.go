package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrsketch/internal/imageio"
	"github.com/cristianadrielbraun/qrsketch/internal/studio"
)

// Handler holds the dependencies of the HTTP handlers. Every request gets its
// artifacts back in the response; nothing is kept between requests.
type Handler struct {
	studio *studio.Studio

	// maxPixels bounds the decoded size of uploaded images.
	maxPixels int
}

// New returns a Handler backed by s. A nil s uses a Studio without logging.
func New(s *studio.Studio) *Handler {
	if s == nil {
		s = &studio.Studio{}
	}
	return &Handler{studio: s, maxPixels: imageio.MaxPixels}
}

// jsonError aborts the request with {"error": msg}.
func jsonError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// setDownload marks the response as a file download when the request asks for
// one with download=1.
func setDownload(c *gin.Context, name string) {
	if c.Query("download") == "1" || c.PostForm("download") == "1" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}
}

// outputFormat normalizes a format parameter against the allowed set,
// falling back to def.
func outputFormat(param, def string, allowed ...string) string {
	f := strings.ToLower(strings.TrimPrefix(param, "."))
	if f == "jpeg" {
		f = "jpg"
	}
	for _, a := range allowed {
		if f == a {
			return f
		}
	}
	return def
}

// HealthHandler reports that the server is up.
func (h *Handler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
