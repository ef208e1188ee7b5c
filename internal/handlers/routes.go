package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrsketch/web/pages"
)

// Register mounts the page and API routes on r.
func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	{
		api.GET("/qr", h.QRCodeHandler)
		api.POST("/sketch", h.SketchHandler)
		api.POST("/htmx/toast", h.GenericToast)
	}

	r.GET("/healthz", h.HealthHandler)
	r.GET("/", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		if err := pages.HomePage().Render(c.Request.Context(), c.Writer); err != nil {
			c.String(500, err.Error())
		}
	})
}
