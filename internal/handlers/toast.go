package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrsketch/internal/imageio"
	"github.com/cristianadrielbraun/qrsketch/internal/qr"
	"github.com/cristianadrielbraun/qrsketch/internal/studio"
	"github.com/cristianadrielbraun/qrsketch/web/components/ui/toast"
)

// notices maps the codes the page sends for failed actions to their message.
var notices = map[string]string{
	"empty-url": qr.ErrEmptyText.Error(),
	"no-qr":     studio.ErrNoQRCode.Error(),
	"no-image":  studio.ErrNoImage.Error(),
	"no-sketch": studio.ErrNoSketch.Error(),
	"bad-image": imageio.ErrDecode.Error(),
	"too-large": imageio.ErrTooLarge.Error(),
}

// GenericToast returns a Toast component rendered as HTML for HTMX swaps.
//
// A known code form field fills in an error title and description, so the
// page can report a rejected action without duplicating the messages.
func (h *Handler) GenericToast(c *gin.Context) {
	props := toast.Props{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Variant:     toast.ParseVariant(c.PostForm("variant")),
		Position:    toast.PositionBottomRight,
		Duration:    2000,
		Dismissible: c.PostForm("dismissible") == "on",
		Icon:        true,
	}

	if msg, ok := notices[c.PostForm("code")]; ok {
		props.Title = "Error"
		props.Description = msg
		props.Variant = toast.VariantError
		props.Duration = 4000
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	_ = toast.Toast(props).Render(c.Request.Context(), c.Writer)
}
