package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrsketch/internal/imageio"
	"github.com/cristianadrielbraun/qrsketch/internal/qr"
)

// maxModuleSize bounds the size parameter.
const maxModuleSize = 64

// QRCodeHandler renders the url query parameter as a QR code.
//
// Query parameters:
//
//	url            text to encode (required)
//	format         png (default), jpg or svg
//	fg, bg         #rrggbb colors; bg may be "transparent"
//	colorMode      flat (default) or gradient
//	gradientStart  #rrggbb, first gradient color
//	gradientEnd    #rrggbb, last gradient color
//	qrShape        rectangle (default), circle, liquid, chain, hstripe or vstripe
//	size           pixels per module, 1..64
//	border         quiet zone in modules, 0..40
//	download       1 to serve as an attachment
func (h *Handler) QRCodeHandler(c *gin.Context) {
	rawURL := strings.TrimSpace(c.Query("url"))
	if rawURL == "" {
		jsonError(c, http.StatusBadRequest, "URL parameter is required")
		return
	}

	format := outputFormat(c.Query("format"), "png", "png", "jpg", "svg")

	opts := []qr.Option{
		qr.WithColors(
			qr.ParseColor(c.Query("fg"), qr.Black),
			qr.ParseColor(c.Query("bg"), qr.White),
		),
	}
	if c.Query("colorMode") == "gradient" {
		opts = append(opts, qr.WithGradient(45,
			qr.ParseColor(c.Query("gradientStart"), qr.Black),
			qr.ParseColor(c.Query("gradientEnd"), color.RGBA{255, 0, 0, 255}),
		))
	}

	shape, err := qr.ParseShape(c.Query("qrShape"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}
	opts = append(opts, qr.WithShape(shape))

	if v, err := strconv.Atoi(c.Query("size")); err == nil {
		if v < 1 || v > maxModuleSize {
			jsonError(c, http.StatusBadRequest, fmt.Sprintf("%v: size %d outside 1..%d", qr.ErrOption, v, maxModuleSize))
			return
		}
		opts = append(opts, qr.WithModuleSize(v))
	}
	if v, err := strconv.Atoi(c.Query("border")); err == nil {
		opts = append(opts, qr.WithBorder(v))
	}

	fmt.Printf("[QR] request start: url=%q format=%s qrShape=%s colorMode=%s\n",
		rawURL, format, shape, c.DefaultQuery("colorMode", "flat"))

	code, err := h.studio.GenerateQR(rawURL, opts...)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, qr.ErrEmptyText) || errors.Is(err, qr.ErrTextTooLong) ||
			errors.Is(err, qr.ErrCapacity) || errors.Is(err, qr.ErrOption) {
			status = http.StatusBadRequest
		}
		jsonError(c, status, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := code.Encode(&buf, format); err != nil {
		jsonError(c, http.StatusInternalServerError, fmt.Sprintf("Failed to encode QR code: %v", err))
		return
	}

	contentType := imageio.ContentType(format)
	if format == "svg" {
		contentType = "image/svg+xml"
	}

	setDownload(c, "qr."+format)
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, contentType, buf.Bytes())
	fmt.Printf("[QR] sent %s modules=%d\n", strings.ToUpper(format), code.Dimension())
}
