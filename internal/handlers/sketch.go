package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrsketch/internal/imageio"
	"github.com/cristianadrielbraun/qrsketch/internal/studio"
)

// SketchHandler converts an uploaded photo into a pencil sketch.
//
// Form fields:
//
//	image     the photo (required)
//	view      sketch (default) or compare for original and sketch side by side
//	format    jpg (default) or png
//	download  1 to serve as an attachment
func (h *Handler) SketchHandler(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		jsonError(c, http.StatusBadRequest, studio.ErrNoImage.Error())
		return
	}

	f, err := fh.Open()
	if err != nil {
		jsonError(c, http.StatusBadRequest, fmt.Sprintf("Failed to read upload: %v", err))
		return
	}
	defer f.Close()

	img, err := imageio.DecodeLimited(f, h.maxPixels)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, imageio.ErrTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		jsonError(c, status, err.Error())
		return
	}

	sk, err := h.studio.ConvertToSketch(img)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, studio.ErrNoImage) {
			status = http.StatusBadRequest
		}
		jsonError(c, status, err.Error())
		return
	}

	var out image.Image = sk.Image
	name := "sketch"
	if c.DefaultPostForm("view", c.Query("view")) == "compare" {
		out = sk.Compare()
		name = "compare"
	}

	format := outputFormat(c.DefaultPostForm("format", c.Query("format")), "jpg", "jpg", "png")

	var buf bytes.Buffer
	if err := imageio.Encode(&buf, out, format); err != nil {
		jsonError(c, http.StatusInternalServerError, fmt.Sprintf("Failed to encode sketch: %v", err))
		return
	}

	setDownload(c, name+"."+format)
	c.Data(http.StatusOK, imageio.ContentType(format), buf.Bytes())
	fmt.Printf("[SKETCH] sent %s %s for %q\n", name, format, fh.Filename)
}
