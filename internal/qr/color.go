package qr

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseColor parses "#rrggbb", "rrggbb" or "transparent". Anything else,
// including the empty string, yields defaultColor.
func ParseColor(param string, defaultColor color.RGBA) color.RGBA {
	if param == "" {
		return defaultColor
	}

	if strings.EqualFold(param, "transparent") {
		return color.RGBA{0, 0, 0, 0}
	}

	param = strings.TrimPrefix(param, "#")
	if len(param) != 6 {
		return defaultColor
	}

	r, err1 := strconv.ParseUint(param[0:2], 16, 8)
	g, err2 := strconv.ParseUint(param[2:4], 16, 8)
	b, err3 := strconv.ParseUint(param[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return defaultColor
	}

	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
