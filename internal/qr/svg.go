package qr

import (
	"fmt"
	"math"
	"strings"
)

// SVG returns the code as vector markup with one square per dark module.
// Horizontal runs of dark modules are merged into a single rect. The logo is
// not part of the vector output.
func (c *Code) SVG() []byte {
	m := c.cfg.moduleSize
	offset := c.cfg.border * m
	total := c.Dimension()*m + 2*offset

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" shape-rendering="crispEdges">`,
		total, total, total, total)

	if c.cfg.bg.A > 0 {
		fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="%s"/>`, total, total, hexColor(c.cfg.bg))
	}

	fill := hexColor(c.cfg.fg)
	if g := c.cfg.gradient; g != nil {
		rad := g.angle * math.Pi / 180
		dx, dy := math.Cos(rad)/2, -math.Sin(rad)/2
		half := float64(total) / 2
		fmt.Fprintf(&sb, `<defs><linearGradient id="fg" gradientUnits="userSpaceOnUse" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f">`,
			half-dx*float64(total), half-dy*float64(total), half+dx*float64(total), half+dy*float64(total))
		fmt.Fprintf(&sb, `<stop offset="0" stop-color="%s"/><stop offset="1" stop-color="%s"/></linearGradient></defs>`,
			hexColor(g.from), hexColor(g.to))
		fill = "url(#fg)"
	}
	for y, row := range c.Modules {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
				offset+start*m, offset+y*m, (x-start)*m, m, fill)
		}
	}

	sb.WriteString(`</svg>`)
	return []byte(sb.String())
}
