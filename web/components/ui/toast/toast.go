// Package toast renders short-lived notifications.
package toast

import (
	"context"
	"fmt"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

// ParseVariant maps a form value to a Variant. Unknown values are success.
func ParseVariant(s string) Variant {
	switch s {
	case "error", "destructive":
		return VariantError
	case "warning":
		return VariantWarning
	case "info":
		return VariantInfo
	default:
		return VariantSuccess
	}
}

type Position string

const (
	PositionTopRight    Position = "top-right"
	PositionBottomRight Position = "bottom-right"
	PositionBottomLeft  Position = "bottom-left"
)

type Props struct {
	Title         string
	Description   string
	Variant       Variant
	Position      Position
	// Duration in milliseconds before the toast removes itself. Zero keeps it.
	Duration      int
	Dismissible   bool
	ShowIndicator bool
	Icon          bool
	Class         string
}

var variantClasses = map[Variant]string{
	VariantSuccess: "border-green-500 text-green-900 bg-green-50",
	VariantError:   "border-red-500 text-red-900 bg-red-50",
	VariantWarning: "border-yellow-500 text-yellow-900 bg-yellow-50",
	VariantInfo:    "border-blue-500 text-blue-900 bg-blue-50",
}

var positionClasses = map[Position]string{
	PositionTopRight:    "top-4 right-4",
	PositionBottomRight: "bottom-4 right-4",
	PositionBottomLeft:  "bottom-4 left-4",
}

var icons = map[Variant]string{
	VariantSuccess: "✓",
	VariantError:   "✕",
	VariantWarning: "!",
	VariantInfo:    "i",
}

// Classes returns the merged class list for p. Props.Class wins over the
// defaults on conflicting utilities.
func (p Props) Classes() string {
	v := p.Variant
	if v == "" {
		v = VariantSuccess
	}
	pos := p.Position
	if pos == "" {
		pos = PositionBottomRight
	}
	return twmerge.Merge(
		"fixed z-50 flex w-80 items-start gap-3 rounded-lg border p-4 shadow-lg",
		positionClasses[pos],
		variantClasses[v],
		p.Class,
	)
}

// Toast renders p as a self-removing notification.
func Toast(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		v := p.Variant
		if v == "" {
			v = VariantSuccess
		}

		if _, err := fmt.Fprintf(w, `<div role="alert" class="%s" data-variant="%s" data-duration="%d">`,
			templ.EscapeString(p.Classes()), v, p.Duration); err != nil {
			return err
		}
		if p.Icon {
			fmt.Fprintf(w, `<span aria-hidden="true" class="font-bold">%s</span>`, icons[v])
		}
		io.WriteString(w, `<div class="flex-1">`)
		if p.Title != "" {
			fmt.Fprintf(w, `<p class="font-semibold">%s</p>`, templ.EscapeString(p.Title))
		}
		if p.Description != "" {
			fmt.Fprintf(w, `<p class="text-sm">%s</p>`, templ.EscapeString(p.Description))
		}
		io.WriteString(w, `</div>`)
		if p.Dismissible {
			io.WriteString(w, `<button type="button" class="text-sm opacity-60" onclick="this.parentElement.remove()" aria-label="Close">✕</button>`)
		}
		if p.ShowIndicator && p.Duration > 0 {
			fmt.Fprintf(w, `<div class="absolute bottom-0 left-0 h-1 bg-current opacity-30" style="animation: toast-progress %dms linear"></div>`, p.Duration)
		}
		if p.Duration > 0 {
			fmt.Fprintf(w, `<script>(function(s){if(s)setTimeout(function(){s.parentElement.remove()},%d)})(document.currentScript)</script>`, p.Duration)
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
