package components

import (
	"context"
	"fmt"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

const tabButtonClass = "px-4 py-2 text-lg border-b-2 border-transparent text-gray-500"

// TabButtonClass returns the classes of a tab button, highlighted when active.
func TabButtonClass(active bool) string {
	if !active {
		return tabButtonClass
	}
	return twmerge.Merge(tabButtonClass, "border-gray-900 text-gray-900")
}

// TabBar renders buttons for tabs; the first one starts active. Clicking a
// button shows the panel whose id is "panel-" + Tab.ID.
func TabBar(tabs []Tab) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<nav class="flex gap-2 border-b" role="tablist">`)
		for i, t := range tabs {
			fmt.Fprintf(w, `<button type="button" role="tab" data-tab="%s" class="%s" onclick="showTab('%s')">%s</button>`,
				templ.EscapeString(t.ID), TabButtonClass(i == 0), templ.EscapeString(t.ID), templ.EscapeString(t.Label))
		}
		_, err := io.WriteString(w, `</nav>`)
		return err
	})
}
