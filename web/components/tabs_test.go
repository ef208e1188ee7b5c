package components

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestTabButtonClass(t *testing.T) {
	idle := TabButtonClass(false)
	active := TabButtonClass(true)

	if strings.Contains(idle, "text-gray-900") {
		t.Errorf("idle class = %q", idle)
	}
	if !strings.Contains(active, "text-gray-900") || strings.Contains(active, "text-gray-500") {
		t.Errorf("active class = %q, want text-gray-900 to replace text-gray-500", active)
	}
	if strings.Contains(active, "border-transparent") {
		t.Errorf("active class = %q still has border-transparent", active)
	}
}

func TestTabBar(t *testing.T) {
	var buf bytes.Buffer
	if err := TabBar(Tabs).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()

	if n := strings.Count(out, `role="tab"`); n != len(Tabs) {
		t.Errorf("rendered %d tabs, want %d", n, len(Tabs))
	}
	for _, tab := range Tabs {
		if !strings.Contains(out, tab.Label) || !strings.Contains(out, "showTab('"+tab.ID+"')") {
			t.Errorf("tab %q missing from output", tab.ID)
		}
	}
	if first := strings.Index(out, TabButtonClass(true)); first < 0 || first > strings.Index(out, Tabs[1].Label) {
		t.Error("first tab is not rendered active")
	}
}
