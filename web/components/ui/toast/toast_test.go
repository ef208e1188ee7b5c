package toast

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestParseVariant(t *testing.T) {
	tests := map[string]Variant{
		"error":       VariantError,
		"destructive": VariantError,
		"warning":     VariantWarning,
		"info":        VariantInfo,
		"success":     VariantSuccess,
		"":            VariantSuccess,
		"bogus":       VariantSuccess,
	}
	for in, want := range tests {
		if got := ParseVariant(in); got != want {
			t.Errorf("ParseVariant(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClassesOverride(t *testing.T) {
	got := Props{Variant: VariantError, Class: "w-96"}.Classes()
	fields := strings.Fields(got)

	has := func(c string) bool {
		for _, f := range fields {
			if f == c {
				return true
			}
		}
		return false
	}
	if has("w-80") || !has("w-96") {
		t.Errorf("Classes() = %q, want w-96 to replace w-80", got)
	}
	if !has("bg-red-50") || !has("bottom-4") {
		t.Errorf("Classes() = %q, missing variant or position defaults", got)
	}
}

func TestToastRender(t *testing.T) {
	tests := map[string]struct {
		props   Props
		want    []string
		notWant []string
	}{
		"plain": {
			props:   Props{Title: "Saved", Description: "QR Code saved"},
			want:    []string{`role="alert"`, `data-variant="success"`, "Saved", "QR Code saved"},
			notWant: []string{"<script>", `aria-label="Close"`},
		},
		"timed and dismissible": {
			props: Props{Title: "t", Duration: 2000, Dismissible: true, ShowIndicator: true},
			want:  []string{"<script>", "2000", `aria-label="Close"`, "toast-progress"},
		},
		"escaped": {
			props:   Props{Description: `<img src=x onerror=alert(1)>`},
			want:    []string{"&lt;img"},
			notWant: []string{"<img"},
		},
		"icon": {
			props: Props{Variant: VariantError, Icon: true},
			want:  []string{"✕", `data-variant="error"`},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Toast(tt.props).Render(context.Background(), &buf); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			out := buf.String()
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Errorf("output contains %q:\n%s", s, out)
				}
			}
		})
	}
}
