package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func filled(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSaveAndOpen(t *testing.T) {
	tests := map[string]struct {
		path       string
		defaultExt string
		wantSuffix string
	}{
		"png with extension":     {path: "out.png", defaultExt: ".jpg", wantSuffix: "out.png"},
		"jpeg default extension": {path: "sketch", defaultExt: ".jpg", wantSuffix: "sketch.jpg"},
		"png default extension":  {path: "qr", defaultExt: ".png", wantSuffix: "qr.png"},
		"bmp":                    {path: "out.bmp", defaultExt: ".png", wantSuffix: "out.bmp"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			src := filled(12, 7, color.NRGBA{200, 30, 30, 255})

			got, err := Save(src, filepath.Join(dir, tt.path), tt.defaultExt)
			if err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			if !strings.HasSuffix(got, tt.wantSuffix) {
				t.Errorf("Save() path = %q, want suffix %q", got, tt.wantSuffix)
			}

			img, err := Open(got)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 7 {
				t.Errorf("Open() bounds = %v, want 12x7", img.Bounds())
			}
		})
	}
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()

	_, err := Save(filled(2, 2, color.White), filepath.Join(dir, "out.xyz"), ".png")
	if !errors.Is(err, ErrFormat) {
		t.Errorf("Save() error = %v, want %v", err, ErrFormat)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Save() left %d files behind", len(entries))
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := map[string]struct {
		path    string
		wantErr error
	}{
		"empty path":   {path: "", wantErr: ErrNoPath},
		"blank path":   {path: "   ", wantErr: ErrNoPath},
		"missing file": {path: filepath.Join(dir, "missing.jpg"), wantErr: ErrDecode},
		"garbage":      {path: garbage, wantErr: ErrDecode},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			img, err := Open(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Open() error = %v, want %v", err, tt.wantErr)
			}
			if img != nil {
				t.Error("Open() returned an image alongside an error")
			}
		})
	}
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, filled(3, 4, color.Black)); err != nil {
		t.Fatal(err)
	}

	img, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 4 {
		t.Errorf("Decode() bounds = %v, want 3x4", img.Bounds())
	}

	if _, err := Decode(strings.NewReader("nope")); !errors.Is(err, ErrDecode) {
		t.Errorf("Decode(garbage) error = %v, want %v", err, ErrDecode)
	}
}

func TestDecodeLimited(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, filled(30, 20, color.White)); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	tests := map[string]struct {
		data      []byte
		maxPixels int
		wantErr   error
	}{
		"under budget":   {data: data, maxPixels: 601},
		"exactly budget": {data: data, maxPixels: 600},
		"over budget":    {data: data, maxPixels: 599, wantErr: ErrTooLarge},
		"garbage":        {data: []byte("nope"), maxPixels: 600, wantErr: ErrDecode},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			img, err := DecodeLimited(bytes.NewReader(tt.data), tt.maxPixels)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DecodeLimited() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if img != nil {
					t.Error("DecodeLimited() returned an image alongside an error")
				}
				return
			}
			if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
				t.Errorf("DecodeLimited() bounds = %v, want 30x20", b)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := map[string]struct {
		format  string
		magic   []byte
		wantErr bool
	}{
		"png":     {format: "png", magic: []byte("\x89PNG")},
		"jpg":     {format: "jpg", magic: []byte{0xff, 0xd8}},
		"jpeg":    {format: "jpeg", magic: []byte{0xff, 0xd8}},
		"unknown": {format: "svg", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Encode(&buf, filled(4, 4, color.White), tt.format)
			if tt.wantErr {
				if !errors.Is(err, ErrFormat) {
					t.Errorf("Encode() error = %v, want %v", err, ErrFormat)
				}
				return
			}
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), tt.magic) {
				t.Errorf("Encode() output does not start with %x", tt.magic)
			}
		})
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"jpg":  "image/jpeg",
		".JPG": "image/jpeg",
		"png":  "image/png",
		"":     "image/png",
		"tiff": "image/tiff",
	}
	for in, want := range tests {
		if got := ContentType(in); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestThumbnail(t *testing.T) {
	tests := map[string]struct {
		w, h         int
		wantW, wantH int
	}{
		"landscape":     {w: 600, h: 400, wantW: 300, wantH: 200},
		"portrait":      {w: 100, h: 900, wantW: 33, wantH: 300},
		"already small": {w: 120, h: 80, wantW: 120, wantH: 80},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Thumbnail(filled(tt.w, tt.h, color.White), 300, 300).Bounds()
			if got.Dx() != tt.wantW || got.Dy() != tt.wantH {
				t.Errorf("Thumbnail() = %dx%d, want %dx%d", got.Dx(), got.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSideBySide(t *testing.T) {
	left := filled(10, 20, color.NRGBA{255, 0, 0, 255})
	right := filled(6, 8, color.NRGBA{0, 0, 255, 255})

	out := SideBySide(left, right)
	b := out.Bounds()
	if b.Dx() != 16 || b.Dy() != 20 {
		t.Fatalf("SideBySide() = %dx%d, want 16x20", b.Dx(), b.Dy())
	}

	check := func(x, y int, want color.NRGBA) {
		t.Helper()
		got := color.NRGBAModel.Convert(out.At(x, y)).(color.NRGBA)
		if got != want {
			t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
		}
	}
	check(0, 0, color.NRGBA{255, 0, 0, 255})
	check(9, 19, color.NRGBA{255, 0, 0, 255})
	check(10, 0, color.NRGBA{0, 0, 255, 255})
	check(15, 7, color.NRGBA{0, 0, 255, 255})
	check(12, 15, color.NRGBA{0, 0, 0, 255})
}
