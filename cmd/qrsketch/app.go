package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cristianadrielbraun/qrsketch/internal/imageio"
	"github.com/cristianadrielbraun/qrsketch/internal/qr"
	"github.com/cristianadrielbraun/qrsketch/internal/studio"
)

// ExitFunc is a function type for exiting the program
type ExitFunc func(code int)

// App represents the command-line application
type App struct {
	Studio      *studio.Studio
	Exit        ExitFunc
	Stdout      io.Writer
	Stderr      io.Writer
	VersionInfo VersionInfo
}

// VersionInfo contains version information
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewDefaultApp creates a new App with default dependencies
func NewDefaultApp() *App {
	return &App{
		Studio: &studio.Studio{},
		Exit:   os.Exit,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		VersionInfo: VersionInfo{
			Version: version,
			Commit:  commit,
			Date:    date,
		},
	}
}

// QRRequest describes one qr invocation. A non-empty GradientEnd fades the
// modules from Foreground to that color.
type QRRequest struct {
	Text        string
	Output      string
	Foreground  string
	Background  string
	ModuleSize  int
	Border      int
	Logo        string
	Shape       string
	GradientEnd string
}

// GenerateQR renders and saves a QR code.
func (a *App) GenerateQR(req QRRequest) error {
	fg := qr.ParseColor(req.Foreground, qr.Black)
	shape, err := qr.ParseShape(req.Shape)
	if err != nil {
		return err
	}

	opts := []qr.Option{
		qr.WithColors(fg, qr.ParseColor(req.Background, qr.White)),
		qr.WithModuleSize(req.ModuleSize),
		qr.WithBorder(req.Border),
		qr.WithShape(shape),
	}
	if req.GradientEnd != "" {
		opts = append(opts, qr.WithGradient(45, fg, qr.ParseColor(req.GradientEnd, fg)))
	}
	if req.Logo != "" {
		logo, err := qr.LoadLogo(req.Logo)
		if err != nil {
			return err
		}
		opts = append(opts, qr.WithLogo(logo))
	}

	code, err := a.Studio.GenerateQR(req.Text, opts...)
	if err != nil {
		return err
	}
	path, err := a.Studio.SaveQR(code, req.Output)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Stdout, "✅ QR Code saved to %s\n", path)
	return nil
}

// SketchRequest describes one sketch invocation.
type SketchRequest struct {
	Input   string
	Output  string
	Compare string
}

// ConvertToSketch converts the input photo and saves the sketch, plus the
// side-by-side comparison when requested.
func (a *App) ConvertToSketch(req SketchRequest) error {
	img, err := a.Studio.OpenImage(req.Input)
	if err != nil {
		return err
	}
	sk, err := a.Studio.ConvertToSketch(img)
	if err != nil {
		return err
	}

	path, err := a.Studio.SaveSketch(sk, req.Output)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Stdout, "✅ Sketch saved at: %s\n", path)

	if req.Compare != "" {
		cmp, err := imageio.Save(sk.Compare(), req.Compare, studio.SketchExt)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Stdout, "✅ Comparison saved at: %s\n", cmp)
	}
	return nil
}

// ShowVersion prints version information
func (a *App) ShowVersion() {
	fmt.Fprintf(a.Stdout, "qrsketch version %s (%s) built %s\n",
		a.VersionInfo.Version, a.VersionInfo.Commit, a.VersionInfo.Date)
}
