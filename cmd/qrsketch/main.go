package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cristianadrielbraun/qrsketch/internal/qr"
)

// Version information (set by ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := NewDefaultApp()
	run(app, os.Args)
}

// run is the testable entrypoint for the application
func run(app *App, args []string) {
	if len(args) < 2 {
		printUsage(app.Stderr)
		app.Exit(1)
		return
	}

	switch args[1] {
	case "qr":
		runQR(app, args[2:])
	case "sketch":
		runSketch(app, args[2:])
	case "version", "--version", "-version":
		app.ShowVersion()
	case "help", "--help", "-help", "-h":
		printUsage(app.Stdout)
	default:
		fmt.Fprintf(app.Stderr, "❌ unknown command %q\n", args[1])
		printUsage(app.Stderr)
		app.Exit(1)
	}
}

func runQR(app *App, args []string) {
	fs := flag.NewFlagSet("qr", flag.ContinueOnError)
	fs.SetOutput(app.Stderr)

	var req QRRequest
	fs.StringVar(&req.Text, "text", "", "Text or URL to encode (required)")
	fs.StringVar(&req.Output, "o", "qr.png", "Output file; .png, .jpg or .svg")
	fs.StringVar(&req.Foreground, "fg", "#000000", "Module color")
	fs.StringVar(&req.Background, "bg", "#ffffff", "Background color or \"transparent\"")
	fs.IntVar(&req.ModuleSize, "size", qr.DefaultModuleSize, "Pixels per module")
	fs.IntVar(&req.Border, "border", qr.DefaultBorder, "Quiet zone width in modules")
	fs.StringVar(&req.Logo, "logo", "", "Optional center logo (png, jpg or svg)")
	fs.StringVar(&req.Shape, "shape", "rectangle", "Module shape: rectangle, circle, liquid, chain, hstripe or vstripe")
	fs.StringVar(&req.GradientEnd, "gradient", "", "Fade modules from -fg to this color")

	if err := fs.Parse(args); err != nil {
		exitOnParseError(app, err)
		return
	}

	if err := app.GenerateQR(req); err != nil {
		fmt.Fprintf(app.Stderr, "❌ %v\n", err)
		app.Exit(1)
	}
}

func runSketch(app *App, args []string) {
	fs := flag.NewFlagSet("sketch", flag.ContinueOnError)
	fs.SetOutput(app.Stderr)

	var req SketchRequest
	fs.StringVar(&req.Input, "i", "", "Photo to convert (required)")
	fs.StringVar(&req.Output, "o", "sketch.jpg", "Output file for the sketch")
	fs.StringVar(&req.Compare, "compare", "", "Optional output file for original and sketch side by side")

	if err := fs.Parse(args); err != nil {
		exitOnParseError(app, err)
		return
	}

	if err := app.ConvertToSketch(req); err != nil {
		fmt.Fprintf(app.Stderr, "❌ %v\n", err)
		app.Exit(1)
	}
}

// exitOnParseError exits 1 unless the user asked for help.
func exitOnParseError(app *App, err error) {
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	app.Exit(1)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: qrsketch <command> [options]")
	fmt.Fprintln(w, "\nCommands:")
	fmt.Fprintln(w, "  qr        Generate a QR code image")
	fmt.Fprintln(w, "  sketch    Convert a photo into a pencil sketch")
	fmt.Fprintln(w, "  version   Show version information")
	fmt.Fprintln(w, "\nqr options:")
	fmt.Fprintln(w, "  -text string     Text or URL to encode (required)")
	fmt.Fprintln(w, "  -o string        Output file; .png, .jpg or .svg (default \"qr.png\")")
	fmt.Fprintln(w, "  -fg, -bg string  Colors as #rrggbb; -bg also accepts \"transparent\"")
	fmt.Fprintln(w, "  -size int        Pixels per module (default 8)")
	fmt.Fprintln(w, "  -border int      Quiet zone width in modules (default 5)")
	fmt.Fprintln(w, "  -logo string     Optional center logo (png, jpg or svg)")
	fmt.Fprintln(w, "  -shape string    rectangle, circle, liquid, chain, hstripe or vstripe")
	fmt.Fprintln(w, "  -gradient string Fade modules from -fg to this color")
	fmt.Fprintln(w, "\nsketch options:")
	fmt.Fprintln(w, "  -i string        Photo to convert (required)")
	fmt.Fprintln(w, "  -o string        Output file (default \"sketch.jpg\")")
	fmt.Fprintln(w, "  -compare string  Also save original and sketch side by side")
	fmt.Fprintln(w, "\nExamples:")
	fmt.Fprintln(w, "  qrsketch qr -text https://example.com -o example.png")
	fmt.Fprintln(w, "  qrsketch sketch -i photo.jpg -o sketch.jpg -compare side.jpg")
}
