// Command zoomreplay replays a pinch gesture script against a viewport
// and reports every committed transform.
//
// Usage:
//
//	zoomreplay -container 1000x1000 -content 2000x500 -script pinch.txt
//	zoomreplay -container 1080x1920 -image photo.webp -script pinch.txt -output out.png
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pinchzoom"
	"github.com/gogpu/pinchzoom/content"
	"github.com/gogpu/pinchzoom/render"
)

func main() {
	var (
		containerFlag = flag.String("container", "1000x1000", "container size WIDTHxHEIGHT")
		contentFlag   = flag.String("content", "", "content size WIDTHxHEIGHT (ignored with -image)")
		imagePath     = flag.String("image", "", "image file supplying the content size")
		scriptPath    = flag.String("script", "", "gesture script (default stdin)")
		output        = flag.String("output", "", "write the final viewport as PNG")
		unified       = flag.Bool("unified", false, "use the same edge threshold on both axes")
		verbose       = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		pinchzoom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cw, ch, err := parseSize(*containerFlag)
	if err != nil {
		log.Fatalf("container: %v", err)
	}
	container := pinchzoom.Sz(cw, ch)

	var src image.Image
	var size pinchzoom.Size
	switch {
	case *imagePath != "" && *output != "":
		if src, err = content.Load(*imagePath); err != nil {
			log.Fatalf("image: %v", err)
		}
		size = content.SizeOf(src)
	case *imagePath != "":
		if size, _, err = content.LoadSize(*imagePath); err != nil {
			log.Fatalf("image: %v", err)
		}
	case *contentFlag != "":
		dw, dh, err := parseSize(*contentFlag)
		if err != nil {
			log.Fatalf("content: %v", err)
		}
		size = pinchzoom.Sz(dw, dh)
	default:
		log.Fatal("one of -image or -content is required")
	}
	if *output != "" && src == nil {
		log.Fatal("-output requires -image")
	}

	steps, err := readScript(*scriptPath)
	if err != nil {
		log.Fatalf("script: %v", err)
	}

	mode := pinchzoom.ThresholdAsymmetric
	if *unified {
		mode = pinchzoom.ThresholdUnified
	}
	p := message.NewPrinter(language.English)
	vp, err := pinchzoom.NewViewport(
		pinchzoom.WithThresholdMode(mode),
		pinchzoom.WithCommitHook(func(c pinchzoom.Commit) { printCommit(os.Stdout, p, c) }),
	)
	if err != nil {
		log.Fatal(err)
	}

	if err := replay(vp, container, size, steps); err != nil {
		log.Fatal(err)
	}
	printSummary(os.Stdout, p, vp)

	if *output != "" {
		img := render.Viewport(src, container, vp.CurrentTransform(), color.Black, render.Bilinear)
		if err := render.SavePNG(*output, img); err != nil {
			log.Fatalf("output: %v", err)
		}
		log.Printf("Viewport saved to %s (%dx%d)\n", *output, img.Bounds().Dx(), img.Bounds().Dy())
	}
}
