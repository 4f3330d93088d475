// Command wddemo renders brush swatches with the selected wdraw backend.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/wdraw"
)

func main() {
	var (
		width   = flag.Int("width", 400, "image width")
		height  = flag.Int("height", 300, "image height")
		output  = flag.String("output", "wddemo.png", "output file")
		backend = flag.String("backend", "auto", "backend: auto, retained or immediate")
		verbose = flag.Bool("v", false, "log backend diagnostics to stderr")
	)
	flag.Parse()

	b, err := wdraw.ParseBackend(*backend)
	if err != nil {
		log.Fatalf("Invalid backend: %v", err)
	}

	opts := []wdraw.InitOption{wdraw.WithBackend(b)}
	if *verbose {
		opts = append(opts, wdraw.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}
	if err := wdraw.Initialize(opts...); err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer wdraw.Terminate()

	c, err := wdraw.NewCanvas(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	defer c.Close()

	if err := render(c, float32(*width), float32(*height)); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	defer f.Close()
	if err := c.EncodePNG(f); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %s backend)\n", *output, *width, *height, c.Backend())
}

func render(c *wdraw.Canvas, w, h float32) error {
	if err := c.Clear(wdraw.White); err != nil {
		return err
	}

	// Top row: solid swatches, recolored in place.
	solid, err := c.CreateSolidBrush(wdraw.Red)
	if err != nil {
		return err
	}
	defer solid.Close()

	swatches := []wdraw.Color{wdraw.Red, wdraw.Green, wdraw.Blue, wdraw.RGB(0xFF, 0xA5, 0x00)}
	sw := w / float32(len(swatches))
	for i, col := range swatches {
		if err := solid.SetColor(col); err != nil {
			return err
		}
		x := float32(i) * sw
		if err := c.FillRect(solid, x, 0, x+sw, h/3); err != nil {
			return err
		}
	}

	// Middle row: two-color gradient.
	two, err := c.CreateLinearGradientBrush(0, 0, wdraw.Red, w, 0, wdraw.Blue)
	if err != nil {
		return err
	}
	defer two.Close()
	if err := c.FillRect(two, 0, h/3, w, 2*h/3); err != nil {
		return err
	}

	// Bottom row: multi-stop gradient.
	rainbow, err := c.CreateLinearGradientBrushEx(0, 0, w, 0, []wdraw.GradientStop{
		{Color: wdraw.Red, Offset: 0},
		{Color: wdraw.RGB(0xFF, 0xFF, 0x00), Offset: 0.25},
		{Color: wdraw.Green, Offset: 0.5},
		{Color: wdraw.Blue, Offset: 0.75},
		{Color: wdraw.RGB(0x80, 0x00, 0x80), Offset: 1},
	})
	if err != nil {
		return err
	}
	defer rainbow.Close()
	return c.FillRect(rainbow, 0, 2*h/3, w, h)
}
