// Command viewdemo builds a lazy view chain and writes the result as PNG.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/imgview"
	"github.com/gogpu/imgview/interop"
	"github.com/gogpu/imgview/transform"
)

func main() {
	var (
		width   = flag.Int("width", 800, "output width")
		height  = flag.Int("height", 600, "output height")
		output  = flag.String("output", "viewdemo.png", "output file")
		workers = flag.Int("workers", 0, "rasterization workers (0 = GOMAXPROCS)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		imgview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// A quarter-resolution pattern, computed lazily.
	ext := transform.Extent{Cols: *width / 4, Rows: *height / 4}
	rings := transform.Generate(ext, func(c, r, _ int) float64 {
		dx := float64(c) - float64(ext.Cols)/2
		dy := float64(r) - float64(ext.Rows)/2
		return 0.5 + 0.5*math.Cos(math.Hypot(dx, dy)/4)
	})
	colored := transform.Map(rings, func(v float64) interop.RGBA8 {
		return interop.RGBA8{R: uint8(255 * v), G: uint8(96 * v), B: uint8(255 * (1 - v)), A: 255}
	})
	view := interop.Scale(transform.FlipVertical(colored), *width, *height, draw.BiLinear)

	dst := imgview.NewStore[interop.RGBA8](view.Cols(), view.Rows())
	imgview.RasterizeParallel(view, dst, imgview.WithWorkers(*workers))

	f, err := os.Create(*output) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()
	if err := png.Encode(f, interop.ToRGBA(dst)); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}

	log.Printf("Saved %s (%dx%d, digest %016x)\n", *output, dst.Cols(), dst.Rows(), imgview.Digest[interop.RGBA8](dst))
}
