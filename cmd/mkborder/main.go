// mkborder converts an image into the raw border format the firmware
// loads from storage: 400x240 BGR8, stored in the top LCD's rotated
// layout.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/ericpauley/go-quantize/quantize"
	xdraw "golang.org/x/image/draw"

	"github.com/Exagone313/open-agb-firm/gfx"
)

var (
	out     = flag.String("o", "border.bgr", "output file")
	preview = flag.String("preview", "", "additionally write a dithered GIF preview")
)

const usageString = `Border image converter.

Usage: %s [flags] <image>

`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func must[T any](ret T, err error) T {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return ret
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	r := must(os.Open(flag.Arg(0)))
	src, _, err := image.Decode(r)
	must(0, err)
	r.Close()

	bounds := image.Rect(0, 0, gfx.TopHeight, gfx.TopWidth) // 400x240, unrotated
	scaled := image.NewRGBA(bounds)
	xdraw.CatmullRom.Scale(scaled, bounds, src, src.Bounds(), xdraw.Src, nil)

	must(0, os.WriteFile(*out, packBorder(scaled), 0o644))

	if *preview != "" {
		q := quantize.MedianCutQuantizer{}
		pal := q.Quantize(make([]color.Color, 0, 256), scaled)
		img := image.NewPaletted(bounds, pal)
		xdraw.FloydSteinberg.Draw(img, bounds, scaled, image.Point{})
		w := must(os.Create(*preview))
		must(0, gif.Encode(w, img, nil))
		must(0, w.Close())
	}
}

// packBorder rotates the 400x240 image into the framebuffer layout and
// packs it as BGR8.
func packBorder(img *image.RGBA) []byte {
	buf := make([]byte, gfx.TopWidth*gfx.TopHeight*gfx.BytesPerPixel)
	for by := 0; by < gfx.TopHeight; by++ {
		for bx := 0; bx < gfx.TopWidth; bx++ {
			c := img.RGBAAt(by, gfx.TopWidth-1-bx)
			off := (by*gfx.TopWidth + bx) * 3
			buf[off], buf[off+1], buf[off+2] = c.B, c.G, c.R
		}
	}
	return buf
}
