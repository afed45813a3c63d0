package sdlshell

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed icon.svg
var iconSVG []byte

// RasterizeIcon renders an SVG document into a size x size RGBA image.
func RasterizeIcon(svg []byte, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size %d", size)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parse icon: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return img, nil
}

func (w *Window) setIcon(svg []byte, size int) error {
	img, err := RasterizeIcon(svg, size)
	if err != nil {
		return err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(size), int32(size), 32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return fmt.Errorf("icon surface: %w", err)
	}
	defer surface.Free()

	w.Window.SetIcon(surface)
	return nil
}
