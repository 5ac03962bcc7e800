package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"raytracer/pkg/core"
)

// WritePNG encodes the image as PNG with the same gamma correction and
// quantization as the PPM writers.
func WritePNG(w io.Writer, img *core.Image, gamma float64) error {
	invGamma := 1.0 / gamma

	rgba := image.NewRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	for row := 0; row < img.Height(); row++ {
		for col := 0; col < img.Width(); col++ {
			r, g, b := encodePixel(img.At(row, col), invGamma)
			rgba.SetRGBA(col, row, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	if err := png.Encode(w, rgba); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
