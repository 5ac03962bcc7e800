// Package output encodes rendered images for writing. Gamma correction
// and 8-bit quantization happen here, not during rendering.
package output

import (
	"bufio"
	"fmt"
	"io"

	"raytracer/pkg/core"
)

// intensity is the representable channel range before quantization. The
// ceiling at 0.999 keeps floor(256*x) from reaching 256.
var intensity = core.NewInterval(0, 0.999)

// encodeChannel quantizes one gamma-corrected channel to [0, 255]
func encodeChannel(value float64) byte {
	return byte(256.0 * intensity.Clamp(value))
}

// encodePixel gamma-corrects a pixel and returns its 8-bit channel values
func encodePixel(pixel core.Color, invGamma float64) (r, g, b byte) {
	rgb := pixel.Pow(invGamma)
	return encodeChannel(rgb.X), encodeChannel(rgb.Y), encodeChannel(rgb.Z)
}

// WritePPM writes the image in plain (ASCII) .ppm format: a "P3" header
// with dimensions and the maximum channel value, then one "R G B" line
// per pixel in row-major order.
func WritePPM(w io.Writer, image *core.Image, gamma float64) error {
	buffered := bufio.NewWriter(w)
	invGamma := 1.0 / gamma

	if _, err := fmt.Fprintf(buffered, "P3\n%d %d\n255\n\n", image.Width(), image.Height()); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}
	for row := 0; row < image.Height(); row++ {
		for col := 0; col < image.Width(); col++ {
			r, g, b := encodePixel(image.At(row, col), invGamma)
			if _, err := fmt.Fprintf(buffered, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("write ppm pixel: %w", err)
			}
		}
	}

	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("flush ppm output: %w", err)
	}
	return nil
}

// WriteRawPPM writes the image in binary .ppm format: a "P6" header, then
// three raw bytes per pixel with no separators. The header ends with a
// single newline because the byte after the maximum channel value already
// belongs to the pixel stream.
func WriteRawPPM(w io.Writer, image *core.Image, gamma float64) error {
	buffered := bufio.NewWriter(w)
	invGamma := 1.0 / gamma

	if _, err := fmt.Fprintf(buffered, "P6\n%d %d\n255\n", image.Width(), image.Height()); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}
	for row := 0; row < image.Height(); row++ {
		for col := 0; col < image.Width(); col++ {
			r, g, b := encodePixel(image.At(row, col), invGamma)
			if _, err := buffered.Write([]byte{r, g, b}); err != nil {
				return fmt.Errorf("write ppm pixel: %w", err)
			}
		}
	}

	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("flush ppm output: %w", err)
	}
	return nil
}
