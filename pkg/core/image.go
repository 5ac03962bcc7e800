package core

import "fmt"

// Image is a dense row-major grid of colors, default-initialized to black.
type Image struct {
	width  int
	height int
	pixels []Color
}

// NewImage creates a black image with the given dimensions
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// Width returns the image width in pixels
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels
func (img *Image) Height() int {
	return img.height
}

// At returns the pixel in the given row and column.
// Panics if the index is out of bounds.
func (img *Image) At(row, col int) Color {
	img.checkIndex(row, col)
	return img.pixels[row*img.width+col]
}

// Set stores a pixel in the given row and column.
// Panics if the index is out of bounds.
func (img *Image) Set(row, col int, c Color) {
	img.checkIndex(row, col)
	img.pixels[row*img.width+col] = c
}

// Row returns the slice backing a single row. Rows are disjoint, so
// concurrent writers that each own a row never overlap.
func (img *Image) Row(row int) []Color {
	if row < 0 || row >= img.height {
		panic(fmt.Sprintf("image row out of bounds: height is %d, row is %d", img.height, row))
	}
	return img.pixels[row*img.width : (row+1)*img.width]
}

func (img *Image) checkIndex(row, col int) {
	if row < 0 || row >= img.height {
		panic(fmt.Sprintf("image index out of bounds: height is %d, row is %d", img.height, row))
	}
	if col < 0 || col >= img.width {
		panic(fmt.Sprintf("image index out of bounds: width is %d, col is %d", img.width, col))
	}
}
