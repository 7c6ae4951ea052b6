package imageio

import "github.com/LucasKurosei/ray-tracing/pkg/core"

// Image is a row-major grid of linear colors, row 0 at the top
type Image struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the color of pixel (x, y)
func (img *Image) At(x, y int) core.Color {
	return img.Pixels[y*img.Width+x]
}

// Set stores the color of pixel (x, y)
func (img *Image) Set(x, y int, c core.Color) {
	img.Pixels[y*img.Width+x] = c
}
