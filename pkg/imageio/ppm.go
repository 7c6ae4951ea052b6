package imageio

import (
	"bufio"
	"fmt"
	"io"
)

// MaxValueLine is the value written on the third header line
const MaxValueLine = 256

// WritePPM writes img as a plain-text P3 pixel map, one pixel per line,
// top row first. Channels are gamma-encoded (square root) before quantization.
func WritePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", img.Width, img.Height, MaxValueLine); err != nil {
		return fmt.Errorf("writing PPM header: %w", err)
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.At(x, y).Encode()
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("writing pixel (%d, %d): %w", x, y, err)
			}
		}
	}

	return bw.Flush()
}
