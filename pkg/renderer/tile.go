package renderer

import (
	"image"
	"math/rand"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Random *rand.Rand      // Tile-specific random generator for deterministic results
}

// NewTile creates a new tile with the specified bounds
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(seed + int64(id))),
	}
}

// NewRowBands splits the image into full-width bands of rowsPerBand rows,
// top to bottom
func NewRowBands(width, height, rowsPerBand int, seed int64) []*Tile {
	var tiles []*Tile
	for y0, id := 0, 0; y0 < height; y0, id = y0+rowsPerBand, id+1 {
		y1 := min(y0+rowsPerBand, height) // Don't exceed image bounds
		tiles = append(tiles, NewTile(id, image.Rect(0, y0, width, y1), seed))
	}
	return tiles
}
