/*
Package checkerboard generates a checkerboard test pattern directly as RGB332
pixels.

The pattern is split into square tiles and each tile takes one of two colors
depending on whether the sum of its column and row is even or odd, so the
tile in the top left corner always uses the even color. With the default
options the pattern is 320 by 200 pixels of 20 by 20 tiles, sixteen across
and ten down, alternating red and black.
*/
package checkerboard

import (
	"errors"

	"github.com/bodgit/rgb332/image"
	"github.com/bodgit/rgb332/pixel"
)

const defaultTileSize = 20

var (
	errBadSize     = errors.New("checkerboard: width and height must be positive")
	errBadTileSize = errors.New("checkerboard: tile size must be positive")
)

// Options configures the generated pattern.
type Options struct {
	Width    int
	Height   int
	TileSize int

	// Even is used for tiles where column + row is even, Odd for the rest
	Even uint8
	Odd  uint8
}

// DefaultOptions returns a 320 by 200 pattern of red and black 20 pixel tiles.
func DefaultOptions() Options {
	return Options{
		Width:    image.Width,
		Height:   image.Height,
		TileSize: defaultTileSize,
		Even:     pixel.Pack(255, 0, 0),
		Odd:      pixel.Pack(0, 0, 0),
	}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errBadSize
	}
	if o.TileSize <= 0 {
		return errBadTileSize
	}
	return nil
}

// Generate returns the pattern as RGB332 pixels, row by row.
func Generate(o Options) ([]byte, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	p := make([]byte, 0, o.Width*o.Height)
	for y := 0; y < o.Height; y++ {
		ty := y / o.TileSize
		for x := 0; x < o.Width; x++ {
			if (x/o.TileSize+ty)%2 == 0 {
				p = append(p, o.Even)
			} else {
				p = append(p, o.Odd)
			}
		}
	}

	return p, nil
}
