package checkerboard

import (
	"io"

	"github.com/bodgit/rgb332/image"
)

// Encode writes the pattern to w with one byte per pixel and no header.
func Encode(w io.Writer, o Options) error {
	p, err := Generate(o)
	if err != nil {
		return err
	}

	_, err = w.Write(image.SerializeBytes(p))
	return err
}
