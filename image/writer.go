package image

import (
	"encoding/binary"
	"errors"
	"image"
	"io"

	"github.com/bodgit/rgb332/pixel"
)

// SerializeBytes returns the pixels p unchanged, one byte per pixel.
func SerializeBytes(p []byte) []byte {
	b := make([]byte, len(p))
	copy(b, p)
	return b
}

// SerializeWords packs the pixels p in pairs into 16-bit little-endian words.
// If p has an odd length the final word is padded with a zero pixel.
func SerializeWords(p []byte) []byte {
	b := make([]byte, FormatWords.Size(len(p)))
	for i := 0; i < len(p); i += 2 {
		w := uint16(p[i])
		if i+1 < len(p) {
			w |= uint16(p[i+1]) << 8
		}
		binary.LittleEndian.PutUint16(b[i:], w)
	}
	return b
}

// Pixels returns the RGB332 value of every pixel in m, row by row.
func Pixels(m image.Image) []byte {
	b := m.Bounds()
	p := make([]byte, 0, b.Dx()*b.Dy())

	switch src := m.(type) {
	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				i := src.PixOffset(x, y)
				p = append(p, pixel.Pack(int(src.Pix[i+0]), int(src.Pix[i+1]), int(src.Pix[i+2])))
			}
		}
	case *image.RGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				// Premultiplied, only take the shortcut when opaque
				i := src.PixOffset(x, y)
				if src.Pix[i+3] != 0xff {
					p = append(p, pixel.FromColor(src.RGBAAt(x, y)))
					continue
				}
				p = append(p, pixel.Pack(int(src.Pix[i+0]), int(src.Pix[i+1]), int(src.Pix[i+2])))
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				p = append(p, pixel.FromColor(m.At(x, y)))
			}
		}
	}

	return p
}

// Encode writes the Image m to w as a raw RGB332 frame using the format f.
func Encode(w io.Writer, m image.Image, f Format) error {
	b := m.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		return errors.New("image: image is wrong size")
	}

	out, err := f.Serialize(Pixels(m))
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}
