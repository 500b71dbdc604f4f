package image

import (
	"encoding/binary"
	"errors"
	"io"
)

var (
	errNotEnough = errors.New("image: not enough frame data")
	errTooMuch   = errors.New("image: too much frame data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader
	f Format

	tmp [numPixels]byte
}

func (d *decoder) decode(r io.Reader, f Format) ([]byte, error) {
	d.r = r
	d.f = f

	if f != FormatBytes && f != FormatWords {
		return nil, errBadFormat
	}

	buf := d.tmp[:f.Size(numPixels)]
	if err := readFull(d.r, buf); err != nil {
		if err != io.ErrUnexpectedEOF {
			return nil, err
		}
		return nil, errNotEnough
	}

	var one [1]byte
	if n, err := d.r.Read(one[:]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return nil, err
		}
		return nil, errTooMuch
	}

	p := make([]byte, numPixels)
	switch f {
	case FormatBytes:
		copy(p, buf)
	case FormatWords:
		for i := 0; i < numPixels; i += 2 {
			w := binary.LittleEndian.Uint16(buf[i:])
			p[i] = byte(w)
			if i+1 < numPixels {
				p[i+1] = byte(w >> 8)
			}
		}
	}

	return p, nil
}

// Decode reads one raw RGB332 frame stored using the format f from r and
// returns its pixels, one byte each, row by row. The pixels are not converted
// back to any other color format.
func Decode(r io.Reader, f Format) ([]byte, error) {
	var d decoder
	return d.decode(r, f)
}
