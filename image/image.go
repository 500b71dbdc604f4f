/*
Package image implements the raw RGB332 frame encoder and decoder.

A frame is defined as 320 by 200 pixels exactly, stored row by row from the
top left corner with no header. Two framings of the same pixels exist and a
reader has to know in advance which one was used:

FormatBytes writes one RGB332 byte per pixel, 64000 bytes in total.

FormatWords writes the pixels in pairs as 16-bit little-endian words, the
first pixel of the pair in the low byte and the second in the high byte. An
odd pixel count is padded with a zero pixel, so a frame is also 64000 bytes.
*/
package image

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Width is the width of a frame in pixels
	Width = 320
	// Height is the height of a frame in pixels
	Height = 200

	numPixels = Width * Height
)

// Format selects how RGB332 pixels are laid out in the output.
type Format int

const (
	// FormatBytes stores one byte per pixel
	FormatBytes Format = iota
	// FormatWords stores two pixels per 16-bit little-endian word
	FormatWords
)

var errBadFormat = errors.New("image: unknown format")

func (f Format) String() string {
	switch f {
	case FormatBytes:
		return "bytes"
	case FormatWords:
		return "words"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the Format matching s. "bytes" and "a" select
// FormatBytes, "words" and "b" select FormatWords.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "bytes", "a":
		return FormatBytes, nil
	case "words", "b":
		return FormatWords, nil
	}
	return 0, fmt.Errorf("%w %q", errBadFormat, s)
}

// Size returns the number of bytes needed to store n pixels.
func (f Format) Size(n int) int {
	if f == FormatWords {
		return (n + 1) >> 1 << 1
	}
	return n
}

// Serialize lays out the pixels p using the format f.
func (f Format) Serialize(p []byte) ([]byte, error) {
	switch f {
	case FormatBytes:
		return SerializeBytes(p), nil
	case FormatWords:
		return SerializeWords(p), nil
	}
	return nil, errBadFormat
}
