package pixel

import (
	"strconv"
	"strings"
)

// ParseError is returned when a color string is not valid hexadecimal.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return "pixel: invalid hex color " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// ParseHex parses a hexadecimal color such as "2b66bc" into a 0xRRGGBB value.
// A leading "0x", "0X" or "#" is accepted. Text of any length is valid and
// only the low 32 bits are kept.
func ParseHex(s string) (uint32, error) {
	h := s
	switch {
	case strings.HasPrefix(h, "0x"), strings.HasPrefix(h, "0X"):
		h = h[2:]
	case strings.HasPrefix(h, "#"):
		h = h[1:]
	}

	for i := 0; i < len(h); i++ {
		if !isHexDigit(h[i]) {
			return 0, &ParseError{Input: s, Err: strconv.ErrSyntax}
		}
	}
	if len(h) > 8 {
		h = h[len(h)-8:]
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok {
			err = ne.Err
		}
		return 0, &ParseError{Input: s, Err: err}
	}
	return uint32(v), nil
}

// Input is a color given either as hexadecimal text or as an already packed
// 0xRRGGBB value. The only implementations are Hex and Packed.
type Input interface {
	rgb888() (uint32, error)
}

// Hex is a color written as hexadecimal text.
type Hex string

func (h Hex) rgb888() (uint32, error) {
	return ParseHex(string(h))
}

// Packed is a color already packed as 0xRRGGBB.
type Packed uint32

func (p Packed) rgb888() (uint32, error) {
	return uint32(p), nil
}

// PackInput resolves in to a 0xRRGGBB value and packs it into an RGB332 byte.
func PackInput(in Input) (uint8, error) {
	v, err := in.rgb888()
	if err != nil {
		return 0, err
	}
	return PackRGB888(v), nil
}
