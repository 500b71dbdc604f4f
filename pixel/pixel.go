/*
Package pixel implements the RGB332 pixel codec.

An RGB332 pixel is a single byte packed as RRRGGGBB, most significant bit
first. Red and green keep the top three bits of their 8-bit channel and blue
keeps the top two. Channels are truncated, never rounded or rescaled, so the
numeric value of the byte is not a linear intensity.
*/
package pixel

import (
	"image/color"
)

const (
	redShift   = 5
	greenShift = 2

	redMask   = 0x07
	greenMask = 0x07
	blueMask  = 0x03
)

// Pack packs an 8-bit per channel color into an RGB332 byte. The inputs are
// not validated or clamped; values outside 0-255 go through the same shifts
// and masks.
func Pack(r, g, b int) uint8 {
	return uint8((r>>5)&redMask<<redShift | (g>>5)&greenMask<<greenShift | (b>>6)&blueMask)
}

// PackRGB888 packs a 0xRRGGBB value into an RGB332 byte. Bits above the 24th
// are ignored.
func PackRGB888(v uint32) uint8 {
	return Pack(int(v>>16&0xff), int(v>>8&0xff), int(v&0xff))
}

// FromColor packs any color using its non-premultiplied 8-bit channels.
func FromColor(c color.Color) uint8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pack(int(n.R), int(n.G), int(n.B))
}
