package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/bodgit/rgb332/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeBytes(t *testing.T) {
	p := []byte{5, 9, 255}
	b := SerializeBytes(p)
	assert.Equal(t, []byte{5, 9, 255}, b)

	// Must be a copy
	b[0] = 0
	assert.Equal(t, byte(5), p[0])

	assert.Equal(t, []byte{}, SerializeBytes(nil))
}

func TestSerializeWords(t *testing.T) {
	tables := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"empty", nil, []byte{}},
		{"single", []byte{0xe0}, []byte{0xe0, 0x00}},
		{"pair", []byte{0x01, 0x02}, []byte{0x01, 0x02}},
		{"odd", []byte{5, 9, 255}, []byte{5, 9, 255, 0}},
		{"even", []byte{1, 2, 3, 4}, []byte{1, 2, 3, 4}},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			assert.Equal(t, table.want, SerializeWords(table.in))
		})
	}
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, 3, FormatBytes.Size(3))
	assert.Equal(t, 4, FormatWords.Size(3))
	assert.Equal(t, numPixels, FormatBytes.Size(numPixels))
	assert.Equal(t, numPixels, FormatWords.Size(numPixels))
	assert.Equal(t, 0, FormatWords.Size(0))
}

func TestFormatSerialize(t *testing.T) {
	p := []byte{5, 9, 255}

	b, err := FormatBytes.Serialize(p)
	require.NoError(t, err)
	assert.Equal(t, SerializeBytes(p), b)

	b, err = FormatWords.Serialize(p)
	require.NoError(t, err)
	assert.Equal(t, SerializeWords(p), b)

	_, err = Format(42).Serialize(p)
	assert.Equal(t, errBadFormat, err)
}

func TestParseFormat(t *testing.T) {
	tables := []struct {
		in   string
		want Format
	}{
		{"bytes", FormatBytes},
		{"A", FormatBytes},
		{"words", FormatWords},
		{"b", FormatWords},
	}

	for _, table := range tables {
		t.Run(table.in, func(t *testing.T) {
			f, err := ParseFormat(table.in)
			require.NoError(t, err)
			assert.Equal(t, table.want, f)
		})
	}

	_, err := ParseFormat("rgb565")
	assert.True(t, errors.Is(err, errBadFormat))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "bytes", FormatBytes.String())
	assert.Equal(t, "words", FormatWords.String())
	assert.Equal(t, "Format(7)", Format(7).String())
}

func testImage(r image.Rectangle) *image.NRGBA {
	m := image.NewNRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.SetNRGBA(x, y, color.NRGBA{uint8(x), uint8(y), uint8(x ^ y), 0xff})
		}
	}
	return m
}

func TestPixels(t *testing.T) {
	m := testImage(image.Rect(0, 0, 4, 2))
	p := Pixels(m)
	require.Len(t, p, 8)

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, pixel.FromColor(m.At(x, y)), p[y*4+x])
		}
	}
}

func TestPixelsImageTypes(t *testing.T) {
	r := image.Rect(3, 5, 9, 8)
	src := testImage(r)
	want := Pixels(src)

	rgba := image.NewRGBA(r)
	paletted := image.NewPaletted(r, color.Palette{color.Black, color.White, color.NRGBA{0x2b, 0x66, 0xbc, 0xff}})
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			rgba.Set(x, y, src.At(x, y))
		}
	}
	assert.Equal(t, want, Pixels(rgba))

	paletted.SetColorIndex(3, 5, 2)
	p := Pixels(paletted)
	assert.Equal(t, uint8(0x2e), p[0])
	assert.Equal(t, uint8(0x00), p[1])
}

func TestEncodeWrongSize(t *testing.T) {
	err := Encode(new(bytes.Buffer), testImage(image.Rect(0, 0, 64, 40)), FormatBytes)
	assert.EqualError(t, err, "image: image is wrong size")
}

func TestEncodeDecode(t *testing.T) {
	m := testImage(image.Rect(10, 10, 10+Width, 10+Height))
	want := Pixels(m)

	for _, f := range []Format{FormatBytes, FormatWords} {
		t.Run(f.String(), func(t *testing.T) {
			b := new(bytes.Buffer)
			require.NoError(t, Encode(b, m, f))
			assert.Equal(t, 64000, b.Len())

			p, err := Decode(b, f)
			require.NoError(t, err)
			assert.Equal(t, want, p)
		})
	}
}

func TestEncodeWordsLayout(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, Width, Height))
	m.SetNRGBA(0, 0, color.NRGBA{0xff, 0x00, 0x00, 0xff})
	m.SetNRGBA(1, 0, color.NRGBA{0x00, 0x00, 0xff, 0xff})

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m, FormatWords))
	assert.Equal(t, []byte{0xe0, 0x03}, b.Bytes()[:2])
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(bytes.NewReader(make([]byte, numPixels-1)), FormatBytes)
	assert.Equal(t, errNotEnough, err)

	_, err = Decode(bytes.NewReader(make([]byte, numPixels+1)), FormatWords)
	assert.Equal(t, errTooMuch, err)

	_, err = Decode(bytes.NewReader(nil), FormatBytes)
	assert.Equal(t, errNotEnough, err)

	_, err = Decode(bytes.NewReader(make([]byte, numPixels)), Format(9))
	assert.Equal(t, errBadFormat, err)
}
