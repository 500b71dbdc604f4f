package rgb332

import (
	"crypto/sha1"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/ioutil"
	"os"

	frame "github.com/bodgit/rgb332/image"
	"github.com/disintegration/gift"
	_ "golang.org/x/image/bmp"
)

// Resize forces m to exactly 320 by 200 pixels using the converter filter.
// The aspect ratio is not preserved.
func (c *Converter) Resize(m image.Image) (*image.NRGBA, error) {
	r, err := c.Filter.resampling()
	if err != nil {
		return nil, err
	}

	g := gift.New(gift.Resize(frame.Width, frame.Height, r))
	dst := image.NewNRGBA(g.Bounds(m.Bounds()))
	g.Draw(dst, m)

	return dst, nil
}

// Convert resizes m and returns it as a raw RGB332 frame using the format f.
func (c *Converter) Convert(m image.Image, f frame.Format) ([]byte, error) {
	dst, err := c.Resize(m)
	if err != nil {
		return nil, err
	}
	return f.Serialize(frame.Pixels(dst))
}

// ConvertFile converts the image in src and writes the raw RGB332 frame to
// dst using the format f. It returns the number of bytes written.
func (c *Converter) ConvertFile(src, dst string, f frame.Format) (int, error) {
	b, err := c.convertFile(src, f)
	if err != nil {
		return 0, err
	}

	if err := ioutil.WriteFile(dst, b, 0644); err != nil {
		return 0, err
	}
	c.logger.Printf("Converted \"%s\" to \"%s\"\n", src, dst)

	return len(b), nil
}

func (c *Converter) convertFile(src string, f frame.Format) ([]byte, error) {
	file, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	h := sha1.New()
	r := io.TeeReader(file, h)

	m, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("rgb332: decode %s: %w", src, err)
	}

	// Hash anything the decoder didn't need
	if _, err := io.Copy(ioutil.Discard, r); err != nil {
		return nil, err
	}
	sha := fmt.Sprintf("%X", h.Sum(nil))

	b, err := c.cache.Find(sha, f, c.Filter)
	if err != nil {
		return nil, err
	}
	if b != nil {
		c.logger.Printf("Using cached conversion of \"%s\"\n", src)
		return b, nil
	}

	if b, err = c.Convert(m, f); err != nil {
		return nil, err
	}

	if err := c.cache.Store(sha, f, c.Filter, b); err != nil {
		return nil, err
	}

	return b, nil
}
