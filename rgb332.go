/*
Package rgb332 is a library for converting images into raw RGB332 frames for
memory-constrained displays.

Source images are decoded, forced to 320 by 200 pixels and packed into one
byte per pixel using the image and pixel packages.
*/
package rgb332

import (
	"io/ioutil"
	"log"
)

// Converter converts image files into raw RGB332 frames.
type Converter struct {
	cache  *Cache
	logger *log.Logger

	// Filter is the resampling filter used to resize source images
	Filter Filter
}

// New returns a Converter using the cubic filter. cache may be nil to
// disable caching and logger may be nil to discard log output.
func New(cache *Cache, logger *log.Logger) *Converter {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Converter{
		cache:  cache,
		logger: logger,
		Filter: FilterCubic,
	}
}
