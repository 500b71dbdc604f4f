package rgb332

import (
	"fmt"
	"strings"

	"github.com/disintegration/gift"
)

// Filter names a resampling filter used when resizing source images.
type Filter string

// Supported resampling filters
const (
	FilterNearest Filter = "nearest"
	FilterLinear  Filter = "linear"
	FilterCubic   Filter = "cubic"
	FilterLanczos Filter = "lanczos"
)

// ParseFilter returns the Filter named by s.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(s))
	if _, err := f.resampling(); err != nil {
		return "", err
	}
	return f, nil
}

func (f Filter) resampling() (gift.Resampling, error) {
	switch f {
	case FilterNearest:
		return gift.NearestNeighborResampling, nil
	case FilterLinear:
		return gift.LinearResampling, nil
	case FilterCubic:
		return gift.CubicResampling, nil
	case FilterLanczos:
		return gift.LanczosResampling, nil
	}
	return nil, fmt.Errorf("rgb332: unknown filter %q", string(f))
}
