package common

import (
	"github.com/inhies/go-bytesize"
)

// GetSize renders a byte count in human-readable form (e.g. "1.2MB").
func GetSize(sizeVal int64) string {
	size := bytesize.New(float64(sizeVal))
	return size.String()
}
