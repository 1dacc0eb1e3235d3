//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"errors"
	"image"
)

var errCGODisabled = errors.New("clipboard operations require cgo support")

func WriteImage(image.Image) error {
	return errCGODisabled
}
