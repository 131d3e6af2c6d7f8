package view

import (
	goerrors "errors"

	"github.com/go-drift/edgeframe/pkg/errors"
)

var (
	displayScale   = 1.0
	hairlineWidth  float64
	hairlineLocked bool
)

// SetDisplayScale configures the physical-pixel density of the display
// (e.g. 2.0 on a 2x display). Call once at startup before any hairline is
// measured; later calls are rejected so the hairline stays a fixed constant
// for the process.
func SetDisplayScale(scale float64) {
	if scale <= 0 {
		return
	}
	if hairlineLocked {
		errors.Report(&errors.FrameError{
			Op:   "view.SetDisplayScale",
			Kind: errors.KindConstraint,
			Err:  goerrors.New("display scale changed after hairline width was fixed"),
		})
		return
	}
	displayScale = scale
}

// DisplayScale returns the configured display scale.
func DisplayScale() float64 {
	return displayScale
}

// Hairline returns the width of one physical device pixel in logical units.
// The value is latched on first use and stays constant for the process.
func Hairline() float64 {
	if !hairlineLocked {
		hairlineWidth = 1.0 / displayScale
		hairlineLocked = true
	}
	return hairlineWidth
}
