package magfield

import "errors"

var (
	ErrInvalidSpectrum   = errors.New("invalid spectrum")
	ErrInsufficientModes = errors.New("insufficient modes")
	ErrAllocation        = errors.New("aligned mode storage unavailable")
	ErrInvalidParameter  = errors.New("invalid parameter")
)
