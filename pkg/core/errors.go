package core

import "errors"

var (
	// ErrEnergyConservation is returned when a combined color has a channel above 1
	ErrEnergyConservation = errors.New("energy conservation violated")

	// ErrNegativeColor is returned when a color has a channel below 0
	ErrNegativeColor = errors.New("negative color channel")

	// ErrDegenerateDirection is returned when a ray would be built with a zero-length direction
	ErrDegenerateDirection = errors.New("degenerate ray direction")
)
