package domain

import "errors"

var (
	// ErrInvalidInput is returned when a plan parameter violates its invariant
	// (non-positive amount, horizon below one period, rate below -100%, ...).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidFrequency is returned for an unrecognised per-instrument
	// contribution frequency.
	ErrInvalidFrequency = errors.New("invalid contribution frequency")

	// ErrMisaligned flags two snapshot series whose period labels differ.
	// It is a data-quality warning; the merge itself still succeeds.
	ErrMisaligned = errors.New("summary series are misaligned")
)
