package problem

import "errors"

// Sentinel errors returned by this package's constructors and loaders.
var (
	// ErrEmptyName indicates an Instance was constructed with an empty name.
	ErrEmptyName = errors.New("problem: instance name is empty")

	// ErrNegativePointsNumber indicates a negative points_number.
	ErrNegativePointsNumber = errors.New("problem: points number is negative")

	// ErrSubsetLengthMismatch indicates a subset bitset whose length does
	// not equal the instance's points_number.
	ErrSubsetLengthMismatch = errors.New("problem: subset bitset length does not match points number")

	// ErrIndexOutOfRange indicates a subset index outside [0, subsets_number).
	ErrIndexOutOfRange = errors.New("problem: subset index out of range")

	// ErrReductionMappingLength indicates a reduction mapping whose length
	// does not match the reduced instance's dimensions.
	ErrReductionMappingLength = errors.New("problem: reduction mapping length mismatch")
)
