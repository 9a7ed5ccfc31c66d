package distill

import "errors"

var (
	// ErrInvalidComposition indicates a feed composition that sums to ≤ 0 or
	// holds negative or non-finite entries.
	ErrInvalidComposition = errors.New("distill: invalid composition")

	// ErrSpecification indicates recovery targets or key choices that imply a
	// negative or empty product flow.
	ErrSpecification = errors.New("distill: invalid separation specification")

	// ErrDegenerateSplit indicates a key mole fraction ≤ 0 in the Fenske
	// equation, or a split that needs no stages or no reflux.
	ErrDegenerateSplit = errors.New("distill: degenerate split")

	// ErrRootNotFound indicates that the Underwood bracket (α_HK, α_LK) holds
	// no sign change, or a non-key volatility lies inside it.
	ErrRootNotFound = errors.New("distill: underwood root not found")

	// ErrInvalidReflux indicates a reflux factor ≤ 1, or one so close to 1 that
	// the Gilliland correlation leaves its domain.
	ErrInvalidReflux = errors.New("distill: invalid reflux factor")

	// ErrEfficiencyOutOfRange indicates an O'Connell efficiency outside (0, 1]
	// or a feed viscosity that cannot be estimated.
	ErrEfficiencyOutOfRange = errors.New("distill: efficiency out of range")

	// ErrFeedStageOutOfBounds indicates a real feed stage outside [1, N].
	ErrFeedStageOutOfBounds = errors.New("distill: feed stage out of bounds")

	// ErrInvalidSizingInput indicates a sizing precondition violation
	// (non-positive density, temperature or pressure, fraction outside its range).
	ErrInvalidSizingInput = errors.New("distill: invalid sizing input")

	// ErrLengthMismatch indicates composition, volatility and component
	// vectors of different lengths.
	ErrLengthMismatch = errors.New("distill: vector length mismatch")

	// ErrUnknownCorrelation indicates an unrecognized correlation or packing name.
	ErrUnknownCorrelation = errors.New("distill: unknown correlation")
)
