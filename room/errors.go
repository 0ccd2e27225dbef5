package room

import "github.com/pkg/errors"

// Error categories a system can return from a tick operation. Callers use
// errors.Is against these sentinels; github.com/pkg/errors.Wrap attaches
// the operation context while preserving the category for unwrapping.
var (
	ErrMalformedInput  = errors.New("malformed input")
	ErrRuleViolation   = errors.New("rule violation")
	ErrPlacementFailed = errors.New("placement failed")
	ErrPhysicsAnomaly  = errors.New("transient physics anomaly")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrFatal           = errors.New("fatal engine error")
)

// WrapMalformedInput tags err as malformed player input (bad command
// payload, out-of-range field) with op context.
func WrapMalformedInput(op string, err error) error {
	return errors.Wrapf(ErrMalformedInput, "%s: %v", op, err)
}

// WrapRuleViolation tags err as a rejected rule-system action (firing while
// reloading, deploying while eliminated).
func WrapRuleViolation(op string, err error) error {
	return errors.Wrapf(ErrRuleViolation, "%s: %v", op, err)
}

// WrapPlacementFailed tags err as a utility/obstacle placement that could
// not find a valid spot.
func WrapPlacementFailed(op string, err error) error {
	return errors.Wrapf(ErrPlacementFailed, "%s: %v", op, err)
}

// WrapCapacityExceeded tags err as a deployed-instance cap rejection.
func WrapCapacityExceeded(op string, err error) error {
	return errors.Wrapf(ErrCapacityExceeded, "%s: %v", op, err)
}
