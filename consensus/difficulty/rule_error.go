package difficulty

import (
	"fmt"
)

// These constants are used to identify a specific RuleError.
var (
	// ErrWrongWindowLength indicates a retargeting window whose length
	// does not equal DifficultyAdjustmentWindowSize+1. This is a caller
	// bug, not bad chain data, and is reported before any arithmetic
	// is performed.
	ErrWrongWindowLength = newRuleError("ErrWrongWindowLength")

	// ErrNonPositiveTarget indicates a header whose compact bits decode to
	// a zero or negative target. Such bits are outside the codec's domain
	// and the header should have been rejected long before retargeting.
	ErrNonPositiveTarget = newRuleError("ErrNonPositiveTarget")

	// ErrZeroWindowCapacity indicates the estimated window capacity summed
	// to zero, which is unreachable for any window whose targets lie in
	// the compact codec's domain. It can only be observed under a broken
	// network configuration.
	ErrZeroWindowCapacity = newRuleError("ErrZeroWindowCapacity")
)

// RuleError identifies a consensus rule violation. It is used to indicate
// that processing of a block failed due to one of the difficulty validation
// rules. The caller can check for the concrete rule with errors.Is.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}

// TargetMismatchError reports a header whose claimed difficulty bits differ
// from the value recomputed over its retargeting window. It carries both
// values so the block validation pipeline can log the discrepancy when
// rejecting the block.
type TargetMismatchError struct {
	ClaimedBits  uint32
	ExpectedBits uint32
}

func (e TargetMismatchError) Error() string {
	return fmt.Sprintf("claimed difficulty bits 0x%08x do not match the expected value of 0x%08x",
		e.ClaimedBits, e.ExpectedBits)
}
