// Sentinel errors reported by rounding engines. All errors returned by this
// package wrap one of these values, so callers can test them with errors.Is.

package round

import "errors"

var (
	// ErrUnsupportedType is reported when the classifier cannot place a type
	// in any representation kind and no replacement tables were supplied.
	ErrUnsupportedType = errors.New("round: unsupported numeric type")

	// ErrModeNotImplemented is reported when a mode is absent from the active
	// mode table, or when a mode name or value is unknown.
	ErrModeNotImplemented = errors.New("round: rounding mode not implemented")

	// ErrNonFinite is reported when a NaN or infinity reaches an operation
	// that must produce an exact integer.
	ErrNonFinite = errors.New("round: operand is not finite")

	// ErrUnordered is reported when an operation needs to order a value that
	// has no order, such as a complex number with a nonzero imaginary part.
	ErrUnordered = errors.New("round: operand cannot be ordered")

	// ErrRange is reported when a result does not fit the operand's
	// representation, such as a rounded value overflowing a fixed-width
	// integer type.
	ErrRange = errors.New("round: value out of range")
)
