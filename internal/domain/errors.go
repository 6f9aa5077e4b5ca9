package domain

import "errors"

// Error is a domain error carrying a stable code for localized reporting.
type Error struct {
	code string
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable identifier of the error.
func (e *Error) Code() string { return e.code }

func newError(code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Domain errors.
var (
	ErrSetNotFound      = newError("set_not_found", "bundle set not found")
	ErrParityMismatch   = newError("parity_mismatch", "locale bundles do not expose the same keys")
	ErrUnknownFormat    = newError("unknown_format", "unknown output format")
	ErrUnsupportedValue = newError("unsupported_value", "unsupported bundle value")
	ErrInvalidConfig    = newError("invalid_config", "invalid configuration")
)

// Code extracts the domain error code wrapped in err, or "" when err does not
// wrap a domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}
