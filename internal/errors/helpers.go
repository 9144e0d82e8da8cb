package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error matches a target anywhere in its chain
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func asError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// GetCode returns the code of the first *Error in the chain. Plain errors
// report Internal and nil reports OK.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := asError(err); ok {
		return e.Code
	}
	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	if e, ok := asError(err); ok {
		return e.Meta
	}
	return nil
}

// GetMessage returns the client-facing message, or err.Error() for errors
// that are not *Error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := asError(err); ok {
		return e.Message
	}
	return err.Error()
}

// HasCode reports whether a non-nil err carries code
func HasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// IsNotFound reports a NotFound error, such as an unreachable target
func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }

// IsInvalidArgument reports an InvalidArgument error
func IsInvalidArgument(err error) bool { return HasCode(err, CodeInvalidArgument) }

// IsInternal reports an Internal error. Plain errors count as Internal.
func IsInternal(err error) bool { return HasCode(err, CodeInternal) }

// IsUnavailable reports an Unavailable error
func IsUnavailable(err error) bool { return HasCode(err, CodeUnavailable) }

// IsResourceExhausted reports a ResourceExhausted error
func IsResourceExhausted(err error) bool { return HasCode(err, CodeResourceExhausted) }

// IsUnimplemented reports an Unimplemented error
func IsUnimplemented(err error) bool { return HasCode(err, CodeUnimplemented) }
