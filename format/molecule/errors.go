package molecule

import (
	"github.com/eluv-io/errors-go"
)

// Decoding errors. They are never returned directly but as the cause of an
// errors.K.Invalid error carrying the details, so callers check them with
// errors.Is:
//
//	if errors.Is(err, molecule.ErrTruncatedInput) {
//		...
//	}
var (
	// ErrTruncatedInput: the buffer ends before a fixed-width or length-declared item is complete.
	ErrTruncatedInput = errors.Str("truncated input")
	// ErrMalformedTable: a table header, offset or field is inconsistent.
	ErrMalformedTable = errors.Str("malformed table")
	// ErrMalformedVector: a vector header, offset or element is inconsistent.
	ErrMalformedVector = errors.Str("malformed vector")
	// ErrInvalidFieldCount: the offset table of a table implies a different number of fields than expected.
	ErrInvalidFieldCount = errors.Str("invalid field count")
	// ErrTrailingData: an item is followed by bytes that are not part of it.
	ErrTrailingData = errors.Str("trailing data")
	// ErrSizeLimit: a buffer or vector exceeds the configured limits.
	ErrSizeLimit = errors.Str("size limit exceeded")
)

// nestedError classifies the failure of a nested item with the error class of
// the enclosing structure. errors.Is matches both the class and any error in
// the chain of the nested failure.
type nestedError struct {
	class error
	cause error
}

func (e *nestedError) Error() string {
	return e.class.Error() + ": " + e.cause.Error()
}

func (e *nestedError) Is(target error) bool {
	return target == e.class
}

func (e *nestedError) Unwrap() error {
	return e.cause
}

// fail creates a decoding error with the given class and fields.
func fail(op string, class error, fields ...interface{}) error {
	return errors.NoTrace(append([]interface{}{op, errors.K.Invalid, class}, fields...)...)
}

// failNested wraps the error of a nested item into the class of the enclosing
// structure.
func failNested(op string, class error, cause error, fields ...interface{}) error {
	return errors.NoTrace(append([]interface{}{op, errors.K.Invalid, &nestedError{class: class, cause: cause}}, fields...)...)
}
