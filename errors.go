package recast

import "fmt"

// ErrorKind classifies conversion failures. Fatal kinds abort the run;
// the remaining kinds are recovered locally and surface as warnings on
// the Result.
type ErrorKind int

const (
	// ErrInputNotFound means the source document does not exist or could
	// not be read. Fatal.
	ErrInputNotFound ErrorKind = iota

	// ErrAuthenticationRequired means the input is encrypted and no
	// password was supplied. Fatal.
	ErrAuthenticationRequired

	// ErrAuthenticationFailed means the supplied password was rejected.
	// Fatal.
	ErrAuthenticationFailed

	// ErrPageExtraction means a single page's content could not be
	// extracted. The page contributes nothing and the run continues.
	ErrPageExtraction

	// ErrImageDecode means an embedded image's native dimensions could
	// not be determined. The image is placed at a fallback size.
	ErrImageDecode

	// ErrSpacingRepair means a spacing repair step failed. The step
	// returns its input unmodified.
	ErrSpacingRepair

	// ErrOutputWrite means the output document could not be assembled or
	// persisted, or failed post-write verification. Fatal.
	ErrOutputWrite
)

// String returns a human-readable description of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrInputNotFound:
		return "input not found"
	case ErrAuthenticationRequired:
		return "authentication required"
	case ErrAuthenticationFailed:
		return "authentication failed"
	case ErrPageExtraction:
		return "page extraction failed"
	case ErrImageDecode:
		return "image decode failed"
	case ErrSpacingRepair:
		return "spacing repair failed"
	case ErrOutputWrite:
		return "output write failed"
	default:
		return "unknown error"
	}
}

// ConvertError is a classified conversion failure. Callers can retrieve
// it with errors.As and branch on Kind, or match the underlying cause
// with errors.Is via Unwrap.
type ConvertError struct {
	Kind ErrorKind
	Page int // 1-indexed page number, 0 when the failure is not page-scoped
	Err  error
}

// Error implements the error interface.
func (e *ConvertError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("page %d: %s: %v", e.Page, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConvertError) Unwrap() error {
	return e.Err
}
