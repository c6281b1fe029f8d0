package analysis

import (
	"errors"
	"fmt"
)

// ErrorKind classifies backend failures.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindTransient  ErrorKind = "transient"
	KindFatal      ErrorKind = "fatal"
)

// Sentinels matched with errors.Is against a *BackendError.
var (
	ErrValidation = errors.New("analysis: request rejected by backend")
	ErrTransient  = errors.New("analysis: backend temporarily unavailable")
	ErrFatal      = errors.New("analysis: backend failed")
)

// BackendError is returned by analyzers that talk to a real service.
type BackendError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *BackendError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("analysis backend %s error (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("analysis backend %s error: %v", e.Kind, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

func (e *BackendError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindTransient:
		return ErrTransient
	default:
		return ErrFatal
	}
}

// Message is the visitor-facing description of a failure of kind k. It
// never carries backend details.
func (k ErrorKind) Message() string {
	switch k {
	case KindValidation:
		return "the analysis service rejected this text"
	case KindTransient:
		return "the analysis service is temporarily unavailable"
	default:
		return "the analysis service failed"
	}
}

// KindOf classifies err. Errors that are not *BackendError are fatal.
func KindOf(err error) ErrorKind {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindFatal
}

// Retryable reports whether err is worth retrying later.
func Retryable(err error) bool {
	return KindOf(err) == KindTransient
}
