package utils

import "fmt"

// Error taxonomy for the booking assistant. Handlers map these to HTTP
// status codes; everything else is treated as an internal error.

// InputError reports malformed caller input (bad date, negative guest count).
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

func NewInputError(format string, args ...any) error {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an unknown booking or invoice identifier.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ServiceError reports a failure in an external collaborator (SMTP, IMAP,
// LLM API).
type ServiceError struct {
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error { return e.Err }

func NewServiceError(msg string, err error) error {
	return &ServiceError{Message: msg, Err: err}
}

// StorageError reports a persisted-state read/write failure.
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *StorageError) Unwrap() error { return e.Err }

func NewStorageError(msg string, err error) error {
	return &StorageError{Message: msg, Err: err}
}
