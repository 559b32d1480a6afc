// Package errs holds the failure kinds a post handler can produce.
//
// Every constructor records a stack trace (github.com/pkg/errors), so
// fmt.Sprintf("%+v", err) yields the diagnostic detail sent back to clients
// while err.Error() stays a short human-readable message.
package errs

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const noDataFoundMsg = "No data found."

// ValidationError reports a missing or malformed field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a read that matched no item.
type NotFoundError struct {
	Key   string
	Value string
}

func (e *NotFoundError) Error() string {
	return noDataFoundMsg
}

// Format adds the lookup that missed to the %+v form.
func (e *NotFoundError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s (%s = %q)", noDataFoundMsg, e.Key, e.Value)
		return
	}
	io.WriteString(s, e.Error())
}

// StorageError wraps a failed call to the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// MalformedRequestError wraps a request body that could not be decoded.
type MalformedRequestError struct {
	Err error
}

func (e *MalformedRequestError) Error() string {
	return fmt.Sprintf("malformed request body: %v", e.Err)
}

func (e *MalformedRequestError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) error {
	return errors.WithStack(&ValidationError{Message: message})
}

func NewNotFoundError(key, value string) error {
	return errors.WithStack(&NotFoundError{Key: key, Value: value})
}

func NewStorageError(op string, err error) error {
	return errors.WithStack(&StorageError{Op: op, Err: err})
}

func NewMalformedRequestError(err error) error {
	return errors.WithStack(&MalformedRequestError{Err: err})
}

// Stack renders err with its recorded stack trace.
func Stack(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%+v", err)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}

func IsMalformedRequest(err error) bool {
	var target *MalformedRequestError
	return errors.As(err, &target)
}
