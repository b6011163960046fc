package catalog

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// ValidationError names the first input field that failed a check.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError is an ErrNotFound carrying the entity name.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found."
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConflictError refuses a delete that live references would break.
type ConflictError struct {
	Entity    string
	Reference string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Cannot delete %s. %s are referencing it.", strings.ToLower(e.Entity), e.Reference)
}

// StorageError wraps a persistence failure. The message is the store's own.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// lookupErr turns a failed single-record read into NotFound or StorageError.
func lookupErr(entity string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity}
	}
	return storageErr("find "+strings.ToLower(entity), err)
}
