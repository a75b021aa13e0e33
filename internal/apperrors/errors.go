package apperrors

import "fmt"

// ValidationError indicates that the request referenced something invalid
// (malformed identifier, missing field, unknown category) and was rejected
// before any mutation took place.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a ValidationError with the given message.
func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError indicates that a referenced record does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// NewNotFound creates a NotFoundError for the given resource and ID.
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// UploadError indicates that the media collaborator failed. The original
// error is kept for logging and unwrapping.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("media upload failed: %v", e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// NewUpload wraps a media collaborator failure.
func NewUpload(err error) *UploadError {
	return &UploadError{Err: err}
}
