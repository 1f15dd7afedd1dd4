package domain

import "errors"

// Common domain errors
var (
	// ErrInvalidArgument marks a caller bug, such as updating a book that was never persisted
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is raised at the HTTP boundary when a lookup comes back empty.
	// Services never return it; they report absence through a found flag.
	ErrNotFound = errors.New("resource not found")
)

// Business rule messages
const (
	MsgDuplicateISBN       = "Isbn já cadastrado"
	MsgBookAlreadyLoaned   = "Book already loaned"
	MsgBookNotFoundForISBN = "Book not found for passed isbn"
)

// BusinessError signals that an operation would break a catalog or loan invariant.
// It always carries exactly one message.
type BusinessError struct {
	Message string
}

// NewBusinessError creates a new business rule violation
func NewBusinessError(message string) *BusinessError {
	return &BusinessError{Message: message}
}

func (e *BusinessError) Error() string {
	return e.Message
}

// AsBusinessError unwraps err into a BusinessError if it is one
func AsBusinessError(err error) (*BusinessError, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
