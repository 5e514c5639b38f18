package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// ItemError is a validation error tied to a specific line item in a request.
// ItemIndex is the zero-based position of the offending item.
type ItemError struct {
	DomainError
	ItemIndex int `json:"item_index"`
}

// Error implements the error interface
func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %s", e.ItemIndex, e.Message)
}

// NewItemError creates a validation error for the item at the given index
func NewItemError(code string, index int, message string) *ItemError {
	return &ItemError{
		DomainError: DomainError{Code: code, Message: message},
		ItemIndex:   index,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrAlreadyReturned     = NewDomainError("ALREADY_RETURNED", "Order has already been returned")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
)
