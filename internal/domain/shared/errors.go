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

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)

// Error codes for currency and price resolution failures. The message text of
// CurrencyNotAvailable is load-bearing: API clients match on it.
const (
	ErrCodeCurrencyNotAvailable = "CURRENCY_NOT_AVAILABLE"
	ErrCodeNoPriceForCurrency   = "NO_PRICE_FOR_CURRENCY"
)

// NewCurrencyNotAvailableError creates the error returned when a price mutation
// or read names a currency the channel does not permit.
func NewCurrencyNotAvailableError(currencyCode string) *DomainError {
	return NewDomainError(
		ErrCodeCurrencyNotAvailable,
		fmt.Sprintf("The currency %q is not available in the current Channel", currencyCode),
	)
}

// NewNoPriceForCurrencyError creates the error returned when a variant has no
// price record in the requested currency within a channel.
func NewNoPriceForCurrencyError(currencyCode string) *DomainError {
	return NewDomainError(
		ErrCodeNoPriceForCurrency,
		fmt.Sprintf("No price is defined for currency %q in the current Channel", currencyCode),
	)
}
