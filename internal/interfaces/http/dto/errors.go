package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal     = "ERR_INTERNAL"
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeNotFound     = "ERR_NOT_FOUND"
	ErrCodeConflict     = "ERR_CONFLICT"
)

// domainCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed fall back to 400; the domain only emits request-shaped
// failures, everything unexpected arrives as a plain error and maps to 500
// in the handler.
var domainCodeHTTPStatus = map[string]int{
	"NOT_FOUND":         http.StatusNotFound,
	"ITEM_NOT_ON_ORDER": http.StatusNotFound,
	"PRODUCT_NOT_FOUND": http.StatusNotFound,

	"ALREADY_EXISTS":       http.StatusConflict,
	"DUPLICATE_BARCODE":    http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"ALREADY_RETURNED":     http.StatusConflict,
	"DUPLICATE_REQUEST":    http.StatusConflict,

	"UNAUTHORIZED": http.StatusUnauthorized,

	"INVALID_STATE":             http.StatusUnprocessableEntity,
	"INVALID_STATUS_TRANSITION": http.StatusUnprocessableEntity,
	"ORDER_NOT_RETURNABLE":      http.StatusUnprocessableEntity,
	"RETURN_QUANTITY_EXCEEDED":  http.StatusUnprocessableEntity,
	"PAYMENT_SPLIT_MISMATCH":    http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":        http.StatusUnprocessableEntity,
	"NOT_COD_ORDER":             http.StatusUnprocessableEntity,
	"PRODUCT_INACTIVE":          http.StatusUnprocessableEntity,

	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status for an error code
func GetHTTPStatus(code string) int {
	if status, ok := domainCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusBadRequest
}
