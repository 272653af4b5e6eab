package handler

import (
	"errors"
	"log"
	"net/http"

	"wave-estimates-backend/internal/services/catalog"
	"wave-estimates-backend/internal/services/estimate"

	"github.com/gin-gonic/gin"
)

// AppError is the error shape every handler renders:
// {"code": ..., "detail": ...}.
type AppError struct {
	Code       string
	Message    string
	Detail     interface{}
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func (e *AppError) ToHTTPError() gin.H {
	if e.Detail != nil {
		return gin.H{"code": e.Code, "detail": e.Detail}
	}
	return gin.H{"code": e.Code, "detail": e.Message}
}

func respondError(c *gin.Context, appErr *AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[handler] %s %s: %v", c.Request.Method, c.FullPath(), appErr.Err)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func internalError(err error) *AppError {
	return NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func mapEstimateError(err error) *AppError {
	switch {
	case errors.Is(err, estimate.ErrEstimateNotFound):
		return NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

func mapCustomerError(err error) *AppError {
	switch {
	case errors.Is(err, catalog.ErrCustomerNotFound):
		return NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

func mapItemError(err error) *AppError {
	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		return NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
