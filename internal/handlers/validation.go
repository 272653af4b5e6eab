package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of a VALIDATION_ERROR detail list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func init() {
	// Report fields by their JSON names instead of Go struct field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" {
				name = strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			}
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

func validationError(fields ...FieldError) *AppError {
	appErr := NewDomainErrorSimple("VALIDATION_ERROR", "Validation failed", http.StatusUnprocessableEntity)
	appErr.Detail = fields
	return appErr
}

// bindJSON decodes and validates the body into v. On failure it writes the
// 422 response and returns false.
func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		respondError(c, validationError(fieldErrors(err)...))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindQuery(v); err != nil {
		respondError(c, validationError(fieldErrors(err)...))
		return false
	}
	return true
}

// pathID parses a numeric path parameter. Non-integers are a validation error.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondError(c, validationError(FieldError{Field: name, Message: "value is not a valid integer"}))
		return 0, false
	}
	return uint(id), true
}

func fieldErrors(err error) []FieldError {
	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)

	switch {
	case errors.As(err, &verrs):
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{Field: fieldPath(fe), Message: validationMessage(fe)})
		}
		return out
	case errors.As(err, &typeErr):
		return []FieldError{{Field: typeErr.Field, Message: "invalid type, expected " + typeErr.Type.String()}}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return []FieldError{{Field: "body", Message: "invalid JSON"}}
	case errors.Is(err, io.EOF):
		return []FieldError{{Field: "body", Message: "request body is required"}}
	default:
		return []FieldError{{Field: "body", Message: err.Error()}}
	}
}

// fieldPath drops the root struct name: "EstimateCreateRequest.items[0].name"
// becomes "items[0].name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
