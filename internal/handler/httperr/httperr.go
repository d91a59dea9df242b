package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Canonical response envelope. Every endpoint answers either
// {"ok":true,"data":...} or {"ok":false,"error":{...}} — nothing else.
type Response struct {
	Status int        `json:"-"`
	OK     bool       `json:"ok"`
	Data   any        `json:"data,omitempty"`
	Error  *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Stable error codes of the API surface
const (
	CodeValidationError    = "validation_error"
	CodeSlugExists         = "slug_exists"
	CodeNotFound           = "not_found"
	CodeUnauthorized       = "unauthorized"
	CodeConfigurationError = "configuration_error"
	CodePersistenceError   = "persistence_error"
)

func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, Response{OK: true, Data: data})
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, details ...FieldError) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		Status: status,
		Error:  &ErrorBody{Code: code, Message: msg, Details: details},
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func InternalError(c *gin.Context, err error) {
	AbortWithError(c, http.StatusInternalServerError, err, CodePersistenceError, "Internal server error")
}
