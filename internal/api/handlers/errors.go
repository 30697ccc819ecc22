package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"assuredgig/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

const exposeErrorsCtx = "exposeErrorDetail"

// ErrorDetail controls whether unexpected error text reaches clients. It is
// enabled outside production.
func ErrorDetail(expose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(exposeErrorsCtx, expose)
		c.Next()
	}
}

// respondError writes the status and body for a service error. action names
// what failed ("create job") and is used for 500 responses.
func respondError(c *gin.Context, err error, action string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrTokenExpired):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrInvalidSignature):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status != http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	log.WithError(err).WithField("action", action).Error("Unexpected error handling request")
	_ = c.Error(err)
	body := gin.H{"error": fmt.Sprintf("Failed to %s", action)}
	if c.GetBool(exposeErrorsCtx) {
		body["detail"] = err.Error()
	}
	c.JSON(status, body)
}

// respondValidation writes the 400 body for a failed validator run. The top level
// message names the first failing field; details lists all of them.
func respondValidation(c *gin.Context, err error) {
	details := FormatValidationErrors(err)
	msg := "Validation failed"
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		msg = details[validationErrors[0].Field()]
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": msg, "details": details})
}

// FormatValidationErrors turns validator errors into a field -> message map.
func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required", "required_without":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s", fieldName, fieldError.Param())
		case "gt":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be greater than %s", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of [%s]", fieldName, fieldError.Param())
		case "uuid":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid UUID", fieldName)
		case "url":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid URL", fieldName)
		}
	}
	return errorsMap
}
