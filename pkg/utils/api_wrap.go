package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type APIResponse struct {
	Status       string `json:"status"`
	Results      *int   `json:"results,omitempty"`
	Message      string `json:"message,omitempty"`
	TraceID      string `json:"trace_id,omitempty"`
	Token        string `json:"token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Data         any    `json:"data,omitempty"`
	Error        any    `json:"error,omitempty"`
	Stack        string `json:"stack,omitempty"`
}

func RespondSuccess(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

// RespondList always carries the item count of the returned page.
func RespondList(c *gin.Context, results int, data any) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Results: &results,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

// RespondToken is used by the auth flows, the token travels at the top level.
func RespondToken(c *gin.Context, code int, token, refresh string, data any) {
	c.JSON(code, APIResponse{
		Status:       "success",
		TraceID:      c.GetString("trace_id"),
		Token:        token,
		RefreshToken: refresh,
		Data:         data,
	})
}

// RenderError is the single normalization point for request failures.
// Verbose mode additionally ships the raw error and a stack trace.
func RenderError(c *gin.Context, err error, verbose bool) {
	appErr := Normalize(err)

	if verbose {
		c.JSON(appErr.Code, APIResponse{
			Status:  appErr.Status(),
			Message: appErr.Message,
			TraceID: c.GetString("trace_id"),
			Error:   fmt.Sprintf("%+v", err),
			Stack:   string(debug.Stack()),
		})
		return
	}

	if !appErr.Operational {
		log.Printf("ERROR %s: %v", c.GetString("trace_id"), err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Message: "Something went wrong!",
			TraceID: c.GetString("trace_id"),
		})
		return
	}

	c.JSON(appErr.Code, APIResponse{
		Status:  appErr.Status(),
		Message: appErr.Message,
		TraceID: c.GetString("trace_id"),
	})
}

// Normalize canonicalizes database, binding and token failures into an
// AppError before rendering.
func Normalize(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return NewAppError(http.StatusBadRequest, validationMessage(vErrs))
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.EOF) {
		return NewAppError(http.StatusBadRequest, "Invalid request body")
	}

	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return NewAppError(http.StatusNotFound, "No document found with that ID")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return NewAppError(http.StatusBadRequest, "Duplicate field value. Please use another value!")
	case errors.Is(err, ErrInvalidCredentials):
		return NewAppError(http.StatusUnauthorized, "Incorrect email or password")
	case errors.Is(err, jwt.ErrTokenExpired):
		return NewAppError(http.StatusUnauthorized, "Your token has expired! Please log in again.")
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrSignatureInvalid),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, jwt.ErrTokenInvalidClaims):
		return NewAppError(http.StatusUnauthorized, "Invalid token. Please log in again!")
	}

	return &AppError{Code: http.StatusInternalServerError, Message: "Something went wrong!", Err: err}
}

func validationMessage(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fieldMessage(fe))
	}
	return "Invalid input data. " + strings.Join(parts, ". ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Please provide %s", strings.ToLower(fe.Field()))
	case "email":
		return "Please provide a valid email!"
	case "eqfield":
		return "Passwords are not the same!"
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "uuid4":
		return fmt.Sprintf("%s must be a valid id", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
