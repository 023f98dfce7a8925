package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error type. Domain names the subsystem the
// error came from (jobs, applications, storage, email, ...).
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying error to a new AppError.
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// MarshalJSON hides Err and HTTPCode from responses.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Domain  string      `json:"domain"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Domain:  e.Domain,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// --- constructors per error kind ---

// InternalError wraps an unclassified system error.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternal, "system", "Internal server error", http.StatusInternalServerError)
}

// ValidationError carries a field->message map (or a single combined message).
func ValidationError(details interface{}) *AppError {
	return New(CodeValidation, "validation", "Validation failed", http.StatusBadRequest).WithDetails(details)
}

// StoreError surfaces the store's own message text, per the error contract:
// no retry, no rollback, message shown as-is.
func StoreError(domain string, err error) *AppError {
	msg := "store operation failed"
	if err != nil {
		msg = err.Error()
	}
	return Wrap(err, CodeStore, domain, msg, http.StatusInternalServerError)
}

// ConfigurationError reports missing server-side configuration.
func ConfigurationError(domain, message string) *AppError {
	return New(CodeConfiguration, domain, message, http.StatusInternalServerError)
}

// ProviderError reports a downstream provider failure with its detail text.
func ProviderError(domain, message, detail string) *AppError {
	e := New(CodeProvider, domain, message, http.StatusInternalServerError)
	if detail != "" {
		e.Details = detail
	}
	return e
}

func NewNotFoundError(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, "auth", message, http.StatusUnauthorized)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidation, "request", message, http.StatusBadRequest)
}
