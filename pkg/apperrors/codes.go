package apperrors

// ErrorCode is a closed set of error kinds. Callers branch on the code,
// never on the message text.
type ErrorCode string

const (
	// CodeValidation covers missing/malformed input caught before any
	// store or provider call.
	CodeValidation ErrorCode = "VALIDATION"

	// CodeStore covers query/insert/delete/upload failures of the
	// relational store or the object store.
	CodeStore ErrorCode = "STORE"

	// CodeConfiguration covers missing server-side configuration.
	// Fatal to the single operation only.
	CodeConfiguration ErrorCode = "CONFIGURATION"

	// CodeNetwork covers transport failures talking to a downstream.
	CodeNetwork ErrorCode = "NETWORK"

	// CodeProvider covers errors reported by the email provider.
	CodeProvider ErrorCode = "PROVIDER"

	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
)
