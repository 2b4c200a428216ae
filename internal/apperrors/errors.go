package apperrors

import "fmt"

// Kind classifies application errors so handlers can map them to HTTP
// responses without inspecting messages.
type Kind int

const (
	Internal Kind = iota
	NotFound
	Forbidden
	InvalidInput
	RuleViolation
	ResourceExhausted
)

type AppError struct {
	Code    int
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Kind: kindForCode(code), Message: message, Err: err}
}

func kindForCode(code int) Kind {
	switch code {
	case 404:
		return NotFound
	case 403:
		return Forbidden
	case 400:
		return InvalidInput
	case 409:
		return RuleViolation
	case 503:
		return ResourceExhausted
	default:
		return Internal
	}
}

func NewNotFound(message string) *AppError {
	return &AppError{Code: 404, Kind: NotFound, Message: message}
}

func NewForbidden(message string) *AppError {
	return &AppError{Code: 403, Kind: Forbidden, Message: message}
}

func NewInvalidInput(message string) *AppError {
	return &AppError{Code: 400, Kind: InvalidInput, Message: message}
}

func NewRuleViolation(message string) *AppError {
	return &AppError{Code: 409, Kind: RuleViolation, Message: message}
}

// NewResourceExhausted marks an operational failure that needs administrator
// action, such as an empty word pool. Not retried automatically.
func NewResourceExhausted(message string) *AppError {
	return &AppError{Code: 503, Kind: ResourceExhausted, Message: message}
}
