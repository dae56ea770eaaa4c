// Package error defines domain-specific errors for the finance tracker.
package error

// Kind classifies a domain error so transport layers can map it to a status
// without knowing about individual error codes.
type Kind string

const (
	// KindNotFound covers entities that are absent or owned by another user.
	// The two cases are deliberately indistinguishable to callers.
	KindNotFound Kind = "not_found"
	// KindConflict covers uniqueness violations.
	KindConflict Kind = "conflict"
	// KindValidation covers malformed input rejected before domain logic runs.
	KindValidation Kind = "validation_failed"
	// KindAuthentication covers bad credentials and invalid or expired tokens.
	KindAuthentication Kind = "authentication_failed"
	// KindStorage covers unreadable persisted collections. Fatal, not
	// auto-recovered.
	KindStorage Kind = "storage_corruption"
)

// DomainError represents a domain failure with a stable code and a
// human-readable message.
type DomainError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// New creates a new DomainError.
func New(kind Kind, code, message string, err error) *DomainError {
	return &DomainError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
