// Package apperrors provides structured domain errors with stable machine codes.
package apperrors

// Code is a machine-readable error code, stable across releases.
type Code string

const (
	// CodeUnknown represents an unclassified error.
	CodeUnknown Code = "UNKNOWN"

	// Game errors
	CodeGameNotFound       Code = "GAME_NOT_FOUND"
	CodeInvalidPlayerCount Code = "INVALID_PLAYER_COUNT"
	CodeDuplicatePlayer    Code = "DUPLICATE_PLAYER"
	CodePlayerNotInGame    Code = "PLAYER_NOT_IN_GAME"
	CodeNotYourTurn        Code = "NOT_YOUR_TURN"
	CodeGameFinished       Code = "GAME_FINISHED"
	CodeGameNotFinished    Code = "GAME_NOT_FINISHED"
	CodeEmptyDeck          Code = "EMPTY_DECK"
	CodeCardNotFound       Code = "CARD_NOT_FOUND"

	// Invitation errors
	CodeInvitationNotFound   Code = "INVITATION_NOT_FOUND"
	CodeInvitationNotPending Code = "INVITATION_NOT_PENDING"
	CodeNotCreator           Code = "NOT_CREATOR"
	CodeNotInvitee           Code = "NOT_INVITEE"

	// Auth errors
	CodeUserExists         Code = "USER_EXISTS"
	CodeInvalidEmail       Code = "INVALID_EMAIL"
	CodeInvalidPassword    Code = "INVALID_PASSWORD"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeUnauthorized       Code = "UNAUTHORIZED"

	// Admission errors
	CodeRateLimitExceeded Code = "RATE_LIMIT_EXCEEDED"
)

// Error is the domain error type carried between the core and the HTTP layer.
type Error struct {
	Code    Code              // Machine-readable error code
	Message string            // Human-readable message
	Details map[string]string // Additional context surfaced to clients
	Cause   error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithDetails creates a domain error carrying additional client-visible context.
func WithDetails(code Code, message string, details map[string]string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf extracts the domain code from err, or CodeUnknown if err carries none.
func CodeOf(err error) Code {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return CodeUnknown
		}
		err = u.Unwrap()
	}
	return CodeUnknown
}
