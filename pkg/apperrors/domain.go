package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the platform's business logic.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error, domain string) *AppError {
	return Wrap(err, CodeNotFound, domain, "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a unique-constraint violation into a 409.
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrInvalidStatus signals an operation that is not a legal move in the
// entity's current state (already-decided submission, closed giveaway).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// ErrInvalidOperation signals a request that is never valid for this entity.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Authorization ---

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrNotOwner is returned when an owner-scoped operation is attempted by
// someone else.
var ErrNotOwner = New(
	CodeForbidden,
	"auth",
	"Operation allowed only for the owner of this resource",
	http.StatusForbidden,
)

// ErrSenderRoleMismatch is returned when a message's sender tag does not
// match the requester's actual identity or role.
var ErrSenderRoleMismatch = New(
	CodeForbidden,
	"submission",
	"Message sender does not match the requester",
	http.StatusForbidden,
)

// --- Submissions ---

// ErrSubmissionDecided: the submission already reached a terminal status and
// no further transition is defined.
var ErrSubmissionDecided = New(
	CodeInvalidStatus,
	"submission",
	"Submission has already been decided",
	http.StatusConflict,
)

var ErrEmptyMessage = New(
	CodeValidationFailed,
	"submission",
	"Message text is required unless an attachment is provided",
	http.StatusBadRequest,
)

// --- Giveaways ---

var ErrGiveawayClosed = New(
	CodeInvalidStatus,
	"giveaway",
	"Giveaway is not accepting participants",
	http.StatusConflict,
)

var ErrDuplicateParticipation = New(
	CodeAlreadyExists,
	"giveaway",
	"Already participating in this giveaway",
	http.StatusConflict,
)

// --- Stamps ---

var ErrInvalidStampCode = New(
	CodeValidationFailed,
	"stamps",
	"Invalid stamp code",
	http.StatusBadRequest,
)

var ErrStampAlreadyCollected = New(
	CodeAlreadyExists,
	"stamps",
	"You already have this stamp",
	http.StatusConflict,
)

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
