package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidSubject is returned by the identity resolver when a directory
// request names no subject and carries no session identity to default to.
// The read is rejected rather than silently served empty.
// Handlers should map this to HTTP 400.
var ErrInvalidSubject = errors.New("invalid subject")

// ErrMissingSubject is returned by the visit ledger when asked to record a
// visit with no visited identity. No row is written.
// Handlers should map this to HTTP 400.
var ErrMissingSubject = errors.New("missing subject")

// ErrInvalidCredentials is returned by the auth service when an email or
// password does not match a registered account.
// Handlers should map this to HTTP 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrDuplicateToken is returned by the visit ledger if a generated token
// collides with an existing row. Token generation makes this unreachable in
// practice; when it does occur it is an invariant violation to surface, not
// a condition to retry silently.
var ErrDuplicateToken = errors.New("duplicate visit token")
