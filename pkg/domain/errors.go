package domain

import "errors"

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionCompleted is returned when an event is dispatched to a finished session.
var ErrSessionCompleted = errors.New("session already completed")

// ErrUnknownVariant is returned when no wizard definition exists for a variant name.
var ErrUnknownVariant = errors.New("unknown wizard variant")

// ErrUnknownField is returned when a field is not declared by the wizard variant.
var ErrUnknownField = errors.New("unknown field")

// ErrFieldKind is returned when a value does not match the kind of its field.
var ErrFieldKind = errors.New("value does not match field kind")

// ErrNotAList is returned when a list operation targets a scalar field.
var ErrNotAList = errors.New("field is not a list")

// ErrUnsupportedPlatform is returned when a platform has no OAuth endpoints.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// ErrStateMismatch is returned when an OAuth callback state does not match the pending one.
var ErrStateMismatch = errors.New("oauth state mismatch")

// ErrNoCredentials is returned when no access token is held for a platform.
var ErrNoCredentials = errors.New("no access token found")

// ErrStaleResponse is returned when a newer request superseded the one being answered.
var ErrStaleResponse = errors.New("response superseded by a newer request")
