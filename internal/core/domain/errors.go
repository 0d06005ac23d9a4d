package domain

import "errors"

// Decoding errors. They are returned, never panicked, so callers can decide
// whether a bad field invalidates the whole snapshot.
var (
	ErrInvalidTrackingNumber = errors.New("tracking number does not match La Poste format")
	ErrUnknownEventCode      = errors.New("unknown event code")
	ErrNoProgress            = errors.New("timeline does not resolve to a delivery step")
)

// Carrier errors, raised by the transport layer from HTTP response codes.
var (
	ErrParcelNotFound        = errors.New("parcel not found")
	ErrCarrierUnauthorized   = errors.New("carrier rejected credentials")
	ErrCarrierRejectedFormat = errors.New("carrier rejected tracking number format")
	ErrCarrierUnavailable    = errors.New("carrier unavailable")
)

var (
	ErrWatchNotFound = errors.New("watch not found")
	ErrWatchExists   = errors.New("watch already exists")
	ErrForbidden     = errors.New("access forbidden")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
)
