package domain

import "errors"

var (
	// ErrNotFound is the documented "no row" signal from the data service.
	ErrNotFound = errors.New("not found")

	// ErrPartnerIDRequired rejects empty/missing lookup identifiers before
	// any backend read is attempted.
	ErrPartnerIDRequired = errors.New("partner id is required")

	// ErrNoSession means the credential-session service resolved no
	// principal for the presented token (anonymous, expired or invalid).
	ErrNoSession = errors.New("no session")
)
