package ledger

import "errors"

var (
	// ErrUnauthorized is returned when no authenticated principal can be
	// resolved for a request, or when a token carries no usable identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMalformedAmount is returned when a persisted amount cannot be
	// parsed as a decimal. Malformed amounts are surfaced, never silently
	// treated as zero, because that would corrupt financial totals without
	// any signal.
	ErrMalformedAmount = errors.New("malformed transaction amount")
)
