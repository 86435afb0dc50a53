package mcpnode

import "errors"

// Sentinel errors for node configuration and materialization.
var (
	// ErrMissingCredential is returned when the supplied credential data
	// lacks a zone or a token.
	ErrMissingCredential = errors.New("mcpnode: credential is missing zone or token")

	// ErrUnknownZone is returned when the credential names a zone that is
	// not one of the supported region codes.
	ErrUnknownZone = errors.New("mcpnode: unknown zone")
)
