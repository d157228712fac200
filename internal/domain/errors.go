package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrAuthFailed indicates the submitted credentials did not match
	ErrAuthFailed = errors.New("invalid credentials")

	// ErrNoSnapshot indicates no persisted state exists yet
	ErrNoSnapshot = errors.New("no persisted snapshot")

	// ErrUnsupportedVersion indicates a snapshot written by a newer schema
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrInvalidDate indicates a release date that cannot be parsed
	ErrInvalidDate = errors.New("invalid release date")

	ErrInvalidLanguage = errors.New("invalid language")
	ErrInvalidTheme    = errors.New("invalid theme")

	// ErrNotInitialized indicates a mutation before Initialize
	ErrNotInitialized = errors.New("store not initialized")

	// ErrAlreadyInitialized indicates a second call to Initialize
	ErrAlreadyInitialized = errors.New("store already initialized")
)
