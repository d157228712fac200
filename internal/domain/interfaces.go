package domain

// SnapshotStore persists the full application state under one namespace key.
// Save overwrites any prior snapshot. Load returns ErrNoSnapshot when nothing
// has been written yet.
type SnapshotStore interface {
	Load() (Snapshot, error)
	Save(snap Snapshot) error
	Close() error
}

// CredentialVerifier decides whether a login attempt succeeds.
type CredentialVerifier interface {
	Verify(creds Credentials) bool
}
