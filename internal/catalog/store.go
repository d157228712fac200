// Package catalog owns the authoritative release list and session flags.
package catalog

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/mmcdole/airdate/internal/domain"
)

// Store is the single source of truth for releases and session flags.
// Every successful mutation is followed by a full snapshot write; write
// failures are logged and never roll back the in-memory state.
type Store struct {
	snapshots domain.SnapshotStore
	verifier  domain.CredentialVerifier
	logger    *slog.Logger
	newID     func() string
	seed      []domain.Release

	rememberAdmin bool
	defaults      domain.Session

	mu          sync.Mutex
	releases    []domain.Release
	session     domain.Session
	initialized bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDGenerator replaces the random id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithRememberAdmin keeps a persisted admin session across restarts.
func WithRememberAdmin(remember bool) Option {
	return func(s *Store) { s.rememberAdmin = remember }
}

// WithDefaults sets the language and theme used when seeding.
func WithDefaults(lang domain.Language, theme domain.Theme) Option {
	return func(s *Store) {
		s.defaults.Language = lang
		s.defaults.Theme = theme
	}
}

// WithSeed replaces the built-in starter releases.
func WithSeed(seed []domain.Release) Option {
	return func(s *Store) { s.seed = seed }
}

// NewStore creates a store backed by the given snapshot store. Call
// Initialize before any other operation.
func NewStore(snapshots domain.SnapshotStore, verifier domain.CredentialVerifier, opts ...Option) *Store {
	s := &Store{
		snapshots: snapshots,
		verifier:  verifier,
		logger:    slog.Default(),
		newID:     uuid.NewString,
		seed:      SeedReleases(),
		defaults: domain.Session{
			Language: domain.DefaultLanguage,
			Theme:    domain.DefaultTheme,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.verifier == nil {
		s.verifier = DefaultVerifier()
	}
	return s
}

// Initialize restores the last persisted snapshot, or seeds the store with
// the built-in releases when none exists or it cannot be decoded.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return domain.ErrAlreadyInitialized
	}
	s.initialized = true

	snap, err := s.snapshots.Load()
	if err == nil {
		s.releases = snap.Releases
		s.session = snap.Session
		if !s.rememberAdmin {
			s.session.IsAdmin = false
		}
		s.logger.Info("restored snapshot", "releases", len(s.releases), "language", s.session.Language)
		return nil
	}

	if errors.Is(err, domain.ErrNoSnapshot) {
		s.logger.Info("no snapshot found, seeding")
	} else {
		s.logger.Warn("snapshot unreadable, seeding", "error", err)
	}

	s.releases = make([]domain.Release, 0, len(s.seed))
	for _, r := range s.seed {
		r = r.Clone()
		r.Normalize()
		s.releases = append(s.releases, r)
	}
	s.session = domain.Session{
		Language: s.defaults.Language,
		Theme:    s.defaults.Theme,
	}
	s.persistLocked()
	return nil
}

// Close releases the underlying snapshot store.
func (s *Store) Close() error {
	return s.snapshots.Close()
}

// List returns the releases in insertion order. The result is a copy.
func (s *Store) List() []domain.Release {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Release, len(s.releases))
	for i, r := range s.releases {
		out[i] = r.Clone()
	}
	return out
}

// Get returns the release with the given id.
func (s *Store) Get(id string) (domain.Release, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(id); i >= 0 {
		return s.releases[i].Clone(), true
	}
	return domain.Release{}, false
}

// Session returns the current session flags.
func (s *Store) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Snapshot returns a copy of the full state.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Add assigns a fresh id to the candidate, appends it and persists.
// The candidate is assumed to be validated already (see Draft).
func (s *Store) Add(candidate domain.Release) (domain.Release, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.Release{}, domain.ErrNotInitialized
	}

	r := candidate.Clone()
	r.ID = s.newID()
	for s.indexLocked(r.ID) >= 0 {
		r.ID = s.newID()
	}
	r.Normalize()

	s.releases = append(s.releases, r)
	s.logger.Debug("added release", "id", r.ID, "title", r.Title)
	s.persistLocked()
	return r.Clone(), nil
}

// Update merges patch over the release with the given id and persists.
// An unknown id is a silent no-op: nothing changes and nothing is written.
// The result reports whether the id was found.
func (s *Store) Update(id string, patch domain.ReleasePatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		s.logger.Debug("update ignored, unknown id", "id", id)
		return false
	}

	s.releases[i] = patch.Apply(s.releases[i])
	s.releases[i].Normalize()
	s.logger.Debug("updated release", "id", id)
	s.persistLocked()
	return true
}

// Delete removes the release with the given id and persists. Deleting an
// unknown id is a no-op, so repeated deletes are idempotent.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		s.logger.Debug("delete ignored, unknown id", "id", id)
		return false
	}

	s.releases = append(s.releases[:i], s.releases[i+1:]...)
	s.logger.Debug("deleted release", "id", id)
	s.persistLocked()
	return true
}

// Login grants the admin session when the verifier accepts the credentials.
// On mismatch it returns domain.ErrAuthFailed and leaves state untouched.
func (s *Store) Login(creds domain.Credentials) error {
	if !s.isInitialized() {
		return domain.ErrNotInitialized
	}
	if !s.verifier.Verify(creds) {
		s.logger.Warn("login failed", "username", creds.Username)
		return domain.ErrAuthFailed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}
	s.session.IsAdmin = true
	s.logger.Info("admin login", "username", creds.Username)
	s.persistLocked()
	return nil
}

// Logout ends the admin session and persists. Before Initialize it does
// nothing.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	s.session.IsAdmin = false
	s.persistLocked()
}

// SetLanguage changes the language preference and persists.
func (s *Store) SetLanguage(lang domain.Language) error {
	if _, err := domain.ParseLanguage(string(lang)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}
	s.session.Language = lang
	s.persistLocked()
	return nil
}

// SetTheme changes the theme preference and persists.
func (s *Store) SetTheme(theme domain.Theme) error {
	if _, err := domain.ParseTheme(string(theme)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}
	s.session.Theme = theme
	s.persistLocked()
	return nil
}

// Replace swaps in the releases and preferences of an imported snapshot.
// The admin flag is not imported.
func (s *Store) Replace(snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}

	imported := snap.Clone()
	for i := range imported.Releases {
		imported.Releases[i].Normalize()
	}
	s.releases = imported.Releases
	s.session.Language = imported.Language
	s.session.Theme = imported.Theme
	s.logger.Info("replaced catalog", "releases", len(s.releases))
	s.persistLocked()
	return nil
}

func (s *Store) isInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

func (s *Store) indexLocked(id string) int {
	for i, r := range s.releases {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{Releases: s.releases, Session: s.session}.Clone()
}

// persistLocked writes the full state. Failures are logged, not returned.
func (s *Store) persistLocked() {
	if err := s.snapshots.Save(s.snapshotLocked()); err != nil {
		s.logger.Error("failed to persist snapshot", "error", err)
	}
}
