package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mmcdole/airdate/internal/domain"
)

// CurrentVersion is the schema version written by Encode.
const CurrentVersion = 1

// envelope is the on-disk wrapper. Version 0 is the browser client's
// persist layout ({"state":{...},"version":0}).
type envelope struct {
	Version *int            `json:"version,omitempty"`
	State   json.RawMessage `json:"state,omitempty"`
}

// state is the flat record-and-flags payload. Legacy payloads name the
// record list "animes".
type state struct {
	Records  []domain.Release `json:"records"`
	Animes   []domain.Release `json:"animes,omitempty"`
	IsAdmin  bool             `json:"isAdmin"`
	Language domain.Language  `json:"language"`
	Theme    domain.Theme     `json:"theme"`
}

// Encode serializes a snapshot in the current versioned layout.
func Encode(snap domain.Snapshot) ([]byte, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	v := CurrentVersion
	data, err := json.Marshal(envelope{Version: &v, State: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses any accepted layout: the current versioned envelope, the
// legacy version-0 envelope, or the bare unversioned state object.
func Decode(data []byte) (domain.Snapshot, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return domain.Snapshot{}, fmt.Errorf("empty snapshot")
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	version := 0
	if env.Version != nil {
		version = *env.Version
	}
	if version > CurrentVersion || version < 0 {
		return domain.Snapshot{}, fmt.Errorf("%w: %d", domain.ErrUnsupportedVersion, version)
	}

	payload := []byte(env.State)
	if len(payload) == 0 {
		if env.Version != nil {
			return domain.Snapshot{}, fmt.Errorf("snapshot version %d has no state", version)
		}
		// Bare unversioned shape
		payload = data
	}

	var st state
	if err := json.Unmarshal(payload, &st); err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to decode state: %w", err)
	}
	return st.toSnapshot()
}

func (st state) toSnapshot() (domain.Snapshot, error) {
	records := st.Records
	if records == nil {
		records = st.Animes
	}
	if records == nil {
		return domain.Snapshot{}, fmt.Errorf("snapshot has no record list")
	}

	snap := domain.Snapshot{
		Releases: make([]domain.Release, 0, len(records)),
		Session: domain.Session{
			IsAdmin:  st.IsAdmin,
			Language: domain.DefaultLanguage,
			Theme:    domain.DefaultTheme,
		},
	}
	if lang, err := domain.ParseLanguage(string(st.Language)); err == nil {
		snap.Language = lang
	}
	if theme, err := domain.ParseTheme(string(st.Theme)); err == nil {
		snap.Theme = theme
	}

	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if r.ID == "" {
			return domain.Snapshot{}, fmt.Errorf("snapshot record %q has no id", r.Title)
		}
		if seen[r.ID] {
			return domain.Snapshot{}, fmt.Errorf("snapshot has duplicate id %q", r.ID)
		}
		seen[r.ID] = true
		r.Normalize()
		snap.Releases = append(snap.Releases, r)
	}
	return snap, nil
}
