package domain

// Snapshot is the full persisted state: records plus session flags.
// It serializes to the flat {records, isAdmin, language, theme} shape.
type Snapshot struct {
	Releases []Release `json:"records"`
	Session
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Session: s.Session, Releases: make([]Release, len(s.Releases))}
	for i, r := range s.Releases {
		out.Releases[i] = r.Clone()
	}
	return out
}
