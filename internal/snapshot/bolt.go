package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/airdate/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// DefaultKey is the namespace key the snapshot is stored under.
const DefaultKey = "anime-release-store"

var bucketState = []byte("state")

// BoltStore implements domain.SnapshotStore using BoltDB.
// With an empty path it runs in memory-only mode (no persistence).
type BoltStore struct {
	db  *bolt.DB
	key []byte

	mu  sync.RWMutex // Protects mem
	mem []byte       // Last written snapshot, authoritative in memory-only mode
}

// NewBoltStore opens (or creates) the database at path.
func NewBoltStore(path, key string) (*BoltStore, error) {
	if key == "" {
		key = DefaultKey
	}
	if path == "" {
		return &BoltStore{key: []byte(key)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db, key: []byte(key)}, nil
}

// Load reads and decodes the snapshot stored under the namespace key.
func (s *BoltStore) Load() (domain.Snapshot, error) {
	data, err := s.LoadRaw()
	if err != nil {
		return domain.Snapshot{}, err
	}
	return Decode(data)
}

// LoadRaw returns the stored bytes without decoding them.
func (s *BoltStore) LoadRaw() ([]byte, error) {
	if s.db == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		if s.mem == nil {
			return nil, domain.ErrNoSnapshot
		}
		return append([]byte(nil), s.mem...), nil
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketState)
		if b == nil {
			return nil
		}
		if v := b.Get(s.key); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if data == nil {
		return nil, domain.ErrNoSnapshot
	}
	return data, nil
}

// Save encodes the snapshot and overwrites the stored value.
func (s *BoltStore) Save(snap domain.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	return s.SaveRaw(data)
}

// SaveRaw stores already-encoded bytes under the namespace key.
func (s *BoltStore) SaveRaw(data []byte) error {
	if s.db == nil {
		s.mu.Lock()
		s.mem = append([]byte(nil), data...)
		s.mu.Unlock()
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketState)
		if err != nil {
			return err
		}
		return b.Put(s.key, data)
	})
}

// Clear removes the stored snapshot so the next start reseeds.
func (s *BoltStore) Clear() error {
	if s.db == nil {
		s.mu.Lock()
		s.mem = nil
		s.mu.Unlock()
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketState)
		if b == nil {
			return nil
		}
		return b.Delete(s.key)
	})
}

func (s *BoltStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
