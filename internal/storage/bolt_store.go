package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/samvad-hq/kundli-sdk/internal/domain"
	bolt "go.etcd.io/bbolt"
)

const (
	historyBucket = "calls"
	keyBytes      = 16
)

// storedRecord is the on-disk envelope for a call record.
type storedRecord struct {
	ExpiresAt int64             `json:"expires_at"`
	Record    domain.CallRecord `json:"record"`
	Response  string            `json:"response,omitempty"`
}

// boltStore implements a Store backed by BoltDB.
type boltStore struct {
	db              *bolt.DB
	cleanupMu       sync.Mutex
	lastCleanup     atomic.Int64
	recordTTL       time.Duration
	cleanupInterval time.Duration
	now             func() time.Time
}

// openBolt initializes a BoltDB-backed Store.
func openBolt(path string, opts Options) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(historyBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}

	store := &boltStore{
		db:              db,
		recordTTL:       opts.RecordTTL,
		cleanupInterval: opts.CleanupInterval,
		now:             time.Now,
	}
	store.lastCleanup.Store(store.now().Unix())
	return store, nil
}

// Close closes the BoltDB store.
func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Record appends rec to the history. Keys sort by request time.
func (b *boltStore) Record(rec domain.CallRecord) error {
	if b == nil || b.db == nil {
		return nil
	}

	now := b.now()
	if err := b.maybeCleanupExpired(now); err != nil {
		return err
	}

	value, err := json.Marshal(storedRecord{
		ExpiresAt: now.Add(b.recordTTL).Unix(),
		Record:    rec,
		Response:  string(rec.Response),
	})
	if err != nil {
		return fmt.Errorf("encode call record: %w", err)
	}

	requestedAt := rec.RequestedAt
	if requestedAt.IsZero() {
		requestedAt = now
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(historyBucket))
		if bucket == nil {
			return fmt.Errorf("history bucket missing")
		}
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, keyBytes)
		binary.BigEndian.PutUint64(key[:8], uint64(requestedAt.UnixNano()))
		binary.BigEndian.PutUint64(key[8:], seq)
		return bucket.Put(key, value)
	})
}

// Recent returns up to limit unexpired records, newest first. A limit <= 0
// returns everything.
func (b *boltStore) Recent(limit int) ([]domain.CallRecord, error) {
	if b == nil || b.db == nil {
		return nil, nil
	}

	now := b.now()
	if err := b.maybeCleanupExpired(now); err != nil {
		return nil, err
	}

	var out []domain.CallRecord
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(historyBucket))
		if bucket == nil {
			return fmt.Errorf("history bucket missing")
		}

		cursor := bucket.Cursor()
		for k, v := cursor.Last(); k != nil; k, v = cursor.Prev() {
			stored, ok := decodeRecord(v)
			if !ok || !time.Unix(stored.ExpiresAt, 0).After(now) {
				continue
			}
			rec := stored.Record
			rec.Response = []byte(stored.Response)
			out = append(out, rec)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
		return nil
	})
	return out, err
}

// maybeCleanupExpired removes expired records on a fixed cadence to avoid unbounded growth.
func (b *boltStore) maybeCleanupExpired(now time.Time) error {
	if b == nil || b.db == nil {
		return nil
	}

	last := time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	b.cleanupMu.Lock()
	defer b.cleanupMu.Unlock()

	last = time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(historyBucket))
		if bucket == nil {
			return fmt.Errorf("history bucket missing")
		}

		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; {
			stored, ok := decodeRecord(v)
			if !ok || !time.Unix(stored.ExpiresAt, 0).After(now) {
				if err := cursor.Delete(); err != nil {
					return err
				}
				k, v = cursor.Seek(k)
				continue
			}
			k, v = cursor.Next()
		}
		return nil
	})
	if err == nil {
		b.lastCleanup.Store(now.Unix())
	}
	return err
}

// decodeRecord decodes a stored envelope.
func decodeRecord(value []byte) (storedRecord, bool) {
	var stored storedRecord
	if err := json.Unmarshal(value, &stored); err != nil {
		return storedRecord{}, false
	}
	if stored.ExpiresAt <= 0 {
		return storedRecord{}, false
	}
	return stored, true
}
