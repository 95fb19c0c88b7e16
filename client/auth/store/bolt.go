package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fxamacker/cbor/v2"
	"go.etcd.io/bbolt"
)

var bucketSession = []byte("session")

type boltEntry struct {
	Value     string    `cbor:"1,keyasint"`
	UpdatedAt time.Time `cbor:"2,keyasint"`
}

// BoltStore keeps the session in a bbolt database, values are CBOR encoded.
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens (or creates) the database at path.
func NewBoltStore(path string) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("create session directory: %w", err)
		}
	}
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create session bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (b *BoltStore) Lookup(_ context.Context, key Key) (string, bool, error) {
	var entry *boltEntry
	err := b.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSession).Get([]byte(key))
		if data == nil {
			return nil
		}
		entry = &boltEntry{}
		return cbor.Unmarshal(data, entry)
	})
	if err != nil {
		return "", false, fmt.Errorf("lookup %v: %w", key, err)
	}
	if entry == nil {
		return "", false, nil
	}
	return entry.Value, true, nil
}

func (b *BoltStore) Put(_ context.Context, key Key, value string) error {
	data, err := cbor.Marshal(&boltEntry{Value: value, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSession).Put([]byte(key), data)
	})
}

func (b *BoltStore) Remove(_ context.Context, key Key) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSession).Delete([]byte(key))
	})
}

// Close releases the database file lock.
func (b *BoltStore) Close() error {
	return b.db.Close()
}
