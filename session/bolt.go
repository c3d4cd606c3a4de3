// ABOUTME: bbolt-backed session store keeping values in a single bucket.
package session

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketSession = "session"

// BoltStore keeps session values in a bbolt database.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens or creates a bbolt database at path. It fails after one
// second if another process holds the file lock.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSession))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create session bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Close closes the database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Get returns the value for key, or ErrNotFound.
func (s *BoltStore) Get(key string) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketSession)).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		value = string(v)
		return nil
	})
	return value, err
}

// Set stores the value for key.
func (s *BoltStore) Set(key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSession)).Put([]byte(key), []byte(value))
	})
}

// Delete removes key. Deleting a missing key is not an error.
func (s *BoltStore) Delete(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSession)).Delete([]byte(key))
	})
}
