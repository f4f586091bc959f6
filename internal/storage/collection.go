package storage

import (
	"context"
	"errors"
)

// Well-known collection keys. One key-value entry exists per collection; the
// value is always the complete JSON array for that collection.
const (
	CollectionAdmins       = "admins"
	CollectionUsers        = "users"
	CollectionMachines     = "machines"
	CollectionMachineTypes = "machineTypes"
	CollectionExercises    = "exercises"
	CollectionRoutines     = "routines"
	CollectionMaintenances = "maintenances"
	CollectionPayments     = "payments"
)

var (
	// ErrNotFound is returned by Get when the key has never been written.
	ErrNotFound = errors.New("collection not found")
	// ErrCorrupted is returned by Get when the persisted bytes are not
	// valid JSON. Repository callers treat this the same as absent rather
	// than failing the whole screen.
	ErrCorrupted = errors.New("stored collection is not valid JSON")
	// ErrInvalidKey is returned for keys that are not simple names.
	ErrInvalidKey = errors.New("invalid collection key")
)

// CollectionStore is durable, named, whole-collection JSON storage.
//
// Every Get re-reads from the underlying medium; no cache is maintained
// between calls. Set fully replaces any prior value and must never leave a
// partially written value visible. Read-modify-write sequences spanning Get
// and Set are last-write-wins: no version check or merge is performed.
type CollectionStore interface {
	// Get returns the raw JSON previously stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set persists data under key, replacing any prior value.
	Set(ctx context.Context, key string, data []byte) error

	// Remove deletes the stored value for key. Removing an absent key is a
	// no-op success.
	Remove(ctx context.Context, key string) error
}
