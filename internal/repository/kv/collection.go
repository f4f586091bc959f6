// Package kv implements the repository interfaces on top of the
// whole-collection storage.CollectionStore. Every operation re-reads its
// collection, mutates it in memory, and writes the full array back.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"gymadmin/gym-app/internal/repository"
	"gymadmin/gym-app/internal/storage"
)

// collection is the shared typed view over one stored JSON array. The entity
// repositories are thin wrappers around it.
type collection[T any] struct {
	store storage.CollectionStore
	key   string
	getID func(*T) string
	setID func(*T, string)
}

// records loads the full collection. An absent or corrupt collection reads
// as empty: screens have always tolerated missing data, and a single bad
// file must not take every list down with it.
func (c *collection[T]) records(ctx context.Context) ([]T, error) {
	data, err := c.store.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrCorrupted) {
			return []T{}, nil
		}
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		// Valid JSON of the wrong shape. Same recovery as a corrupt file.
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// save writes the full collection back.
func (c *collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.key, data)
}

// findByID linearly scans for the record with the given id.
func (c *collection[T]) findByID(ctx context.Context, id string) (*T, error) {
	items, err := c.records(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if c.getID(&items[i]) == id {
			return &items[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// insert assigns a fresh id, appends the record, and writes back.
func (c *collection[T]) insert(ctx context.Context, item *T) (string, error) {
	items, err := c.records(ctx)
	if err != nil {
		return "", err
	}

	id := nextID()
	c.setID(item, id)
	items = append(items, *item)

	if err := c.save(ctx, items); err != nil {
		return "", err
	}
	return id, nil
}

// update applies a mutation to the matching record and writes the full
// collection back. A miss leaves storage untouched.
func (c *collection[T]) update(ctx context.Context, id string, apply func(*T)) (*T, error) {
	items, err := c.records(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if c.getID(&items[i]) == id {
			apply(&items[i])
			if err := c.save(ctx, items); err != nil {
				return nil, err
			}
			updated := items[i]
			return &updated, nil
		}
	}
	return nil, repository.ErrNotFound
}

// delete filters the matching record out and writes back. Deleting an absent
// id is a no-op success.
func (c *collection[T]) delete(ctx context.Context, id string) error {
	items, err := c.records(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for i := range items {
		if c.getID(&items[i]) != id {
			kept = append(kept, items[i])
		}
	}
	return c.save(ctx, kept)
}

// Ids are millisecond timestamps rendered as decimal strings, matching the
// historical on-disk format. The guard keeps ids unique within a process
// even when two creates land in the same millisecond.
var (
	idMu   sync.Mutex
	lastID int64
)

func nextID() string {
	idMu.Lock()
	defer idMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}
