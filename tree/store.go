package tree

import (
	"context"
	"fmt"
	"sync"
)

/*
Store is an interface to manage a store
where trees can be created, retrieved, updated
and deleted.

All it methods take a context that may allow
cancelling the operation (thus forcing the return
of an error) if the implementation allows it.
*/
type Store interface {
	// Create takes a tree and stores it for the
	// first time in the store, returning the ID
	// generated for it. It returns an error if
	// the tree cannot be stored.
	Create(ctx context.Context, t *Tree) (string, error)
	// Get takes an id and returns the tree in the
	// store with that id (or nil if it cannot be
	// found) or an error if the store cannot be
	// queried
	Get(ctx context.Context, id string) (*Tree, error)
	// Store takes the ID of a tree and a tree and
	// replaces the stored tree with it. It returns
	// an error if the update cannot be performed.
	Store(ctx context.Context, id string, t *Tree) error
	// Delete takes the ID of a tree and deletes it
	// from the store. It returns an error if the tree
	// exists but the deletion cannot be performed.
	Delete(ctx context.Context, id string) error
	// Close closes the store, freeing any resources
	// in use. It returns an error if the Close cannot
	// be completed.
	Close(ctx context.Context) error
}

type memoryStore struct {
	trees  map[string]*Tree
	lock   *sync.RWMutex
	nextID uint64
}

// NewMemoryStore returns an implementation
// of Store with the process memory space
// as underlying backend
func NewMemoryStore() Store {
	return &memoryStore{
		trees: make(map[string]*Tree),
		lock:  &sync.RWMutex{},
	}
}

func (ms *memoryStore) Create(ctx context.Context, t *Tree) (string, error) {
	var id string
	err := ms.withLock(ctx, func(ctx context.Context) error {
		ms.nextID++
		id = fmt.Sprintf("%d", ms.nextID)
		ms.trees[id] = t
		return nil
	})
	return id, err
}

func (ms *memoryStore) Store(ctx context.Context, id string, t *Tree) error {
	return ms.withLock(ctx, func(ctx context.Context) error {
		if _, ok := ms.trees[id]; !ok {
			return fmt.Errorf("storing tree %s: not found", id)
		}
		ms.trees[id] = t
		return nil
	})
}

func (ms *memoryStore) Get(ctx context.Context, id string) (*Tree, error) {
	var t *Tree
	err := ms.withRLock(ctx, func(ctx context.Context) error {
		t = ms.trees[id]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (ms *memoryStore) Delete(ctx context.Context, id string) error {
	return ms.withLock(ctx, func(ctx context.Context) error {
		delete(ms.trees, id)
		return nil
	})
}

func (ms *memoryStore) Close(ctx context.Context) error {
	return nil
}

func (ms *memoryStore) withLock(ctx context.Context, f func(ctx context.Context) error) error {
	gotLock := make(chan struct{})
	go func() {
		ms.lock.Lock()
		select {
		case <-ctx.Done():
			ms.lock.Unlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.Unlock()
	}
	return f(ctx)
}

func (ms *memoryStore) withRLock(ctx context.Context, f func(ctx context.Context) error) error {
	gotLock := make(chan struct{})
	go func() {
		ms.lock.RLock()
		select {
		case <-ctx.Done():
			ms.lock.RUnlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.RUnlock()
	}
	return f(ctx)
}
