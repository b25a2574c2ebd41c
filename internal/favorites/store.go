// Package favorites owns the persisted set of favorite groups.
package favorites

import (
	"fmt"
	"log"

	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/observable"
)

// Key is the backend key the set is stored under
const Key = "favorite_groups"

// Store is the single owner of the favorite set. Every mutation is written
// to the backend before memory and subscribers are updated.
type Store struct {
	backend Backend
	state   *observable.Value[model.FavoriteSet]
}

// New loads the favorite set from backend
func New(backend Backend) (*Store, error) {
	if backend == nil {
		return nil, fmt.Errorf("favorites: nil backend")
	}

	values, err := backend.ReadSet(Key)
	if err != nil {
		return nil, &PersistenceError{Op: "read", Key: Key, Err: err}
	}

	ids := make([]model.GroupID, 0, len(values))
	for _, v := range values {
		ids = append(ids, model.GroupID(v))
	}

	return &Store{
		backend: backend,
		state:   observable.New(model.NewFavoriteSet(ids...)),
	}, nil
}

// Current returns a snapshot of the favorite set
func (s *Store) Current() model.FavoriteSet {
	return s.state.Get().Clone()
}

// Contains reports whether id is a favorite
func (s *Store) Contains(id model.GroupID) bool {
	return s.state.Get().Contains(id)
}

// Add marks id as favorite. Adding a member is a no-op without notification.
func (s *Store) Add(id model.GroupID) error {
	return s.mutate(func(cur model.FavoriteSet) (model.FavoriteSet, bool) {
		if cur.Contains(id) {
			return cur, false
		}
		return cur.With(id), true
	})
}

// Remove unmarks id. Removing a non-member is a no-op without notification.
func (s *Store) Remove(id model.GroupID) error {
	return s.mutate(func(cur model.FavoriteSet) (model.FavoriteSet, bool) {
		if !cur.Contains(id) {
			return cur, false
		}
		return cur.Without(id), true
	})
}

// Toggle adds id if absent and removes it if present, as one atomic step
// with respect to other mutations. It returns the new membership of id.
func (s *Store) Toggle(id model.GroupID) (bool, error) {
	var member bool
	err := s.mutate(func(cur model.FavoriteSet) (model.FavoriteSet, bool) {
		if cur.Contains(id) {
			member = false
			return cur.Without(id), true
		}
		member = true
		return cur.With(id), true
	})
	if err != nil {
		return s.Contains(id), err
	}
	return member, nil
}

// Subscribe registers fn for every committed change. fn is called with the
// current set before Subscribe returns. Each call receives its own copy.
func (s *Store) Subscribe(fn func(model.FavoriteSet)) (cancel func()) {
	return s.state.Subscribe(func(set model.FavoriteSet) {
		fn(set.Clone())
	})
}

func (s *Store) mutate(change func(model.FavoriteSet) (model.FavoriteSet, bool)) error {
	return s.state.Update(func(cur model.FavoriteSet) (model.FavoriteSet, bool, error) {
		next, changed := change(cur)
		if !changed {
			return cur, false, nil
		}
		if err := s.backend.WriteSet(Key, next.Strings()); err != nil {
			log.Printf("favorites: write failed, keeping %d groups: %v", cur.Len(), err)
			return cur, false, &PersistenceError{Op: "write", Key: Key, Err: err}
		}
		return next, true, nil
	})
}
