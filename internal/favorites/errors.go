package favorites

import "fmt"

// PersistenceError reports a failed backend read or write. The store's
// in-memory state is unchanged when a mutation returns it.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("favorites: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
