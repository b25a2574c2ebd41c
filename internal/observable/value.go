package observable

import (
	"sync"
	"sync/atomic"
)

type observer[T any] struct {
	id uint64
	fn func(T)
}

// Value holds the current state of a single-owner store.
//
// Mutations are serialized by mu. Delivery is serialized by deliverMu, which
// a committing goroutine takes before releasing mu, so observers see changes
// in exactly the order they were committed. The committed value is also
// published through snapshot, so Get never waits on either lock. Observers
// may call Get, but must not call Update, Set or Subscribe on the same Value
// synchronously.
type Value[T any] struct {
	mu        sync.Mutex
	deliverMu sync.Mutex
	current   T
	snapshot  atomic.Pointer[T]
	observers []observer[T]
	nextID    uint64
}

// New creates a value holding initial
func New[T any](initial T) *Value[T] {
	v := &Value[T]{current: initial}
	v.snapshot.Store(&initial)
	return v
}

// Get returns the most recently committed value
func (v *Value[T]) Get() T {
	return *v.snapshot.Load()
}

// Set commits next unconditionally and notifies observers
func (v *Value[T]) Set(next T) {
	_ = v.Update(func(T) (T, bool, error) {
		return next, true, nil
	})
}

// Update runs fn with the current value while holding the mutation lock.
// If fn returns an error, or reports no change, nothing is committed and no
// observer is notified. Otherwise the returned value becomes current and is
// delivered to every observer before Update returns.
func (v *Value[T]) Update(fn func(current T) (next T, changed bool, err error)) error {
	v.mu.Lock()
	next, changed, err := v.apply(fn)
	if err != nil || !changed {
		v.mu.Unlock()
		return err
	}
	v.current = next
	v.snapshot.Store(&next)
	observers := make([]observer[T], len(v.observers))
	copy(observers, v.observers)

	v.deliverMu.Lock()
	v.mu.Unlock()
	defer v.deliverMu.Unlock()

	for _, o := range observers {
		o.fn(next)
	}
	return nil
}

// apply keeps mu balanced if fn panics
func (v *Value[T]) apply(fn func(T) (T, bool, error)) (next T, changed bool, err error) {
	ok := false
	defer func() {
		if !ok {
			v.mu.Unlock()
		}
	}()
	next, changed, err = fn(v.current)
	ok = true
	return next, changed, err
}

// Subscribe registers fn and immediately delivers the current value to it.
// The returned function removes the subscription; it is safe to call more
// than once.
func (v *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	v.mu.Lock()
	v.nextID++
	id := v.nextID
	v.observers = append(v.observers, observer[T]{id: id, fn: fn})
	current := v.current

	v.deliverMu.Lock()
	v.mu.Unlock()
	fn(current)
	v.deliverMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { v.unsubscribe(id) })
	}
}

// Observers returns the number of active subscriptions
func (v *Value[T]) Observers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.observers)
}

func (v *Value[T]) unsubscribe(id uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, o := range v.observers {
		if o.id == id {
			v.observers = append(v.observers[:i:i], v.observers[i+1:]...)
			return
		}
	}
}
