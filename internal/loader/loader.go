package loader

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/observable"
)

const (
	// RequestIDPrefix marks loader request IDs in logs
	RequestIDPrefix = "load-"

	// UnknownErrorMessage is used when a failure has no description
	UnknownErrorMessage = "unknown error"
)

// FetchFunc performs the remote call for one key. It may block; the context
// is cancelled once the request is superseded, but implementations are free
// to ignore it.
type FetchFunc[T any] func(ctx context.Context, group model.GroupID, window model.WeekWindow) (T, error)

// Loader holds the LoadState of the most recently requested key
type Loader[T any] struct {
	state *observable.Value[model.LoadState[T]]

	// guarded by the state mutation lock
	activeID string
	cancel   context.CancelFunc

	// inflight counts started fetches that have not settled yet
	inflightMu sync.Mutex
	settled    *sync.Cond
	inflight   int

	// afterSettle is a test hook invoked once a fetch result was committed
	// or dropped
	afterSettle func(key model.RequestKey, committed bool)
}

// New creates an idle loader
func New[T any]() *Loader[T] {
	l := &Loader[T]{state: observable.New(model.Idle[T]())}
	l.settled = sync.NewCond(&l.inflightMu)
	return l
}

// Current returns the current state
func (l *Loader[T]) Current() model.LoadState[T] {
	return l.state.Get()
}

// Subscribe registers fn for every state change; fn receives the current
// state before Subscribe returns
func (l *Loader[T]) Subscribe(fn func(model.LoadState[T])) (cancel func()) {
	return l.state.Subscribe(fn)
}

// Load starts fetching key unless the current state is already Loading or
// Success for an equal key. The state is Loading(key) when Load returns; the
// fetch runs in its own goroutine. It reports whether a fetch was started.
func (l *Loader[T]) Load(ctx context.Context, key model.RequestKey, fetch FetchFunc[T]) bool {
	return l.start(ctx, key, fetch, false)
}

// Reload always starts a new fetch for key, superseding any request in
// flight, even for an equal key
func (l *Loader[T]) Reload(ctx context.Context, key model.RequestKey, fetch FetchFunc[T]) {
	l.start(ctx, key, fetch, true)
}

// Wait blocks until every started fetch has returned and settled. It may be
// called concurrently with Load and Reload.
func (l *Loader[T]) Wait() {
	l.inflightMu.Lock()
	defer l.inflightMu.Unlock()
	for l.inflight > 0 {
		l.settled.Wait()
	}
}

func (l *Loader[T]) track(delta int) {
	l.inflightMu.Lock()
	defer l.inflightMu.Unlock()
	l.inflight += delta
	if l.inflight == 0 {
		l.settled.Broadcast()
	}
}

func (l *Loader[T]) start(ctx context.Context, key model.RequestKey, fetch FetchFunc[T], force bool) bool {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		reqCtx context.Context
		reqID  string
	)
	_ = l.state.Update(func(cur model.LoadState[T]) (model.LoadState[T], bool, error) {
		if !force && cur.Key == key && (cur.Status == model.LoadStatusLoading || cur.Status == model.LoadStatusSuccess) {
			return cur, false, nil
		}
		if l.cancel != nil {
			log.Printf("loader: request %s superseded by %s", l.activeID, key)
			l.cancel()
		}
		reqID = generateRequestID()
		reqCtx, l.cancel = context.WithCancel(ctx)
		l.activeID = reqID
		// counted before the state is published so Wait never misses it
		l.track(1)
		return model.Loading[T](key), true, nil
	})
	if reqID == "" {
		return false
	}

	log.Printf("loader: request %s started for %s", reqID, key)
	go l.run(reqCtx, reqID, key, fetch)
	return true
}

func (l *Loader[T]) run(ctx context.Context, reqID string, key model.RequestKey, fetch FetchFunc[T]) {
	defer l.track(-1)

	started := time.Now()
	value, err := fetchSafely(ctx, key, fetch)

	committed := false
	_ = l.state.Update(func(cur model.LoadState[T]) (model.LoadState[T], bool, error) {
		if l.activeID != reqID {
			return cur, false, nil
		}
		committed = true
		l.cancel()
		l.cancel = nil
		if err != nil {
			return model.Failure[T](key, errorMessage(err)), true, nil
		}
		return model.Success(key, value), true, nil
	})

	switch {
	case !committed:
		log.Printf("loader: request %s for %s dropped after %s", reqID, key, time.Since(started).Round(time.Millisecond))
	case err != nil:
		log.Printf("loader: request %s for %s failed: %v", reqID, key, err)
	default:
		log.Printf("loader: request %s for %s done in %s", reqID, key, time.Since(started).Round(time.Millisecond))
	}

	if l.afterSettle != nil {
		l.afterSettle(key, committed)
	}
}

// fetchSafely turns a panicking fetch into an error
func fetchSafely[T any](ctx context.Context, key model.RequestKey, fetch FetchFunc[T]) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fetch panicked: %v", r)
		}
	}()
	return fetch(ctx, key.Group, key.Window)
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return UnknownErrorMessage
}

// generateRequestID generates a time-ordered unique request ID
func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RequestIDPrefix+"%d", time.Now().UnixNano())
	}
	return RequestIDPrefix + id.String()
}
