// Package selection holds the currently selected group and combines its
// favorite flag and weekly schedule into one observable view.
package selection

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ytget/college-schedule/internal/loader"
	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/observable"
	"github.com/ytget/college-schedule/internal/week"
)

// ErrInvalidGroup is returned for an empty group identifier
var ErrInvalidGroup = errors.New("selection: group identifier must not be empty")

// Options configures a Coordinator
type Options struct {
	InitialGroup model.GroupID
	WeekStart    time.Weekday
	Now          func() time.Time // defaults to time.Now
}

// View is what a presentation layer binds to
type View struct {
	Group    model.GroupID
	Key      model.RequestKey
	Favorite bool
	Schedule Schedule
}

// Coordinator owns the current group. It references, but does not own, the
// favorites store and the schedule loader.
type Coordinator struct {
	ctx       context.Context
	opts      Options
	favorites Favorites
	loader    ScheduleLoader
	fetch     loader.FetchFunc[[]model.DaySchedule]

	// selectMu serializes selection changes, refreshes and favorite toggles
	selectMu sync.Mutex
	view     *observable.Value[View]

	// favs is the latest favorite set; guarded by the view mutation lock
	favs model.FavoriteSet

	unsubscribe []func()
}

// New validates opts, subscribes to both sources and starts loading the
// initial group's current week
func New(ctx context.Context, opts Options, favorites Favorites, schedules ScheduleLoader, fetch loader.FetchFunc[[]model.DaySchedule]) (*Coordinator, error) {
	if !opts.InitialGroup.Valid() {
		return nil, fmt.Errorf("initial group: %w", ErrInvalidGroup)
	}
	if favorites == nil || schedules == nil || fetch == nil {
		return nil, fmt.Errorf("selection: favorites, loader and fetch are required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	c := &Coordinator{
		ctx:       ctx,
		opts:      opts,
		favorites: favorites,
		loader:    schedules,
		fetch:     fetch,
		favs:      model.NewFavoriteSet(),
	}

	key := c.keyFor(opts.InitialGroup)
	c.view = observable.New(View{
		Group:    opts.InitialGroup,
		Key:      key,
		Schedule: model.Idle[[]model.DaySchedule](),
	})

	c.unsubscribe = append(c.unsubscribe,
		favorites.Subscribe(c.onFavorites),
		schedules.Subscribe(c.onSchedule),
	)

	c.selectMu.Lock()
	c.load(key)
	c.selectMu.Unlock()

	return c, nil
}

// View returns the current combined view
func (c *Coordinator) View() View {
	return c.view.Get()
}

// Subscribe registers fn for every view change; fn receives the current view
// before Subscribe returns. fn must not call back into the coordinator
// synchronously.
func (c *Coordinator) Subscribe(fn func(View)) (cancel func()) {
	return c.view.Subscribe(fn)
}

// Group returns the current group
func (c *Coordinator) Group() model.GroupID {
	return c.view.Get().Group
}

// Key returns the current request key
func (c *Coordinator) Key() model.RequestKey {
	return c.view.Get().Key
}

// IsCurrentFavorite reports whether the current group is a favorite
func (c *Coordinator) IsCurrentFavorite() bool {
	return c.view.Get().Favorite
}

// SelectGroup makes id the current group. A load is started only if the
// request key changed.
func (c *Coordinator) SelectGroup(id model.GroupID) error {
	if !id.Valid() {
		return ErrInvalidGroup
	}

	c.selectMu.Lock()
	defer c.selectMu.Unlock()

	key := c.keyFor(id)
	keyChanged := false
	_ = c.view.Update(func(v View) (View, bool, error) {
		changed := false
		if v.Group != id {
			v.Group = id
			changed = true
		}
		if fav := c.favs.Contains(id); fav != v.Favorite {
			v.Favorite = fav
			changed = true
		}
		if v.Key != key {
			v.Key = key
			v.Schedule = model.Loading[[]model.DaySchedule](key)
			keyChanged = true
			changed = true
		}
		return v, changed, nil
	})

	if keyChanged {
		log.Printf("selection: group %s, week %s", id, key.Window)
		c.load(key)
	}
	return nil
}

// ToggleCurrentFavorite flips the favorite flag of the current group and
// returns the new membership. Persistence errors are returned unchanged.
func (c *Coordinator) ToggleCurrentFavorite() (bool, error) {
	c.selectMu.Lock()
	defer c.selectMu.Unlock()

	group := c.view.Get().Group
	return c.favorites.Toggle(group)
}

// Refresh reloads the current group, recomputing the week window first
func (c *Coordinator) Refresh() {
	c.selectMu.Lock()
	defer c.selectMu.Unlock()

	var key model.RequestKey
	_ = c.view.Update(func(v View) (View, bool, error) {
		key = c.keyFor(v.Group)
		if v.Key == key {
			return v, false, nil
		}
		v.Key = key
		v.Schedule = model.Loading[[]model.DaySchedule](key)
		return v, true, nil
	})
	c.loader.Reload(c.ctx, key, c.fetch)
}

// Await blocks until the schedule of the current key is Success or Error
func (c *Coordinator) Await(ctx context.Context) (View, error) {
	done := make(chan View, 1)
	cancel := c.view.Subscribe(func(v View) {
		if v.Schedule.Status.IsFinished() && v.Schedule.Key == v.Key {
			select {
			case done <- v:
			default:
			}
		}
	})
	defer cancel()

	select {
	case v := <-done:
		return v, nil
	case <-ctx.Done():
		return c.view.Get(), ctx.Err()
	}
}

// Close detaches the coordinator from its sources
func (c *Coordinator) Close() {
	for _, unsubscribe := range c.unsubscribe {
		unsubscribe()
	}
	c.unsubscribe = nil
}

// load must be called with selectMu held
func (c *Coordinator) load(key model.RequestKey) {
	if !c.loader.Load(c.ctx, key, c.fetch) {
		// deduplicated: the loader already holds this key
		c.onSchedule(c.loader.Current())
	}
}

func (c *Coordinator) keyFor(group model.GroupID) model.RequestKey {
	return model.RequestKey{
		Group:  group,
		Window: week.CurrentWeek(c.opts.Now(), c.opts.WeekStart),
	}
}

func (c *Coordinator) onFavorites(set model.FavoriteSet) {
	_ = c.view.Update(func(v View) (View, bool, error) {
		c.favs = set
		fav := set.Contains(v.Group)
		if fav == v.Favorite {
			return v, false, nil
		}
		v.Favorite = fav
		return v, true, nil
	})
}

func (c *Coordinator) onSchedule(s Schedule) {
	_ = c.view.Update(func(v View) (View, bool, error) {
		if s.Key != v.Key || sameState(v.Schedule, s) {
			return v, false, nil
		}
		v.Schedule = s
		return v, true, nil
	})
}

// sameState reports whether publishing b after a would tell observers nothing
func sameState(a, b Schedule) bool {
	return a.Status == b.Status && a.Key == b.Key && a.Message == b.Message && a.Status != model.LoadStatusSuccess
}
