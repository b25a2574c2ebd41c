package selection

import (
	"context"

	"github.com/ytget/college-schedule/internal/loader"
	"github.com/ytget/college-schedule/internal/model"
)

// Schedule is the load state of a week of lessons
type Schedule = model.LoadState[[]model.DaySchedule]

// Favorites is the part of the favorites store the coordinator uses
type Favorites interface {
	Toggle(id model.GroupID) (bool, error)
	Subscribe(fn func(model.FavoriteSet)) (cancel func())
}

// ScheduleLoader is the part of the schedule loader the coordinator drives
type ScheduleLoader interface {
	Load(ctx context.Context, key model.RequestKey, fetch loader.FetchFunc[[]model.DaySchedule]) bool
	Reload(ctx context.Context, key model.RequestKey, fetch loader.FetchFunc[[]model.DaySchedule])
	Current() Schedule
	Subscribe(fn func(Schedule)) (cancel func())
}
