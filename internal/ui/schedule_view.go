package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/present"
	"github.com/ytget/college-schedule/internal/selection"
)

// ScheduleActions are the user intents raised by the schedule tab
type ScheduleActions struct {
	SelectGroup    func(model.GroupID)
	ToggleFavorite func()
	Refresh        func()
}

// ScheduleView is the schedule tab: group selector, favorite toggle and the week
type ScheduleView struct {
	localization *present.Localization
	actions      ScheduleActions

	groupEntry  *widget.SelectEntry
	favoriteBtn *widget.Button
	refreshBtn  *widget.Button
	weekLabel   *widget.Label
	statusLabel *widget.Label
	spinner     *widget.ProgressBarInfinite
	days        *fyne.Container
	pull        *PullToRefresh
	content     fyne.CanvasObject

	// syncing suppresses OnChanged while the entry is updated from the view
	syncing  bool
	rendered selection.View
	hasView  bool
}

// NewScheduleView creates the schedule tab
func NewScheduleView(l *present.Localization, actions ScheduleActions) *ScheduleView {
	sv := &ScheduleView{localization: l, actions: actions}

	options := make([]string, 0, len(model.KnownGroups))
	for _, g := range model.KnownGroups {
		options = append(options, g.String())
	}
	sv.groupEntry = widget.NewSelectEntry(options)
	sv.groupEntry.SetPlaceHolder(l.GetText(present.KeySelectGroup))
	sv.groupEntry.OnChanged = sv.onGroupChanged
	sv.groupEntry.OnSubmitted = func(text string) {
		sv.submitGroup(model.GroupID(text))
	}

	sv.favoriteBtn = widget.NewButton(IconFavoriteOff, sv.onFavoriteTapped)
	sv.favoriteBtn.Importance = widget.LowImportance
	sv.refreshBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), sv.onRefreshTapped)
	sv.refreshBtn.Importance = widget.LowImportance

	sv.weekLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	sv.statusLabel = widget.NewLabel("")
	sv.statusLabel.Wrapping = fyne.TextWrapWord
	sv.statusLabel.Alignment = fyne.TextAlignCenter
	sv.spinner = widget.NewProgressBarInfinite()
	sv.spinner.Hide()

	sv.days = container.NewVBox()
	sv.pull = NewPullToRefresh(container.NewVScroll(sv.days), sv.onRefreshTapped)

	top := container.NewVBox(
		container.NewBorder(nil, nil, nil, container.NewHBox(sv.favoriteBtn, sv.refreshBtn), sv.groupEntry),
		sv.weekLabel,
		sv.spinner,
		sv.statusLabel,
	)
	sv.content = container.NewBorder(top, nil, nil, nil, sv.pull)
	return sv
}

// Content returns the root canvas object of the tab
func (sv *ScheduleView) Content() fyne.CanvasObject {
	return sv.content
}

// Render applies v. The day list is rebuilt only when the schedule changed,
// unless force is set.
func (sv *ScheduleView) Render(v selection.View, force bool) {
	l := sv.localization

	if sv.groupEntry.Text != v.Group.String() {
		sv.syncing = true
		sv.groupEntry.SetText(v.Group.String())
		sv.syncing = false
	}

	if v.Favorite {
		sv.favoriteBtn.SetText(IconFavoriteOn)
	} else {
		sv.favoriteBtn.SetText(IconFavoriteOff)
	}
	sv.weekLabel.SetText(l.GetText(present.KeyWeek) + ": " + present.WeekTitle(v.Key.Window))

	s := v.Schedule
	if s.Status == model.LoadStatusLoading {
		sv.spinner.Show()
		sv.spinner.Start()
	} else {
		sv.spinner.Stop()
		sv.spinner.Hide()
		sv.pull.Done()
	}

	if msg := l.StatusMessage(s); msg != "" {
		sv.statusLabel.SetText(msg)
		sv.statusLabel.Show()
	} else {
		sv.statusLabel.Hide()
	}

	if force || !sv.hasView || !sameSchedule(sv.rendered.Schedule, s) {
		sv.renderDays(s)
	}
	sv.rendered = v
	sv.hasView = true
}

func (sv *ScheduleView) renderDays(s selection.Schedule) {
	sv.days.RemoveAll()
	if s.Status == model.LoadStatusSuccess {
		for _, day := range s.Value {
			sv.days.Add(newDayBlock(day, sv.localization))
		}
	}
	sv.days.Refresh()
}

// DayCount returns the number of rendered days
func (sv *ScheduleView) DayCount() int {
	return len(sv.days.Objects)
}

func (sv *ScheduleView) onGroupChanged(text string) {
	if sv.syncing {
		return
	}
	// typing is only committed once it names a catalog group
	if id := model.GroupID(text); model.IsKnownGroup(id) {
		sv.submitGroup(id)
	}
}

func (sv *ScheduleView) submitGroup(id model.GroupID) {
	if !id.Valid() || sv.actions.SelectGroup == nil {
		return
	}
	sv.actions.SelectGroup(id)
}

func (sv *ScheduleView) onFavoriteTapped() {
	if sv.actions.ToggleFavorite != nil {
		sv.actions.ToggleFavorite()
	}
}

func (sv *ScheduleView) onRefreshTapped() {
	if sv.actions.Refresh != nil {
		sv.actions.Refresh()
	}
}

// sameSchedule reports whether b would render exactly like a
func sameSchedule(a, b selection.Schedule) bool {
	if a.Status != b.Status || a.Key != b.Key || a.Message != b.Message {
		return false
	}
	if len(a.Value) != len(b.Value) {
		return false
	}
	return len(a.Value) == 0 || &a.Value[0] == &b.Value[0]
}
