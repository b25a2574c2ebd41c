package ui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/college-schedule/internal/favorites"
	"github.com/ytget/college-schedule/internal/loader"
	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/selection"
)

type memoryBackend struct {
	mu     sync.Mutex
	values []string
}

func (b *memoryBackend) ReadSet(string) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.values...), nil
}

func (b *memoryBackend) WriteSet(_ string, values []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values = append([]string(nil), values...)
	return nil
}

func fetchTwoDays(_ context.Context, _ model.GroupID, w model.WeekWindow) ([]model.DaySchedule, error) {
	lesson := model.Lesson{Number: 1, Time: "08:30-10:00", Parts: map[model.LessonPart]*model.LessonDetails{
		model.LessonPartFull: {Subject: "Математика"},
	}}
	return []model.DaySchedule{
		{Date: w.Start, Lessons: []model.Lesson{lesson}},
		{Date: w.Start.AddDays(1), Lessons: []model.Lesson{lesson}},
	}, nil
}

func newTestUI(t *testing.T, fetch loader.FetchFunc[[]model.DaySchedule]) (*RootUI, *selection.Coordinator, *favorites.Store) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	store, err := favorites.New(&memoryBackend{})
	if err != nil {
		t.Fatal(err)
	}
	coord, err := selection.New(context.Background(), selection.Options{
		InitialGroup: model.DefaultGroup,
		WeekStart:    time.Monday,
		Now:          func() time.Time { return time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC) },
	}, store, loader.New[[]model.DaySchedule](), fetch)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(coord.Close)

	window := app.NewWindow("test")
	window.Resize(fyne.NewSize(400, 600))
	ui := NewRootUI(window, app, coord, store)
	t.Cleanup(ui.Close)
	return ui, coord, store
}

func await(t *testing.T, coord *selection.Coordinator) selection.View {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	v, err := coord.Await(ctx)
	if err != nil {
		t.Fatalf("Await: %v", err)
	}
	return v
}

func TestRootUI_RendersLoadedWeek(t *testing.T) {
	ui, coord, _ := newTestUI(t, fetchTwoDays)
	await(t, coord)

	if got := ui.scheduleView.DayCount(); got != 2 {
		t.Errorf("rendered %d days, want 2", got)
	}
	if ui.scheduleView.statusLabel.Visible() {
		t.Errorf("status label visible with text %q", ui.scheduleView.statusLabel.Text)
	}
	if got := ui.scheduleView.groupEntry.Text; got != model.DefaultGroup.String() {
		t.Errorf("group entry = %q", got)
	}
	if got := ui.scheduleView.weekLabel.Text; got != "Неделя: 12.10.2026 - 18.10.2026" {
		t.Errorf("week label = %q", got)
	}
}

func TestRootUI_ShowsErrorMessage(t *testing.T) {
	failing := func(context.Context, model.GroupID, model.WeekWindow) ([]model.DaySchedule, error) {
		return nil, errors.New("connection refused")
	}
	ui, coord, _ := newTestUI(t, failing)
	await(t, coord)

	if got := ui.scheduleView.statusLabel.Text; got != "Ошибка: connection refused" {
		t.Errorf("status = %q", got)
	}
	if ui.scheduleView.DayCount() != 0 {
		t.Error("no days should be rendered on error")
	}
}

func TestRootUI_FavoriteToggle(t *testing.T) {
	ui, coord, store := newTestUI(t, fetchTwoDays)
	await(t, coord)

	test.Tap(ui.scheduleView.favoriteBtn)
	if !store.Contains(model.DefaultGroup) {
		t.Fatal("tap did not add the group to favorites")
	}
	if got := ui.scheduleView.favoriteBtn.Text; got != IconFavoriteOn {
		t.Errorf("favorite button = %q, want %q", got, IconFavoriteOn)
	}
	if groups := ui.favoritesView.Groups(); len(groups) != 1 || groups[0] != model.DefaultGroup {
		t.Errorf("favorites tab lists %v", groups)
	}

	ui.onRemoveFavorite(model.DefaultGroup)
	if len(ui.favoritesView.Groups()) != 0 {
		t.Error("favorites tab not updated after removal")
	}
	if got := ui.scheduleView.favoriteBtn.Text; got != IconFavoriteOff {
		t.Errorf("favorite button = %q after removal", got)
	}
}

func TestRootUI_OpenFavoriteSelectsGroup(t *testing.T) {
	ui, coord, _ := newTestUI(t, fetchTwoDays)
	await(t, coord)

	ui.onOpenFavorite("П-21")
	v := await(t, coord)
	if v.Group != "П-21" {
		t.Fatalf("group = %s, want П-21", v.Group)
	}
	if ui.tabs.Selected() != ui.scheduleTab {
		t.Error("schedule tab should be selected")
	}
	if got := ui.settings.GetDefaultGroup(); got != "П-21" {
		t.Errorf("last group not remembered: %s", got)
	}
}

func TestGestureHandler_Classify(t *testing.T) {
	gh := NewGestureHandler(nil)
	origin := fyne.NewPos(100, 100)

	tests := []struct {
		name     string
		end      fyne.Position
		duration time.Duration
		want     GestureType
	}{
		{"tap", fyne.NewPos(102, 101), 100 * time.Millisecond, GestureTap},
		{"long press", fyne.NewPos(100, 100), time.Second, GestureLongPress},
		{"swipe down", fyne.NewPos(105, 300), 200 * time.Millisecond, GestureSwipeDown},
		{"swipe up", fyne.NewPos(95, 0), 200 * time.Millisecond, GestureSwipeUp},
		{"swipe left", fyne.NewPos(0, 110), 200 * time.Millisecond, GestureSwipeLeft},
		{"swipe right", fyne.NewPos(300, 90), 200 * time.Millisecond, GestureSwipeRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gh.Classify(origin, tt.end, tt.duration); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPullToRefresh_OnlyOnceUntilDone(t *testing.T) {
	calls := 0
	ptr := NewPullToRefresh(nil, func() { calls++ })

	ptr.handleGesture(GestureSwipeDown)
	ptr.handleGesture(GestureSwipeDown)
	if calls != 1 {
		t.Fatalf("refresh called %d times, want 1", calls)
	}

	ptr.Done()
	ptr.handleGesture(GestureSwipeUp)
	ptr.handleGesture(GestureSwipeDown)
	if calls != 2 {
		t.Fatalf("refresh called %d times after Done, want 2", calls)
	}
}
