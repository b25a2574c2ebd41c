package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// GestureHandler classifies a touch from its start and end
type GestureHandler struct {
	onGesture func(GestureType)

	touchStartTime time.Time
	touchStartPos  fyne.Position

	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// TouchDown records where and when a touch started
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Now()
	gh.touchStartPos = event.Position
}

// TouchUp classifies the finished touch and reports it
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() {
		return
	}
	g := gh.Classify(gh.touchStartPos, event.Position, time.Since(gh.touchStartTime))
	gh.touchStartTime = time.Time{}
	if g != GestureNone && gh.onGesture != nil {
		gh.onGesture(g)
	}
}

// TouchCancel forgets the current touch
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

// Classify maps a movement to a gesture. Movement shorter than the swipe
// threshold is a tap or a long press depending on its duration.
func (gh *GestureHandler) Classify(start, end fyne.Position, duration time.Duration) GestureType {
	dx := end.X - start.X
	dy := end.Y - start.Y
	if dx*dx+dy*dy < gh.swipeThreshold*gh.swipeThreshold {
		if duration >= gh.longPressDuration {
			return GestureLongPress
		}
		return GestureTap
	}

	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}
	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// PullToRefresh wraps content and calls refresh on a downward swipe.
// Further swipes are ignored until Done is called.
type PullToRefresh struct {
	widget.BaseWidget

	content        fyne.CanvasObject
	gestureHandler *GestureHandler
	refreshFunc    func()
	isRefreshing   bool
}

// NewPullToRefresh creates a pull-to-refresh wrapper around content
func NewPullToRefresh(content fyne.CanvasObject, refreshFunc func()) *PullToRefresh {
	ptr := &PullToRefresh{
		content:     content,
		refreshFunc: refreshFunc,
	}
	ptr.gestureHandler = NewGestureHandler(ptr.handleGesture)
	ptr.ExtendBaseWidget(ptr)
	return ptr
}

// CreateRenderer implements fyne.Widget
func (ptr *PullToRefresh) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ptr.content)
}

// Done re-arms the gesture once the refresh has finished
func (ptr *PullToRefresh) Done() {
	ptr.isRefreshing = false
}

func (ptr *PullToRefresh) handleGesture(gesture GestureType) {
	if gesture != GestureSwipeDown || ptr.isRefreshing || ptr.refreshFunc == nil {
		return
	}
	ptr.isRefreshing = true
	ptr.refreshFunc()
}

// TouchDown implements mobile.Touchable
func (ptr *PullToRefresh) TouchDown(event *mobile.TouchEvent) {
	ptr.gestureHandler.TouchDown(event)
}

// TouchUp implements mobile.Touchable
func (ptr *PullToRefresh) TouchUp(event *mobile.TouchEvent) {
	ptr.gestureHandler.TouchUp(event)
}

// TouchCancel implements mobile.Touchable
func (ptr *PullToRefresh) TouchCancel(event *mobile.TouchEvent) {
	ptr.gestureHandler.TouchCancel(event)
}
