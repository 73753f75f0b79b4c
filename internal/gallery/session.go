package gallery

import (
	"sync"
	"time"
)

// Viewer tuning constants.
const (
	ZoomStep = 1.5
	MinZoom  = 0.5
	MaxZoom  = 5.0

	SlideshowInterval = 4 * time.Second

	controlsHideDesktop = 3 * time.Second
	controlsHideMobile  = 4 * time.Second

	swipeThreshold = 50.0 // min horizontal travel for a swipe
	tapThreshold   = 10.0 // max travel in either axis for a tap
)

// Point is a 2D offset in screen pixels.
type Point struct {
	X float64
	Y float64
}

// ShareTarget is a platform share sheet. Share returns an error when
// the platform cannot or will not share, in which case the viewer
// falls back to the clipboard.
type ShareTarget interface {
	Share(title, text, url string) error
}

// Clipboard copies text for the share fallback.
type Clipboard interface {
	Copy(text string) error
}

// SessionOption configures a viewing session.
type SessionOption func(*Session)

// WithScheduler replaces the runtime timer source, used by tests to
// fire timers deterministically.
func WithScheduler(sched Scheduler) SessionOption {
	return func(s *Session) { s.sched = sched }
}

// WithMobile marks the session as running on a touch device, which
// lengthens the controls auto-hide delay.
func WithMobile() SessionOption {
	return func(s *Session) { s.mobile = true }
}

// WithShare provides the share sheet and clipboard capabilities.
func WithShare(target ShareTarget, clip Clipboard) SessionOption {
	return func(s *Session) {
		s.share = target
		s.clipboard = clip
	}
}

// Session is a lightbox viewing session over an ordered, immutable
// item set. All state transitions are serialized under one mutex, so
// timer callbacks and input events may arrive concurrently.
type Session struct {
	mu sync.Mutex

	items  []Item
	sched  Scheduler
	mobile bool

	share     ShareTarget
	clipboard Clipboard

	open     bool
	index    int
	zoom     float64
	rotation int
	pan      Point

	slideshow  bool
	infoOpen   bool
	fullscreen bool
	controls   bool

	dragging  bool
	dragStart Point
	panStart  Point

	touchStart Point
	touchEnd   Point
	touching   bool

	slideTimer Timer
	hideTimer  Timer
}

// NewSession builds a closed session over items. Call Open to start
// viewing.
func NewSession(items []Item, opts ...SessionOption) *Session {
	s := &Session{
		items: items,
		sched: NewScheduler(),
		zoom:  1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open starts viewing at item i with transform state reset. Opening
// an already-open session just moves the cursor.
func (s *Session) Open(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.items) {
		return
	}
	s.open = true
	s.index = i
	s.resetTransformLocked()
	s.showControlsLocked()
}

// Close ends the session and tears down every timer it owns.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.open = false
	s.slideshow = false
	s.infoOpen = false
	s.fullscreen = false
	s.stopTimerLocked(&s.slideTimer)
	s.stopTimerLocked(&s.hideTimer)
}

// IsOpen reports whether the session is active.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Current returns the item under the cursor.
func (s *Session) Current() Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[s.index]
}

// Index returns the cursor position.
func (s *Session) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Next advances the cursor, wrapping at the end. Navigation resets
// zoom, rotation, and pan. With a single item it is a no-op.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advanceLocked(1)
}

// Previous moves the cursor back, wrapping at the start.
func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advanceLocked(-1)
}

// advanceLocked moves the cursor. Any pending slideshow timer is
// superseded by the index change and restarts from a full interval,
// and the controls reappear with a fresh hide timer.
func (s *Session) advanceLocked(delta int) {
	if !s.open || len(s.items) < 2 {
		return
	}
	s.index = (s.index + delta + len(s.items)) % len(s.items)
	s.resetTransformLocked()
	s.showControlsLocked()
	if s.slideshow {
		s.scheduleSlideLocked()
	}
}

func (s *Session) resetTransformLocked() {
	s.zoom = 1
	s.rotation = 0
	s.pan = Point{}
	s.dragging = false
}

// Zoom returns the current zoom factor.
func (s *Session) Zoom() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zoom
}

// ZoomIn multiplies the zoom by the step factor, clamped to MaxZoom.
func (s *Session) ZoomIn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.zoom = min(s.zoom*ZoomStep, MaxZoom)
}

// ZoomOut divides the zoom by the step factor, clamped to MinZoom.
// Zooming to 1x or below recenters the pan.
func (s *Session) ZoomOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.zoom = max(s.zoom/ZoomStep, MinZoom)
	if s.zoom <= 1 {
		s.pan = Point{}
	}
}

// ResetView restores zoom to 1x and recenters the pan. Rotation is
// kept.
func (s *Session) ResetView() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.zoom = 1
	s.pan = Point{}
}

// Rotation returns the current rotation in degrees.
func (s *Session) Rotation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rotation
}

// Rotate turns the image a quarter turn clockwise.
func (s *Session) Rotate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.rotation = (s.rotation + 90) % 360
}

// Pan returns the raw pan offset in screen pixels.
func (s *Session) Pan() Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pan
}

// RenderOffset returns the pan offset to apply in the item's
// coordinate space: the raw offset divided by the zoom factor, so
// drag distance tracks the pointer at any magnification.
func (s *Session) RenderOffset() Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.zoom == 0 {
		return Point{}
	}
	return Point{X: s.pan.X / s.zoom, Y: s.pan.Y / s.zoom}
}

// StartDrag begins a pan gesture. Dragging only engages when zoomed
// past 1x; at base zoom the image is fixed.
func (s *Session) StartDrag(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open || s.zoom <= 1 {
		return
	}
	s.dragging = true
	s.dragStart = Point{X: x - s.pan.X, Y: y - s.pan.Y}
	s.panStart = s.pan
}

// Drag updates the pan offset from the current pointer position.
func (s *Session) Drag(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dragging || s.zoom <= 1 {
		return
	}
	s.pan = Point{X: x - s.dragStart.X, Y: y - s.dragStart.Y}
}

// EndDrag finishes a pan gesture.
func (s *Session) EndDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dragging = false
}

// TouchStart records the origin of a touch gesture.
func (s *Session) TouchStart(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.touching = true
	s.touchStart = Point{X: x, Y: y}
	s.touchEnd = s.touchStart
}

// TouchMove tracks the current touch position.
func (s *Session) TouchMove(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.touching {
		return
	}
	s.touchEnd = Point{X: x, Y: y}
}

// TouchEnd classifies the finished gesture. A horizontally dominant
// move past the swipe threshold navigates: left swipe advances, right
// swipe goes back. A near-stationary touch is a tap, which toggles
// the controls and restarts their hide timer. Anything in between is
// ignored.
func (s *Session) TouchEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.touching {
		return
	}
	s.touching = false
	// A touch that is panning a zoomed image is never a swipe or tap.
	if s.dragging {
		return
	}
	dx := s.touchStart.X - s.touchEnd.X
	dy := s.touchStart.Y - s.touchEnd.Y
	absX, absY := abs(dx), abs(dy)
	switch {
	case absX > swipeThreshold && absX > absY:
		s.advanceLocked(direction(dx))
	case absX < tapThreshold && absY < tapThreshold:
		s.controls = !s.controls
		if s.controls {
			s.showControlsLocked()
		} else {
			s.stopTimerLocked(&s.hideTimer)
		}
	}
}

func direction(dx float64) int {
	if dx > 0 {
		return 1
	}
	return -1
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// SlideshowActive reports whether the slideshow is running.
func (s *Session) SlideshowActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slideshow
}

// ToggleSlideshow starts or stops the slideshow. It never starts with
// fewer than two items.
func (s *Session) ToggleSlideshow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	if s.slideshow {
		s.slideshow = false
		s.stopTimerLocked(&s.slideTimer)
		return
	}
	if len(s.items) < 2 {
		return
	}
	s.slideshow = true
	s.scheduleSlideLocked()
}

func (s *Session) scheduleSlideLocked() {
	s.stopTimerLocked(&s.slideTimer)
	s.slideTimer = s.sched.AfterFunc(SlideshowInterval, s.slideshowTick)
}

func (s *Session) slideshowTick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open || !s.slideshow {
		return
	}
	s.advanceLocked(1)
}

// InfoOpen reports whether the metadata panel is visible.
func (s *Session) InfoOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.infoOpen
}

// ToggleInfo shows or hides the metadata panel.
func (s *Session) ToggleInfo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.infoOpen = !s.infoOpen
}

// Fullscreen reports whether fullscreen is requested.
func (s *Session) Fullscreen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fullscreen
}

// ToggleFullscreen flips the fullscreen request.
func (s *Session) ToggleFullscreen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.fullscreen = !s.fullscreen
}

// ControlsVisible reports whether the control chrome is shown.
func (s *Session) ControlsVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controls
}

// Interact registers pointer activity: the controls reappear and
// their hide timer restarts.
func (s *Session) Interact() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.showControlsLocked()
}

func (s *Session) showControlsLocked() {
	s.controls = true
	s.stopTimerLocked(&s.hideTimer)
	delay := controlsHideDesktop
	if s.mobile {
		delay = controlsHideMobile
	}
	s.hideTimer = s.sched.AfterFunc(delay, s.hideControls)
}

func (s *Session) hideControls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.controls = false
}

func (s *Session) stopTimerLocked(t *Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}

// Share offers the current item through the platform share sheet,
// falling back to copying its URL to the clipboard.
func (s *Session) Share() error {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return nil
	}
	item := s.items[s.index]
	target, clip := s.share, s.clipboard
	s.mu.Unlock()

	if target != nil {
		if err := target.Share(item.Title, item.Description, item.Src); err == nil {
			return nil
		}
	}
	if clip != nil {
		return clip.Copy(item.Src)
	}
	return nil
}

// HandleKey dispatches a keyboard event. It reports whether the key
// was consumed; a closed session consumes nothing.
func (s *Session) HandleKey(key string) bool {
	if !s.IsOpen() {
		return false
	}
	switch key {
	case "Escape":
		s.Close()
	case "ArrowLeft":
		s.Previous()
	case "ArrowRight":
		s.Next()
	case "+", "=":
		s.ZoomIn()
	case "-":
		s.ZoomOut()
	case "0":
		s.ResetView()
	case "r":
		s.Rotate()
	case "f":
		s.ToggleFullscreen()
	case "i":
		s.ToggleInfo()
	case " ":
		s.ToggleSlideshow()
	default:
		return false
	}
	return true
}
