package overview

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/go-drift/taskswitch/pkg/device"
	"github.com/go-drift/taskswitch/pkg/geometry"
)

// snapshotCacheSize bounds how many task snapshots stay decoded across
// gestures.
const snapshotCacheSize = 32

// TaskSnapshot is a cached decoded snapshot of a task's last frame. Only
// its dimensions matter to the transition subsystem; pixel data stays
// with the host renderer.
type TaskSnapshot struct {
	TaskID int
	Size   geometry.Size
}

// TaskCard is one task entry in the overview list.
type TaskCard struct {
	// ID is the task identifier.
	ID int
	// CardRect is the card's laid-out rect at view scale 1.
	CardRect geometry.Rect
	// ThumbnailRect is the task thumbnail's current on-screen rect. At
	// gesture start for the running task this is near fullscreen.
	ThumbnailRect geometry.Rect
}

// TaskListView is the scrollable overview content shared by both
// container variants. Its animatable properties (content alpha, scale,
// vertical translation) are what the per-gesture timelines drive.
type TaskListView struct {
	profile device.Profile

	contentAlpha float64
	scale        float64
	translationY float64
	scrollOffset float64
	currentPage  int

	tasks      []*TaskCard
	quickScrub *QuickScrubController

	snapshots      *lru.Cache[int, *TaskSnapshot]
	snapshotLoader func(taskID int) *TaskSnapshot
}

// NewTaskListView creates an overview content view for the given profile.
func NewTaskListView(profile device.Profile) *TaskListView {
	cache, _ := lru.New[int, *TaskSnapshot](snapshotCacheSize)
	return &TaskListView{
		profile:      profile,
		contentAlpha: 1,
		scale:        1,
		quickScrub:   NewQuickScrubController(),
		snapshots:    cache,
	}
}

// Profile returns the device profile the view lays out against.
func (v *TaskListView) Profile() device.Profile {
	return v.profile
}

// ContentAlpha returns the current content alpha in [0, 1].
func (v *TaskListView) ContentAlpha() float64 {
	return v.contentAlpha
}

// SetContentAlpha sets the content alpha, clamped to [0, 1].
func (v *TaskListView) SetContentAlpha(alpha float64) {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	v.contentAlpha = alpha
}

// Scale returns the view scale.
func (v *TaskListView) Scale() float64 {
	return v.scale
}

// SetScale sets the view scale.
func (v *TaskListView) SetScale(scale float64) {
	v.scale = scale
}

// TranslationY returns the vertical translation.
func (v *TaskListView) TranslationY() float64 {
	return v.translationY
}

// SetTranslationY sets the vertical translation.
func (v *TaskListView) SetTranslationY(ty float64) {
	v.translationY = ty
}

// ScrollOffset returns the current scroll position.
func (v *TaskListView) ScrollOffset() float64 {
	return v.scrollOffset
}

// SetScrollOffset sets the scroll position.
func (v *TaskListView) SetScrollOffset(offset float64) {
	v.scrollOffset = offset
}

// ResetScroll moves the scrollable content back to position zero.
func (v *TaskListView) ResetScroll() {
	v.scrollOffset = 0
	v.currentPage = 0
}

// CurrentPage returns the focused task index.
func (v *TaskListView) CurrentPage() int {
	return v.currentPage
}

// SetCurrentPage sets the focused task index.
func (v *TaskListView) SetCurrentPage(page int) {
	v.currentPage = page
}

// SetTasks replaces the task cards.
func (v *TaskListView) SetTasks(tasks []*TaskCard) {
	v.tasks = tasks
}

// TaskAt returns the card at the given page, or false when out of range.
func (v *TaskListView) TaskAt(page int) (*TaskCard, bool) {
	if page < 0 || page >= len(v.tasks) {
		return nil, false
	}
	return v.tasks[page], true
}

// QuickScrub returns the quick-scrub sub-controller.
func (v *TaskListView) QuickScrub() *QuickScrubController {
	return v.quickScrub
}

// SetSnapshotLoader installs the host's snapshot decoder. Loaded
// snapshots are retained in an LRU cache so repeated gestures reuse them.
func (v *TaskListView) SetSnapshotLoader(load func(taskID int) *TaskSnapshot) {
	v.snapshotLoader = load
}

// SnapshotFor returns the cached snapshot for a task, loading it on a
// miss. Returns nil when no loader is installed or the task has no
// snapshot.
func (v *TaskListView) SnapshotFor(taskID int) *TaskSnapshot {
	if snap, ok := v.snapshots.Get(taskID); ok {
		return snap
	}
	if v.snapshotLoader == nil {
		return nil
	}
	snap := v.snapshotLoader(taskID)
	if snap != nil {
		v.snapshots.Add(taskID, snap)
	}
	return snap
}

// TaskCardRect returns a card's rect as it will appear once the view
// settles at the given scale. Scaling pivots about the display center,
// matching how the view itself is scaled.
func (v *TaskListView) TaskCardRect(card *TaskCard, scale float64) geometry.Rect {
	pivot := v.profile.Bounds().Center()
	return card.CardRect.ScaleAbout(pivot, scale)
}

// TaskThumbnailRect returns the thumbnail portion of a card's settled
// rect: the card inset by the thumbnail top margin, also under the given
// view scale.
func (v *TaskListView) TaskThumbnailRect(card *TaskCard, scale float64) geometry.Rect {
	r := v.TaskCardRect(card, scale)
	return r.Inset(0, v.profile.TaskThumbnailTopMarginPx*scale, 0, 0)
}
