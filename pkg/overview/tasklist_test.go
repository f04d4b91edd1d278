package overview

import (
	"testing"

	"github.com/go-drift/taskswitch/pkg/geometry"
)

func TestTaskListViewDefaults(t *testing.T) {
	v := NewTaskListView(testProfile())
	if v.ContentAlpha() != 1 {
		t.Errorf("content alpha = %v, want 1", v.ContentAlpha())
	}
	if v.Scale() != 1 {
		t.Errorf("scale = %v, want 1", v.Scale())
	}
	if v.QuickScrub() == nil {
		t.Error("quick-scrub controller missing")
	}
}

func TestContentAlphaClamped(t *testing.T) {
	v := NewTaskListView(testProfile())
	v.SetContentAlpha(-0.5)
	if v.ContentAlpha() != 0 {
		t.Errorf("alpha = %v, want 0", v.ContentAlpha())
	}
	v.SetContentAlpha(1.5)
	if v.ContentAlpha() != 1 {
		t.Errorf("alpha = %v, want 1", v.ContentAlpha())
	}
}

func TestResetScroll(t *testing.T) {
	v := NewTaskListView(testProfile())
	v.SetScrollOffset(400)
	v.SetCurrentPage(3)
	v.ResetScroll()
	if v.ScrollOffset() != 0 || v.CurrentPage() != 0 {
		t.Errorf("after reset: offset=%v page=%d", v.ScrollOffset(), v.CurrentPage())
	}
}

func TestTaskAt(t *testing.T) {
	v := NewTaskListView(testProfile())
	cards := []*TaskCard{{ID: 7}, {ID: 8}}
	v.SetTasks(cards)

	card, ok := v.TaskAt(1)
	if !ok || card.ID != 8 {
		t.Errorf("TaskAt(1) = %+v, %v", card, ok)
	}
	if _, ok := v.TaskAt(2); ok {
		t.Error("TaskAt past the end should report false")
	}
	if _, ok := v.TaskAt(-1); ok {
		t.Error("TaskAt(-1) should report false")
	}
}

func TestSnapshotCache(t *testing.T) {
	v := NewTaskListView(testProfile())
	loads := 0
	v.SetSnapshotLoader(func(taskID int) *TaskSnapshot {
		loads++
		return &TaskSnapshot{TaskID: taskID, Size: geometry.Size{Width: 100, Height: 200}}
	})

	first := v.SnapshotFor(5)
	second := v.SnapshotFor(5)
	if first == nil || second == nil {
		t.Fatal("snapshot not loaded")
	}
	if loads != 1 {
		t.Errorf("loader ran %d times, want 1 (cache hit expected)", loads)
	}
	if first != second {
		t.Error("cache returned a different snapshot")
	}
}

func TestSnapshotWithoutLoader(t *testing.T) {
	v := NewTaskListView(testProfile())
	if v.SnapshotFor(1) != nil {
		t.Error("no loader installed, snapshot should be nil")
	}
}

func TestTaskThumbnailRect(t *testing.T) {
	p := testProfile()
	v := NewTaskListView(p)
	card := &TaskCard{
		ID:       1,
		CardRect: geometry.RectFromLTWH(100, 200, 400, 800),
	}

	full := v.TaskCardRect(card, 1)
	if full != card.CardRect {
		t.Errorf("scale-1 card rect = %+v, want %+v", full, card.CardRect)
	}

	thumb := v.TaskThumbnailRect(card, 1)
	if thumb.Top != full.Top+p.TaskThumbnailTopMarginPx {
		t.Errorf("thumbnail top = %v, want %v", thumb.Top, full.Top+p.TaskThumbnailTopMarginPx)
	}

	// Under a smaller scale the card shrinks toward the display center.
	scaled := v.TaskCardRect(card, 0.5)
	if scaled.Width() != full.Width()/2 {
		t.Errorf("scaled width = %v, want %v", scaled.Width(), full.Width()/2)
	}
	center := p.Bounds().Center()
	if (scaled.Center().X-center.X)*(full.Center().X-center.X) < 0 {
		t.Error("scaling moved the card to the other side of the pivot")
	}
}
