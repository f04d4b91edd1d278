package eventlog

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewTouchInteractionLog(t *testing.T) {
	log := NewTouchInteractionLog("quick-scrub")
	if log.ID == uuid.Nil {
		t.Error("log should get a unique id")
	}
	if log.Interaction != "quick-scrub" {
		t.Errorf("interaction = %q", log.Interaction)
	}
	if log.StartedAt.IsZero() {
		t.Error("start time not recorded")
	}
	if len(log.Events()) != 0 {
		t.Error("fresh log should have no events")
	}
}

func TestLogRecordsEvents(t *testing.T) {
	log := NewTouchInteractionLog("normal")
	log.AddEvent("quick-scrub-start")
	log.AddEvent("overview-button")
	log.SetContainerType(ContainerFastOverview)

	events := log.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Name != "quick-scrub-start" || events[1].Name != "overview-button" {
		t.Errorf("unexpected event names: %v, %v", events[0].Name, events[1].Name)
	}
	if log.Container != ContainerFastOverview {
		t.Errorf("container = %v", log.Container)
	}
}

func TestNilLogIsSafe(t *testing.T) {
	var log *TouchInteractionLog
	log.AddEvent("ignored")
	log.SetContainerType(ContainerOverview)
	if log.Events() != nil {
		t.Error("nil log should report no events")
	}
}

func TestContainerTypeString(t *testing.T) {
	cases := map[ContainerType]string{
		ContainerApp:                "app",
		ContainerWorkspace:          "workspace",
		ContainerOverview:           "overview",
		ContainerFastOverview:       "fast-overview",
		ContainerSideloadedOverview: "sideloaded-overview",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(c), got, want)
		}
	}
}

func TestCaptureSink(t *testing.T) {
	sink := &CaptureSink{}
	log := NewTouchInteractionLog("normal")
	sink.LogInteraction(log)
	sink.LogInteraction(nil)

	logs := sink.Logs()
	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1 (nil logs dropped)", len(logs))
	}
	if logs[0] != log {
		t.Error("captured log is not the one submitted")
	}
}
