// Package eventlog records per-gesture interaction events for the
// logging/event-dispatch sink. The transition subsystem only supplies
// values (container type, interaction kind); formatting belongs to the
// sink implementation.
package eventlog

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ContainerType identifies which surface an interaction was logged
// against.
type ContainerType int

const (
	// ContainerApp is a regular foreground application.
	ContainerApp ContainerType = iota
	// ContainerWorkspace is the home container's workspace presentation.
	ContainerWorkspace
	// ContainerOverview is the home container's overview presentation.
	ContainerOverview
	// ContainerFastOverview is the home container's quick-scrub
	// presentation.
	ContainerFastOverview
	// ContainerSideloadedOverview is the standalone fallback container.
	ContainerSideloadedOverview
)

func (c ContainerType) String() string {
	switch c {
	case ContainerApp:
		return "app"
	case ContainerWorkspace:
		return "workspace"
	case ContainerOverview:
		return "overview"
	case ContainerFastOverview:
		return "fast-overview"
	case ContainerSideloadedOverview:
		return "sideloaded-overview"
	default:
		return fmt.Sprintf("ContainerType(%d)", int(c))
	}
}

// TouchInteractionLog accumulates the events of a single gesture. One log
// is created per gesture by the gesture handler and carried through every
// contract call; it is not reused across gestures.
type TouchInteractionLog struct {
	mu sync.Mutex

	// ID uniquely identifies the gesture across log sinks.
	ID uuid.UUID

	// StartedAt is when the gesture began.
	StartedAt time.Time

	// Interaction names the interaction kind ("normal", "quick-scrub").
	Interaction string

	// Container is the surface the gesture started against.
	Container ContainerType

	events []Event
}

// Event is a single timestamped step in a gesture.
type Event struct {
	At   time.Time
	Name string
}

// NewTouchInteractionLog creates a log for one gesture.
func NewTouchInteractionLog(interaction string) *TouchInteractionLog {
	return &TouchInteractionLog{
		ID:          uuid.New(),
		StartedAt:   time.Now(),
		Interaction: interaction,
	}
}

// SetContainerType records which surface handled the gesture.
func (l *TouchInteractionLog) SetContainerType(c ContainerType) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.Container = c
	l.mu.Unlock()
}

// AddEvent appends a named step to the gesture record.
func (l *TouchInteractionLog) AddEvent(name string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.events = append(l.events, Event{At: time.Now(), Name: name})
	l.mu.Unlock()
}

// Events returns a copy of the recorded steps.
func (l *TouchInteractionLog) Events() []Event {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Sink receives completed gesture logs.
type Sink interface {
	LogInteraction(log *TouchInteractionLog)
}
