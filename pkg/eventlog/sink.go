package eventlog

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// LogrusSink writes gesture logs as structured log entries.
type LogrusSink struct {
	logger *logrus.Logger
}

// NewLogrusSink creates a sink backed by the given logger. A nil logger
// uses the logrus standard logger.
func NewLogrusSink(logger *logrus.Logger) *LogrusSink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusSink{logger: logger}
}

// LogInteraction writes one entry per gesture with the recorded steps.
func (s *LogrusSink) LogInteraction(log *TouchInteractionLog) {
	if log == nil {
		return
	}
	events := log.Events()
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.Name
	}
	s.logger.WithFields(logrus.Fields{
		"gesture":     log.ID.String(),
		"interaction": log.Interaction,
		"container":   log.Container.String(),
		"events":      names,
	}).Info("touch interaction")
}

// CaptureSink retains gesture logs in memory for tests.
type CaptureSink struct {
	mu   sync.Mutex
	logs []*TouchInteractionLog
}

// LogInteraction stores the log.
func (s *CaptureSink) LogInteraction(log *TouchInteractionLog) {
	if log == nil {
		return
	}
	s.mu.Lock()
	s.logs = append(s.logs, log)
	s.mu.Unlock()
}

// Logs returns the captured logs in arrival order.
func (s *CaptureSink) Logs() []*TouchInteractionLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*TouchInteractionLog, len(s.logs))
	copy(out, s.logs)
	return out
}
