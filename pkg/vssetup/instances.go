package vssetup

import (
	"iter"
	"log/slog"
)

// Instances is a forward-only sequence of installed instances. Once Next
// reports false the sequence stays exhausted.
type Instances struct {
	enum     enumSetupInstances
	logger   *slog.Logger
	calendar calendarFunc
}

func newInstances(enum enumSetupInstances, logger *slog.Logger, calendar calendarFunc) *Instances {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Instances{enum: enum, logger: logger, calendar: calendar}
}

// Next returns the next instance. The caller owns it and must Close it.
// A fetch failure ends the sequence; it is logged, not returned.
func (s *Instances) Next() (*Instance, bool) {
	if s == nil || s.enum == nil {
		return nil, false
	}

	items, hr := s.enum.Next(1)
	if hr.Failed() || len(items) == 0 {
		if hr.Failed() {
			s.logger.Debug("instance enumeration stopped", "code", hr.String())
		}
		for _, item := range items {
			item.Release()
		}
		s.Close()
		return nil, false
	}

	for _, extra := range items[1:] {
		extra.Release()
	}
	return newInstance(items[0], s.calendar), true
}

// All returns an iterator over the remaining instances. Each instance is
// owned by the loop body, which must Close it.
func (s *Instances) All() iter.Seq[*Instance] {
	return func(yield func(*Instance) bool) {
		for {
			inst, ok := s.Next()
			if !ok {
				return
			}
			if !yield(inst) {
				return
			}
		}
	}
}

// Close releases the cursor. Calling Close more than once is safe.
func (s *Instances) Close() {
	if s == nil || s.enum == nil {
		return
	}
	s.enum.Release()
	s.enum = nil
}
