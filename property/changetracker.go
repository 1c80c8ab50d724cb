package property

// ChangeTracker calls a handler after the value computed by its eval function
// changes. Handlers are deferred until RunChangeHandlers, so a burst of writes
// results in one call.
type ChangeTracker struct {
	tracker *Tracker
	run     func() bool
	queued  bool
}

// NewChangeTracker evaluates eval right away, without notifying, and calls
// notify from RunChangeHandlers whenever a later evaluation differs.
func NewChangeTracker[T comparable](sys *System, eval func() T, notify func(T)) *ChangeTracker {
	ct := &ChangeTracker{}
	ct.tracker = NewTrackerWithChangeHandler(sys, func() {
		if ct.queued {
			return
		}
		ct.queued = true
		sys.pendingChanges = append(sys.pendingChanges, ct)
	})

	var last T
	ct.tracker.EvaluateAsDependencyRoot(func() { last = eval() })
	ct.run = func() bool {
		var next T
		ct.tracker.EvaluateAsDependencyRoot(func() { next = eval() })
		if next == last {
			return false
		}
		last = next
		notify(next)
		return true
	}

	sys.changeTrackers.Add(ct)
	return ct
}

// RunChangeHandlers re-evaluates every change tracker that went dirty and
// calls the handlers whose value changed. Handlers that dirty other trackers
// are picked up in the same call. It returns the number of handlers run.
func (s *System) RunChangeHandlers() int {
	count := 0
	for len(s.pendingChanges) > 0 {
		pending := s.pendingChanges
		s.pendingChanges = nil
		for _, ct := range pending {
			ct.queued = false
			if !s.changeTrackers.Contains(ct) {
				continue
			}
			if ct.run() {
				count++
			}
		}
	}
	return count
}

func (ct *ChangeTracker) Drop() {
	ct.tracker.sys.changeTrackers.Remove(ct)
	ct.tracker.Drop()
}
