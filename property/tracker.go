package property

import "github.com/delaneyj/propcore/internal/slab"

// Tracker observes whether any property read inside Evaluate has changed
// since, without holding a value itself.
type Tracker struct {
	sys *System
	key slab.Key
}

type trackerCallable struct {
	noopCallable
	notify func()
}

func (trackerCallable) evaluate(any) bindingResult {
	return keepBinding
}

// markDirty calls notify on the clean to dirty edge only.
func (c trackerCallable) markDirty(wasDirty bool) {
	if !wasDirty && c.notify != nil {
		c.notify()
	}
}

// NewTracker returns a tracker that starts out dirty.
func NewTracker(sys *System) *Tracker {
	return NewTrackerWithChangeHandler(sys, nil)
}

// NewTrackerWithChangeHandler calls notify each time the tracker goes from
// clean to dirty. Further changes while it is still dirty stay silent.
func NewTrackerWithChangeHandler(sys *System, notify func()) *Tracker {
	return &Tracker{
		sys: sys,
		key: sys.allocHolder(trackerCallable{notify: notify}, false),
	}
}

func (t *Tracker) holder() *holder {
	h, ok := t.sys.holders.Get(t.key)
	if !ok {
		panic(ErrDropped)
	}
	return h
}

func (t *Tracker) IsDirty() bool {
	return t.holder().dirty
}

// SetDirty marks the tracker and everything depending on it dirty.
func (t *Tracker) SetDirty() {
	h := t.holder()
	h.dirty = true
	t.sys.markDependenciesDirty(h.deps)
}

// RegisterAsDependencyToCurrentBinding makes the evaluating binding or tracker
// dirty whenever this one becomes dirty.
func (t *Tracker) RegisterAsDependencyToCurrentBinding() {
	cur := t.sys.current
	if !cur.Valid() {
		return
	}
	h := t.holder()
	t.sys.registerDependency(cur, &h.deps)
}

// Evaluate runs f, recording every property it reads, and registers the
// tracker with the evaluating binding if there is one.
func (t *Tracker) Evaluate(f func()) {
	t.RegisterAsDependencyToCurrentBinding()
	t.EvaluateAsDependencyRoot(f)
}

// EvaluateAsDependencyRoot is Evaluate without the outer registration.
func (t *Tracker) EvaluateAsDependencyRoot(f func()) {
	h := t.holder()
	t.sys.clearNodes(h)
	t.sys.withCurrent(t.key, f)
	if h, ok := t.sys.holders.Get(t.key); ok {
		h.dirty = false
	}
}

// EvaluateIfDirty runs f only when the tracker is dirty and reports whether
// it did. The outer registration happens either way.
func (t *Tracker) EvaluateIfDirty(f func()) bool {
	t.RegisterAsDependencyToCurrentBinding()
	if !t.IsDirty() {
		return false
	}
	t.EvaluateAsDependencyRoot(f)
	return true
}

// Drop unlinks the tracker from everything it read and from everything that
// depends on it.
func (t *Tracker) Drop() {
	t.sys.dropHolder(t.key)
}

// Track is Evaluate for a function with a result.
func Track[R any](t *Tracker, f func() R) R {
	var r R
	t.Evaluate(func() { r = f() })
	return r
}

// TrackIfDirty is EvaluateIfDirty for a function with a result.
func TrackIfDirty[R any](t *Tracker, f func() R) (R, bool) {
	var r R
	ok := t.EvaluateIfDirty(func() { r = f() })
	return r, ok
}
