package property

import (
	"log/slog"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/propcore/internal/slab"
)

// System owns every binding, dependency list and dependency node of one
// property graph. It is not safe for concurrent use; a graph belongs to a
// single UI thread.
type System struct {
	holders slab.Slab[holder]
	lists   slab.Slab[depList]
	nodes   slab.Slab[depNode]

	// binding or tracker currently being evaluated
	current slab.Key

	driver         animationDriver
	changeTrackers mapset.Set[*ChangeTracker]
	pendingChanges []*ChangeTracker

	logger *slog.Logger
	clock  func() time.Duration
	slow   uint64
}

type Option func(*System)

func WithLogger(l *slog.Logger) Option {
	return func(s *System) {
		s.logger = l
	}
}

// WithClock replaces the monotonic clock used by UpdateAnimationsNow.
func WithClock(now func() time.Duration) Option {
	return func(s *System) {
		s.clock = now
	}
}

// WithSlowAnimations divides the clock by factor, so every animation runs
// that many times slower.
func WithSlowAnimations(factor uint64) Option {
	return func(s *System) {
		if factor > 0 {
			s.slow = factor
		}
	}
}

func WithConfig(cfg Config) Option {
	return func(s *System) {
		WithSlowAnimations(cfg.SlowAnimations)(s)
		if cfg.Debug {
			s.logger = slog.New(slog.NewTextHandler(cfg.output(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
	}
}

func NewSystem(opts ...Option) *System {
	start := time.Now()
	s := &System{
		changeTrackers: mapset.NewThreadUnsafeSet[*ChangeTracker](),
		logger:         slog.New(slog.DiscardHandler),
		clock:          func() time.Duration { return time.Since(start) },
		slow:           1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.driver.init(s)
	return s
}

func (s *System) Logger() *slog.Logger {
	return s.logger
}

// IsCurrentlyTracking reports whether a binding or tracker is evaluating, so
// a Get right now would record a dependency.
func (s *System) IsCurrentlyTracking() bool {
	return s.current.Valid()
}

// EvaluateNoTracking runs f with dependency recording switched off.
func (s *System) EvaluateNoTracking(f func()) {
	prev := s.current
	s.current = slab.Key{}
	defer func() { s.current = prev }()
	f()
}

// withCurrent installs k as the evaluating binding for the duration of f.
func (s *System) withCurrent(k slab.Key, f func()) {
	prev := s.current
	s.current = k
	defer func() { s.current = prev }()
	f()
}

type Stats struct {
	Bindings       int
	Lists          int
	Nodes          int
	ChangeTrackers int
}

// Stats counts live arena slots. A graph whose properties have all been
// dropped reports only the animation tick's bookkeeping.
func (s *System) Stats() Stats {
	return Stats{
		Bindings:       s.holders.Len(),
		Lists:          s.lists.Len(),
		Nodes:          s.nodes.Len(),
		ChangeTrackers: s.changeTrackers.Cardinality(),
	}
}
