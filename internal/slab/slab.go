package slab

// Key addresses a slot in a Slab. Gen changes every time the slot is reused,
// so a Key that outlived its value never resolves again. The zero Key is never
// handed out.
type Key struct {
	Index uint32
	Gen   uint32
}

func (k Key) Valid() bool {
	return k.Gen != 0
}

const (
	chunkBits = 8
	chunkSize = 1 << chunkBits
	chunkMask = chunkSize - 1
)

type entry[T any] struct {
	gen  uint32
	live bool
	val  T
}

// Slab is a generational arena. Storage grows in fixed size chunks which are
// never moved, so a pointer returned by Get stays usable until its key is
// removed, even across later inserts.
type Slab[T any] struct {
	chunks [][]entry[T]
	next   uint32
	free   []uint32
	live   int
}

func (s *Slab[T]) at(i uint32) *entry[T] {
	return &s.chunks[i>>chunkBits][i&chunkMask]
}

func (s *Slab[T]) Insert(v T) Key {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = s.next
		if int(idx>>chunkBits) == len(s.chunks) {
			s.chunks = append(s.chunks, make([]entry[T], chunkSize))
		}
		s.next++
	}

	e := s.at(idx)
	e.gen++
	if e.gen == 0 {
		e.gen = 1
	}
	e.live = true
	e.val = v
	s.live++
	return Key{Index: idx, Gen: e.gen}
}

func (s *Slab[T]) Get(k Key) (*T, bool) {
	if !k.Valid() || k.Index >= s.next {
		return nil, false
	}
	e := s.at(k.Index)
	if !e.live || e.gen != k.Gen {
		return nil, false
	}
	return &e.val, true
}

func (s *Slab[T]) Contains(k Key) bool {
	_, ok := s.Get(k)
	return ok
}

// Remove frees the slot behind k and returns the value it held. Removing a
// stale key is a no-op.
func (s *Slab[T]) Remove(k Key) (T, bool) {
	var zero T
	if !s.Contains(k) {
		return zero, false
	}
	e := s.at(k.Index)
	v := e.val
	e.val = zero
	e.live = false
	s.free = append(s.free, k.Index)
	s.live--
	return v, true
}

// Len reports the number of live slots.
func (s *Slab[T]) Len() int {
	return s.live
}

// Cap reports how many slots have been allocated, live or free.
func (s *Slab[T]) Cap() int {
	return int(s.next)
}
