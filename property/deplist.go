package property

import "github.com/delaneyj/propcore/internal/slab"

// depList anchors the dependents of one source. A node belongs to the binding
// that registered it and is only referenced from here.
type depList struct {
	head slab.Key
}

type depNode struct {
	next, prev slab.Key
	// list the node was pushed into; only consulted while prev is zero
	list  slab.Key
	owner slab.Key
}

func (s *System) ensureList(list *slab.Key) slab.Key {
	if !s.lists.Contains(*list) {
		*list = s.lists.Insert(depList{})
	}
	return *list
}

// listPushFront unlinks node from wherever it is and makes it the head of the
// list stored in slot.
func (s *System) listPushFront(slot *slab.Key, node slab.Key) {
	s.nodeUnlink(node)
	lk := s.ensureList(slot)
	l, _ := s.lists.Get(lk)
	n, ok := s.nodes.Get(node)
	if !ok {
		return
	}

	old := l.head
	n.next = old
	n.prev = slab.Key{}
	n.list = lk
	if o, ok := s.nodes.Get(old); ok {
		o.prev = node
	}
	l.head = node
}

// nodeUnlink splices node out of its list. Calling it on a detached or stale
// node does nothing.
func (s *System) nodeUnlink(node slab.Key) {
	n, ok := s.nodes.Get(node)
	if !ok {
		return
	}

	if p, ok := s.nodes.Get(n.prev); ok {
		p.next = n.next
	} else if l, ok := s.lists.Get(n.list); ok && l.head == node {
		l.head = n.next
	}
	if nx, ok := s.nodes.Get(n.next); ok {
		nx.prev = n.prev
	}

	n.next = slab.Key{}
	n.prev = slab.Key{}
	n.list = slab.Key{}
}

// listDrop releases the list head. Nodes still chained behind it become
// orphans: they stay owned by their bindings and unlink among themselves.
func (s *System) listDrop(list slab.Key) {
	if l, ok := s.lists.Get(list); ok {
		if n, ok := s.nodes.Get(l.head); ok {
			n.list = slab.Key{}
		}
	}
	s.lists.Remove(list)
}

// listForEach walks the list front to back. The successor is read before f
// runs, and a successor freed by f ends the walk.
func (s *System) listForEach(list slab.Key, f func(owner slab.Key)) {
	l, ok := s.lists.Get(list)
	if !ok {
		return
	}
	for k := l.head; k.Valid(); {
		n, ok := s.nodes.Get(k)
		if !ok {
			return
		}
		next := n.next
		f(n.owner)
		k = next
	}
}

func (s *System) listLen(list slab.Key) int {
	count := 0
	s.listForEach(list, func(slab.Key) { count++ })
	return count
}
