// Package fibheap implements a Fibonacci heap: a priority queue
// supporting Enqueue and DequeueMin in O(1) amortized and O(log n)
// amortized respectively, and DecreaseKey in O(1) amortized.
//
// No general-purpose priority queue in the surrounding ecosystem offers
// amortized O(1) DecreaseKey the way a Fibonacci heap does; Go's
// container/heap is a binary heap with O(log n) DecreaseKey (achieved by
// removing and reinserting), which is asymptotically worse for the
// repeated decrease-key workload of Dijkstra's algorithm over dense
// graphs. This package is therefore hand-built directly against the
// classical structure (Fredman & Tarjan, 1987) rather than adapted from
// a library.
package fibheap

import "math"

// Entry is an opaque handle to a value stored in a Heap, returned by
// Enqueue and required by DecreaseKey.
type Entry[V any] struct {
	value    V
	key      float64
	degree   int
	marked   bool
	parent   *Entry[V]
	child    *Entry[V]
	left     *Entry[V]
	right    *Entry[V]
}

// Heap is a Fibonacci heap of Entry[V] ordered by ascending key.
type Heap[V any] struct {
	min   *Entry[V]
	count int
}

// New returns an empty Heap.
func New[V any]() *Heap[V] { return &Heap[V]{} }

// Len returns the number of entries in the heap.
func (h *Heap[V]) Len() int { return h.count }

// Enqueue inserts value with the given key and returns a handle usable
// with DecreaseKey.
func (h *Heap[V]) Enqueue(value V, key float64) *Entry[V] {
	e := &Entry[V]{value: value, key: key}
	e.left, e.right = e, e
	h.min = mergeLists(h.min, e)
	h.count++
	return e
}

// PeekMin returns the minimum entry's value and key without removing it.
// ok is false if the heap is empty.
func (h *Heap[V]) PeekMin() (value V, key float64, ok bool) {
	if h.min == nil {
		return value, 0, false
	}
	return h.min.value, h.min.key, true
}

// DequeueMin removes and returns the minimum entry.
func (h *Heap[V]) DequeueMin() (value V, key float64, ok bool) {
	if h.min == nil {
		return value, 0, false
	}
	min := h.min

	// Promote every child of min to the root list.
	if min.child != nil {
		c := min.child
		for {
			next := c.right
			c.parent = nil
			c = next
			if c == min.child {
				break
			}
		}
		h.min = mergeLists(h.min, min.child)
	}

	next := min.right
	removeFromList(min)
	h.count--

	if next == min {
		h.min = nil
	} else {
		h.min = next
		h.consolidate()
	}

	return min.value, min.key, true
}

// DecreaseKey lowers e's key to newKey, which must not exceed its
// current key, cutting it from its parent if that violates heap order.
func (h *Heap[V]) DecreaseKey(e *Entry[V], newKey float64) {
	if newKey > e.key {
		return
	}
	e.key = newKey
	parent := e.parent
	if parent != nil && e.key < parent.key {
		h.cut(e, parent)
		h.cascadingCut(parent)
	}
	if e.key < h.min.key {
		h.min = e
	}
}

func (h *Heap[V]) cut(e, parent *Entry[V]) {
	next := e.right
	removeFromList(e)
	parent.degree--
	if parent.child == e {
		if next == e {
			parent.child = nil
		} else {
			parent.child = next
		}
	}
	e.parent = nil
	e.marked = false
	e.left, e.right = e, e
	h.min = mergeLists(h.min, e)
}

func (h *Heap[V]) cascadingCut(e *Entry[V]) {
	parent := e.parent
	if parent == nil {
		return
	}
	if !e.marked {
		e.marked = true
		return
	}
	h.cut(e, parent)
	h.cascadingCut(parent)
}

// consolidate merges root-list trees of equal degree until every root
// has a distinct degree, restoring the amortized bound.
func (h *Heap[V]) consolidate() {
	maxDegree := int(math.Log2(float64(h.count+1))) + 2
	degreeTable := make([]*Entry[V], maxDegree*2+2)

	var roots []*Entry[V]
	if h.min != nil {
		c := h.min
		for {
			roots = append(roots, c)
			c = c.right
			if c == h.min {
				break
			}
		}
	}

	for _, x := range roots {
		x.left, x.right = x, x
		d := x.degree
		for degreeTable[d] != nil {
			y := degreeTable[d]
			if y.key < x.key {
				x, y = y, x
			}
			link(y, x)
			degreeTable[d] = nil
			d++
		}
		degreeTable[d] = x
	}

	h.min = nil
	for _, x := range degreeTable {
		if x == nil {
			continue
		}
		x.left, x.right = x, x
		x.parent = nil
		h.min = mergeLists(h.min, x)
		if h.min.key > x.key {
			h.min = x
		}
	}
}

// link makes y a child of x.
func link[V any](y, x *Entry[V]) {
	removeFromList(y)
	y.left, y.right = y, y
	y.parent = x
	y.marked = false
	x.child = mergeLists(x.child, y)
	x.degree++
}

// mergeLists splices circular doubly linked lists a and b together and
// returns whichever root has the smaller key (nil-safe).
func mergeLists[V any](a, b *Entry[V]) *Entry[V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	aRight, bRight := a.right, b.right
	a.right = bRight
	bRight.left = a
	b.right = aRight
	aRight.left = b

	if a.key < b.key {
		return a
	}
	return b
}

// removeFromList splices e out of whatever circular list it is in.
func removeFromList[V any](e *Entry[V]) {
	e.left.right = e.right
	e.right.left = e.left
	e.left, e.right = e, e
}
