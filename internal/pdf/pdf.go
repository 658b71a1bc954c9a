// Package pdf implements a discrete probability distribution over arbitrary
// items: add items with positive weights, update weights through stable
// element handles, and sample an item with probability proportional to its
// weight. Update and sample are O(log n) via a Fenwick tree over weights.
package pdf

import "math/bits"

// Element is a stable handle to one item in a PDF. Handles stay valid until
// the PDF is cleared.
type Element[T any] struct {
	Item T
	idx  int
}

// PDF is a weighted discrete distribution. The zero value is not usable;
// construct with New.
type PDF[T any] struct {
	elems   []*Element[T]
	weights []float64
	fen     []float64 // Fenwick tree over weights, fen[i] covers (i-lowbit(i+1), i+1]
	total   float64
}

// New creates an empty distribution.
func New[T any]() *PDF[T] {
	return &PDF[T]{}
}

// Add inserts an item with the given weight and returns its handle.
func (p *PDF[T]) Add(item T, w float64) *Element[T] {
	e := &Element[T]{Item: item, idx: len(p.elems)}
	p.elems = append(p.elems, e)
	p.weights = append(p.weights, w)

	// Fenwick append: the new node's range sum is its own weight plus the
	// sums of the sibling ranges it absorbs.
	i := len(p.elems) // 1-based
	v := w + p.prefix(i-1) - p.prefix(i-(i&-i))
	p.fen = append(p.fen, v)
	p.total += w
	return e
}

// Weight returns the current weight of an element.
func (p *PDF[T]) Weight(e *Element[T]) float64 { return p.weights[e.idx] }

// Update sets an element's weight.
func (p *PDF[T]) Update(e *Element[T], w float64) {
	d := w - p.weights[e.idx]
	p.weights[e.idx] = w
	p.total += d
	for i := e.idx + 1; i <= len(p.fen); i += i & -i {
		p.fen[i-1] += d
	}
}

// Sample returns the item whose cumulative weight interval contains
// r*Total(), for r uniform in [0,1). It reports false on an empty PDF.
func (p *PDF[T]) Sample(r float64) (T, bool) {
	var zero T
	n := len(p.elems)
	if n == 0 {
		return zero, false
	}
	target := r * p.total
	pos := 0
	for mask := 1 << (bits.Len(uint(n)) - 1); mask > 0; mask >>= 1 {
		if next := pos + mask; next <= n && p.fen[next-1] <= target {
			pos = next
			target -= p.fen[pos-1]
		}
	}
	if pos >= n { // guard against accumulated rounding at r near 1
		pos = n - 1
	}
	return p.elems[pos].Item, true
}

// Total returns the sum of all weights.
func (p *PDF[T]) Total() float64 { return p.total }

// Len returns the number of items.
func (p *PDF[T]) Len() int { return len(p.elems) }

// Clear removes all items. Outstanding handles become invalid.
func (p *PDF[T]) Clear() {
	p.elems = nil
	p.weights = nil
	p.fen = nil
	p.total = 0
}

func (p *PDF[T]) prefix(i int) float64 {
	s := 0.0
	for ; i > 0; i -= i & -i {
		s += p.fen[i-1]
	}
	return s
}
