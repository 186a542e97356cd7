package deals

import (
	"myBestDeals/domain"
	"sort"
)

type entry struct {
	score   float64
	id      string
	seq     uint64
	product domain.ProductRecord
}

// less reports whether a ranks below b: lower score first, then the larger
// platform id, then the earlier insertion. The weakest entry of the selector
// is the minimum of this order and is the one evicted.
func less(a, b entry) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	if a.id != b.id {
		return a.id > b.id
	}
	return a.seq < b.seq
}

// outranks reports whether candidate c beats the retained entry r on score
// and platform id alone. A duplicate of the weakest entry does not get in.
func outranks(c, r entry) bool {
	if c.score != r.score {
		return c.score > r.score
	}
	return c.id < r.id
}

// Selector keeps the N best scored products of one platform. It is a
// fixed-capacity min-heap over an array, so the weakest retained entry sits
// at index 0. A Selector is meant for a single retrieval cycle and a single
// producer.
type Selector struct {
	capacity int
	heap     []entry
	seq      uint64
}

func NewSelector(capacity int) *Selector {
	if capacity < 1 {
		capacity = 1
	}
	return &Selector{
		capacity: capacity,
		heap:     make([]entry, 0, capacity),
	}
}

func (s *Selector) Cap() int { return s.capacity }

func (s *Selector) Len() int { return len(s.heap) }

// Admit offers a scored product. Non-positive scores are ignored. Once the
// selector is full a candidate only gets in when it ranks strictly above the
// weakest entry, which it then replaces. It reports whether the product was
// retained. A later duplicate (same score and id) of the weakest entry is
// refused when full, though below capacity it is kept and drains first.
func (s *Selector) Admit(p domain.ProductRecord, score float64) bool {
	if !(score > 0) {
		return false
	}

	s.seq++
	e := entry{score: score, id: p.PlatformID, seq: s.seq, product: p}

	if len(s.heap) < s.capacity {
		s.heap = append(s.heap, e)
		s.siftUp(len(s.heap) - 1)
		return true
	}

	if !outranks(e, s.heap[0]) {
		return false
	}

	s.heap[0] = e
	s.siftDown(0)
	return true
}

// MinScore returns the weakest retained score, false when empty.
func (s *Selector) MinScore() (float64, bool) {
	if len(s.heap) == 0 {
		return 0, false
	}
	return s.heap[0].score, true
}

// Drain returns the retained products best first: score descending, platform
// id ascending. It leaves the selector untouched, so calling it twice yields
// the same result.
func (s *Selector) Drain() []domain.RankedDeal {
	sorted := make([]entry, len(s.heap))
	copy(sorted, s.heap)

	sort.Slice(sorted, func(i, j int) bool {
		return less(sorted[j], sorted[i])
	})

	out := make([]domain.RankedDeal, 0, len(sorted))
	for _, e := range sorted {
		out = append(out, domain.RankedDeal{Score: e.score, Product: e.product})
	}

	return out
}

func (s *Selector) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !less(s.heap[i], s.heap[parent]) {
			return
		}
		s.heap[i], s.heap[parent] = s.heap[parent], s.heap[i]
		i = parent
	}
}

func (s *Selector) siftDown(i int) {
	n := len(s.heap)
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && less(s.heap[left], s.heap[smallest]) {
			smallest = left
		}
		if right < n && less(s.heap[right], s.heap[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		s.heap[i], s.heap[smallest] = s.heap[smallest], s.heap[i]
		i = smallest
	}
}
