package fill

import (
	"github.com/Zubayear/ryushin/priorityqueue"

	"github.com/crossfill/xwords/pkg/grid"
	"github.com/crossfill/xwords/pkg/score"
)

// frontier is the max-priority queue of grids still under consideration,
// ordered by the grid key. It deduplicates by grid equality: a grid reached
// along two paths is enqueued once.
type frontier struct {
	heap     *priorityqueue.BinaryHeap[score.OrderedGrid]
	enqueued map[grid.Grid]struct{}
}

func newFrontier() *frontier {
	return &frontier{
		heap: priorityqueue.NewBinaryHeapWithComparator(func(a, b score.OrderedGrid) bool {
			return a.Better(b)
		}),
		enqueued: make(map[grid.Grid]struct{}),
	}
}

func (f *frontier) push(og score.OrderedGrid) {
	if _, seen := f.enqueued[og.Grid]; seen {
		return
	}
	f.enqueued[og.Grid] = struct{}{}
	f.heap.Add(og)
}

func (f *frontier) pop() (grid.Grid, bool) {
	og, err := f.heap.Poll()
	if err != nil {
		return grid.Grid{}, false
	}
	return og.Grid, true
}

func (f *frontier) empty() bool {
	return f.heap.IsEmpty()
}
