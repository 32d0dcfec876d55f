package fill

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/crossfill/xwords/pkg/dict"
	"github.com/crossfill/xwords/pkg/grid"
	"github.com/crossfill/xwords/pkg/score"
)

// DefaultWorkers is the worker count used when ParallelSolver.Workers is zero.
const DefaultWorkers = 2

// ParallelSolver runs the priority search across a pool of workers sharing
// one frontier. The trie, bigram table, and topology are shared read-only;
// caches and seen-sets are per-worker. The first worker to complete a grid
// wins; which fill is returned is not deterministic when several exist.
type ParallelSolver struct {
	trie    *dict.Trie
	bigrams *dict.BigramTable

	// Workers is the pool size; zero means DefaultWorkers.
	Workers int

	// OnProgress, when set, is called every progressInterval (10,000)
	// candidates summed across workers. It must be safe for concurrent use.
	OnProgress func(Progress)
}

// NewParallelSolver returns a worker-pool filler over the shared indexes.
func NewParallelSolver(trie *dict.Trie, bigrams *dict.BigramTable) *ParallelSolver {
	return &ParallelSolver{trie: trie, bigrams: bigrams}
}

// sharedFrontier guards the frontier with a mutex and tracks how many grids
// are being expanded, so that an empty queue can be told apart from a queue
// that a peer is about to refill.
type sharedFrontier struct {
	mu     sync.Mutex
	front  *frontier
	active int
}

// take pops the best grid. got is false when the queue is empty; exhausted is
// additionally true when no worker holds a grid that could refill it.
func (sf *sharedFrontier) take() (g grid.Grid, got, exhausted bool) {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	g, got = sf.front.pop()
	if got {
		sf.active++
		return g, true, false
	}
	return grid.Grid{}, false, sf.active == 0
}

// release pushes a finished expansion's survivors and retires the grid taken.
func (sf *sharedFrontier) release(pushes []score.OrderedGrid) {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	for _, og := range pushes {
		sf.front.push(og)
	}
	sf.active--
}

// Fill searches for a complete fill of initial, returning ErrNoFill when
// every worker exits without a solution.
func (p *ParallelSolver) Fill(initial grid.Grid) (grid.Grid, error) {
	topo := newTopology(initial)

	// Check the starting grid before spawning anything: an unviable or
	// already-complete input never reaches the workers.
	eng := newEngine(topo, p.trie)
	if !eng.viable(&initial, nil) {
		return grid.Grid{}, ErrNoFill
	}
	if initial.Complete() {
		return initial, nil
	}

	workers := p.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	shared := &sharedFrontier{front: newFrontier()}
	shared.front.push(score.OrderGrid(initial, p.bigrams))

	var done atomic.Bool
	var candidates atomic.Uint64
	results := make(chan grid.Grid, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.runWorker(topo, shared, &done, &candidates, results)
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	solved, ok := <-results
	if !ok {
		return grid.Grid{}, ErrNoFill
	}
	return solved, nil
}

func (p *ParallelSolver) runWorker(topo *topology, shared *sharedFrontier, done *atomic.Bool, candidates *atomic.Uint64, results chan<- grid.Grid) {
	eng := newEngine(topo, p.trie)

	for {
		if done.Load() {
			return
		}

		g, got, exhausted := shared.take()
		if !got {
			if exhausted {
				return
			}
			runtime.Gosched()
			continue
		}

		if count := candidates.Add(1); p.OnProgress != nil && count%progressInterval == 0 {
			p.OnProgress(Progress{Candidates: count})
		}

		slot, ok := eng.pickSlot(&g, p.bigrams)
		if !ok {
			// A complete grid on the frontier is already a solution.
			p.deliver(g, done, results)
			shared.release(nil)
			return
		}

		var pushes []score.OrderedGrid
		solved := false
		view := grid.NewSlotView(&g, slot)
		for _, word := range eng.words.Words(view, p.trie) {
			next := g.WithSlotFilled(slot, word)
			if !eng.viable(&next, &slot) {
				continue
			}
			if next.Complete() {
				p.deliver(next, done, results)
				solved = true
				break
			}
			og := score.OrderGrid(next, p.bigrams)
			if og.Fillability == 0 {
				continue
			}
			pushes = append(pushes, og)
		}
		if solved {
			shared.release(nil)
			return
		}
		shared.release(pushes)
	}
}

// deliver publishes a solution exactly once across the pool.
func (p *ParallelSolver) deliver(solved grid.Grid, done *atomic.Bool, results chan<- grid.Grid) {
	if done.CompareAndSwap(false, true) {
		results <- solved
	}
}
