package parallel

import "sync"

// Barrier synchronizes a fixed set of worker goroutines across a sequence
// of super-steps: every worker must call Wait before any of them proceeds
// into the next step. It is the named primitive behind the scan/process/
// barrier loop used by bulk-synchronous peeling algorithms, where each
// round must fully settle (every worker's writes visible) before the next
// round's scan begins.
//
// Barrier is reusable across an unbounded number of rounds; callers drive
// the round count themselves.
type Barrier struct {
	n       int
	mu      sync.Mutex
	cond    *sync.Cond
	count   int
	phase   uint64
	release func()
}

// NewBarrier creates a Barrier for n participating workers. release, if
// non-nil, runs once per round on the goroutine that completes the round
// (the last arrival), before the other n-1 workers are woken up — useful
// for a one-shot per-round bookkeeping step like swapping frontier buffers.
func NewBarrier(n int, release func()) *Barrier {
	b := &Barrier{n: n, release: release}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks until all n workers have called Wait for the current phase,
// then lets every one of them proceed into the next phase.
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	phase := b.phase
	b.count++
	if b.count == b.n {
		if b.release != nil {
			b.release()
		}
		b.count = 0
		b.phase++
		b.cond.Broadcast()
		return
	}
	for b.phase == phase {
		b.cond.Wait()
	}
}
