// Package workpool provides a small fixed-size worker pool with a FIFO task
// queue and cooperative "helping" drains, plus divide-and-conquer slice
// primitives (parallel reverse and for-each) built on top of it.
//
// 🚀 What is workpool?
//
//	A deliberately simple scheduling substrate for divide-and-conquer
//	work whose sub-tasks write disjoint ranges of a shared buffer:
//	  • Fixed worker count (NumCPU−1, minimum 1)
//	  • Single mutex-guarded FIFO queue of func() tasks
//	  • Atomic outstanding-task counter — IsWorking reports pending work
//	  • Helping drains: the producer runs queued tasks itself (RunOne /
//	    Drain) instead of blocking on a future
//
// ✨ Why a bespoke pool?
//
//   - Tasks may submit further tasks from inside a worker (re-entrant
//     submission is the normal case for recursive partitioning)
//   - The producer participates: Drain loops pop-and-run until the
//     outstanding counter reaches zero, so no result channels are needed
//   - Correctness for shared buffers comes from disjoint index ranges
//     computed before submission, not from per-write locking
//
// ⚙️ Usage:
//
//	p := workpool.New(0) // 0 ⇒ NumCPU−1 workers, min 1
//	defer p.Close()
//
//	p.Submit(func() { build(left) })
//	build(right)
//	p.Drain() // help until every submitted task has completed
//
// Pools are cheap; scope one per top-level computation so unrelated
// callers never interleave work on the same queue.
//
// Complexity: Submit/RunOne are O(1) plus the task itself; Drain is
// bounded by the total outstanding work.
package workpool
