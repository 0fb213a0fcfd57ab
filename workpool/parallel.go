package workpool

import "sync"

const (
	// reverseBlock is the minimum half-length before Reverse splits the
	// symmetric swap into pool tasks.
	reverseBlock = 10000

	// forEachMin is the minimum per-half length before ForEach bisects.
	forEachMin = 10000
)

// Reverse reverses s in place. Above the block threshold the symmetric
// swap ranges are submitted to p as independent tasks and the caller
// helps drain; below it, or with a nil pool, a plain sequential reverse
// runs. Every task swaps a disjoint pair of ranges, so no locking of s
// is needed.
func Reverse[T any](p *Pool, s []T) {
	n := len(s)
	if n == 0 {
		return
	}
	mid := n / 2
	if p == nil || mid < reverseBlock {
		reverseSeq(s)
		return
	}

	blocks := (mid + reverseBlock - 1) / reverseBlock
	lo, hi := 0, n
	for i := 0; i < blocks-1; i++ {
		a, b := lo, hi
		p.Submit(func() { swapRanges(s, a, a+reverseBlock, b-reverseBlock, b) })
		lo += reverseBlock
		hi -= reverseBlock
	}
	swapRanges(s, lo, mid, n-mid, hi)
	p.Drain()
}

// swapRanges swaps s[aLo:aHi] with the mirror of s[bLo:bHi]; both ranges
// must have equal length and must not overlap.
func swapRanges[T any](s []T, aLo, aHi, bLo, bHi int) {
	for i, j := aLo, bHi-1; i < aHi; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseSeq[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// ForEach applies fn to every element of s in place. Long slices are
// bisected recursively, the lower half running as its own goroutine, so
// independent halves proceed concurrently; short slices are processed
// sequentially. fn must be safe to call concurrently on distinct
// elements.
func ForEach[T any](s []T, fn func(*T)) {
	if len(s) == 0 {
		return
	}
	if len(s) < 2*forEachMin {
		for i := range s {
			fn(&s[i])
		}
		return
	}
	mid := len(s) / 2
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ForEach(s[:mid], fn)
	}()
	ForEach(s[mid:], fn)
	wg.Wait()
}
