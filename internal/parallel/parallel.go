// Package parallel fans independent work items out over a fixed number of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// NumWorkers returns the default number of workers.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Workers resolves a requested worker count: n <= 0 means NumWorkers, and
// there are never more workers than items.
func Workers(n, items int) int {
	if n <= 0 {
		n = NumWorkers()
	}
	return max(min(n, items), 1)
}

// For calls fn for every index in [start, end) using n workers. Each worker
// owns a contiguous chunk of indices.
func For(start, end, n int, fn func(i int)) {
	total := end - start
	if total <= 0 {
		return
	}
	if n <= 1 {
		for i := start; i < end; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (total + n - 1) / n
	for s := start; s < end; s += chunk {
		e := min(s+chunk, end)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := s; i < e; i++ {
				fn(i)
			}
		}()
	}
	wg.Wait()
}

// Map calls fn for every index in [start, end) using n workers and returns
// the results in index order.
func Map[T any](start, end, n int, fn func(i int) T) []T {
	if end <= start {
		return nil
	}
	results := make([]T, end-start)
	For(start, end, n, func(i int) {
		results[i-start] = fn(i)
	})
	return results
}
