package parallel

import (
	"runtime"
	"sync"
)

// Parallelize divides the specified total number (items) according to the number
// of CPU cores, and executes the specified function (fn) in parallel for each
// range (start, end).
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items // No need for more workers than items
	}

	// Number of items each worker handles (ceiling division)
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}

		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold performs parallelization only when the number of
// items exceeds the threshold. If below threshold, normal sequential
// processing is performed.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}

	Parallelize(items, fn)
}

// OrderedMap applies fn to every index in [0, items) using at most workers
// goroutines and returns the results in input order regardless of completion
// order. Slot i of the result belongs to index i; a failing invocation only
// affects its own slot. workers <= 1 runs sequentially.
func OrderedMap[T any](items, workers int, fn func(i int) (T, error)) ([]T, []error) {
	results := make([]T, items)
	errs := make([]error, items)
	if items == 0 {
		return results, errs
	}

	if workers <= 1 {
		for i := 0; i < items; i++ {
			results[i], errs[i] = fn(i)
		}
		return results, errs
	}

	if workers > items {
		workers = items
	}

	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i], errs[i] = fn(i)
			}
		}()
	}
	for i := 0; i < items; i++ {
		indices <- i
	}
	close(indices)
	wg.Wait()

	return results, errs
}
