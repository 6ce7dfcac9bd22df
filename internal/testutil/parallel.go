package testutil

import (
	"sync"
	"testing"
)

// RunParallel runs fn in n goroutines, passing each its worker index,
// and blocks until all of them return.
func RunParallel(tb testing.TB, n int, fn func(worker int)) {
	tb.Helper()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fn(i)
		}(i)
	}
	wg.Wait()
}
