package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	for {
		f, ok := <-workerQueue
		if !ok {
			return
		}
		run(f)
	}
}

// run calls f, reporting a panic to sentry instead of taking the worker down with it.
func run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f to run on the pool. To be used by a function that may be CPU or I/O intensive.
func Submit(f func()) {
	workerQueue <- f
}

// Each calls f for every index in [0, n) on the pool and blocks until all calls have returned.
// A call that panics still counts as returned.
func Each(n int, f func(i int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		Submit(func() {
			defer wg.Done()
			f(i)
		})
	}
	wg.Wait()
}
