package estimate

import "time"

// runWithTimeout executes op on its own goroutine and waits at most d for
// the result. On timeout the goroutine is abandoned, not interrupted: it
// runs to completion in the background and its result is dropped. d <= 0
// reports a timeout immediately without launching op at all.
func runWithTimeout[T any](d time.Duration, op func() T) (T, bool) {
	var zero T
	if d <= 0 {
		return zero, false
	}
	done := make(chan T, 1)
	go func() { done <- op() }()
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case v := <-done:
		return v, true
	case <-timer.C:
		return zero, false
	}
}
