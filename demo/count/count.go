// Package count prints numbers from two goroutines taking turns.
package count

import (
	"fmt"
	"io"
	"sync"
)

// Parallel writes numbers 0 to end-1 separated by ", ". Even numbers are
// written by one goroutine and odd numbers by another; single turn flag
// decides whose turn it is.
func Parallel(w io.Writer, end int) {
	var (
		lock      sync.Mutex
		turn      = sync.NewCond(&lock)
		evenTurn  = true
		count     = 0
		waitGroup sync.WaitGroup
	)

	counter := func(even bool) {
		defer waitGroup.Done()

		lock.Lock()
		defer lock.Unlock()

		for {
			for count < end && evenTurn != even {
				turn.Wait()
			}

			if count >= end {
				turn.Broadcast()
				return
			}

			fmt.Fprintf(w, "%d, ", count)
			count++
			evenTurn = !even
			turn.Broadcast()
		}
	}

	waitGroup.Add(2)

	go counter(true)
	go counter(false)

	waitGroup.Wait()
}
