// Package hello greets the world from several goroutines at once.
package hello

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Parallel writes "Hello World" line to w from each of n goroutines.
// Lines are never interleaved.
func Parallel(w io.Writer, n int) error {
	var (
		g    errgroup.Group
		lock sync.Mutex
	)

	for range n {
		g.Go(func() error {
			lock.Lock()
			defer lock.Unlock()

			_, err := fmt.Fprintln(w, "Hello World")

			return err
		})
	}

	return g.Wait()
}
