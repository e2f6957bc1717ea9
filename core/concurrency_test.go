// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialnet/core"
)

// TestConcurrentAddConnection ensures that concurrent AddConnection calls
// are safe and every neighbor appears on both sides.
func TestConcurrentAddConnection(t *testing.T) {
	g := core.NewGraph()
	g.AddUser(0, "Hub", "hub")

	var wg sync.WaitGroup
	errs := make(chan error, NUsers)
	wg.Add(NUsers)
	for i := 1; i <= NUsers; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddUser(id, fmt.Sprintf("User%d", id), fmt.Sprintf("u%d", id))
			errs <- g.AddConnection(0, id)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Equal(t, NUsers, g.Degree(0))
	for i := 1; i <= NUsers; i++ {
		require.Equal(t, []int{0}, g.Connections(i))
	}
}

// TestConcurrentReads validates that concurrent readers do not race
// with each other on a loaded graph.
func TestConcurrentReads(t *testing.T) {
	g := newTrio(t)

	var wg sync.WaitGroup
	results := make(chan []int, NReaders)
	wg.Add(NReaders)
	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			_, _ = g.UserIDByHandle("cy")
			_ = g.Stats()
			results <- g.Connections(IDAnn)
		}()
	}
	wg.Wait()
	close(results)

	for nbs := range results {
		require.Equal(t, []int{IDBo, IDCy}, nbs)
	}
}
