// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/metropath/core"
)

// TestGraph_ConcurrentAddEdge verifies unique edge IDs under concurrent writers.
// *testing.T is only used after all goroutines finish.
func TestGraph_ConcurrentAddEdge(t *testing.T) {
	const writers = 50
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := g.AddEdge(VertexA, fmt.Sprintf("V%d", i%7), int64(i+1)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("AddEdge: %v", err)
	}
	MustEqualInt(t, g.EdgeCount(), writers, "EdgeCount")

	seen := make(map[string]bool, writers)
	for _, e := range g.Edges() {
		if seen[e.ID] {
			t.Fatalf("duplicate edge ID %s", e.ID)
		}
		seen[e.ID] = true
	}
}
