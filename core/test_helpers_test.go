// Package core_test contains test helpers for socialnet/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared across core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialnet/core"
)

// Common user IDs used across core tests.
const (
	IDAnn = 1
	IDBo  = 2
	IDCy  = 3
	IDDee = 4
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NReaders = 50
	NUsers   = 200
)

// newTrio builds the Ann/Bo/Cy fixture: users 1..3 with edges (1,2),(1,3).
func newTrio(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()

	g := core.NewGraph(opts...)
	g.AddUser(IDAnn, "Ann", "ann")
	g.AddUser(IDBo, "Bo", "bo")
	g.AddUser(IDCy, "Cy", "cy")
	require.NoError(t, g.AddConnection(IDAnn, IDBo))
	require.NoError(t, g.AddConnection(IDAnn, IDCy))

	return g
}
