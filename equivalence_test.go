package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquivalentPairs(t *testing.T) {
	t.Run("ordering", func(t *testing.T) {
		// Two equivalent twin groups: {0, 1} and {2, 3} both loop among
		// themselves, with 4 the lone final state neither can reach.
		d := New(5, []int{4}, [][]int{{0, 1}, {0, 1}, {2, 3}, {2, 3}, {4, 4}})
		require.Nil(t, d.Validate())

		pairs := BuildTable(d).EquivalentPairs()
		assert.Equal(t, []StatePair{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, pairs)
	})

	t.Run("empty but non-nil when all distinguishable", func(t *testing.T) {
		pairs := BuildTable(makeEvenLength()).EquivalentPairs()
		assert.NotNil(t, pairs)
		assert.Equal(t, 0, len(pairs))
	})
}

func TestClasses(t *testing.T) {
	t.Run("twins collapse into one class", func(t *testing.T) {
		classes := BuildTable(makeSharedSink()).Classes()
		assert.Equal(t, [][]int{{0, 1}, {2}}, classes)
	})

	t.Run("all distinguishable gives singletons", func(t *testing.T) {
		classes := BuildTable(makeChain(4)).Classes()
		assert.Equal(t, [][]int{{0}, {1}, {2}, {3}}, classes)
	})

	t.Run("all equivalent gives one class", func(t *testing.T) {
		classes := BuildTable(makeAllAccepting(4, 2)).Classes()
		assert.Equal(t, [][]int{{0, 1, 2, 3}}, classes)
	})

	t.Run("classes partition the state set", func(t *testing.T) {
		d := New(5, []int{4}, [][]int{{0, 1}, {0, 1}, {2, 3}, {2, 3}, {4, 4}})
		require.Nil(t, d.Validate())

		classes := BuildTable(d).Classes()
		seen := make(map[int]int)
		for _, class := range classes {
			for _, s := range class {
				seen[s]++
			}
		}
		assert.Equal(t, d.NumStates(), len(seen))
		for s, count := range seen {
			assert.Equalf(t, 1, count, "state %d appears in %d classes", s, count)
		}
	})
}
