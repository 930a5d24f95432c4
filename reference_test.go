package docdiff

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference(t *testing.T) {
	t.Run("single deletion", func(t *testing.T) {
		r, err := Reference([]string{"a", "b", "c"}, []string{"a", "c"})
		require.NoError(t, err)
		assert.Equal(t, []Operation{m("a"), d("b"), m("c")}, r.Ops)
		assert.Equal(t, 0, r.Window)
	})

	t.Run("empty", func(t *testing.T) {
		r, err := Reference(nil, nil)
		require.NoError(t, err)
		assert.Empty(t, r.Ops)
		assert.True(t, r.Equal())
	})

	t.Run("beats a resync on a repeated word", func(t *testing.T) {
		old := []string{"x1", "x2", "x3", "x4", "x5", "b"}
		new := []string{"b"}

		heuristic := mustAlign(t, old, new, WithWindow(3))
		ref, err := Reference(old, new)
		require.NoError(t, err)

		assert.Equal(t, 7, heuristic.Inserted+heuristic.Deleted)
		assert.Equal(t, 5, ref.Inserted+ref.Deleted)
	})

	t.Run("never worse than the heuristic", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		vocab := []string{"the", "a", "fox", "dog", "of"}
		gen := func() []string {
			out := make([]string, rng.Intn(50))
			for i := range out {
				out[i] = vocab[rng.Intn(len(vocab))]
			}
			return out
		}

		for i := 0; i < 200; i++ {
			old, new := gen(), gen()
			ref, err := Reference(old, new)
			require.NoError(t, err)
			assert.Equal(t, old, ref.Old(), "case #%d", i)
			assert.Equal(t, new, ref.New(), "case #%d", i)

			heuristic := mustAlign(t, old, new)
			assert.LessOrEqual(t, ref.Inserted+ref.Deleted, heuristic.Inserted+heuristic.Deleted, "case #%d", i)
		}
	})

	t.Run("timeout still covers both sides", func(t *testing.T) {
		old := Tokenize([]string{"one two three four five six seven"})
		new := Tokenize([]string{"two three five six eight"})
		r, err := Reference(old, new, WithTimeout(time.Second))
		require.NoError(t, err)
		assert.Equal(t, old, r.Old())
		assert.Equal(t, new, r.New())
	})
}

func TestIndexRune(t *testing.T) {
	for _, n := range []int{0, 1, surrogateMin - 1, surrogateMin, surrogateMin + 1, maxDistinctTokens - 1} {
		r := indexRune(n)
		assert.False(t, r >= surrogateMin && r < surrogateMin+surrogateLen, "index %d maps into surrogates", n)
		assert.Equal(t, n, runeIndex(r))
	}
}
