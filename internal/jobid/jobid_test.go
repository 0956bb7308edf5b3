package jobid_test

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domainscout/internal/jobid"
)

func TestGenerate_MinLength(t *testing.T) {
	g, err := jobid.New(0)
	require.NoError(t, err)

	id, err := g.Generate(0)
	require.NoError(t, err)
	assert.Len(t, id, 6)
}

func TestGenerate_Deterministic(t *testing.T) {
	g, err := jobid.New(0)
	require.NoError(t, err)

	id, err := g.Generate(12345)
	require.NoError(t, err)
	assert.Equal(t, "A6das1", id)

	id, err = g.Generate(1_000_000_000)
	require.NoError(t, err)
	assert.Len(t, id, 7)
}

func TestNext_Sequence(t *testing.T) {
	g, err := jobid.New(0)
	require.NoError(t, err)

	first, err := g.Next()
	require.NoError(t, err)
	second, err := g.Next()
	require.NoError(t, err)

	assert.Equal(t, "bMZn4Y", first)
	assert.Equal(t, "UkLWZg", second)
}

func TestNext_Seeded(t *testing.T) {
	g, err := jobid.New(12345)
	require.NoError(t, err)

	id, err := g.Next()
	require.NoError(t, err)
	assert.Equal(t, "A6das1", id)
}

func TestNext_ConcurrentUnique(t *testing.T) {
	g, err := jobid.New(0)
	require.NoError(t, err)

	urlSafe := regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	var (
		mu   sync.Mutex
		seen = map[string]bool{}
		wg   sync.WaitGroup
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				id, err := g.Next()
				assert.NoError(t, err)
				assert.Regexp(t, urlSafe, id)
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 400)
}
