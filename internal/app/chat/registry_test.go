package chat

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/randx"
)

func TestRegistry_RegisterAndResolve(t *testing.T) {
	reg := NewRegistry()

	token := reg.Register("Alice")
	require.NotEmpty(t, token)

	name, ok := reg.Resolve(token)
	require.True(t, ok)
	assert.Equal(t, "Alice", name)
}

func TestRegistry_DuplicateDisplayNames(t *testing.T) {
	reg := NewRegistry()

	first := reg.Register("Alice")
	second := reg.Register("Alice")

	assert.NotEqual(t, first, second, "each registration must mint a distinct auth key")

	name, ok := reg.Resolve(first)
	require.True(t, ok)
	assert.Equal(t, "Alice", name)
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	reg := NewRegistry()

	_, ok := reg.Resolve("no-such-token")
	assert.False(t, ok)
}

func TestRegistry_IsValid(t *testing.T) {
	reg := NewRegistry()
	token := reg.Register("Alice")

	assert.True(t, reg.IsValid(token))
	assert.False(t, reg.IsValid(""))
	assert.False(t, reg.IsValid(randx.NoAuthKey))
	assert.False(t, reg.IsValid("unregistered"))
}

func TestRegistry_ConcurrentRegistration(t *testing.T) {
	reg := NewRegistry()

	const n = 100
	tokens := make([]string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i] = reg.Register("User")
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, n)
	for _, token := range tokens {
		require.True(t, reg.IsValid(token))
		seen[token] = struct{}{}
	}
	assert.Len(t, seen, n, "all concurrently minted auth keys must be distinct")
}
