package dnd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dragd/internal/dnd"
	"dragd/pkg/types"
)

func TestNewToken(t *testing.T) {
	t.Run("tokens are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			tok := dnd.NewToken()
			assert.False(t, seen[tok], "token %q minted twice", tok)
			seen[tok] = true
		}
	})

	t.Run("tokens are recognizable", func(t *testing.T) {
		assert.True(t, dnd.IsToken(dnd.NewToken()))
	})

	t.Run("conventional names are not tokens", func(t *testing.T) {
		assert.False(t, dnd.IsToken("text/plain"))
		assert.False(t, dnd.IsToken("text/uri-list"))
		assert.False(t, dnd.IsToken(""))
	})
}

func TestPayload(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		p := types.NewPayload()
		p.Set("text/plain", []byte("hello"))

		assert.True(t, p.Has("text/plain"))
		assert.False(t, p.Has("text/html"))
		assert.Equal(t, []byte("hello"), p.Get("text/plain"))
		assert.Nil(t, p.Get("text/html"))
	})

	t.Run("token entries carry no content", func(t *testing.T) {
		tok := dnd.NewToken()
		p := types.Payload{tok: nil}

		assert.True(t, p.Has(tok))
		assert.Nil(t, p.Get(tok))
		assert.Equal(t, []string{tok}, p.Names())
	})
}
