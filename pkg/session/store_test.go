package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-search-be/pkg/keyword"
	"recipe-search-be/pkg/store"
)

func TestMemoryStorePutGet(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	_, found, err := ms.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	sess := store.NewSession("abc")
	sess.Append(store.Interaction{
		Prompt:          "easy dinner",
		Recommendations: []store.RecipeSummary{{RecipeID: 1, Name: "Kimchi stew", Score: 0.9}},
		CreatedAt:       time.Now(),
	})
	require.NoError(t, ms.Put(ctx, "abc", sess))

	got, found, err := ms.Get(ctx, "abc")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "abc", got.SessionID)
	assert.Equal(t, "easy dinner", got.LastPrompt)
	require.Len(t, got.History, 1)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStoreWithTTL(50 * time.Millisecond)

	require.NoError(t, ms.Put(ctx, "short", store.NewSession("short")))

	_, found, err := ms.Get(ctx, "short")
	require.NoError(t, err)
	assert.True(t, found, "entry must be retrievable right after the write")

	time.Sleep(80 * time.Millisecond)

	_, found, err = ms.Get(ctx, "short")
	require.NoError(t, err)
	assert.False(t, found, "entry must expire after the TTL window")
}

func TestMemoryStorePutRefreshesTTL(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStoreWithTTL(100 * time.Millisecond)

	sess := store.NewSession("sliding")
	require.NoError(t, ms.Put(ctx, "sliding", sess))

	// Rewrite before expiry; the window restarts.
	time.Sleep(60 * time.Millisecond)
	require.NoError(t, ms.Put(ctx, "sliding", sess))
	time.Sleep(60 * time.Millisecond)

	_, found, err := ms.Get(ctx, "sliding")
	require.NoError(t, err)
	assert.True(t, found, "write must restart the expiration window")
}

func TestDecodeSession(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		sess := store.NewSession("ok")
		sess.Append(store.Interaction{
			Prompt: "spicy noodles",
			MatchedKeywords: keyword.Classified{
				Include: []keyword.Tag{{Name: "spicy", Field: "extra_keywords", State: "include"}},
				Exclude: []keyword.Tag{},
			},
			Recommendations: []store.RecipeSummary{},
			CreatedAt:       time.Now(),
		})
		raw, err := json.Marshal(sess)
		require.NoError(t, err)

		got, ok := decodeSession(raw)
		require.True(t, ok)
		assert.Equal(t, "ok", got.SessionID)
		require.Len(t, got.History, 1)
		assert.Equal(t, "spicy noodles", got.History[0].Prompt)
	})

	t.Run("malformed payload is a miss", func(t *testing.T) {
		_, ok := decodeSession([]byte("{not json"))
		assert.False(t, ok)
	})

	t.Run("nil history is normalized", func(t *testing.T) {
		got, ok := decodeSession([]byte(`{"sessionId":"x"}`))
		require.True(t, ok)
		assert.NotNil(t, got.History)
		assert.Empty(t, got.History)
	})
}
