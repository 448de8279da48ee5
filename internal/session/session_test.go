package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate session id")
		seen[id] = true
	}
}

func TestSetCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	expires := time.Now().Add(time.Hour)

	SetCookie(rec, "abc123", expires, CookieOptions{Secure: true})

	res := rec.Result()
	cookies := res.Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Equal(t, CookieName, c.Name)
	assert.Equal(t, "abc123", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
}

func TestClearCookie(t *testing.T) {
	rec := httptest.NewRecorder()

	ClearCookie(rec, CookieOptions{Secure: true})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Equal(t, CookieName, c.Name)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
}

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := Session{
		SessionID: "sid-1",
		UserID:    "uid-1",
		FirstName: "Jean",
		LastName:  "Uwimana",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "uid-1", got.UserID)
	assert.Equal(t, "Jean", got.FirstName)

	require.NoError(t, store.Delete(ctx, "sid-1"))

	got, err = store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
