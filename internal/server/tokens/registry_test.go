package tokens

import (
	"encoding/hex"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, tokenBytes int) *Registry {
	t.Helper()
	r, err := NewRegistry(tokenBytes)
	require.NoError(t, err)
	return r
}

func TestIssue_ResolvesToUser(t *testing.T) {
	r := newTestRegistry(t, MinTokenBytes)

	tok, err := r.Issue(7)
	require.NoError(t, err)
	assert.Len(t, tok, 32)
	_, err = hex.DecodeString(tok)
	require.NoError(t, err)

	id, ok := r.Resolve(tok)
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
}

func TestNewRegistry_DefaultsTokenBytes(t *testing.T) {
	r := newTestRegistry(t, 0)

	tok, err := r.Issue(1)
	require.NoError(t, err)
	assert.Len(t, tok, DefaultTokenBytes*2)
}

func TestNewRegistry_RejectsShortTokens(t *testing.T) {
	for _, n := range []int{-1, 1, 8, MinTokenBytes - 1} {
		r, err := NewRegistry(n)
		assert.ErrorIs(t, err, ErrTokenTooShort, "size %d", n)
		assert.Nil(t, r)
	}
}

func TestIssue_SupersedesPreviousToken(t *testing.T) {
	r := newTestRegistry(t, DefaultTokenBytes)

	first, err := r.Issue(1)
	require.NoError(t, err)
	second, err := r.Issue(1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	_, ok := r.Resolve(first)
	assert.False(t, ok, "superseded token must not resolve")

	id, ok := r.Resolve(second)
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)
}

func TestIssue_UsersAreIndependent(t *testing.T) {
	r := newTestRegistry(t, DefaultTokenBytes)

	a, err := r.Issue(1)
	require.NoError(t, err)
	b, err := r.Issue(2)
	require.NoError(t, err)

	_, err = r.Issue(2)
	require.NoError(t, err)

	id, ok := r.Resolve(a)
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)

	_, ok = r.Resolve(b)
	assert.False(t, ok)
}

func TestResolve_Unknown(t *testing.T) {
	r := newTestRegistry(t, DefaultTokenBytes)

	_, ok := r.Resolve("")
	assert.False(t, ok)
	_, ok = r.Resolve("deadbeef")
	assert.False(t, ok)
}

func TestIssue_RandError(t *testing.T) {
	orig := randHex
	randHex = func(int) (string, error) { return "", errors.New("no entropy") }
	defer func() { randHex = orig }()

	r := newTestRegistry(t, DefaultTokenBytes)
	_, err := r.Issue(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entropy")
}

func TestIssue_RetriesOnCollision(t *testing.T) {
	orig := randHex
	seq := []string{"aa", "aa", "bb"}
	randHex = func(int) (string, error) {
		s := seq[0]
		seq = seq[1:]
		return s, nil
	}
	defer func() { randHex = orig }()

	r := newTestRegistry(t, MinTokenBytes)
	a, err := r.Issue(1)
	require.NoError(t, err)
	b, err := r.Issue(2)
	require.NoError(t, err)

	assert.Equal(t, "aa", a)
	assert.Equal(t, "bb", b)
}

func TestIssue_GivesUpWhenEveryDrawCollides(t *testing.T) {
	orig := randHex
	calls := 0
	randHex = func(int) (string, error) {
		calls++
		return "aa", nil
	}
	defer func() { randHex = orig }()

	r := newTestRegistry(t, MinTokenBytes)
	_, err := r.Issue(1)
	require.NoError(t, err)
	calls = 0

	done := make(chan error, 1)
	go func() {
		_, err := r.Issue(2)
		done <- err
	}()

	select {
	case err := <-done:
		require.ErrorIs(t, err, ErrNoFreeToken)
	case <-time.After(3 * time.Second):
		t.Fatal("Issue did not return")
	}
	assert.Equal(t, maxIssueAttempts, calls)

	// the lock is released and the first user's token is intact
	id, ok := r.Resolve("aa")
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)
	_, ok = r.Resolve("")
	assert.False(t, ok)
}

func TestRegistry_Concurrent(t *testing.T) {
	r := newTestRegistry(t, DefaultTokenBytes)

	const users = 50
	var wg sync.WaitGroup
	last := make([]string, users)

	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				tok, err := r.Issue(int64(id))
				if err != nil {
					t.Error(err)
					return
				}
				if got, ok := r.Resolve(tok); ok && got != int64(id) {
					t.Errorf("token of %d resolved to %d", id, got)
				}
				last[id] = tok
			}
		}(i)
	}
	wg.Wait()

	for id, tok := range last {
		got, ok := r.Resolve(tok)
		assert.True(t, ok)
		assert.Equal(t, int64(id), got)
	}
}
