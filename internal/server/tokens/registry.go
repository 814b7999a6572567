// Package tokens keeps the in-memory session registry: at most one live token
// per user, each token resolving to exactly one user.
package tokens

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/idkeeper/internal/common"
)

const (
	// DefaultTokenBytes is the entropy of a token; its hex form is twice as long.
	DefaultTokenBytes = 32
	// MinTokenBytes keeps tokens at 128 bits or more.
	MinTokenBytes = 16

	maxIssueAttempts = 8
)

var (
	ErrTokenTooShort = errors.New("token size too small")
	ErrNoFreeToken   = errors.New("no unused token found")
)

// randHex is a seam for tests.
var randHex = common.MakeRandHexString

type Registry struct {
	mu         sync.RWMutex
	byUser     map[int64]string
	byToken    map[string]int64
	tokenBytes int
}

// NewRegistry builds an empty registry. Zero selects DefaultTokenBytes;
// anything below MinTokenBytes is rejected.
func NewRegistry(tokenBytes int) (*Registry, error) {
	if tokenBytes == 0 {
		tokenBytes = DefaultTokenBytes
	}
	if tokenBytes < MinTokenBytes {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTokenTooShort, tokenBytes, MinTokenBytes)
	}
	return &Registry{
		byUser:     make(map[int64]string),
		byToken:    make(map[string]int64),
		tokenBytes: tokenBytes,
	}, nil
}

// Issue mints a fresh token for userID. A previous token of the same user
// stops resolving.
func (r *Registry) Issue(userID int64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var token string
	for i := 0; i < maxIssueAttempts && token == ""; i++ {
		t, err := randHex(r.tokenBytes)
		if err != nil {
			return "", fmt.Errorf("token: %w", err)
		}
		if _, taken := r.byToken[t]; !taken {
			token = t
		}
	}
	if token == "" {
		return "", fmt.Errorf("token: %w after %d attempts", ErrNoFreeToken, maxIssueAttempts)
	}

	if old, ok := r.byUser[userID]; ok {
		delete(r.byToken, old)
	}
	r.byUser[userID] = token
	r.byToken[token] = userID

	return token, nil
}

// Resolve returns the user the token was issued to.
func (r *Registry) Resolve(token string) (int64, bool) {
	if token == "" {
		return 0, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byToken[token]
	return id, ok
}
