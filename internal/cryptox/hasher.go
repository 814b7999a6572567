// Package cryptox contains the one-way password digests used by the
// credential service. Both hashers are deterministic and produce 64 lowercase
// hex characters, so a digest fits the users.pwd_hash column and the same
// password always maps to the same value.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Hasher names accepted by NewHasher.
const (
	HasherSHA256   = "sha256"
	HasherArgon2id = "argon2id"
)

// DigestHexLen is the length of every digest produced here.
const DigestHexLen = 64

const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
)

// Hasher turns a password into its stored digest and checks candidates.
type Hasher interface {
	Hash(password string) string
	Verify(password, digest string) bool
}

// SHA256Hasher hashes the UTF-8 bytes of the password with SHA-256. It is
// compatible with rows written by earlier deployments.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (h SHA256Hasher) Verify(password, digest string) bool {
	return equalDigest(h.Hash(password), digest)
}

// Argon2idHasher derives the digest with argon2id keyed by a server-wide
// pepper used as the salt. The pepper must stay constant for stored digests
// to verify.
type Argon2idHasher struct {
	pepper []byte
}

func NewArgon2idHasher(pepper []byte) *Argon2idHasher {
	return &Argon2idHasher{pepper: pepper}
}

func (h *Argon2idHasher) Hash(password string) string {
	key := argon2.IDKey([]byte(password), h.pepper, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	return hex.EncodeToString(key)
}

func (h *Argon2idHasher) Verify(password, digest string) bool {
	return equalDigest(h.Hash(password), digest)
}

// NewHasher returns the hasher registered under name. argon2id requires a
// pepper of at least 16 bytes.
func NewHasher(name string, pepper string) (Hasher, error) {
	switch name {
	case "", HasherSHA256:
		return SHA256Hasher{}, nil
	case HasherArgon2id:
		if len(pepper) < 16 {
			return nil, fmt.Errorf("argon2id hasher needs a pepper of at least 16 bytes, got %d", len(pepper))
		}
		return NewArgon2idHasher([]byte(pepper)), nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", name)
	}
}

func equalDigest(computed, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(computed), []byte(stored)) == 1
}
