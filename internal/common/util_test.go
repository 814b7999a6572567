package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- MakeRandHexString ----------

func TestMakeRandHexString_LengthAndHex(t *testing.T) {
	const n = 16
	s, err := MakeRandHexString(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != n*2 {
		t.Fatalf("expected hex length %d, got %d", n*2, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		t.Fatalf("string is not valid hex: %v", err)
	}
}

func TestMakeRandHexString_ZeroSize(t *testing.T) {
	s, err := MakeRandHexString(0)
	if err != nil {
		t.Fatalf("unexpected error for size=0: %v", err)
	}
	if s != "" {
		t.Fatalf("expected empty string for size=0, got %q", s)
	}
}

func TestMakeRandHexString_Distinct(t *testing.T) {
	a, err := MakeRandHexString(32)
	require.NoError(t, err)
	b, err := MakeRandHexString(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

// ---------- FieldError ----------

func TestFieldError_KindsAndField(t *testing.T) {
	err := fmt.Errorf("register: %w", NewConflictError(FieldUsername))

	assert.True(t, errors.Is(err, ErrorConflict))
	assert.False(t, errors.Is(err, ErrorValidation))
	assert.Equal(t, FieldUsername, FieldOf(err))
	assert.Equal(t, "register: username: already exists", err.Error())

	verr := NewValidationError(FieldEmail)
	assert.True(t, errors.Is(verr, ErrorValidation))
	assert.Equal(t, FieldEmail, FieldOf(verr))
}

func TestFieldOf_NoField(t *testing.T) {
	assert.Equal(t, "", FieldOf(ErrorNotFound))
	assert.Equal(t, "", FieldOf(nil))
}
