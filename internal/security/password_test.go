// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordFormat(t *testing.T) {
	stored := HashPassword("alice", "pw123")

	digest, salt, found := strings.Cut(stored, ",")
	require.True(t, found)
	assert.Len(t, digest, 64) // hex-encoded SHA256
	assert.Len(t, salt, 5)
	for _, r := range salt {
		assert.True(t, (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'), "salt must be alphabetic, got %q", salt)
	}
}

func TestHashPasswordSaltVaries(t *testing.T) {
	// Fresh salts make repeated hashes of the same credentials disagree.
	// 5 alphabetic chars give 52^5 combinations; ten draws colliding would
	// point at a broken salt generator.
	seen := map[string]bool{}
	for range 10 {
		seen[HashPassword("alice", "pw123")] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestVerifyPassword(t *testing.T) {
	t.Run("round trip succeeds", func(t *testing.T) {
		for _, tc := range []struct{ username, password, salt string }{
			{"alice", "pw123", "abcde"},
			{"bob", "hunter2", "ZZZZZ"},
			{"carol_1", "p@ss word", "QwErT"},
		} {
			stored := hashPasswordWithSalt(tc.username, tc.password, tc.salt)
			assert.True(t, VerifyPassword(tc.username, tc.password, stored))
		}
	})

	t.Run("wrong username fails", func(t *testing.T) {
		stored := hashPasswordWithSalt("alice", "pw123", "abcde")
		assert.False(t, VerifyPassword("bob", "pw123", stored))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		stored := hashPasswordWithSalt("alice", "pw123", "abcde")
		assert.False(t, VerifyPassword("alice", "pw124", stored))
	})

	t.Run("altered salt fails", func(t *testing.T) {
		stored := hashPasswordWithSalt("alice", "pw123", "abcde")
		tampered := strings.TrimSuffix(stored, "abcde") + "abcdf"
		assert.False(t, VerifyPassword("alice", "pw123", tampered))
	})

	t.Run("stored value without salt fails", func(t *testing.T) {
		assert.False(t, VerifyPassword("alice", "pw123", "deadbeef"))
	})

	t.Run("empty stored value fails", func(t *testing.T) {
		assert.False(t, VerifyPassword("alice", "pw123", ""))
	})
}
