package token

import (
	"encoding/hex"
	"testing"
)

func TestGeneratePlain(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		plain, err := GeneratePlain()
		if err != nil {
			t.Fatalf("GeneratePlain() error = %v", err)
		}
		if plain == "" {
			t.Fatal("GeneratePlain() returned empty token")
		}
		if seen[plain] {
			t.Fatal("GeneratePlain() returned a duplicate token")
		}
		seen[plain] = true
	}
}

func TestHasher_Hash(t *testing.T) {
	h := NewHasher("test-secret")

	hash := h.Hash("some-token")
	if hash == "some-token" {
		t.Fatal("Hash() must not return the plaintext")
	}
	if _, err := hex.DecodeString(hash); err != nil {
		t.Errorf("Hash() = %q, want hex encoding", hash)
	}
	if len(hash) != 64 {
		t.Errorf("Hash() length = %d, want 64 hex chars for SHA-256", len(hash))
	}

	// Deterministic for the same key and input.
	if h.Hash("some-token") != hash {
		t.Error("Hash() should be deterministic")
	}

	// A different key produces a different hash.
	other := NewHasher("other-secret")
	if other.Hash("some-token") == hash {
		t.Error("different keys should produce different hashes")
	}
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher("test-secret")

	plain, err := GeneratePlain()
	if err != nil {
		t.Fatalf("GeneratePlain() error = %v", err)
	}
	stored := h.Hash(plain)

	if !h.Verify(plain, stored) {
		t.Error("Verify() = false for matching token")
	}
	if h.Verify("wrong-token", stored) {
		t.Error("Verify() = true for wrong token")
	}
	if h.Verify(plain, "deadbeef") {
		t.Error("Verify() = true for wrong stored hash")
	}
}
