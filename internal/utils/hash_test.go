// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestInitHasherPoolAndHash(t *testing.T) {
	key := "secret-key"
	InitHasherPool(key)

	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// verify against direct HMAC computation
	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	expected := h.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

const testHashKey = "test-index-key"

// TestHash_IndexKeyShape exercises the vault equality-index usage: the
// digest of "category\x00normalized value" must be stable and keyed.
func TestHash_IndexKeyShape(t *testing.T) {
	InitHasherPool(testHashKey)

	indexInput := []byte("bsn\x00111222333")

	got := hex.EncodeToString(Hash(indexInput))

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(indexInput)
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("Hash mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestHash_DifferentInputs(t *testing.T) {
	InitHasherPool(testHashKey)

	hash1 := hex.EncodeToString(Hash([]byte("bsn\x00111222333")))
	hash2 := hex.EncodeToString(Hash([]byte("bsn\x00123456782")))

	if hash1 == hash2 {
		t.Error("different values must produce different index digests")
	}
}

func TestHash_DifferentKeys(t *testing.T) {
	data := []byte("phone\x000612345678")

	InitHasherPool("key-one")
	hash1 := hex.EncodeToString(Hash(data))

	InitHasherPool("key-two")
	hash2 := hex.EncodeToString(Hash(data))

	if hash1 == hash2 {
		t.Error("different keys must produce different digests for the same input")
	}
}

func TestHashString_MatchesDirectHMAC(t *testing.T) {
	got := HashString("jan jansen", "household-key")

	mac := hmac.New(sha256.New, []byte("household-key"))
	mac.Write([]byte("jan jansen"))
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("HashString mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestHashString_Deterministic(t *testing.T) {
	h1 := HashString("value", "key")
	h2 := HashString("value", "key")

	if h1 != h2 {
		t.Errorf("same input must produce same hash:\n  h1: %s\n  h2: %s", h1, h2)
	}
}
