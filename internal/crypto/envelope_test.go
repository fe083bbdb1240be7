package crypto

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestWrapSecret_RoundTrip(t *testing.T) {
	plaintext := []byte("the quick brown fox")

	blob, err := wrapSecret(plaintext, "correcthorse")
	if err != nil {
		t.Fatalf("wrapSecret error: %v", err)
	}

	if !strings.HasPrefix(blob, EncPrefix) {
		t.Fatalf("blob = %q, want %q prefix", blob, EncPrefix)
	}

	got, err := unwrapSecret(blob, "correcthorse")
	if err != nil {
		t.Fatalf("unwrapSecret error: %v", err)
	}
	if string(got) != string(plaintext) {
		t.Fatalf("round-trip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestWrapSecret_WrongSecretFailsClosed(t *testing.T) {
	blob, err := wrapSecret([]byte("master key material"), "secret-one")
	if err != nil {
		t.Fatalf("wrapSecret error: %v", err)
	}

	_, err = unwrapSecret(blob, "secret-two")
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("unwrapSecret error = %v, want ErrDecryptionFailed", err)
	}
}

func TestWrapSecret_FreshSaltAndNonceEachCall(t *testing.T) {
	b1, err := wrapSecret([]byte("same input"), "same secret")
	if err != nil {
		t.Fatalf("wrapSecret error: %v", err)
	}
	b2, err := wrapSecret([]byte("same input"), "same secret")
	if err != nil {
		t.Fatalf("wrapSecret error: %v", err)
	}

	if b1 == b2 {
		t.Fatalf("expected two envelopes for the same inputs to differ")
	}

	s1, iv1, _, _, err := decodeEnvelope(b1)
	if err != nil {
		t.Fatalf("decodeEnvelope error: %v", err)
	}
	s2, iv2, _, _, err := decodeEnvelope(b2)
	if err != nil {
		t.Fatalf("decodeEnvelope error: %v", err)
	}

	if string(s1) == string(s2) {
		t.Fatalf("expected different salts for two wraps")
	}
	if string(iv1) == string(iv2) {
		t.Fatalf("expected different nonces for two wraps")
	}
}

func TestDecodeEnvelope_Layout(t *testing.T) {
	blob, err := wrapSecret([]byte("payload"), "pw")
	if err != nil {
		t.Fatalf("wrapSecret error: %v", err)
	}

	salt, iv, tag, ct, err := decodeEnvelope(blob)
	if err != nil {
		t.Fatalf("decodeEnvelope error: %v", err)
	}

	if len(salt) != SaltLength {
		t.Fatalf("salt length = %d, want %d", len(salt), SaltLength)
	}
	if len(iv) != IVLength {
		t.Fatalf("iv length = %d, want %d", len(iv), IVLength)
	}
	if len(tag) != AuthTagLength {
		t.Fatalf("tag length = %d, want %d", len(tag), AuthTagLength)
	}
	if len(ct) != len("payload") {
		t.Fatalf("ciphertext length = %d, want %d", len(ct), len("payload"))
	}
}

func TestUnwrapSecret_InvalidFormat(t *testing.T) {
	cases := []struct {
		name string
		blob string
	}{
		{"no prefix", "just a plain string"},
		{"bad base64", EncPrefix + "%%%not-base64%%%"},
		{"too short", EncPrefix + base64.StdEncoding.EncodeToString([]byte("short"))},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := unwrapSecret(tc.blob, "whatever")
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("unwrapSecret(%q) error = %v, want ErrInvalidFormat", tc.blob, err)
			}
		})
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")

	k1 := DeriveKey("password", salt)
	k2 := DeriveKey("password", salt)
	if string(k1) != string(k2) {
		t.Fatalf("expected identical keys for same (secret, salt)")
	}
	if len(k1) != KeyLength {
		t.Fatalf("key length = %d, want %d", len(k1), KeyLength)
	}

	k3 := DeriveKey("password", []byte("fedcba9876543210"))
	if string(k1) == string(k3) {
		t.Fatalf("expected different keys for different salts")
	}
}
