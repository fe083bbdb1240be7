package crypto

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestUnlockSession_StartsLocked(t *testing.T) {
	s := NewUnlockSession(NewKeyVaultService())

	if s.IsUnlocked() {
		t.Fatalf("new session must start Locked")
	}
}

func TestUnlockSession_UnlockWithEmptyEnvelope(t *testing.T) {
	s := NewUnlockSession(NewKeyVaultService())

	// No envelope means the account never set up encryption; the caller
	// should be steered towards setup, not towards retyping the password.
	if err := s.UnlockWithPassword("", "correcthorse"); !errors.Is(err, ErrNotSetUp) {
		t.Fatalf("unlock without envelope error = %v, want ErrNotSetUp", err)
	}
	if s.IsUnlocked() {
		t.Fatalf("session must stay Locked without an envelope")
	}
}

func TestUnlockSession_LockedFieldOpsPassThrough(t *testing.T) {
	s := NewUnlockSession(NewKeyVaultService())

	// Encrypting while Locked must not silently produce ciphertext.
	enc, err := s.EncryptField("my note")
	if err != nil {
		t.Fatalf("EncryptField error: %v", err)
	}
	if enc != "my note" {
		t.Fatalf("locked EncryptField = %q, want unchanged input", enc)
	}

	// Decrypting ciphertext while Locked returns it unchanged rather than
	// failing, so legacy/locked views can still render.
	dec, err := s.DecryptField("ENC:abcdef")
	if err != nil {
		t.Fatalf("DecryptField error: %v", err)
	}
	if dec != "ENC:abcdef" {
		t.Fatalf("locked DecryptField = %q, want unchanged input", dec)
	}
}

func TestUnlockSession_UnlockWithPassword(t *testing.T) {
	vault := NewKeyVaultService()
	s := NewUnlockSession(vault)

	masterKey, _ := vault.GenerateMasterKey()
	envelope, err := vault.WrapWithPassword(masterKey, "correcthorse")
	if err != nil {
		t.Fatalf("WrapWithPassword error: %v", err)
	}

	if err := s.UnlockWithPassword(envelope, "wrongpassword"); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("unlock with wrong password error = %v, want ErrDecryptionFailed", err)
	}
	if s.IsUnlocked() {
		t.Fatalf("failed unlock must leave the session Locked")
	}

	if err := s.UnlockWithPassword(envelope, "correcthorse"); err != nil {
		t.Fatalf("UnlockWithPassword error: %v", err)
	}
	if !s.IsUnlocked() {
		t.Fatalf("session must be Unlocked after a successful unlock")
	}

	blob, err := s.EncryptField("My secret note")
	if err != nil {
		t.Fatalf("EncryptField error: %v", err)
	}
	if !strings.HasPrefix(blob, EncPrefix) {
		t.Fatalf("unlocked EncryptField output = %q, want %q prefix", blob, EncPrefix)
	}

	plain, err := s.DecryptField(blob)
	if err != nil {
		t.Fatalf("DecryptField error: %v", err)
	}
	if plain != "My secret note" {
		t.Fatalf("plaintext = %q, want %q", plain, "My secret note")
	}
}

func TestUnlockSession_SetMasterKeyDirectly(t *testing.T) {
	vault := NewKeyVaultService()
	s := NewUnlockSession(vault)

	masterKey, _ := vault.GenerateMasterKey()
	s.SetMasterKey(masterKey)

	if !s.IsUnlocked() {
		t.Fatalf("session must be Unlocked after SetMasterKey")
	}

	blob, err := s.EncryptField("fresh after setup")
	if err != nil {
		t.Fatalf("EncryptField error: %v", err)
	}
	plain, err := s.DecryptField(blob)
	if err != nil {
		t.Fatalf("DecryptField error: %v", err)
	}
	if plain != "fresh after setup" {
		t.Fatalf("plaintext = %q, want %q", plain, "fresh after setup")
	}
}

func TestUnlockSession_LockScrubsKey(t *testing.T) {
	vault := NewKeyVaultService()
	s := NewUnlockSession(vault)

	masterKey, _ := vault.GenerateMasterKey()
	s.SetMasterKey(masterKey)

	blob, err := s.EncryptField("note")
	if err != nil {
		t.Fatalf("EncryptField error: %v", err)
	}

	s.Lock()
	if s.IsUnlocked() {
		t.Fatalf("session must be Locked after Lock")
	}

	// Back to pass-through: the ciphertext comes back untouched.
	got, err := s.DecryptField(blob)
	if err != nil {
		t.Fatalf("DecryptField error: %v", err)
	}
	if got != blob {
		t.Fatalf("locked DecryptField = %q, want unchanged blob", got)
	}
}

func TestUnlockSession_DecryptFailureReturnsStoredValue(t *testing.T) {
	vault := NewKeyVaultService()
	s := NewUnlockSession(vault)

	otherKey, _ := vault.GenerateMasterKey()
	blob, err := vault.EncryptField("not ours", otherKey)
	if err != nil {
		t.Fatalf("EncryptField error: %v", err)
	}

	myKey, _ := vault.GenerateMasterKey()
	s.SetMasterKey(myKey)

	got, err := s.DecryptField(blob)
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("DecryptField error = %v, want ErrDecryptionFailed", err)
	}
	// The stored value is preserved so the caller can flag it instead of
	// rendering empty content.
	if got != blob {
		t.Fatalf("DecryptField on failure = %q, want original blob", got)
	}
}

func TestUnlockSession_ConcurrentFieldOps(t *testing.T) {
	vault := NewKeyVaultService()
	s := NewUnlockSession(vault)

	masterKey, _ := vault.GenerateMasterKey()
	s.SetMasterKey(masterKey)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			blob, err := s.EncryptField("parallel note")
			if err != nil {
				t.Errorf("EncryptField error: %v", err)
				return
			}
			plain, err := s.DecryptField(blob)
			if err != nil {
				t.Errorf("DecryptField error: %v", err)
				return
			}
			if plain != "parallel note" {
				t.Errorf("plaintext = %q, want %q", plain, "parallel note")
			}
		}()
	}
	wg.Wait()
}
