package clientcrypto

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"testing"
)

func TestRand_LengthUniq(t *testing.T) {
	t.Parallel()
	const n = 48
	a, err := Rand(n)
	if err != nil {
		t.Fatalf("Rand: %v", err)
	}
	if len(a) != n {
		t.Fatalf("len=%d, want=%d", len(a), n)
	}
	b, _ := Rand(n)
	if bytes.Equal(a, b) {
		t.Fatalf("Rand produced equal slices")
	}
}

func TestDeriveKEK_DeterministicAndSaltDependent(t *testing.T) {
	t.Parallel()
	pw := []byte("secret-pass")
	k1 := DeriveKEK(pw, []byte("salt-1"))
	k2 := DeriveKEK(pw, []byte("salt-1"))
	if subtle.ConstantTimeCompare(k1, k2) != 1 {
		t.Fatalf("DeriveKEK not deterministic")
	}
	if subtle.ConstantTimeCompare(k1, DeriveKEK(pw, []byte("salt-2"))) != 0 {
		t.Fatalf("DeriveKEK must change with salt")
	}
}

func TestSealOpen_Roundtrip(t *testing.T) {
	t.Parallel()
	pass := []byte("hunter2")
	aad := []byte("localhost:8443")
	pt := []byte(`{"alice":"eyJhbGciOi..."}`)

	sealed, err := Seal(pass, pt, aad)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if !IsSealed(sealed) || bytes.Contains(sealed, pt) {
		t.Fatalf("sealed output leaks plaintext or lacks header")
	}
	got, err := Open(pass, sealed, aad)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(got, pt) {
		t.Fatalf("roundtrip mismatch")
	}

	again, _ := Seal(pass, pt, aad)
	if bytes.Equal(sealed, again) {
		t.Fatalf("two seals of the same input must differ")
	}
}

func TestOpen_Rejects(t *testing.T) {
	t.Parallel()
	pass := []byte("pw")
	aad := []byte("addr")
	sealed, err := Seal(pass, []byte("payload"), aad)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	if _, err := Open([]byte("other"), sealed, aad); !errors.Is(err, ErrSealed) {
		t.Fatalf("wrong passphrase: %v", err)
	}
	if _, err := Open(pass, sealed, []byte("other-addr")); !errors.Is(err, ErrSealed) {
		t.Fatalf("aad mismatch: %v", err)
	}
	if _, err := Open(pass, sealed[:10], aad); !errors.Is(err, ErrSealed) {
		t.Fatalf("truncated: %v", err)
	}
	tampered := append([]byte(nil), sealed...)
	tampered[len(tampered)-1] ^= 0xff
	if _, err := Open(pass, tampered, aad); !errors.Is(err, ErrSealed) {
		t.Fatalf("tampered: %v", err)
	}
	if IsSealed([]byte(`{"plain":"json"}`)) {
		t.Fatalf("plain JSON detected as sealed")
	}
}
