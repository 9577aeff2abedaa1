package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// cheap keeps the tests fast; production hashes use DefaultParams.
var cheap = Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}

func TestRandBytes_LengthAndUniqueness(t *testing.T) {
	t.Parallel()

	const n = 64
	a, err := RandBytes(n)
	if err != nil {
		t.Fatalf("RandBytes: %v", err)
	}
	if len(a) != n {
		t.Fatalf("len=%d, want=%d", len(a), n)
	}
	b, _ := RandBytes(n)
	if bytes.Equal(a, b) {
		t.Fatalf("two RandBytes(%d) calls are equal", n)
	}
}

func TestHashPassword_Format(t *testing.T) {
	t.Parallel()

	h, err := HashPasswordWithParams("pw1", cheap)
	if err != nil {
		t.Fatalf("HashPasswordWithParams: %v", err)
	}
	if !strings.HasPrefix(h, "$argon2id$v=19$m=8192,t=1,p=1$") {
		t.Fatalf("unexpected encoding %q", h)
	}
	h2, _ := HashPasswordWithParams("pw1", cheap)
	if h == h2 {
		t.Fatalf("salts must differ between hashes")
	}
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	h, err := HashPasswordWithParams("correct horse battery staple", cheap)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	ok, err := VerifyPassword("correct horse battery staple", h)
	if err != nil || !ok {
		t.Fatalf("VerifyPassword: ok=%v err=%v", ok, err)
	}
	ok, err = VerifyPassword("wrong", h)
	if err != nil || ok {
		t.Fatalf("wrong password: ok=%v err=%v", ok, err)
	}
	ok, _ = VerifyPassword("", h)
	if ok {
		t.Fatalf("empty password accepted")
	}
}

func TestVerifyPassword_Malformed(t *testing.T) {
	t.Parallel()

	for _, h := range []string{
		"",
		"plain",
		"$argon2i$v=19$m=8,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=8,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=0,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=8,t=1,p=1$!!$aGFzaA",
		"$argon2id$v=19$m=8,t=1,p=1$c2FsdA$",
	} {
		if _, err := VerifyPassword("x", h); !errors.Is(err, ErrMalformedHash) {
			t.Fatalf("%q: want ErrMalformedHash, got %v", h, err)
		}
	}
}
