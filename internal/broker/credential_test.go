package broker

import (
	"testing"
	"time"
)

func TestParseCredentialPolicy(t *testing.T) {
	cases := map[string]CredentialPolicy{
		"":          CredentialIssued,
		"issued":    CredentialIssued,
		"optional":  CredentialOptional,
		"renewable": CredentialRenewable,
	}
	for in, want := range cases {
		got, err := ParseCredentialPolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParseCredentialPolicy(%q)=%v,%v want %v", in, got, err, want)
		}
	}
	if _, err := ParseCredentialPolicy("strict"); err == nil {
		t.Fatalf("want error for unknown policy")
	}
}

func TestCredentialPolicy_Accepts(t *testing.T) {
	now := time.Now()
	renew := renewToken(t, []string{"client", "renew"}, now.Add(time.Hour))
	expired := renewToken(t, []string{"client", "renew"}, now.Add(-time.Minute))
	web := renewToken(t, []string{"client", "web"}, now.Add(time.Hour))

	if !CredentialOptional.Accepts("", now) {
		t.Fatalf("optional must accept an empty credential")
	}
	if CredentialIssued.Accepts("", now) || !CredentialIssued.Accepts("opaque", now) {
		t.Fatalf("issued must require any non-empty credential")
	}
	if !CredentialRenewable.Accepts(renew, now) {
		t.Fatalf("renewable must accept a fresh renew token")
	}
	for name, tok := range map[string]string{"expired": expired, "web": web, "opaque": "opaque"} {
		if CredentialRenewable.Accepts(tok, now) {
			t.Fatalf("renewable accepted %s token", name)
		}
	}
}

func TestRefreshTokenSubject(t *testing.T) {
	tok := renewToken(t, []string{"renew"}, time.Now().Add(time.Hour))
	sub, err := RefreshTokenSubject(tok)
	if err != nil || sub != "76561197960287930" {
		t.Fatalf("sub=%q err=%v", sub, err)
	}
	if _, err := RefreshTokenSubject("garbage"); err == nil {
		t.Fatalf("want parse error")
	}
}
