package auth

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("secret", "admin", true, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT("secret", token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("Username = %q, want admin", claims.Username)
	}
	if !claims.IsAdmin {
		t.Error("IsAdmin should survive the round trip")
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, _ := GenerateJWT("secret", "admin", true, time.Hour)
	if _, err := ParseJWT("other-secret", token); err == nil {
		t.Error("token signed with a different secret should not parse")
	}
}

func TestJWTExpired(t *testing.T) {
	token, _ := GenerateJWT("secret", "admin", true, time.Nanosecond)
	time.Sleep(10 * time.Millisecond)
	if _, err := ParseJWT("secret", token); err == nil {
		t.Error("expired token should not parse")
	}
}

func TestJWTGarbage(t *testing.T) {
	if _, err := ParseJWT("secret", "not.a.token"); err == nil {
		t.Error("garbage token should not parse")
	}
}
