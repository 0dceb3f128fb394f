package token

import (
	"testing"
	"time"
)

func testConfig(accessExpiry time.Duration) Config {
	return Config{
		Secret:             "test-secret",
		Issuer:             "attendance-tests",
		Audience:           "attendance-clients",
		AccessTokenExpiry:  accessExpiry,
		RefreshTokenExpiry: 24 * time.Hour,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewService(testConfig(time.Minute))

	signed, err := svc.GenerateAccessToken(7, "ada@example.com", "Ada Lovelace", "Teacher", "")
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	claims, err := svc.ValidateAccessToken(signed)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}

	if claims.UserID != 7 || claims.Email != "ada@example.com" || claims.Role != "Teacher" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.RegistrationNumber != "" {
		t.Fatalf("expected empty registration number, got %q", claims.RegistrationNumber)
	}
}

func TestAccessTokenCarriesRegistrationNumber(t *testing.T) {
	svc := NewService(testConfig(time.Minute))

	signed, err := svc.GenerateAccessToken(5, "s@example.com", "Sam Student", "Student", "REG-001")
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	claims, err := svc.ValidateAccessToken(signed)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if claims.RegistrationNumber != "REG-001" {
		t.Fatalf("registration number = %q, want REG-001", claims.RegistrationNumber)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewService(testConfig(-time.Minute))

	signed, err := svc.GenerateAccessToken(1, "a@example.com", "A B", "Admin", "")
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	if _, err := svc.ValidateAccessToken(signed); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	svc := NewService(testConfig(time.Minute))
	other := NewService(Config{
		Secret:             "other-secret",
		Issuer:             "attendance-tests",
		Audience:           "attendance-clients",
		AccessTokenExpiry:  time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
	})

	signed, err := svc.GenerateAccessToken(1, "a@example.com", "A B", "Admin", "")
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	if _, err := other.ValidateAccessToken(signed); err == nil {
		t.Fatal("expected token signed with a different secret to be rejected")
	}
}

func TestValidateRejectsWrongIssuerOrAudience(t *testing.T) {
	svc := NewService(testConfig(time.Minute))

	signed, err := svc.GenerateAccessToken(1, "a@example.com", "A B", "Admin", "")
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	wrongIssuer := NewService(Config{
		Secret:            "test-secret",
		Issuer:            "someone-else",
		Audience:          "attendance-clients",
		AccessTokenExpiry: time.Minute,
	})
	if _, err := wrongIssuer.ValidateAccessToken(signed); err == nil {
		t.Fatal("expected wrong issuer to be rejected")
	}

	wrongAudience := NewService(Config{
		Secret:            "test-secret",
		Issuer:            "attendance-tests",
		Audience:          "other-clients",
		AccessTokenExpiry: time.Minute,
	})
	if _, err := wrongAudience.ValidateAccessToken(signed); err == nil {
		t.Fatal("expected wrong audience to be rejected")
	}
}

func TestExtractUserIDIgnoringExpiry(t *testing.T) {
	svc := NewService(testConfig(-time.Minute))

	signed, err := svc.GenerateAccessToken(42, "a@example.com", "A B", "Student", "REG-042")
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	// Regular validation refuses the expired token
	if _, err := svc.ValidateAccessToken(signed); err == nil {
		t.Fatal("expected expired token to fail normal validation")
	}

	// The expiry-ignoring path still identifies the subject
	userID, ok := svc.ExtractUserIDIgnoringExpiry(signed)
	if !ok {
		t.Fatal("expected subject extraction to succeed on expired token")
	}
	if userID != 42 {
		t.Fatalf("userID = %d, want 42", userID)
	}

	// But a tampered token yields nothing
	if _, ok := svc.ExtractUserIDIgnoringExpiry(signed + "x"); ok {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestGenerateRefreshTokenIsOpaqueAndUnique(t *testing.T) {
	svc := NewService(testConfig(time.Minute))

	first, err := svc.GenerateRefreshToken()
	if err != nil {
		t.Fatalf("refresh token error: %v", err)
	}
	second, err := svc.GenerateRefreshToken()
	if err != nil {
		t.Fatalf("refresh token error: %v", err)
	}

	if first == second {
		t.Fatal("expected distinct refresh tokens")
	}
	// 64 random bytes base64-encoded
	if len(first) < 64 {
		t.Fatalf("refresh token too short: %d chars", len(first))
	}
}

func TestHashRefreshTokenIsStable(t *testing.T) {
	if HashRefreshToken("abc") != HashRefreshToken("abc") {
		t.Fatal("hash should be deterministic")
	}
	if HashRefreshToken("abc") == HashRefreshToken("abd") {
		t.Fatal("distinct tokens should hash differently")
	}
	if len(HashRefreshToken("abc")) != 64 {
		t.Fatalf("unexpected hash length %d", len(HashRefreshToken("abc")))
	}
}
