package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// Generating RSA keys is expensive, so tests share one pair.
var (
	testKeyOnce sync.Once
	testKey     *rsa.PrivateKey
)

func testPrivateKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	testKeyOnce.Do(func() {
		var err error
		testKey, err = rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
	})
	return testKey
}

func newService(t *testing.T) *Service {
	t.Helper()
	return NewTestService(testPrivateKey(t), "api.slyouthjobs.org", 24*time.Hour)
}

func seekerClaims() Claims {
	return Claims{
		Subject: "user:seeker1",
		UserID:  "user:seeker1",
		Email:   "fatmata@example.sl",
		Role:    "jobseeker",
	}
}

// ============================================================================
// Sign / Validate Roundtrip Tests
// ============================================================================

func TestSignAndValidate_Roundtrip(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	token, err := svc.Sign(seekerClaims())
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if claims.UserID != "user:seeker1" {
		t.Errorf("expected UserID 'user:seeker1', got %q", claims.UserID)
	}
	if claims.Email != "fatmata@example.sl" {
		t.Errorf("expected email 'fatmata@example.sl', got %q", claims.Email)
	}
	if claims.Role != "jobseeker" {
		t.Errorf("expected role 'jobseeker', got %q", claims.Role)
	}
}

func TestSign_StampsStandardClaims(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	before := time.Now().Unix()
	token, err := svc.Sign(seekerClaims())
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	after := time.Now().Unix()

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if claims.Issuer != "api.slyouthjobs.org" {
		t.Errorf("expected issuer 'api.slyouthjobs.org', got %q", claims.Issuer)
	}
	if claims.IssuedAt < before || claims.IssuedAt > after {
		t.Errorf("IssuedAt %d outside signing window [%d, %d]", claims.IssuedAt, before, after)
	}
	if claims.NotBefore != claims.IssuedAt {
		t.Errorf("expected NotBefore == IssuedAt, got %d and %d", claims.NotBefore, claims.IssuedAt)
	}

	wantExp := claims.IssuedAt + int64(24*time.Hour/time.Second)
	if claims.ExpiresAt != wantExp {
		t.Errorf("expected ExpiresAt %d, got %d", wantExp, claims.ExpiresAt)
	}
}

func TestSign_CallerExpiryPreserved(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	exp := time.Now().Add(time.Hour).Unix()
	c := seekerClaims()
	c.ExpiresAt = exp

	token, err := svc.Sign(c)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.ExpiresAt != exp {
		t.Errorf("expected caller-set expiry %d, got %d", exp, claims.ExpiresAt)
	}
}

func TestSign_NoPrivateKey_ReturnsErrInvalidKey(t *testing.T) {
	t.Parallel()
	svc := &Service{issuer: "api.slyouthjobs.org"}

	if _, err := svc.Sign(seekerClaims()); err != ErrInvalidKey {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

// ============================================================================
// Validate Failure Tests
// ============================================================================

func TestValidate_ExpiredToken(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	c := seekerClaims()
	c.ExpiresAt = time.Now().Add(-time.Minute).Unix()

	token, err := svc.Sign(c)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := svc.Validate(token); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_TamperedPayload(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	token, err := svc.Sign(seekerClaims())
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	parts := strings.Split(token, ".")
	parts[1] = base64URLEncode([]byte(`{"user_id":"user:seeker1","role":"admin"}`))

	if _, err := svc.Validate(strings.Join(parts, ".")); err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature for tampered payload, got %v", err)
	}
}

func TestValidate_SignedByDifferentKey(t *testing.T) {
	t.Parallel()

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	other := NewTestService(otherKey, "api.slyouthjobs.org", time.Hour)

	token, err := other.Sign(seekerClaims())
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := newService(t).Validate(token); err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature for foreign key, got %v", err)
	}
}

func TestValidate_WrongIssuer(t *testing.T) {
	t.Parallel()

	// same key pair, different issuer string
	other := NewTestService(testPrivateKey(t), "some-other-service", time.Hour)
	token, err := other.Sign(seekerClaims())
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := newService(t).Validate(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong issuer, got %v", err)
	}
}

func TestValidate_MalformedTokens(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	tests := []struct {
		name  string
		token string
	}{
		{"Empty", ""},
		{"NotAToken", "not-a-token"},
		{"TwoSegments", "aaaa.bbbb"},
		{"FourSegments", "aaaa.bbbb.cccc.dddd"},
		{"BadSignatureEncoding", "aaaa.bbbb.!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := svc.Validate(tt.token); err == nil {
				t.Error("expected error for malformed token")
			}
		})
	}
}

func TestValidate_NoPublicKey_ReturnsErrInvalidKey(t *testing.T) {
	t.Parallel()
	svc := &Service{issuer: "api.slyouthjobs.org"}

	if _, err := svc.Validate("aaaa.bbbb.cccc"); err != ErrInvalidKey {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

// ============================================================================
// Claims.Valid Tests
// ============================================================================

func TestClaimsValid_WithinWindow(t *testing.T) {
	t.Parallel()
	c := Claims{
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
		NotBefore: time.Now().Add(-time.Minute).Unix(),
	}

	if err := c.Valid(); err != nil {
		t.Errorf("expected valid claims, got %v", err)
	}
}

func TestClaimsValid_Expired(t *testing.T) {
	t.Parallel()
	c := Claims{ExpiresAt: time.Now().Add(-time.Minute).Unix()}

	if err := c.Valid(); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestClaimsValid_NotYetValid(t *testing.T) {
	t.Parallel()
	c := Claims{NotBefore: time.Now().Add(time.Hour).Unix()}

	if err := c.Valid(); err != ErrTokenNotYetValid {
		t.Errorf("expected ErrTokenNotYetValid, got %v", err)
	}
}

func TestClaimsValid_ZeroTimesSkipped(t *testing.T) {
	t.Parallel()
	c := Claims{}

	if err := c.Valid(); err != nil {
		t.Errorf("zero time claims should be skipped, got %v", err)
	}
}

// ============================================================================
// NewService / Key File Tests
// ============================================================================

func TestGenerateKeyPair_WritesLoadablePEMFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")

	if err := GenerateKeyPair(privPath, pubPath); err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	info, err := os.Stat(privPath)
	if err != nil {
		t.Fatalf("private key not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected private key mode 0600, got %o", perm)
	}

	svc, err := NewService(Config{
		PrivateKeyPath: privPath,
		PublicKeyPath:  pubPath,
		Issuer:         "api.slyouthjobs.org",
		ExpirationMins: 1440,
	})
	if err != nil {
		t.Fatalf("NewService failed with generated keys: %v", err)
	}

	token, err := svc.Sign(seekerClaims())
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if _, err := svc.Validate(token); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestNewService_ExpirationMinutes(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")

	if err := GenerateKeyPair(privPath, pubPath); err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	svc, err := NewService(Config{
		PrivateKeyPath: privPath,
		Issuer:         "api.slyouthjobs.org",
		ExpirationMins: 90,
	})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	if got := svc.GetExpiration(); got != 90*time.Minute {
		t.Errorf("expected expiration 90m, got %v", got)
	}
}

func TestNewService_PublicKeyOnly_ValidatesButCannotSign(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")

	if err := GenerateKeyPair(privPath, pubPath); err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	signer, err := NewService(Config{
		PrivateKeyPath: privPath,
		Issuer:         "api.slyouthjobs.org",
		ExpirationMins: 60,
	})
	if err != nil {
		t.Fatalf("NewService (signer) failed: %v", err)
	}

	verifier, err := NewService(Config{
		PublicKeyPath:  pubPath,
		Issuer:         "api.slyouthjobs.org",
		ExpirationMins: 60,
	})
	if err != nil {
		t.Fatalf("NewService (verifier) failed: %v", err)
	}

	token, err := signer.Sign(seekerClaims())
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := verifier.Validate(token); err != nil {
		t.Errorf("verifier should validate signer's token, got %v", err)
	}
	if _, err := verifier.Sign(seekerClaims()); err != ErrInvalidKey {
		t.Errorf("verifier should not sign, expected ErrInvalidKey, got %v", err)
	}
}

func TestNewService_MissingKeyFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewService(Config{
		PrivateKeyPath: filepath.Join(t.TempDir(), "nope.pem"),
		Issuer:         "api.slyouthjobs.org",
		ExpirationMins: 60,
	})
	if err == nil {
		t.Error("expected error for missing key file")
	}
}

func TestNewService_GarbagePEM_Errors(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "garbage.pem")
	if err := os.WriteFile(path, []byte("not pem at all"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := NewService(Config{
		PrivateKeyPath: path,
		Issuer:         "api.slyouthjobs.org",
		ExpirationMins: 60,
	})
	if err == nil {
		t.Error("expected error for non-PEM key file")
	}
}

// ============================================================================
// base64url Tests
// ============================================================================

func TestBase64URL_RoundtripAllPaddingLengths(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "a", "ab", "abc", "abcd", `{"role":"employer"}`} {
		encoded := base64URLEncode([]byte(input))
		if strings.ContainsAny(encoded, "=+/") {
			t.Errorf("encoding of %q contains forbidden characters: %q", input, encoded)
		}

		decoded, err := base64URLDecode(encoded)
		if err != nil {
			t.Errorf("decode of %q failed: %v", encoded, err)
			continue
		}
		if string(decoded) != input {
			t.Errorf("roundtrip mismatch: %q -> %q", input, string(decoded))
		}
	}
}
