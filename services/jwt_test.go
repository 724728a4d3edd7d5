package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowbox-gym/shadowbox_api/config"
)

func newTestJWT(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(config.JWT{Secret: "test-secret", TTL: 7 * 24 * time.Hour, Issuer: "shadowbox"})
	require.NoError(t, err)
	return svc
}

func TestJWT_IssueAndVerify(t *testing.T) {
	svc := newTestJWT(t)
	fixed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	tok, exp, err := svc.IssueToken("acc-1")
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(7*24*time.Hour), exp)

	sub, claims, err := svc.VerifyToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", sub)
	assert.Equal(t, "shadowbox", claims.Issuer)
	assert.Equal(t, fixed.Unix(), claims.IssuedAt.Unix())
}

func TestJWT_TokensAreUniquePerIssue(t *testing.T) {
	svc := newTestJWT(t)
	fixed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	first, _, err := svc.IssueToken("acc-1")
	require.NoError(t, err)
	second, _, err := svc.IssueToken("acc-1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	_, a, err := svc.VerifyToken(first)
	require.NoError(t, err)
	_, b, err := svc.VerifyToken(second)
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestJWT_RejectsTokenWithoutID(t *testing.T) {
	svc := newTestJWT(t)
	claims := jwt.RegisteredClaims{
		Subject:   "acc-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, _, err = svc.VerifyToken(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_Expired(t *testing.T) {
	svc := newTestJWT(t)
	issued := time.Now().Add(-8 * 24 * time.Hour)
	svc.now = func() time.Time { return issued }

	tok, _, err := svc.IssueToken("acc-1")
	require.NoError(t, err)

	svc.now = time.Now
	_, _, err = svc.VerifyToken(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_WrongSecret(t *testing.T) {
	tok, _, err := newTestJWT(t).IssueToken("acc-1")
	require.NoError(t, err)

	other, err := NewJWTService(config.JWT{Secret: "other-secret", TTL: time.Hour})
	require.NoError(t, err)

	_, _, err = other.VerifyToken(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestJWT(t)

	claims := jwt.RegisteredClaims{
		Subject:   "acc-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, _, err = svc.VerifyToken(tok)
	require.ErrorIs(t, err, ErrInvalidToken)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, _, err = svc.VerifyToken(none)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_RequiresSubjectAndExpiry(t *testing.T) {
	svc := newTestJWT(t)

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, _, err = svc.VerifyToken(noSub)
	require.ErrorIs(t, err, ErrInvalidToken)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "acc-1",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, _, err = svc.VerifyToken(noExp)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_Malformed(t *testing.T) {
	_, _, err := newTestJWT(t).VerifyToken("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_EmptySecret(t *testing.T) {
	_, err := NewJWTService(config.JWT{})
	require.ErrorIs(t, err, ErrSecretRequired)
}

func TestExtractTokenFromHeader(t *testing.T) {
	svc := newTestJWT(t)

	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"bearer abc", "abc", nil},
		{"", "", ErrMissingToken},
		{"Basic dXNlcjpwYXNz", "", ErrBadAuthHeader},
		{"Bearer ", "", ErrBadAuthHeader},
		{"Bearer", "", ErrBadAuthHeader},
	}

	for _, tt := range tests {
		got, err := svc.ExtractTokenFromHeader(tt.header)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, tt.header)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
