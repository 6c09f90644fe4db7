package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentql/config"
	"rentql/internal/domain/service"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestJWTService(t *testing.T, clock *fakeClock) *jwtService {
	t.Helper()

	svc, err := newJWTService(testSecret, defaultTokenTTL, clock.Now)
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock)

	issued := service.TokenClaims{Email: "ana@example.com", UserID: uuid.New()}
	token, err := svc.Issue(issued)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	clock.now = clock.now.Add(defaultTokenTTL - time.Minute)
	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, issued, *claims)
}

func TestJWTService_Expired(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock)

	token, err := svc.Issue(service.TokenClaims{Email: "ana@example.com", UserID: uuid.New()})
	require.NoError(t, err)

	clock.now = clock.now.Add(defaultTokenTTL + time.Second)
	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_InvalidSignature(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestJWTService(t, clock)

	token, err := svc.Issue(service.TokenClaims{Email: "ana@example.com", UserID: uuid.New()})
	require.NoError(t, err)

	other, err := newJWTService("a-different-secret", defaultTokenTTL, clock.Now)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	none := jwt.NewWithClaims(jwt.SigningMethodNone, service.Claims{
		Email: "ana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := map[string]struct {
		svc   *jwtService
		token string
	}{
		"wrong secret":  {svc: other, token: token},
		"tampered body": {svc: svc, token: tampered},
		"garbage":       {svc: svc, token: "not-a-token"},
		"empty":         {svc: svc, token: ""},
		"alg none":      {svc: svc, token: unsigned},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			claims, err := tc.svc.Verify(tc.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, service.ErrInvalidSignature)
		})
	}
}

func TestJWTService_Config(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	_, err := NewJWTService(cfg)
	assert.Error(t, err, "an empty secret must refuse to start")

	cfg.SecretKey.Access = testSecret
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.TTL())

	cfg.Auth = nil
	svc, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, svc.TTL())
}
