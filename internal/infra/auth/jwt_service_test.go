package auth

import (
	"testing"
	"time"

	"userhub/config"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, now time.Time) *jwtService {
	t.Helper()

	cfg := &config.Config{SecretKey: config.SecretKeyConfig{Access: testSecret}}
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	jwtSvc := svc.(*jwtService)
	jwtSvc.now = func() time.Time { return now }

	return jwtSvc
}

func TestJWTService_IssueAndValidateToken(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tokenSvc := newTestJWTService(t, now)

	token, err := tokenSvc.IssueToken(42, "a@x.io")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokenSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "a@x.io", claims.Email)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, now.Add(12*time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
}

func TestJWTService_ConfiguredTTL(t *testing.T) {
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: testSecret},
		Auth:      &config.AuthConfig{TokenTTL: time.Hour},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, time.Hour, svc.(*jwtService).tokenTTL)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tokenSvc := newTestJWTService(t, issuedAt)

	token, err := tokenSvc.IssueToken(7, "b@x.io")
	require.NoError(t, err)

	// Still valid one second before expiry
	tokenSvc.now = func() time.Time { return issuedAt.Add(12*time.Hour - time.Second) }
	_, err = tokenSvc.ValidateToken(token)
	assert.NoError(t, err)

	tokenSvc.now = func() time.Time { return issuedAt.Add(12*time.Hour + time.Second) }
	claims, err := tokenSvc.ValidateToken(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_InvalidToken(t *testing.T) {
	tokenSvc := newTestJWTService(t, time.Now())

	for _, token := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c"} {
		claims, err := tokenSvc.ValidateToken(token)
		assert.Nil(t, claims)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized), "token %q", token)
	}
}

func TestJWTService_WrongKey(t *testing.T) {
	now := time.Now()
	tokenSvc := newTestJWTService(t, now)

	other := &jwtService{secret: []byte("another-secret"), tokenTTL: time.Hour, now: func() time.Time { return now }}
	token, err := other.IssueToken(1, "c@x.io")
	require.NoError(t, err)

	_, err = tokenSvc.ValidateToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_RejectsNoneAndOtherAlgorithms(t *testing.T) {
	now := time.Now()
	tokenSvc := newTestJWTService(t, now)

	claims := &service.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tokenSvc.ValidateToken(unsigned)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = tokenSvc.ValidateToken(hs512)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_RequiresExpiry(t *testing.T) {
	tokenSvc := newTestJWTService(t, time.Now())

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{UserID: 1}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tokenSvc.ValidateToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	tokenSvc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, tokenSvc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
