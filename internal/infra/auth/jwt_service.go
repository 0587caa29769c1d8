package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"userhub/config"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/service"
	"userhub/internal/errors"
)

const defaultTokenTTL = 12 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   []byte           // Key for signing and verifying tokens.
	tokenTTL time.Duration    // Lifetime of an issued token.
	now      func() time.Time // Clock, replaceable in tests.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret:   []byte(cfg.SecretKey.Access),
		tokenTTL: ttl,
		now:      time.Now,
	}, nil
}

// IssueToken signs an HS256 token carrying the user's id and email.
func (s *jwtService) IssueToken(userID int64, email string) (string, error) {
	issuedAt := s.now()
	claims := &service.Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the signature and expiry of a token string.
// Any failure is reported as ErrUnauthorized.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}
	if !token.Valid {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token is not valid")
	}

	return claims, nil
}
