package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shadowbox-gym/shadowbox_api/config"
	"github.com/shadowbox-gym/shadowbox_api/shared"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrMissingToken   = errors.New("authorization header is missing")
	ErrBadAuthHeader  = errors.New("invalid authorization header format")
	ErrSecretRequired = errors.New("jwt secret is required")
)

type JWTService struct {
	context.DefaultService

	TokenDuration time.Duration
	issuer        string
	jwtSecretKey  []byte
	now           func() time.Time
}

// CustomClaims carries the account id in the standard subject claim. The jti
// makes every issued token unique so revocation never hits a later session.
type CustomClaims struct {
	jwt.RegisteredClaims
}

const JWT_SVC = "jwt_svc"

func NewJWTService(cfg config.JWT) (*JWTService, error) {
	svc := &JWTService{}
	if err := svc.apply(cfg); err != nil {
		return nil, err
	}
	return svc, nil
}

func (svc JWTService) Id() string {
	return JWT_SVC
}

func (svc *JWTService) Configure(ctx *context.Context) error {
	cfg := ctx.Service(CONFIG_SVC).(*ConfigService).Config()
	if err := svc.apply(cfg.JWT); err != nil {
		return err
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *JWTService) apply(cfg config.JWT) error {
	if cfg.Secret == "" {
		return ErrSecretRequired
	}
	svc.jwtSecretKey = []byte(cfg.Secret)
	svc.issuer = cfg.Issuer
	svc.TokenDuration = cfg.TTL
	if svc.TokenDuration <= 0 {
		svc.TokenDuration = shared.SessionTTL
	}
	svc.now = time.Now
	return nil
}

func (svc *JWTService) Start() error {
	return nil
}

// IssueToken signs an HS256 token whose subject is accountID and whose id is a fresh UUID.
func (svc *JWTService) IssueToken(accountID string) (string, time.Time, error) {
	now := svc.now()
	expTime := now.Add(svc.TokenDuration)

	claims := &CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   accountID,
			ExpiresAt: jwt.NewNumericDate(expTime),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    svc.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(svc.jwtSecretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expTime, nil
}

// VerifyToken returns the subject of a valid token. All failures collapse to ErrInvalidToken.
func (svc *JWTService) VerifyToken(tokenString string) (string, *CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, svc.getJWTKey,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(svc.now),
	)
	if err != nil || !token.Valid {
		return "", nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.ID == "" {
		return "", nil, ErrInvalidToken
	}
	return claims.Subject, claims, nil
}

func (svc *JWTService) getJWTKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}

	return svc.jwtSecretKey, nil
}

func (svc *JWTService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingToken
	}

	if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
		return "", ErrBadAuthHeader
	}

	token := strings.TrimSpace(authHeader[7:])
	if token == "" {
		return "", ErrBadAuthHeader
	}
	return token, nil
}
