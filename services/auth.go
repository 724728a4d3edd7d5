package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/shadowbox-gym/shadowbox_api/dto"
	"github.com/shadowbox-gym/shadowbox_api/model"
	"github.com/shadowbox-gym/shadowbox_api/services/progression"
	"github.com/shadowbox-gym/shadowbox_api/shared"
)

type AuthService struct {
	appContext.DefaultService

	accounts      AccountStore
	jwtSvc        *JWTService
	redisSvc      *RedisService
	contentSvc    *ContentService
	monitoringSvc *MonitoringService

	bcryptCost   int
	secureCookie bool
	now          func() time.Time
	compareHash  func(hash, password []byte) error

	dummyOnce sync.Once
	dummyHash []byte
}

const (
	AUTH_SVC = "auth_svc"

	maxBcryptInput = 72
)

func NewAuthService(accounts AccountStore, jwtSvc *JWTService, redisSvc *RedisService, contentSvc *ContentService, bcryptCost int) *AuthService {
	return &AuthService{
		accounts:   accounts,
		jwtSvc:     jwtSvc,
		redisSvc:   redisSvc,
		contentSvc: contentSvc,
		bcryptCost:  bcryptCost,
		now:         time.Now,
		compareHash: bcrypt.CompareHashAndPassword,
	}
}

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *appContext.Context) error {
	cfg := ctx.Service(CONFIG_SVC).(*ConfigService).Config()
	svc.bcryptCost = cfg.BcryptCost
	svc.secureCookie = cfg.IsProduction()
	svc.now = time.Now
	svc.compareHash = bcrypt.CompareHashAndPassword

	svc.jwtSvc = ctx.Service(JWT_SVC).(*JWTService)
	svc.redisSvc = ctx.Service(REDIS_SVC).(*RedisService)
	svc.contentSvc = ctx.Service(CONTENT_SVC).(*ContentService)
	svc.monitoringSvc = ctx.Service(MONITORING_SVC).(*MonitoringService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	// The database opens in its own Start, so the repository is bound here.
	if svc.accounts == nil {
		svc.accounts = svc.Service(DATABASE_SVC).(*DatabaseService).Accounts()
	}
	return nil
}

// ==================== REGISTRATION & LOGIN ====================

// Register creates an account and opens a session for it.
func (svc *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*model.Account, *dto.Session, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, nil, shared.NewValidationError("Validation failed", dto.FormatValidationErrors(err))
	}

	available, err := svc.accounts.IsUsernameAvailable(ctx, req.Username)
	if err != nil {
		return nil, nil, shared.NewInternalError(err)
	}
	if !available {
		return nil, nil, shared.NewDuplicateIdentityError("Username taken")
	}

	var email *string
	if req.Email != "" {
		available, err = svc.accounts.IsEmailAvailable(ctx, req.Email)
		if err != nil {
			return nil, nil, shared.NewInternalError(err)
		}
		if !available {
			return nil, nil, shared.NewDuplicateIdentityError("Email already registered")
		}
		email = &req.Email
	}

	hash, err := bcrypt.GenerateFromPassword(bcryptInput(req.Password), svc.bcryptCost)
	if err != nil {
		return nil, nil, shared.NewInternalError(err)
	}

	acc := &model.Account{
		Username:     req.Username,
		Email:        email,
		PasswordHash: string(hash),
	}
	progression.NewAccountDefaults(acc, svc.contentSvc.Catalog(), svc.now())

	if err := svc.accounts.Create(ctx, acc); err != nil {
		if errors.Is(err, shared.ErrDuplicateIdentity) {
			return nil, nil, shared.NewDuplicateIdentityError("Username or email already registered")
		}
		return nil, nil, shared.NewInternalError(err)
	}
	acc.PasswordHash = ""

	session, err := svc.issue(acc.ID)
	if err != nil {
		return nil, nil, err
	}

	svc.monitoringSvc.RecordRegistration()
	log.WithField("account_id", acc.ID).Info("Account registered")
	return acc, session, nil
}

// Login checks credentials, records the daily streak and opens a session.
// Unknown usernames and wrong passwords fail identically.
func (svc *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*model.Account, *dto.Session, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, nil, shared.NewValidationError("Validation failed", dto.FormatValidationErrors(err))
	}

	acc, err := svc.accounts.FindByUsername(ctx, req.Username, true)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			// Burn a compare anyway so unknown usernames cost the same as wrong passwords.
			_ = svc.compareHash(svc.missingAccountHash(), bcryptInput(req.Password))
			svc.monitoringSvc.RecordLogin(false)
			return nil, nil, shared.NewInvalidCredentialsError()
		}
		return nil, nil, shared.NewInternalError(err)
	}

	if err := svc.compareHash([]byte(acc.PasswordHash), bcryptInput(req.Password)); err != nil {
		svc.monitoringSvc.RecordLogin(false)
		return nil, nil, shared.NewInvalidCredentialsError()
	}

	gap := progression.UpdateStreak(acc, svc.now())
	updated := acc
	if gap != progression.GapSameDay {
		updated, err = svc.accounts.Update(ctx, acc.ID, model.AccountPatch{
			Streak:    &acc.Streak,
			LastLogin: acc.LastLogin,
		})
		if err != nil {
			return nil, nil, shared.NewInternalError(err)
		}
	}
	updated.PasswordHash = ""

	session, err := svc.issue(acc.ID)
	if err != nil {
		return nil, nil, err
	}

	svc.monitoringSvc.RecordLogin(true)
	log.WithFields(log.Fields{
		"account_id": acc.ID,
		"streak":     updated.Streak,
		"day_gap":    gap.String(),
	}).Debug("Login successful")
	return updated, session, nil
}

// missingAccountHash is a hash at the configured cost that no real password matches.
func (svc *AuthService) missingAccountHash() []byte {
	svc.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("shadowbox:no-such-account"), svc.bcryptCost)
		if err != nil {
			log.WithError(err).Error("Failed to build placeholder hash")
			return
		}
		svc.dummyHash = hash
	})
	return svc.dummyHash
}

// bcryptInput caps the password at the 72 bytes bcrypt reads.
func bcryptInput(password string) []byte {
	b := []byte(password)
	if len(b) > maxBcryptInput {
		b = b[:maxBcryptInput]
	}
	return b
}

func (svc *AuthService) issue(accountID string) (*dto.Session, error) {
	token, expiresAt, err := svc.jwtSvc.IssueToken(accountID)
	if err != nil {
		return nil, shared.NewInternalError(err)
	}
	return &dto.Session{Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes token when a revocation store is configured. Clearing the
// cookie is the transport's job.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	_, claims, err := svc.jwtSvc.VerifyToken(token)
	if err != nil {
		return nil
	}
	if err := svc.redisSvc.RevokeToken(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		log.WithError(err).Error("Failed to revoke token")
		return shared.NewInternalError(err)
	}
	return nil
}

// Authenticate resolves a token to its live account.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (*model.Account, error) {
	if token == "" {
		return nil, shared.NewUnauthorizedError("Not authorized")
	}

	accountID, claims, err := svc.jwtSvc.VerifyToken(token)
	if err != nil {
		return nil, shared.NewUnauthorizedError("Token invalid")
	}

	revoked, err := svc.redisSvc.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		log.WithError(err).Warn("Token revocation check failed")
		return nil, shared.NewInternalError(err)
	}
	if revoked {
		return nil, shared.NewUnauthorizedError("Token invalid")
	}

	acc, err := svc.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewUnauthorizedError("User not found")
		}
		return nil, shared.NewInternalError(err)
	}
	return acc, nil
}

// ==================== MIDDLEWARE ====================

// TokenFromRequest prefers a Bearer header and falls back to the session cookie.
func (svc *AuthService) TokenFromRequest(c *fiber.Ctx) string {
	if token, err := svc.jwtSvc.ExtractTokenFromHeader(c.Get(fiber.HeaderAuthorization)); err == nil {
		return token
	}
	return strings.TrimSpace(c.Cookies(shared.SessionCookie))
}

// RequiredAuth rejects the request unless it carries a valid token for an existing account.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := svc.TokenFromRequest(c)
		acc, err := svc.Authenticate(c.UserContext(), token)
		if err != nil {
			return err
		}
		shared.SetAccount(c, acc)
		shared.SetToken(c, token)
		return c.Next()
	}
}

// OptionalAuth attaches the account when a valid token is present and never rejects.
func (svc *AuthService) OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := svc.TokenFromRequest(c)
		if token == "" {
			return c.Next()
		}
		if acc, err := svc.Authenticate(c.UserContext(), token); err == nil {
			shared.SetAccount(c, acc)
			shared.SetToken(c, token)
		}
		return c.Next()
	}
}

// ==================== COOKIES ====================

func (svc *AuthService) SessionCookie(session *dto.Session) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     shared.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HTTPOnly: true,
		Secure:   svc.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

func (svc *AuthService) ClearedSessionCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     shared.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   svc.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
