package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shadowbox-gym/shadowbox_api/config"
	"github.com/shadowbox-gym/shadowbox_api/services/progression"
	"github.com/shadowbox-gym/shadowbox_api/services/repositories"
)

type testEnv struct {
	db      *gorm.DB
	repo    *repositories.AccountRepository
	jwt     *JWTService
	redis   *RedisService
	content *ContentService
	auth    *AuthService
	users   *UserService
	clock   *testClock
}

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time          { return c.t }
func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// newTestEnv wires the services over sqlite. Pass withRedis to back revocation with miniredis.
func newTestEnv(t *testing.T, withRedis bool) *testEnv {
	t.Helper()

	db := newTestDB(t)
	repo := repositories.NewAccountRepository(db)

	jwtSvc, err := NewJWTService(config.JWT{Secret: "test-secret", TTL: 7 * 24 * time.Hour, Issuer: "shadowbox"})
	require.NoError(t, err)

	redisSvc := NewRedisService(nil)
	if withRedis {
		redisSvc, _ = newTestRedis(t)
	}

	clock := &testClock{t: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	content := NewContentService(progression.DefaultCatalog(), nil)

	auth := NewAuthService(repo, jwtSvc, redisSvc, content, bcrypt.MinCost)
	auth.now = clock.Now

	users := NewUserService(repo, content)
	users.now = clock.Now

	return &testEnv{
		db:      db,
		repo:    repo,
		jwt:     jwtSvc,
		redis:   redisSvc,
		content: content,
		auth:    auth,
		users:   users,
		clock:   clock,
	}
}
