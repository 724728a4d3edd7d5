package services

import (
	"context"
	"strconv"
	"sync"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/shadowbox-gym/shadowbox_api/dto"
	"github.com/shadowbox-gym/shadowbox_api/shared"
)

// RateLimitService is a fixed-window limiter keyed by endpoint and client IP, stored in Redis.
type RateLimitService struct {
	appContext.DefaultService

	configs map[string]*RateLimitConfig
	mutex   sync.RWMutex
	enabled bool

	redisSvc *RedisService
}

// RateLimitConfig represents rate limiting configuration
type RateLimitConfig struct {
	EndpointType string
	MaxRequests  int
	WindowSize   time.Duration
	Description  string
	IsActive     bool
}

const RATE_LIMIT_SVC = "rate_limit_svc"

const rateLimitKeyPrefix = "ratelimit:"

func NewRateLimitService(redisSvc *RedisService, enabled bool) *RateLimitService {
	svc := &RateLimitService{redisSvc: redisSvc, enabled: enabled}
	svc.initDefaultConfigs()
	return svc
}

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *appContext.Context) error {
	svc.redisSvc = ctx.Service(REDIS_SVC).(*RedisService)
	svc.enabled = ctx.Service(CONFIG_SVC).(*ConfigService).Config().RateLimitEnabled
	svc.initDefaultConfigs()
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	return nil
}

// ==================== CONFIGURATION MANAGEMENT ====================

func (svc *RateLimitService) initDefaultConfigs() {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	svc.configs = map[string]*RateLimitConfig{
		shared.EndpointLogin: {
			EndpointType: shared.EndpointLogin,
			MaxRequests:  10,
			WindowSize:   15 * time.Minute,
			Description:  "Login attempts rate limit",
			IsActive:     true,
		},
		shared.EndpointRegister: {
			EndpointType: shared.EndpointRegister,
			MaxRequests:  5,
			WindowSize:   15 * time.Minute,
			Description:  "Registration rate limit",
			IsActive:     true,
		},
	}
}

// SetLimit overrides or adds the limit for endpointType.
func (svc *RateLimitService) SetLimit(endpointType string, maxRequests int, window time.Duration) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	svc.configs[endpointType] = &RateLimitConfig{
		EndpointType: endpointType,
		MaxRequests:  maxRequests,
		WindowSize:   window,
		IsActive:     true,
	}
}

// ==================== CORE RATE LIMITING LOGIC ====================

func (svc *RateLimitService) IsAllowed(ctx context.Context, identifier, endpointType string) (bool, *dto.RateLimitInfo, error) {
	svc.mutex.RLock()
	config, exists := svc.configs[endpointType]
	svc.mutex.RUnlock()

	if !svc.enabled || !svc.redisSvc.Enabled() || !exists || !config.IsActive {
		return true, &dto.RateLimitInfo{Allowed: true, Limit: -1, Remaining: -1}, nil
	}

	key := rateLimitKeyPrefix + endpointType + ":" + identifier
	count, left, err := svc.redisSvc.IncrementWindow(ctx, key, config.WindowSize)
	if err != nil {
		return false, nil, err
	}

	remaining := config.MaxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}
	info := &dto.RateLimitInfo{
		Allowed:   int(count) <= config.MaxRequests,
		Limit:     config.MaxRequests,
		Remaining: remaining,
		ResetTime: time.Now().Add(left).UTC(),
	}
	return info.Allowed, info, nil
}

// ==================== MIDDLEWARE FUNCTIONS ====================

// RateLimit limits requests to endpointType per client IP.
func (svc *RateLimitService) RateLimit(endpointType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := c.IP()

		allowed, info, err := svc.IsAllowed(c.UserContext(), identifier, endpointType)
		if err != nil {
			log.WithFields(log.Fields{
				"endpoint":   endpointType,
				"identifier": identifier,
			}).WithError(err).Warn("Rate limit check failed")
			return c.Next()
		}

		svc.addRateLimitHeaders(c, info)

		if !allowed {
			return shared.NewTooManyRequestsError(svc.getRateLimitMessage(endpointType), info)
		}

		return c.Next()
	}
}

// ==================== HELPER FUNCTIONS ====================

func (svc *RateLimitService) addRateLimitHeaders(c *fiber.Ctx, info *dto.RateLimitInfo) {
	if info == nil || info.Limit < 0 {
		return
	}

	c.Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	c.Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	c.Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))

	if !info.Allowed {
		retryAfter := int(time.Until(info.ResetTime).Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
	}
}

func (svc *RateLimitService) getRateLimitMessage(endpointType string) string {
	messages := map[string]string{
		shared.EndpointLogin:    "Too many login attempts. Please try again later.",
		shared.EndpointRegister: "Too many registration attempts. Please try again later.",
	}

	if message, exists := messages[endpointType]; exists {
		return message
	}

	return "Too many requests. Please try again later."
}
