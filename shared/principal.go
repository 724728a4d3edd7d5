package shared

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shadowbox-gym/shadowbox_api/model"
)

const tokenKey = "session_token"

// SetAccount records the authenticated account on the request.
func SetAccount(c *fiber.Ctx, acc *model.Account) {
	c.Locals(AccountKey, acc)
}

// GetAccount returns the authenticated account, if any.
func GetAccount(c *fiber.Ctx) (*model.Account, bool) {
	acc, ok := c.Locals(AccountKey).(*model.Account)
	return acc, ok && acc != nil
}

// RequireAccount is GetAccount for routes behind RequiredAuth.
func RequireAccount(c *fiber.Ctx) (*model.Account, error) {
	acc, ok := GetAccount(c)
	if !ok {
		return nil, NewUnauthorizedError("")
	}
	return acc, nil
}

func SetToken(c *fiber.Ctx, token string) {
	c.Locals(tokenKey, token)
}

func GetToken(c *fiber.Ctx) string {
	token, _ := c.Locals(tokenKey).(string)
	return token
}
