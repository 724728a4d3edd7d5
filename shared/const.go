package shared

import "time"

const (
	AccountKey = "account"

	SessionCookie = "token"
	SessionTTL    = 7 * 24 * time.Hour

	ActionAddXP           = "addXp"
	ActionIncrementStreak = "incrementStreak"
	ActionResetStreak     = "resetStreak"
	ActionUnlockPunch     = "unlockPunch"

	EndpointLogin    = "login"
	EndpointRegister = "register"
)
