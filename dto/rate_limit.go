package dto

import "time"

type RateLimitInfo struct {
	Allowed   bool      `json:"allowed" example:"false"`
	Limit     int       `json:"limit" example:"10"`
	Remaining int       `json:"remaining" example:"0"`
	ResetTime time.Time `json:"reset_time" example:"2025-03-10T15:31:00Z"`
}
