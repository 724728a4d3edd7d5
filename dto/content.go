package dto

import (
	"time"

	"github.com/shadowbox-gym/shadowbox_api/services/training"
)

type PunchResponse struct {
	ID     string   `json:"id" example:"jab"`
	Name   string   `json:"name" example:"Jab"`
	Level  int      `json:"level" example:"1"`
	Videos []string `json:"videos"`
}

type CatalogResponse struct {
	Punches []PunchResponse `json:"punches"`
}

type MediaLink struct {
	VideoID   string    `json:"videoId" example:"vid-jab-basics"`
	URL       string    `json:"url" example:"https://media.example.com/videos/vid-jab-basics.mp4?X-Amz-Signature=..."`
	ExpiresAt time.Time `json:"expiresAt" example:"2025-03-10T16:30:00Z"`
}

type UnlockedContentResponse struct {
	Punches []string    `json:"punches"`
	Videos  []string    `json:"videos"`
	Media   []MediaLink `json:"media,omitempty"`
}

type ComboRequest struct {
	Combo string `query:"combo" validate:"max=200" example:"Jab, Cross, Lead Hook"`
}

func (c ComboRequest) Validate() error {
	return GetValidator().Struct(c)
}

type ComboResponse struct {
	Input string `json:"input" example:"Jab, Cross, Lead Hook"`
	training.Combo
}
