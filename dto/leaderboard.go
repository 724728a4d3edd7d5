package dto

const (
	DefaultLeaderboardLimit = 50
	MaxLeaderboardLimit     = 100
)

type LeaderboardRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100" example:"20"`
}

func (l LeaderboardRequest) Validate() error {
	return GetValidator().Struct(l)
}

// EffectiveLimit applies the default when no limit was sent.
func (l LeaderboardRequest) EffectiveLimit() int {
	if l.Limit <= 0 {
		return DefaultLeaderboardLimit
	}
	if l.Limit > MaxLeaderboardLimit {
		return MaxLeaderboardLimit
	}
	return l.Limit
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank" example:"1"`
	ID       string `json:"_id" example:"5f0c6a2e-9a8e-4a57-9a77-0d3c1f3e8a11"`
	Username string `json:"username" example:"rocky"`
	Level    int    `json:"level" example:"4"`
	XP       int    `json:"xp" example:"120"`
	Streak   int    `json:"streak" example:"12"`
}

type LeaderboardResponse struct {
	Entries     []LeaderboardEntry `json:"entries"`
	CurrentUser *LeaderboardEntry  `json:"currentUser,omitempty"`
}
