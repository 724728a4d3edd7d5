package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Account is the persisted user record: credentials plus progression counters.
type Account struct {
	ID              string     `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Username        string     `json:"username" gorm:"uniqueIndex;not null;size:20"`
	Email           *string    `json:"email,omitempty" gorm:"uniqueIndex;size:254"`
	PasswordHash    string     `json:"-" gorm:"column:password_hash;not null"`
	XP              int        `json:"xp" gorm:"not null;default:0"`
	Level           int        `json:"level" gorm:"not null;default:1"`
	Streak          int        `json:"streak" gorm:"not null;default:0"`
	LastLogin       *time.Time `json:"lastLogin,omitempty"`
	Achievements    StringList `json:"achievements" gorm:"type:text"`
	UnlockedPunches UnlockList `json:"unlockedPunches" gorm:"type:text"`
	UnlockedVideos  UnlockList `json:"unlockedVideos" gorm:"type:text"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Unlock records when a piece of content became available to an account.
type Unlock struct {
	ContentID  string    `json:"contentId"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

type UnlockList []Unlock

func (l UnlockList) Contains(contentID string) bool {
	for _, u := range l {
		if u.ContentID == contentID {
			return true
		}
	}
	return false
}

func (l UnlockList) IDs() []string {
	ids := make([]string, 0, len(l))
	for _, u := range l {
		ids = append(ids, u.ContentID)
	}
	return ids
}

func (l UnlockList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *UnlockList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

func scanJSON(src interface{}, dest interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

// AccountPatch is a partial update; nil fields are left untouched.
type AccountPatch struct {
	XP              *int
	Level           *int
	Streak          *int
	LastLogin       *time.Time
	Achievements    *StringList
	UnlockedPunches *UnlockList
	UnlockedVideos  *UnlockList
}

// ProgressPatch captures every progression field of acc.
func ProgressPatch(acc *Account) AccountPatch {
	return AccountPatch{
		XP:              &acc.XP,
		Level:           &acc.Level,
		Streak:          &acc.Streak,
		LastLogin:       acc.LastLogin,
		Achievements:    &acc.Achievements,
		UnlockedPunches: &acc.UnlockedPunches,
		UnlockedVideos:  &acc.UnlockedVideos,
	}
}

// Columns maps the patch onto column names for a gorm map update.
func (p AccountPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.XP != nil {
		cols["xp"] = *p.XP
	}
	if p.Level != nil {
		cols["level"] = *p.Level
	}
	if p.Streak != nil {
		cols["streak"] = *p.Streak
	}
	if p.LastLogin != nil {
		cols["last_login"] = p.LastLogin.UTC()
	}
	if p.Achievements != nil {
		cols["achievements"] = *p.Achievements
	}
	if p.UnlockedPunches != nil {
		cols["unlocked_punches"] = *p.UnlockedPunches
	}
	if p.UnlockedVideos != nil {
		cols["unlocked_videos"] = *p.UnlockedVideos
	}
	return cols
}
