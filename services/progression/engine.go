// Package progression holds the XP, level, streak and unlock rules applied to an
// account. Functions mutate the passed account only; persistence is the caller's job.
package progression

import (
	"errors"
	"math"
	"time"

	"github.com/shadowbox-gym/shadowbox_api/model"
)

const (
	XPPerLevel = 100
	MaxXPGrant = math.MaxInt32
)

var (
	ErrInvalidAmount = errors.New("xp amount must be a non-negative integer")
	ErrUnknownPunch  = errors.New("unknown punch")
)

// XPForLevel is the XP needed to leave level.
func XPForLevel(level int) int {
	return level * XPPerLevel
}

// AddXP grants amount XP and carries any overflow into level-ups, unlocking the
// catalog punch for every level reached. It returns the number of levels gained.
func AddXP(acc *model.Account, amount int, catalog *Catalog, now time.Time) (int, error) {
	if amount < 0 || amount > MaxXPGrant {
		return 0, ErrInvalidAmount
	}

	acc.XP += amount
	gained := 0
	for acc.XP >= XPForLevel(acc.Level) {
		acc.XP -= XPForLevel(acc.Level)
		acc.Level++
		gained++

		if catalog == nil {
			continue
		}
		if punch, ok := catalog.PunchForLevel(acc.Level); ok {
			UnlockPunch(acc, punch.ID, now)
		}
	}
	return gained, nil
}

// DayGap buckets the calendar distance between the last login and now.
type DayGap int

const (
	GapFirstLogin DayGap = iota
	GapSameDay
	GapNextDay
	GapBroken
)

func (g DayGap) String() string {
	switch g {
	case GapFirstLogin:
		return "first_login"
	case GapSameDay:
		return "same_day"
	case GapNextDay:
		return "next_day"
	default:
		return "broken"
	}
}

// CalendarDaysBetween counts UTC date boundaries crossed going from -> to.
func CalendarDaysBetween(from, to time.Time) int {
	f, t := from.UTC(), to.UTC()
	fromDay := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}

// ClassifyGap is total over {none, <=0, 1, >1}; a lastLogin in the future counts as the same day.
func ClassifyGap(lastLogin *time.Time, now time.Time) DayGap {
	if lastLogin == nil {
		return GapFirstLogin
	}
	switch days := CalendarDaysBetween(*lastLogin, now); {
	case days <= 0:
		return GapSameDay
	case days == 1:
		return GapNextDay
	default:
		return GapBroken
	}
}

// UpdateStreak applies the daily-login transition for a login at now.
func UpdateStreak(acc *model.Account, now time.Time) DayGap {
	gap := ClassifyGap(acc.LastLogin, now)
	switch gap {
	case GapFirstLogin, GapBroken:
		acc.Streak = 1
	case GapNextDay:
		acc.Streak++
	case GapSameDay:
		return gap
	}

	ts := now.UTC()
	acc.LastLogin = &ts
	return gap
}

func IncrementStreak(acc *model.Account) {
	acc.Streak++
}

func ResetStreak(acc *model.Account) {
	acc.Streak = 0
}

// UnlockPunch appends punchID unless it is already unlocked. Reports whether it was added.
func UnlockPunch(acc *model.Account, punchID string, now time.Time) bool {
	if acc.UnlockedPunches.Contains(punchID) {
		return false
	}
	acc.UnlockedPunches = append(acc.UnlockedPunches, model.Unlock{ContentID: punchID, UnlockedAt: now.UTC()})
	return true
}

func UnlockVideo(acc *model.Account, videoID string, now time.Time) bool {
	if acc.UnlockedVideos.Contains(videoID) {
		return false
	}
	acc.UnlockedVideos = append(acc.UnlockedVideos, model.Unlock{ContentID: videoID, UnlockedAt: now.UTC()})
	return true
}

type ContentSet struct {
	Punches []string `json:"punches"`
	Videos  []string `json:"videos"`
}

// UnlockedContent lists unlocked punches in unlock order and flattens their videos, followed
// by individually unlocked videos. Duplicate video ids are kept.
func UnlockedContent(acc *model.Account, catalog *Catalog) ContentSet {
	out := ContentSet{
		Punches: acc.UnlockedPunches.IDs(),
		Videos:  []string{},
	}
	for _, punchID := range out.Punches {
		out.Videos = append(out.Videos, catalog.Videos(punchID)...)
	}
	out.Videos = append(out.Videos, acc.UnlockedVideos.IDs()...)
	return out
}

// NewAccountDefaults initialises progression for a freshly registered account.
func NewAccountDefaults(acc *model.Account, catalog *Catalog, now time.Time) {
	acc.XP = 0
	acc.Level = 1
	acc.Streak = 0
	acc.LastLogin = nil
	acc.Achievements = model.StringList{}
	acc.UnlockedPunches = model.UnlockList{}
	acc.UnlockedVideos = model.UnlockList{}
	if punch, ok := catalog.PunchForLevel(1); ok {
		UnlockPunch(acc, punch.ID, now)
	}
}
