package progression

import (
	"fmt"
	"time"

	"github.com/shadowbox-gym/shadowbox_api/model"
)

// StatUpdate is a client-requested change to an account's stats. The set of
// implementations is closed to this package.
type StatUpdate interface {
	statUpdate()
}

type AddXPAction struct {
	Amount int
}

type IncrementStreakAction struct{}

type ResetStreakAction struct{}

type UnlockPunchAction struct {
	PunchID string
}

func (AddXPAction) statUpdate()           {}
func (IncrementStreakAction) statUpdate() {}
func (ResetStreakAction) statUpdate()     {}
func (UnlockPunchAction) statUpdate()     {}

type Outcome struct {
	LevelsGained int
}

// Apply runs update against acc.
func Apply(acc *model.Account, update StatUpdate, catalog *Catalog, now time.Time) (Outcome, error) {
	switch u := update.(type) {
	case AddXPAction:
		gained, err := AddXP(acc, u.Amount, catalog, now)
		return Outcome{LevelsGained: gained}, err
	case IncrementStreakAction:
		IncrementStreak(acc)
	case ResetStreakAction:
		ResetStreak(acc)
	case UnlockPunchAction:
		if !catalog.Has(u.PunchID) {
			return Outcome{}, fmt.Errorf("%w: %s", ErrUnknownPunch, u.PunchID)
		}
		UnlockPunch(acc, u.PunchID, now)
	default:
		return Outcome{}, fmt.Errorf("unsupported stat update %T", update)
	}
	return Outcome{}, nil
}
