package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bogusUpdate struct{ StatUpdate }

func TestApply(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("add xp", func(t *testing.T) {
		acc := newAccount()
		out, err := Apply(acc, AddXPAction{Amount: 250}, catalog, testNow)
		require.NoError(t, err)
		assert.Equal(t, 1, out.LevelsGained)
		assert.Equal(t, 2, acc.Level)
		assert.Equal(t, 150, acc.XP)
	})

	t.Run("add xp negative", func(t *testing.T) {
		acc := newAccount()
		_, err := Apply(acc, AddXPAction{Amount: -5}, catalog, testNow)
		require.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("increment streak", func(t *testing.T) {
		acc := newAccount()
		acc.Streak = 2
		_, err := Apply(acc, IncrementStreakAction{}, catalog, testNow)
		require.NoError(t, err)
		assert.Equal(t, 3, acc.Streak)
	})

	t.Run("reset streak", func(t *testing.T) {
		acc := newAccount()
		acc.Streak = 7
		_, err := Apply(acc, ResetStreakAction{}, catalog, testNow)
		require.NoError(t, err)
		assert.Equal(t, 0, acc.Streak)
	})

	t.Run("unlock punch", func(t *testing.T) {
		acc := newAccount()
		_, err := Apply(acc, UnlockPunchAction{PunchID: "uppercut"}, catalog, testNow)
		require.NoError(t, err)
		_, err = Apply(acc, UnlockPunchAction{PunchID: "uppercut"}, catalog, testNow)
		require.NoError(t, err)
		assert.Equal(t, []string{"jab", "uppercut"}, acc.UnlockedPunches.IDs())
	})

	t.Run("unlock unknown punch", func(t *testing.T) {
		acc := newAccount()
		_, err := Apply(acc, UnlockPunchAction{PunchID: "haymaker"}, catalog, testNow)
		require.ErrorIs(t, err, ErrUnknownPunch)
		assert.Equal(t, []string{"jab"}, acc.UnlockedPunches.IDs())
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := Apply(newAccount(), bogusUpdate{}, catalog, testNow)
		require.Error(t, err)
	})
}

func TestCatalog(t *testing.T) {
	c := NewCatalog(
		Punch{ID: "a", Videos: []string{"v1"}},
		Punch{ID: "b"},
		Punch{ID: "a", Videos: []string{"dup"}},
	)

	assert.Len(t, c.Punches(), 2)
	assert.True(t, c.Has("b"))
	assert.False(t, c.Has("z"))
	assert.Equal(t, []string{"v1"}, c.Videos("a"))
	assert.Nil(t, c.Videos("z"))

	p, ok := c.PunchForLevel(2)
	require.True(t, ok)
	assert.Equal(t, "b", p.ID)
	_, ok = c.PunchForLevel(0)
	assert.False(t, ok)
	_, ok = c.PunchForLevel(3)
	assert.False(t, ok)
}
