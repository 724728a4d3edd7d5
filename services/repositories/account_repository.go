package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shadowbox-gym/shadowbox_api/model"
)

const passwordColumn = "password_hash"

// AccountRepository handles account persistence
type AccountRepository struct {
	BaseRepository
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// Create inserts acc, assigning an id when it has none. The password must already be hashed.
func (r *AccountRepository) Create(ctx context.Context, acc *model.Account) error {
	if acc.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		acc.ID = id.String()
	}

	if err := r.db.WithContext(ctx).Create(acc).Error; err != nil {
		return r.HandleError(err)
	}
	return nil
}

// FindByUsername loads the account; the password hash is only selected when withPassword is set.
func (r *AccountRepository) FindByUsername(ctx context.Context, username string, withPassword bool) (*model.Account, error) {
	return r.first(ctx, withPassword, "username = ?", username)
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*model.Account, error) {
	return r.first(ctx, false, "id = ?", id)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	return r.first(ctx, false, "email = ?", email)
}

func (r *AccountRepository) first(ctx context.Context, withPassword bool, query string, args ...interface{}) (*model.Account, error) {
	q := r.db.WithContext(ctx)
	if !withPassword {
		q = q.Omit(passwordColumn)
	}

	var acc model.Account
	if err := q.Where(query, args...).First(&acc).Error; err != nil {
		return nil, r.HandleError(err)
	}
	return &acc, nil
}

// Update applies patch to the account and returns the stored result.
func (r *AccountRepository) Update(ctx context.Context, id string, patch model.AccountPatch) (*model.Account, error) {
	cols := patch.Columns()
	if len(cols) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Account{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, r.HandleError(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, r.HandleError(gorm.ErrRecordNotFound)
		}
	}
	return r.FindByID(ctx, id)
}

const leaderboardOrder = "level desc, xp desc, streak desc, username asc"

// Top returns the highest ranked accounts.
func (r *AccountRepository) Top(ctx context.Context, limit int) ([]model.Account, error) {
	var accounts []model.Account
	err := r.db.WithContext(ctx).
		Omit(passwordColumn).
		Order(leaderboardOrder).
		Limit(limit).
		Find(&accounts).Error
	if err != nil {
		return nil, r.HandleError(err)
	}
	return accounts, nil
}

// Rank is the 1-based leaderboard position of acc under the Top ordering.
func (r *AccountRepository) Rank(ctx context.Context, acc *model.Account) (int, error) {
	var ahead int64
	err := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("level > ?", acc.Level).
		Or("level = ? AND xp > ?", acc.Level, acc.XP).
		Or("level = ? AND xp = ? AND streak > ?", acc.Level, acc.XP, acc.Streak).
		Or("level = ? AND xp = ? AND streak = ? AND username < ?", acc.Level, acc.XP, acc.Streak, acc.Username).
		Count(&ahead).Error
	if err != nil {
		return 0, r.HandleError(err)
	}
	return int(ahead) + 1, nil
}

func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Account{}).Count(&n).Error; err != nil {
		return 0, r.HandleError(err)
	}
	return n, nil
}

func (r *AccountRepository) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	return r.available(ctx, "username = ?", username)
}

func (r *AccountRepository) IsEmailAvailable(ctx context.Context, email string) (bool, error) {
	return r.available(ctx, "email = ?", email)
}

func (r *AccountRepository) available(ctx context.Context, query string, value string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Account{}).Where(query, value).Count(&count).Error; err != nil {
		return false, r.HandleError(err)
	}
	return count == 0, nil
}
