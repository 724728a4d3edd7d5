package services

import (
	"context"

	"github.com/shadowbox-gym/shadowbox_api/model"
)

// AccountStore is the persistence the auth and user services need.
// *repositories.AccountRepository implements it.
type AccountStore interface {
	Create(ctx context.Context, acc *model.Account) error
	FindByUsername(ctx context.Context, username string, withPassword bool) (*model.Account, error)
	FindByID(ctx context.Context, id string) (*model.Account, error)
	Update(ctx context.Context, id string, patch model.AccountPatch) (*model.Account, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
	IsEmailAvailable(ctx context.Context, email string) (bool, error)
	Top(ctx context.Context, limit int) ([]model.Account, error)
	Rank(ctx context.Context, acc *model.Account) (int, error)
}
