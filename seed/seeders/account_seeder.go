package seeders

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shadowbox-gym/shadowbox_api/model"
	"github.com/shadowbox-gym/shadowbox_api/services/progression"
	"github.com/shadowbox-gym/shadowbox_api/services/repositories"
)

var demoUsernames = []string{
	"rocky", "apollo", "clubber", "drago", "mickey",
	"adrian", "creed", "paulie", "duke", "conlan",
}

type AccountSeedOptions struct {
	Count    int
	Password string
	MaxXP    int
	Seed     int64
}

// AccountSeeder creates demo accounts with randomised progression
type AccountSeeder struct {
	repo    *repositories.AccountRepository
	catalog *progression.Catalog
	now     func() time.Time
}

func NewAccountSeeder(db *gorm.DB) *AccountSeeder {
	return &AccountSeeder{
		repo:    repositories.NewAccountRepository(db),
		catalog: progression.DefaultCatalog(),
		now:     time.Now,
	}
}

// SeedAccounts creates up to opts.Count accounts, skipping usernames that already exist.
func (s *AccountSeeder) SeedAccounts(ctx context.Context, opts AccountSeedOptions) (int, error) {
	if opts.Count <= 0 {
		return 0, nil
	}
	if opts.MaxXP <= 0 {
		opts.MaxXP = 1500
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	now := s.now()
	created := 0

	for i := 0; i < opts.Count; i++ {
		username := demoUsername(i)

		available, err := s.repo.IsUsernameAvailable(ctx, username)
		if err != nil {
			return created, err
		}
		if !available {
			log.Printf("Account %s already exists, skipping", username)
			continue
		}

		acc := &model.Account{Username: username, PasswordHash: string(hash)}
		progression.NewAccountDefaults(acc, s.catalog, now)

		if _, err := progression.AddXP(acc, rng.Intn(opts.MaxXP+1), s.catalog, now); err != nil {
			return created, err
		}
		acc.Streak = rng.Intn(30)
		if acc.Streak > 0 {
			lastLogin := now.Add(-time.Duration(rng.Intn(24)) * time.Hour).UTC()
			acc.LastLogin = &lastLogin
		}

		if err := s.repo.Create(ctx, acc); err != nil {
			return created, fmt.Errorf("create %s: %w", username, err)
		}
		created++
		log.Printf("Created account %s (level %d, xp %d, streak %d)", acc.Username, acc.Level, acc.XP, acc.Streak)
	}
	return created, nil
}

// Total reports how many accounts exist after seeding.
func (s *AccountSeeder) Total(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func demoUsername(i int) string {
	if i < len(demoUsernames) {
		return demoUsernames[i]
	}
	return fmt.Sprintf("%s%d", demoUsernames[i%len(demoUsernames)], i/len(demoUsernames))
}
