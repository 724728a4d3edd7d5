package seeders

import (
	"context"
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

// NewMainSeeder creates a new main seeder
func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll(ctx context.Context, opts AccountSeedOptions) error {
	log.Println("Starting database seeding...")

	accountSeeder := NewAccountSeeder(s.db)
	created, err := accountSeeder.SeedAccounts(ctx, opts)
	if err != nil {
		log.Printf("Account seeding failed: %v", err)
		return err
	}

	total, err := accountSeeder.Total(ctx)
	if err != nil {
		return err
	}
	log.Printf("Database seeding completed successfully! (%d accounts created, %d total)", created, total)
	return nil
}

// SeedAccountsOnly seeds only demo accounts
func (s *MainSeeder) SeedAccountsOnly(ctx context.Context, opts AccountSeedOptions) error {
	_, err := NewAccountSeeder(s.db).SeedAccounts(ctx, opts)
	return err
}
