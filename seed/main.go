package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shadowbox-gym/shadowbox_api/config"
	"github.com/shadowbox-gym/shadowbox_api/seed/seeders"
	"github.com/shadowbox-gym/shadowbox_api/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, accounts")
		dbPath   = flag.String("db", "", "SQLite database path (overrides the configured database)")
		count    = flag.Int("count", 10, "Number of demo accounts to create")
		password = flag.String("password", "password123", "Password for every demo account")
		maxXP    = flag.Int("max-xp", 1500, "Upper bound of XP granted to each demo account")
		rngSeed  = flag.Int64("seed", 1, "Random seed for demo progression")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	db, err := openDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := services.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	mainSeeder := seeders.NewMainSeeder(db)
	opts := seeders.AccountSeedOptions{
		Count:    *count,
		Password: *password,
		MaxXP:    *maxXP,
		Seed:     *rngSeed,
	}
	ctx := context.Background()

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		if err := mainSeeder.SeedAll(ctx, opts); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case "accounts":
		log.Println("Seeding accounts only...")
		if err := mainSeeder.SeedAccountsOnly(ctx, opts); err != nil {
			log.Fatalf("Failed to seed accounts: %v", err)
		}
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all' or 'accounts'", *seedType)
	}

	log.Println("Seeding operation completed successfully!")
}

func openDatabase(path string) (*gorm.DB, error) {
	if path != "" {
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
		if err == nil {
			log.Printf("Connected to database: %s", path)
		}
		return db, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	db, err := services.OpenDatabase(cfg.Database)
	if err == nil {
		log.Printf("Connected to %s database", cfg.Database.Driver)
	}
	return db, err
}

func showHelp() {
	log.Print(`
Database Seeding Tool for the Shadowbox API

Usage: go run ./seed [flags]

Flags:
  -type string
        Type of seeding to perform (default "all")
        Options: all, accounts
  -db string
        SQLite database path (overrides DB_DRIVER / DATABASE_URL)
  -count int
        Number of demo accounts (default 10)
  -password string
        Password shared by every demo account (default "password123")
  -max-xp int
        Upper bound of random XP per account (default 1500)
  -seed int
        Random seed (default 1)
  -help
        Show this help message

Examples:
  # Seed the configured database
  go run ./seed

  # Seed a local SQLite file with 25 accounts
  go run ./seed -db=./shadowbox.db -count=25
`)
}
