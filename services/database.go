package services

import (
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shadowbox-gym/shadowbox_api/config"
	"github.com/shadowbox-gym/shadowbox_api/model"
	"github.com/shadowbox-gym/shadowbox_api/services/repositories"
)

type DatabaseService struct {
	context.DefaultService
	db       *gorm.DB
	accounts *repositories.AccountRepository

	cfg config.Database
}

const DATABASE_SVC = "database_svc"

// NewDatabaseService wraps an already opened connection.
func NewDatabaseService(db *gorm.DB) *DatabaseService {
	return &DatabaseService{db: db, accounts: repositories.NewAccountRepository(db)}
}

func (ds DatabaseService) Id() string {
	return DATABASE_SVC
}

func (ds *DatabaseService) Db() *gorm.DB {
	return ds.db
}

func (ds *DatabaseService) Accounts() *repositories.AccountRepository {
	return ds.accounts
}

func (ds *DatabaseService) Configure(ctx *context.Context) error {
	ds.cfg = ctx.Service(CONFIG_SVC).(*ConfigService).Config().Database
	return ds.DefaultService.Configure(ctx)
}

// Start opens the connection, retrying postgres with backoff, and migrates the schema.
func (ds *DatabaseService) Start() (err error) {
	maxRetries := 10
	if ds.cfg.Driver == config.DriverSQLite {
		maxRetries = 1
	}
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.WithFields(log.Fields{"driver": ds.cfg.Driver, "attempt": attempt}).Info("Connecting to database")

		ds.db, err = OpenDatabase(ds.cfg)
		if err == nil {
			break
		}

		if attempt == maxRetries {
			log.WithError(err).Errorf("Failed to connect to database after %d attempts", maxRetries)
			return err
		}

		log.WithError(err).Warnf("Database connection failed. Retrying in %v...", retryDelay)
		time.Sleep(retryDelay)

		retryDelay *= 2
		if retryDelay > 10*time.Second {
			retryDelay = 10 * time.Second
		}
	}

	if err = Migrate(ds.db); err != nil {
		log.WithError(err).Error("Failed to migrate database")
		return err
	}

	ds.accounts = repositories.NewAccountRepository(ds.db)
	log.Info("Database connected and migrated successfully")
	return nil
}

func (ds *DatabaseService) Shutdown() {
	if ds.db == nil {
		return
	}
	if sqlDB, err := ds.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// OpenDatabase opens and pings the configured database.
func OpenDatabase(cfg config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.PostgresDSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.File)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Account{})
}
