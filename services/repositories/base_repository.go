package repositories

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shadowbox-gym/shadowbox_api/shared"
)

// BaseRepository provides common database functionality
type BaseRepository struct {
	db *gorm.DB
}

func NewBaseRepository(db *gorm.DB) BaseRepository {
	return BaseRepository{db: db}
}

// HandleError maps gorm and driver errors onto the shared sentinels and logs them.
func (r *BaseRepository) HandleError(err error) error {
	if err == nil {
		return nil
	}

	var errorType string
	var kind error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		errorType = "NOT_FOUND"
		kind = shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		errorType = "UNIQUE_CONSTRAINT"
		kind = shared.ErrDuplicateIdentity
	default:
		errorType = "INTERNAL_ERROR"
	}

	logEntry := log.WithFields(log.Fields{
		"error_type": errorType,
		"error":      err.Error(),
	})

	switch kind {
	case nil:
		logEntry.Error("Database error occurred")
		return fmt.Errorf("%s: %w", errorType, err)
	case shared.ErrNotFound:
		logEntry.Debug("Record not found")
	default:
		logEntry.Warn("Database operation failed")
	}

	return fmt.Errorf("%w: %w", kind, err)
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
