package repositories

import (
	"errors"
	"time"

	"smoke-server/db"
	"smoke-server/entities"

	"gorm.io/gorm"
)

type smokeLogPgRepository struct {
	db db.Database
}

func NewSmokeLogPgRepository(database db.Database) SmokeLogRepository {
	return &smokeLogPgRepository{db: database}
}

func (r *smokeLogPgRepository) Create(reading *entities.SmokeLog) error {
	return r.db.GetDB().Create(reading).Error
}

// Recent returns up to limit rows, newest first by id.
func (r *smokeLogPgRepository) Recent(limit int) ([]entities.SmokeLog, error) {
	var logs []entities.SmokeLog
	err := r.db.GetDB().Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

// Latest returns the newest row, or nil when the table is empty.
func (r *smokeLogPgRepository) Latest() (*entities.SmokeLog, error) {
	var reading entities.SmokeLog
	err := r.db.GetDB().Order("id DESC").First(&reading).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reading, nil
}

// Now reads the store's clock, used by the /test-db probe.
func (r *smokeLogPgRepository) Now() (time.Time, error) {
	var now time.Time
	err := r.db.GetDB().Raw("SELECT NOW()").Scan(&now).Error
	return now, err
}
