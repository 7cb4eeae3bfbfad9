package repositories

import (
	"time"

	"smoke-server/entities"
)

type SmokeLogRepository interface {
	Create(reading *entities.SmokeLog) error
	Recent(limit int) ([]entities.SmokeLog, error)
	Latest() (*entities.SmokeLog, error)
	Now() (time.Time, error)
}
