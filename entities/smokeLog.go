package entities

import (
	"time"
)

// SmokeLog is one persisted reading from the smoke/gas detector.
// Rows are append-only: no update or delete path exists anywhere in the server.
type SmokeLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Smoke     float64   `gorm:"not null" json:"smoke"`
	Alcohol   *float64  `json:"alcohol,omitempty"`
	Lpg       *float64  `json:"lpg,omitempty"`
	Status    string    `gorm:"type:varchar(16);not null" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SmokeLog) TableName() string {
	return "smoke_logs"
}

// IsAlerting reports whether this reading's status should trigger an
// outbound notification.
func (s *SmokeLog) IsAlerting() bool {
	switch s.Status {
	case StatusDanger, StatusFire:
		return true
	}
	return false
}

// Status classifications reported by the detector firmware. The server
// stores whatever the device sends; only these two fire alerts.
const (
	StatusNormal = "NORMAL"
	StatusDanger = "DANGER"
	StatusFire   = "FIRE"
)
