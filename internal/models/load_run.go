package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LoadRun: запись истории загрузок каталога школ.
// Хранятся только диагностические данные, сама коллекция не сохраняется.
type LoadRun struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	StartedAt  time.Time      `gorm:"index;not null" json:"started_at"`
	FinishedAt time.Time      `gorm:"not null" json:"finished_at"`
	Trigger    string         `gorm:"type:varchar(32);not null" json:"trigger"` // startup, cron, admin
	Listed     int            `gorm:"not null" json:"listed"`
	Loaded     int            `gorm:"not null" json:"loaded"`
	Failed     bool           `gorm:"not null;default:false" json:"failed"`
	Error      string         `json:"error,omitempty"`
	Skipped    datatypes.JSON `json:"skipped,omitempty"` // []loader.Skip в JSON
}
