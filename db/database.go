package db

import "gorm.io/gorm"

// Database is the process-scoped handle to the smoke_logs store. Handlers
// never touch it directly; it is handed to repositories at wiring time.
type Database interface {
	GetDB() *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }
