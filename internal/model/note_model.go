package model

import (
	"time"
)

type Note struct {
	Id      int64  `gorm:"primaryKey;autoIncrement"`
	Content string `gorm:"type:text;not null"`
	// Assigned by the database on insert; the postgres driver reads it
	// back through RETURNING.
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now()"`
}

func (Note) TableName() string {
	return "notes"
}
