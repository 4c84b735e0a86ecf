package entity

import (
	"time"
)

// Note is the only domain record. Lifecycle is create-only: the service
// never updates or deletes a persisted note.
type Note struct {
	Id        int64
	Content   string
	CreatedAt time.Time
}
