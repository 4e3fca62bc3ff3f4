package cache

import "bookshelf/models"

// ActivityLog keeps the most recent user actions, newest first, up to a
// fixed number of entries.
type ActivityLog interface {
	Write(entry models.Activity) error
	Read() ([]models.Activity, error)
	Close() error
}
