package cache

import (
	"sync"

	"bookshelf/models"
)

var _ ActivityLog = (*MemoryActivityLog)(nil)

// MemoryActivityLog is used when no Redis is configured. Entries are lost on
// restart.
type MemoryActivityLog struct {
	MaxNumber int

	mu      sync.Mutex
	entries []models.Activity
}

func CreateMemoryActivityLog(maxNumber int) *MemoryActivityLog {
	return &MemoryActivityLog{MaxNumber: maxNumber}
}

func (activity *MemoryActivityLog) Write(entry models.Activity) error {
	activity.mu.Lock()
	defer activity.mu.Unlock()

	activity.entries = append([]models.Activity{entry}, activity.entries...)
	if len(activity.entries) > activity.MaxNumber {
		activity.entries = activity.entries[:activity.MaxNumber]
	}
	return nil
}

func (activity *MemoryActivityLog) Read() ([]models.Activity, error) {
	activity.mu.Lock()
	defer activity.mu.Unlock()

	entries := make([]models.Activity, len(activity.entries))
	copy(entries, activity.entries)
	return entries, nil
}

func (activity *MemoryActivityLog) Close() error {
	return nil
}
