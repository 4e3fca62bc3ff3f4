package cache

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"bookshelf/models"
)

// Recorder stamps entries and writes them to an ActivityLog. A failed write
// is logged and otherwise ignored: losing a history line must never fail the
// action that produced it.
type Recorder struct {
	Log    ActivityLog
	Logger *slog.Logger
	Now    func() time.Time
}

func NewRecorder(log ActivityLog, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{Log: log, Logger: logger, Now: time.Now}
}

func (recorder *Recorder) Record(action, detail string) {
	entry := models.Activity{
		ID:     uuid.NewString(),
		Action: action,
		Detail: detail,
		At:     recorder.Now().UTC(),
	}
	if err := recorder.Log.Write(entry); err != nil {
		recorder.Logger.Warn("recording activity failed", "action", action, "error", err)
	}
}

// Recent returns the stored entries, or none if the log cannot be read.
func (recorder *Recorder) Recent() []models.Activity {
	entries, err := recorder.Log.Read()
	if err != nil {
		recorder.Logger.Warn("reading activity failed", "error", err)
		return nil
	}
	return entries
}
