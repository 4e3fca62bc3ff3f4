package models

import "time"

// Activity is one entry of the recent-actions list shown in the sidebar.
type Activity struct {
	ID     string    `json:"id"`
	Action string    `json:"action"`
	Detail string    `json:"detail,omitempty"`
	At     time.Time `json:"at"`
}
