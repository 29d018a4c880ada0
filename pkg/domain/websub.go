package domain

import "time"

// Delivery is a recorded WebSub publish ping
type Delivery struct {
	ID         int64     `db:"id" json:"id"`
	HubURL     string    `db:"hub_url" json:"hub_url"`
	FeedURL    string    `db:"feed_url" json:"feed_url"`
	Success    bool      `db:"success" json:"success"`
	Error      string    `db:"error" json:"error,omitempty"`
	StatusCode int       `db:"status_code" json:"status_code,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
