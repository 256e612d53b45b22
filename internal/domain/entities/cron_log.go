package entities

import "time"

// CronLog records one execution of the database keep-alive ping.
//
// Storage model (DynamoDB):
//   - PK: id
type CronLog struct {
	ID         string    `json:"id"`
	Endpoint   string    `json:"endpoint"`
	Success    bool      `json:"success"`
	DurationMS int64     `json:"duration_ms"`
	Source     string    `json:"source"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
