package model

import "time"

// Message is the payload returned by the welcome and placeholder endpoints.
type Message struct {
	Message string `json:"message"`
}

// Health is the payload returned by the health endpoint.
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
