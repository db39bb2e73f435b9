package models

import "time"

// Business is owned by the CRUD layer; the engine only lists active ones.
type Business struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
