package models

import (
	"time"
)

// Message is the model for the 'messages' table (customer contact form).
// Read starts false and flips to true the first time an administrator opens
// the message; it never goes back.
type Message struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Message   string    `json:"message" db:"message"`
	Read      bool      `json:"read" db:"is_read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
