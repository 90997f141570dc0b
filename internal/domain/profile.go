package domain

import "time"

type Profile struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Age       int       `json:"age" db:"age"`
	Location  string    `json:"location" db:"location"`
	Bio       string    `json:"bio" db:"bio"`
	Interests []string  `json:"interests" db:"interests"`
	Images    []string  `json:"images" db:"images"`
	Distance  float64   `json:"distance" db:"distance"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
