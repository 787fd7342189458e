package entity

import "time"

// User usuario de la aplicación (login con email + password bcrypt).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Name         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
