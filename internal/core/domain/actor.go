package domain

import "time"

const (
	RoleAdministrator = "administrator"
	RoleUser          = "user"
)

// Administrator is a back-office actor identified by username.
type Administrator struct {
	ID           int64  `json:"administrator_id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// User is a shop customer identified by email.
type User struct {
	ID            int64     `json:"user_id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Forename      string    `json:"forename"`
	Surname       string    `json:"surname"`
	PhoneNumber   string    `json:"phone_number"`
	PostalAddress string    `json:"postal_address"`
	CreatedAt     time.Time `json:"created_at"`
}
