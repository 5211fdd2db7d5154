package domain

import "time"

type Role string

const (
	RoleAlumni Role = "ALUMNI"
)

// User is the identity record; alumni profiles hang off it 1:1 via email.
type User struct {
	Email           string    `json:"email"`
	Names           string    `json:"names"`
	Surnames        string    `json:"surnames"`
	PasswordHash    string    `json:"-"`
	Role            Role      `json:"role"`
	Address         *string   `json:"address"`
	TelephoneNumber *string   `json:"telephoneNumber"`
	IsVerified      bool      `json:"isVerified"`
	CreatedAt       time.Time `json:"createdAt"`
}
