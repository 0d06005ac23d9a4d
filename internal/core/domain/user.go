package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User is an API account. Client users own the watches they create; admins
// can see every watch.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	ClientID     string    `json:"client_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
