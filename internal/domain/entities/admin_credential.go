package entities

import "time"

// AdminCredential is the single admin account. A zero value means the system
// has not been provisioned.
type AdminCredential struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AdminRole is the only role a session token can carry.
const AdminRole = "admin"

// AdminSession is what a verified session token asserts.
type AdminSession struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}
