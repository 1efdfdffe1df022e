package domain

import "time"

// User is a registered account. Only the email identity matters to the core;
// the password hash is consumed exclusively by the auth service.
type User struct {
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
