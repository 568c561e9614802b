package model

import "time"

// UserID uniquely identifies a registered user
type UserID int64

// User represents a registered account
type User struct {
	ID             UserID
	Username       string // login name, unique
	Email          string // unique
	HashedPassword string // bcrypt hash, never serialized to clients
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
