// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the account holder in the system. The password digest lives
// alongside the identity row; it must never leave the persistence and
// usecase layers in any response payload.
type User struct {
	ID           int64     // Auto-incremented numeric identifier.
	Email        string    // Unique login identifier, uniqueness enforced by the store.
	PasswordHash string    // bcrypt digest of the password. Write-once outside an explicit password change.
	FirstName    string    // Optional display name component.
	LastName     string    // Optional display name component.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Sanitized returns a copy of the user with the password digest stripped,
// safe to hand to the delivery layer.
func (u User) Sanitized() User {
	u.PasswordHash = ""

	return u
}
