// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core identity record of the system. PasswordHash always holds
// a salted bcrypt digest, never plaintext.
type User struct {
	ID           int64     // Numeric primary key assigned by the database.
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name.
	DateOfBirth  time.Time // Date of birth; only the date part is significant.
	Address      string    // Street address.
	City         string    // City of residence.
	State        string    // Two-letter state code.
	Zip          string    // Five-digit postal code.
	PhoneNumber  string    // Contact phone number; unique across all users.
	Email        string    // Login identifier; unique across all users.
	PasswordHash string    // One-way salted hash of the password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
