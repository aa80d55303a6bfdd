package models

// User represents a registered user. ID is the hex form of the storage
// identifier; PasswordHash is never serialized.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
