package domain

import "errors"

// ErrIncompleteUser is returned when a user record lacks id, name or email.
var ErrIncompleteUser = errors.New("user must have id, name and email")

// User is the authenticated account of the active session
type User struct {
	ID        string `json:"id"`                  // Stable user identifier
	Name      string `json:"name"`                // Display name
	Email     string `json:"email"`               // Contact email
	AvatarURL string `json:"avatarUrl,omitempty"` // Optional avatar reference
}

// Validate reports whether the user is fully formed.
func (u User) Validate() error {
	if u.ID == "" || u.Name == "" || u.Email == "" {
		return ErrIncompleteUser
	}
	return nil
}
