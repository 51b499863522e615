package model

import (
	"strings"
	"time"
)

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Name     string `json:"name,omitempty"`

	// Bcrypt hash. Empty for identities created through OTP login.
	Password string `json:"password,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (u *User) GetPublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"phone":      u.Phone,
		"name":       u.Name,
		"created_at": u.CreatedAt,
	}
}

// GenerateUsername builds a URL-friendly username from a display name,
// email or phone number.
func GenerateUsername(from string) string {
	username := strings.ToLower(from)
	if at := strings.Index(username, "@"); at > 0 {
		username = username[:at]
	}
	username = strings.ReplaceAll(username, " ", "-")
	username = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, username)
	return username
}
