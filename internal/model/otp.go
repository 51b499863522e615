package model

import "time"

// OTPChannel is how the code reaches the user.
type OTPChannel string

const (
	ChannelEmail OTPChannel = "email"
	ChannelPhone OTPChannel = "phone"
)

func (c OTPChannel) Valid() bool {
	return c == ChannelEmail || c == ChannelPhone
}

// OTPRecord is a pending one-time code. At most one live record exists per
// identifier; issuing a new code discards the old record.
type OTPRecord struct {
	Identifier string     `json:"identifier"`
	Code       string     `json:"code"`
	Channel    OTPChannel `json:"channel"`
	ExpiresAt  time.Time  `json:"expires_at"`
	Attempts   int        `json:"attempts"`
	CreatedAt  time.Time  `json:"created_at"`
}
