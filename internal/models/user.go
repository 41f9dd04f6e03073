// Package models holds the persisted records of the chat application.
package models

import "time"

// Default preferences assigned at signup.
const (
	DefaultModel       = "llama-3.3-70b-versatile"
	DefaultTemperature = 0.7
	DefaultTheme       = "light"
)

type Preferences struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Theme       string  `json:"theme"`
}

func DefaultPreferences() Preferences {
	return Preferences{Model: DefaultModel, Temperature: DefaultTemperature, Theme: DefaultTheme}
}

// User is a registered account keyed by Identifier.
type User struct {
	Identifier   string      `json:"-"`
	PasswordHash string      `json:"password"`
	CreatedAt    time.Time   `json:"created_at"`
	Preferences  Preferences `json:"preferences"`
}
