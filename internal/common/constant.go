// Package common contains shared constants and sentinel errors used across
// the crmkeeper client components.
package common

// Keys of the durable key-value substrate.
const (
	// SessionKey holds the active session (identity without password).
	SessionKey = "crm_user"
	// UsersKey holds the ordered list of registered identities.
	UsersKey = "crm_users"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6
