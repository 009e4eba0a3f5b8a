// Package models defines the identity, session and record types of the
// crmkeeper client.
package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/crmkeeper/internal/common"
)

// User is the active session: a registered identity without its password.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Identity is a registered user as persisted under common.UsersKey.
// The password is kept as given; no hashing is applied.
type Identity struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// User strips the password.
func (i Identity) User() User {
	return User{ID: i.ID, Username: i.Username, FirstName: i.FirstName, LastName: i.LastName}
}

// Registration is what the registration form collects before it calls the
// session store.
type Registration struct {
	Username        string
	FirstName       string
	LastName        string
	Password        []byte
	ConfirmPassword []byte
}

// Validate applies the form checks in the order the user sees them: password
// confirmation, password length, then required fields.
func (r Registration) Validate() error {
	if string(r.Password) != string(r.ConfirmPassword) {
		return common.ErrPasswordMismatch
	}
	if utf8.RuneCount(r.Password) < common.MinPasswordLength {
		return fmt.Errorf("%w: at least %d characters", common.ErrPasswordTooShort, common.MinPasswordLength)
	}
	return requireFields(
		field{"username", r.Username},
		field{"first name", r.FirstName},
		field{"last name", r.LastName},
	)
}
