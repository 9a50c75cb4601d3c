package models

import (
	"fmt"
	"strings"

	"github.com/shutteritch/TaskManager/types"
)

const userFieldCount = 2

// User represents a login account. Identity is the username; uniqueness is
// enforced by the registration flow before the record reaches the store.
//
// The password is stored in clear text. That is a known weakness of the
// existing file format, kept for compatibility with files already in use.
type User struct {
	Username string `validate:"required,nodelim"`
	Password string `validate:"required,nodelim"`
}

// Line serializes the user into its stored single-line form.
func (u User) Line() string {
	return u.Username + FieldDelimiter + u.Password
}

// ParseUser decodes a stored line into a User.
func ParseUser(line string) (User, error) {
	fields := strings.Split(line, FieldDelimiter)
	if len(fields) != userFieldCount {
		return User{}, &types.FormatError{
			Line:   line,
			Reason: fmt.Sprintf("expected %d fields, got %d", userFieldCount, len(fields)),
		}
	}
	return User{Username: fields[0], Password: fields[1]}, nil
}
