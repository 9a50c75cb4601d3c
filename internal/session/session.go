// Package session holds the explicit identity value threaded through
// every task and report operation. There is no ambient logged-in-user
// state anywhere in the program.
package session

import (
	"errors"

	"github.com/google/uuid"

	"github.com/shutteritch/TaskManager/store"
)

// AdminUsername is the account allowed to register users and generate
// reports.
const AdminUsername = "admin"

// ErrInvalidCredentials is returned when no stored user matches the
// submitted username/password pair.
var ErrInvalidCredentials = errors.New("username and password do not match any registered user")

// Session identifies an authenticated user for the duration of one
// interactive run.
type Session struct {
	ID       uuid.UUID
	Username string
}

// IsAdmin reports whether the session belongs to the admin account.
func (s Session) IsAdmin() bool {
	return s.Username == AdminUsername
}

// Login scans the user store for an exact credential match and returns a
// new session for it.
func Login(users store.UserStore, username, password string) (Session, error) {
	all, err := users.List()
	if err != nil {
		return Session{}, err
	}
	for _, u := range all {
		if u.Username == username && u.Password == password {
			return Session{ID: uuid.New(), Username: u.Username}, nil
		}
	}
	return Session{}, ErrInvalidCredentials
}
