package papertrade

import (
	"fmt"
	"time"
)

// Account is a local user record. Accounts are append-only: never mutated
// or deleted once created.
//
// The password is stored and compared in the clear. Accounts here gate
// nothing of value: this module simulates trading, not security. Do not
// reuse this pattern where real credentials are involved.
type Account struct {
	Username  string    `json:"username"` // unique, case-sensitive
	Password  string    `json:"password"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	minUsernameLen = 3
	minPasswordLen = 6
	maxPasswordLen = 12
)

// ValidateUsername reports whether username is acceptable, with a
// user-facing message when it is not.
func ValidateUsername(username string) (bool, string) {
	if len(username) < minUsernameLen {
		return false, fmt.Sprintf("Username must be at least %d characters", minUsernameLen)
	}
	first := username[0]
	if (first >= '0' && first <= '9') || first == '@' || first == '_' {
		return false, "Username cannot start with number, @, or _"
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false, "Username can only contain letters, numbers, and underscores"
		}
	}
	return true, ""
}

// ValidatePassword reports whether password is acceptable, with a
// user-facing message when it is not.
func ValidatePassword(password string) (bool, string) {
	if len(password) < minPasswordLen {
		return false, fmt.Sprintf("Password must be at least %d characters", minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return false, fmt.Sprintf("Password must be maximum %d characters", maxPasswordLen)
	}
	return true, ""
}

// NewAccount validates the fields and builds an account. Uniqueness is the
// caller's concern since only the account list can decide it.
func NewAccount(username, password, email string) (Account, error) {
	if ok, msg := ValidateUsername(username); !ok {
		return Account{}, fmt.Errorf("%w: %s", ErrInvalidAccount, msg)
	}
	if ok, msg := ValidatePassword(password); !ok {
		return Account{}, fmt.Errorf("%w: %s", ErrInvalidAccount, msg)
	}
	return Account{
		Username:  username,
		Password:  password,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// FindAccount looks up a username in the account list, case-sensitively.
func FindAccount(accounts []Account, username string) (Account, bool) {
	for _, a := range accounts {
		if a.Username == username {
			return a, true
		}
	}
	return Account{}, false
}

// Authenticate checks the credentials against the account list.
func Authenticate(accounts []Account, username, password string) (Account, error) {
	a, ok := FindAccount(accounts, username)
	if !ok {
		return Account{}, fmt.Errorf("login %q: %w", username, ErrUnknownUser)
	}
	if a.Password != password {
		return Account{}, fmt.Errorf("login %q: %w", username, ErrWrongPassword)
	}
	return a, nil
}
