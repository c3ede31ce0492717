package domain

import (
	"net/mail"
	"strings"
	"time"
)

const (
	minPasswordLength = 6
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

type User struct {
	ID           uint64
	FirstName    string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SignupInput struct {
	FirstName string
	Email     string
	Password  string
}

// ValidateSignup checks every field and reports all violations together.
// The plaintext password is only ever inspected here and hashed by the
// auth service; it is never persisted or logged.
func ValidateSignup(in SignupInput) (SignupInput, *ValidationError) {
	verr := &ValidationError{}

	in.FirstName = strings.TrimSpace(in.FirstName)
	if in.FirstName == "" {
		verr.Add("firstName", "first name cannot be empty")
	}

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Email == "" {
		verr.Add("email", "email cannot be empty")
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		verr.Add("email", "must be a valid email address")
	}

	if in.Password == "" {
		verr.Add("password", "password cannot be empty")
	} else if len(in.Password) < minPasswordLength {
		verr.Add("password", "password must be at least 6 characters long")
	} else if len(in.Password) > maxPasswordLength {
		verr.Add("password", "password must be at most 72 characters long")
	}

	if verr.HasErrors() {
		return SignupInput{}, verr
	}
	return in, nil
}
