package user

import (
	"net/mail"
	"strings"
	"time"

	"movieflow/errs"
)

var (
	ErrInvalidName            = errs.Errorf(errs.EINVALID, "user: invalid name")
	ErrInvalidEmail           = errs.Errorf(errs.EINVALID, "user: invalid email")
	ErrInvalidPassword        = errs.Errorf(errs.EINVALID, "user: password must have at least 6 characters")
	ErrUserIDRequired         = errs.Errorf(errs.EINVALID, "user: id is required")
	ErrUserNotFound           = errs.Errorf(errs.ENOTFOUND, "user not found")
	ErrEmailAlreadyExists     = errs.Errorf(errs.ECONFLICT, "this email is already registered")
	ErrCurrentPasswordInvalid = errs.Errorf(errs.EUNAUTHORIZED, "current password is incorrect")
)

// User is an account together with its denormalized profile. The profile
// fields (name, phone, address) live on the same row as the credentials, so
// registration writes both in one place.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Password     string    `json:"-"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrInvalidName
	}
	if err := validateEmail(u.Email); err != nil {
		return err
	}
	return validatePassword(u.Password)
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if len(strings.TrimSpace(password)) < 6 {
		return ErrInvalidPassword
	}
	return nil
}
