package user

import (
	"context"
	"strings"
)

type Service interface {
	GetUserByID(ctx context.Context, id string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	UpdateProfile(ctx context.Context, id, name, phone, address string) (User, error)
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, id string) error
}

type Repository interface {
	CreateUser(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	UpdateProfile(ctx context.Context, id, name, phone, address string) (User, error)
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashed, plain string) error
}

type Usecase struct {
	r      Repository
	hasher PasswordHasher
}

func NewUsecase(r Repository, h PasswordHasher) *Usecase {
	return &Usecase{
		r:      r,
		hasher: h,
	}
}

func (uc *Usecase) GetUserByID(ctx context.Context, id string) (User, error) {
	if strings.TrimSpace(id) == "" {
		return User{}, ErrUserIDRequired
	}
	return uc.r.GetByID(ctx, id)
}

func (uc *Usecase) GetUserByEmail(ctx context.Context, email string) (User, error) {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return User{}, err
	}
	return uc.r.GetByEmail(ctx, email)
}

func (uc *Usecase) UpdateProfile(ctx context.Context, id, name, phone, address string) (User, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return User{}, ErrUserIDRequired
	}
	if name == "" {
		return User{}, ErrInvalidName
	}
	return uc.r.UpdateProfile(ctx, id, name, strings.TrimSpace(phone), strings.TrimSpace(address))
}

func (uc *Usecase) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrUserIDRequired
	}
	if strings.TrimSpace(currentPassword) == "" {
		return ErrCurrentPasswordInvalid
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	existing, err := uc.r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.hasher.Compare(existing.PasswordHash, currentPassword); err != nil {
		return ErrCurrentPasswordInvalid
	}

	hashed, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return uc.r.UpdatePasswordHash(ctx, id, hashed)
}

// DeleteAccount removes the user row. Watchlist entries, ratings and comments
// owned by the user are removed by the storage layer's cascading foreign keys.
func (uc *Usecase) DeleteAccount(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrUserIDRequired
	}
	return uc.r.Delete(ctx, id)
}
