package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"movieflow/user"
)

// UserModel represents the database model for users. Profile fields live on
// the same row as the credentials.
type UserModel struct {
	ID           string `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"not null;unique"`
	Phone        string
	Address      string
	PasswordHash string
	CreatedAt    time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// UserRepository implements user.Repository and auth.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser creates a new user row and returns it with generated fields set.
func (r *UserRepository) CreateUser(ctx context.Context, u user.User) (user.User, error) {
	model := toModelUser(u)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err, "email") {
			return user.User{}, user.ErrEmailAlreadyExists
		}
		return user.User{}, err
	}
	return toDomainUser(model), nil
}

// GetByEmail fetches a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var model UserModel

	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return toDomainUser(model), nil
}

// GetByID fetches a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	var model UserModel

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return toDomainUser(model), nil
}

// UpdateProfile updates mutable profile fields and returns the updated user.
func (r *UserRepository) UpdateProfile(ctx context.Context, id, name, phone, address string) (user.User, error) {
	result := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       name,
		"phone":      phone,
		"address":    address,
		"updated_at": time.Now().UTC(),
	})
	if result.Error != nil {
		return user.User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return user.User{}, user.ErrUserNotFound
	}
	return r.GetByID(ctx, id)
}

// UpdatePasswordHash updates user's password hash.
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now().UTC(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Delete removes the user. Owned watchlist entries, ratings and comments go
// with it through ON DELETE CASCADE.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&UserModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func toDomainUser(model UserModel) user.User {
	return user.User{
		ID:           model.ID,
		Name:         model.Name,
		Email:        model.Email,
		Phone:        model.Phone,
		Address:      model.Address,
		PasswordHash: model.PasswordHash,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func toModelUser(u user.User) UserModel {
	return UserModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		Address:      u.Address,
		PasswordHash: u.PasswordHash,
	}
}

// isUniqueViolation reports whether err is a postgres unique violation whose
// constraint name contains the given fragment.
func isUniqueViolation(err error, constraintPart string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && strings.Contains(strings.ToLower(pqErr.Constraint), constraintPart)
	}
	return false
}
