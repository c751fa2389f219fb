package httpserver

import (
	"movieflow/user"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,notblank,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
	Password string `json:"password" validate:"required,notblank,min=6,max=72"`
}

func (r RegisterRequest) ToUser() user.User {
	return user.User{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,notblank,max=72"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required,notblank"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name" validate:"required,notblank,min=2,max=100"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,notblank,max=72"`
	NewPassword     string `json:"newPassword" validate:"required,notblank,min=6,max=72,nefield=CurrentPassword"`
}

type AddWatchlistRequest struct {
	Title string `json:"title" validate:"required,notblank,max=500"`
}

type RateRequest struct {
	Title string `json:"title" validate:"required,notblank,max=500"`
	Kind  string `json:"kind" validate:"required,oneof=like dislike"`
}

type AddCommentRequest struct {
	Title string `json:"title" validate:"required,notblank,max=500"`
	Text  string `json:"text" validate:"required,notblank,max=2000"`
}
