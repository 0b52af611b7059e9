package usecase

import (
	"context"

	"imobi/internal/domain/entity"
)

// LoginInput represents back-office login credentials.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountInput represents back-office account creation data.
type AccountInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin staff"`
}

// LoginResult carries the signed access token and the authenticated account.
type LoginResult struct {
	AccessToken string            `json:"accessToken"`
	User        *entity.AdminUser `json:"user"`
}

// SessionUsecase defines the interface for back-office authentication.
type SessionUsecase interface {
	// Login verifies credentials and issues an access token. Unknown email
	// and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginResult, error)

	// CreateAccount registers a new back-office account (admin CLI only).
	CreateAccount(ctx context.Context, input *AccountInput) (*entity.AdminUser, error)
}
