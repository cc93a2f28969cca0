package usecase

import (
	"context"

	"mercado/internal/domain/entity"
)

// LoginInput represents the admin login request
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput represents the login response
type LoginOutput struct {
	AccessToken string `json:"access_token"`
}

// SessionUsecase is the session/view store: the admin flag, the active view
// and the cart drawer toggle.
type SessionUsecase interface {
	// Login checks the credentials against the configured admin pair and,
	// on success, marks the session authenticated and issues a token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout clears the authenticated flag and returns to the products
	// view.
	Logout(ctx context.Context)

	// IsAuthenticated reports the persisted admin flag.
	IsAuthenticated() bool

	// View returns the active view.
	View() entity.View

	// SetView switches the active view.
	SetView(view entity.View) error

	// ToggleCart flips the cart drawer and returns the new state.
	ToggleCart() bool

	// IsCartOpen reports the cart drawer state.
	IsCartOpen() bool
}
