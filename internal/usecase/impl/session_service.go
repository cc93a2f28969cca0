package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"sync"

	"mercado/config"
	"mercado/internal/domain/entity"
	domainerrors "mercado/internal/domain/errors"
	"mercado/internal/domain/service"
	"mercado/internal/infra/kvstore"
	"mercado/internal/usecase"
)

// sessionService holds the admin flag, the active view and the cart drawer
// toggle. Only the admin flag is persisted; the view and the drawer reset on
// restart.
type sessionService struct {
	mu            sync.RWMutex
	authenticated bool
	view          entity.View
	cartOpen      bool

	cfg    *config.AdminConfig
	hasher service.PasswordHasher
	tokens service.TokenService
	store  kvstore.Store
	logger *slog.Logger
}

// NewSessionService creates the session store, hydrating the admin flag from
// the adapter.
func NewSessionService(
	cfg *config.Config,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	store kvstore.Store,
	logger *slog.Logger,
) usecase.SessionUsecase {
	svc := &sessionService{
		view:   entity.ViewProducts,
		cfg:    cfg.Admin,
		hasher: hasher,
		tokens: tokens,
		store:  store,
		logger: logger,
	}
	svc.authenticated = kvstore.GetOr(context.Background(), store, kvstore.KeyIsAuthenticated, false)

	return svc
}

// Login checks the credentials against the configured admin pair. Success
// flips the persisted flag and issues the access token; failure changes
// nothing.
func (s *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if !s.credentialsMatch(input.Username, input.Password) {
		s.logger.Warn("Rejected admin login", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAdminToken(input.Username)
	if err != nil {
		s.logger.Error("Failed to sign access token", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	s.mu.Lock()
	s.authenticated = true
	s.store.Set(ctx, kvstore.KeyIsAuthenticated, true)
	s.mu.Unlock()

	s.logger.Info("Admin logged in", slog.String("username", input.Username))

	return &usecase.LoginOutput{AccessToken: token}, nil
}

func (s *sessionService) credentialsMatch(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) != 1 {
		return false
	}

	if s.cfg.PasswordHash != "" {
		return s.hasher.Check(password, s.cfg.PasswordHash)
	}

	return subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Password)) == 1
}

// Logout clears the persisted flag and returns to the products view.
func (s *sessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authenticated = false
	s.view = entity.ViewProducts
	s.store.Set(ctx, kvstore.KeyIsAuthenticated, false)
}

// IsAuthenticated reports the persisted admin flag.
func (s *sessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.authenticated
}

// View returns the active view.
func (s *sessionService) View() entity.View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.view
}

// SetView switches the active view. Views outside the closed enumeration are
// rejected.
func (s *sessionService) SetView(view entity.View) error {
	if !view.IsValid() {
		return domainerrors.ErrInvalidView
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view

	return nil
}

// ToggleCart flips the cart drawer and returns the new state.
func (s *sessionService) ToggleCart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cartOpen = !s.cartOpen

	return s.cartOpen
}

// IsCartOpen reports the cart drawer state.
func (s *sessionService) IsCartOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cartOpen
}
