// Package services contains application services for the marketadmin
// console: orchestration that spans the API, durable storage and more than
// one state transition, kept out of the reducers.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/storage"
	"github.com/dmitrijs2005/marketadmin/internal/logging"
)

const (
	AdminLoginRoute  = "/admin/login"
	SellerLoginRoute = "/login"
)

// Navigator moves the caller to another screen.
type Navigator func(route string)

// SessionService ends sessions.
//
// Contract:
//   - Logout: tell the server (best effort), forget the stored token, reset
//     the auth state, then navigate to the login screen for role. Navigation
//     happens on every path, including failures.
type SessionService interface {
	Logout(ctx context.Context, role string, navigate Navigator) error
}

// LogoutAPI is the server side of logout.
type LogoutAPI interface {
	Logout(ctx context.Context) (*api.MessageResponse, error)
}

// SessionClearer resets in-memory session state.
type SessionClearer interface {
	ClearSession()
}

type sessionService struct {
	api    LogoutAPI
	tokens storage.TokenStorage
	auth   SessionClearer
	log    logging.Logger
}

func NewSessionService(a LogoutAPI, tokens storage.TokenStorage, auth SessionClearer, log logging.Logger) SessionService {
	return &sessionService{api: a, tokens: tokens, auth: auth, log: log}
}

func (s *sessionService) Logout(ctx context.Context, role string, navigate Navigator) (err error) {
	defer func() {
		if navigate != nil {
			navigate(LoginRoute(role))
		}
	}()

	if _, err := s.api.Logout(ctx); err != nil {
		s.log.Warn(ctx, "server logout failed", "role", role, "error", err)
	}

	removeErr := s.tokens.Remove(ctx)
	s.auth.ClearSession()

	if removeErr != nil {
		return fmt.Errorf("remove stored token: %w", removeErr)
	}
	s.log.Info(ctx, "logged out", "role", role)
	return nil
}

// LoginRoute is the login screen for role.
func LoginRoute(role string) string {
	if role == models.RoleAdmin {
		return AdminLoginRoute
	}
	return SellerLoginRoute
}
