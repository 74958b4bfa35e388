package service

import (
	"context"
	"errors"

	"github.com/bizscale/bizscale-api/internal/config"
	"github.com/bizscale/bizscale-api/internal/domain/enum"
	"github.com/bizscale/bizscale-api/pkg/apperror"
	"github.com/bizscale/bizscale-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues session tokens for the dashboard operator. Auto-login is
// an explicit policy, not a hardcoded bypass: when enabled, Login accepts
// empty credentials; when disabled, the password is checked against the
// configured admin credential.
type AuthService struct {
	jwtManager   *utils.JWTManager
	state        *StateService
	autoLogin    bool
	passwordHash []byte
}

// NewAuthService creates a new auth service. When auto-login is disabled, an
// admin password must be configured.
func NewAuthService(jwtManager *utils.JWTManager, state *StateService, cfg *config.AuthConfig) (*AuthService, error) {
	s := &AuthService{
		jwtManager: jwtManager,
		state:      state,
		autoLogin:  cfg.AutoLogin,
	}
	if !cfg.AutoLogin {
		if cfg.AdminPassword == "" {
			return nil, errors.New("AUTH_ADMIN_PASSWORD must be set when AUTH_AUTO_LOGIN is disabled")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s.passwordHash = hash
	}
	return s, nil
}

// Login validates the credential per the configured policy, marks the session
// logged in and returns a signed token.
func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	if !s.autoLogin {
		if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
			return "", apperror.ErrInvalidCredentials
		}
	}

	token, err := s.jwtManager.GenerateToken("admin", enum.RoleAdmin.String())
	if err != nil {
		return "", err
	}
	if err := s.state.MarkLoggedIn(ctx); err != nil {
		return "", err
	}
	return token, nil
}
