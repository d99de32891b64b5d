package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/allbikes/dealerdesk/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	Role      string    `json:"role"`
}

type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
}

// Service authenticates the configured admin account and issues bearer
// tokens for the admin API.
type Service struct {
	cfg config.Config
	log *zap.Logger
}

func New(p Params) *Service {
	return &Service{
		cfg: p.Config,
		log: p.Log.Named("auth.service"),
	}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if s.cfg.AdminUsername == "" || s.cfg.AdminPassword == "" || s.cfg.AuthJWTSecret == "" {
		s.log.Warn("admin login attempted without auth configuration")
		return nil, ErrInvalidCredentials
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUsername)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.AdminPassword)) == 1
	if !usernameOK || !passwordOK {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := IssueToken(s.cfg.AuthJWTSecret, req.Username, RoleAdmin)
	if err != nil {
		return nil, err
	}

	s.log.Info("admin login succeeded", zap.String("username", req.Username))
	return &LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: exp,
		Role:      RoleAdmin,
	}, nil
}
