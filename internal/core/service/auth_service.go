package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/brygada/work-manager/internal/core/domain"
	"github.com/brygada/work-manager/internal/core/ports"
)

// AuthService verifies login credentials against the store and issues
// signed session tokens.
type AuthService struct {
	store     ports.Store
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(store ports.Store, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Login checks the login/password pair and returns a token plus the matched
// user. A missing user and a wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, *domain.User, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return "", nil, err
	}

	user, ok := state.FindUserByLogin(login)
	if !ok || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Info().Str("login", login).Msg("login rejected")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("login", user.Login).Str("role", user.Role).Msg("login accepted")
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"login": user.Login,
		"rola":  user.Role,
		"nazwa": user.DisplayName,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
