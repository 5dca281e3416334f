package ports

import (
	"context"

	"github.com/brygada/work-manager/internal/core/domain"
)

// AuthService authenticates users and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, login, password string) (string, *domain.User, error)
}
