package ports

import (
	"context"

	"github.com/99minutos/tracking-system/internal/core/domain"
)

// AuthRepository persists API accounts.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
