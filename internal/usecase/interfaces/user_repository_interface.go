package interfaces

import (
	"context"

	"acme_shop/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// GetByEmail resolves through the email-index GSI. Ping is the cheapest
// possible read against the table; the cron keep-alive uses it to verify the
// store is reachable.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	SetVerified(ctx context.Context, id string) (entities.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) (entities.User, error)
	Ping(ctx context.Context) error
}
