package interfaces

import (
	"context"

	"acme_shop/internal/domain/entities"
)

// IPasswordResetRepository abstracts DynamoDB persistence for PasswordReset
// tokens. Expiry is checked by the caller; the repository stores and returns
// rows as-is.

type IPasswordResetRepository interface {
	Create(ctx context.Context, r entities.PasswordReset) (entities.PasswordReset, error)
	GetByToken(ctx context.Context, token string) (entities.PasswordReset, error)
	DeleteByToken(ctx context.Context, token string) error
}
