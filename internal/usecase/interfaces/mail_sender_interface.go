package interfaces

import (
	"context"

	"acme_shop/internal/domain/entities"
)

// IMailSender abstracts the transactional email provider.
//
// Delivery is best-effort from the caller's point of view: checkout does not
// fail when the confirmation email cannot be sent.

type IMailSender interface {
	SendVerificationEmail(ctx context.Context, u entities.User, verifyURL string) error
	SendPasswordResetEmail(ctx context.Context, email, resetURL string) error
	SendOrderConfirmation(ctx context.Context, o entities.Order) error
}
