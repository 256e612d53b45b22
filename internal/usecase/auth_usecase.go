package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"acme_shop/internal/domain/entities"
	"acme_shop/internal/ratelimit"
	"acme_shop/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrUserAlreadyExists        = errors.New("user already exists")
	ErrInvalidCredentials       = errors.New("invalid email or password")
	ErrUserNotVerified          = errors.New("account pending verification")
	ErrRateLimited              = errors.New("too many verification checks")
	ErrInvalidVerificationToken = errors.New("invalid verification token")
	ErrInvalidResetToken        = errors.New("invalid or expired reset token")
	ErrInvalidUserInput         = errors.New("invalid user input")
)

const (
	bcryptCost       = 12
	sessionDuration  = 24 * time.Hour
	resetTokenExpiry = time.Hour
)

var uuidRe = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

// VerificationStatus is the outcome of a verification-state check.
type VerificationStatus struct {
	Verified bool
	Message  string
}

// IAuthUseCase covers the admin account lifecycle: registration with email
// verification, login with JWT issuance, the rate-limited verification poll,
// and the password reset flow.

type IAuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (entities.User, error)
	Login(ctx context.Context, email, password string) (entities.User, string, error)
	CheckVerification(ctx context.Context, email string) (VerificationStatus, error)
	VerifyByToken(ctx context.Context, token string) (entities.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

type AuthUseCase struct {
	users    interfaces.IUserRepository
	resets   interfaces.IPasswordResetRepository
	mailer   interfaces.IMailSender
	limiter  *ratelimit.FixedWindow
	tokenKey []byte
	baseURL  string
	logger   *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

// NewAuthUseCase builds the auth use case. mailer may be nil when SMTP is not
// configured; verification and reset emails are then skipped with a warning.
func NewAuthUseCase(
	users interfaces.IUserRepository,
	resets interfaces.IPasswordResetRepository,
	mailer interfaces.IMailSender,
	limiter *ratelimit.FixedWindow,
	tokenKey []byte,
	baseURL string,
	logger *zap.Logger,
) *AuthUseCase {
	if limiter == nil {
		limiter = ratelimit.NewFixedWindow(ratelimit.DefaultConfig())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthUseCase{
		users:    users,
		resets:   resets,
		mailer:   mailer,
		limiter:  limiter,
		tokenKey: tokenKey,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}
}

func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (entities.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return entities.User{}, ErrInvalidUserInput
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.users.Create(ctx, user)
	if err != nil {
		return entities.User{}, err
	}

	if u.mailer != nil {
		token := verificationToken(created.ID, now)
		verifyURL := u.baseURL + "/v1/auth/verify/" + token
		if err := u.mailer.SendVerificationEmail(ctx, created, verifyURL); err != nil {
			u.logger.Warn("verification email failed",
				zap.String("user_id", created.ID), zap.Error(err))
		}
	} else {
		u.logger.Warn("mailer not configured; verification email skipped",
			zap.String("user_id", created.ID))
	}

	return created, nil
}

// Login refuses unverified accounts before checking the password, so a
// pending user sees the verification message rather than a credential error.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.User{}, "", ErrInvalidUserInput
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, "", err
	}
	if user.ID == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}

	if !user.IsVerified {
		return entities.User{}, "", ErrUserNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return entities.User{}, "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"exp":     time.Now().Add(sessionDuration).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.tokenKey)
	if err != nil {
		return entities.User{}, "", err
	}

	u.logger.Info("user logged in", zap.String("user_id", user.ID))
	return user, token, nil
}

// CheckVerification is the rate-limited verification poll: at most three
// checks per email per minute, enforced before the store is touched.
func (u *AuthUseCase) CheckVerification(ctx context.Context, email string) (VerificationStatus, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return VerificationStatus{}, ErrInvalidUserInput
	}

	if !u.limiter.Allow(email) {
		return VerificationStatus{}, ErrRateLimited
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return VerificationStatus{}, err
	}
	if user.ID == "" {
		return VerificationStatus{}, ErrUserNotFound
	}

	if user.IsVerified {
		return VerificationStatus{
			Verified: true,
			Message:  "Your account has been verified! You can now log in.",
		}, nil
	}
	return VerificationStatus{
		Verified: false,
		Message:  "Your account is still pending verification. Please check back later.",
	}, nil
}

func (u *AuthUseCase) VerifyByToken(ctx context.Context, token string) (entities.User, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return entities.User{}, ErrInvalidVerificationToken
	}

	userID := uuidRe.FindString(string(decoded))
	if userID == "" {
		return entities.User{}, ErrInvalidVerificationToken
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrInvalidVerificationToken
	}

	verified, err := u.users.SetVerified(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}

	u.logger.Info("user verified", zap.String("user_id", userID))
	return verified, nil
}

// ForgotPassword succeeds regardless of whether the email is known, so the
// endpoint cannot be used to enumerate accounts.
func (u *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidUserInput
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.ID == "" {
		return nil
	}

	now := time.Now().UTC()
	reset := entities.PasswordReset{
		Token:     resetToken(user.ID, now),
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: now.Add(resetTokenExpiry),
		CreatedAt: now,
	}
	if _, err := u.resets.Create(ctx, reset); err != nil {
		return err
	}

	if u.mailer != nil {
		resetURL := u.baseURL + "/reset-password/" + reset.Token
		if err := u.mailer.SendPasswordResetEmail(ctx, user.Email, resetURL); err != nil {
			u.logger.Warn("password reset email failed",
				zap.String("user_id", user.ID), zap.Error(err))
		}
	}
	return nil
}

func (u *AuthUseCase) ResetPassword(ctx context.Context, token, password string) error {
	token = strings.TrimSpace(token)
	if token == "" || password == "" {
		return ErrInvalidUserInput
	}

	reset, err := u.resets.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if reset.Token == "" || reset.Expired(time.Now().UTC()) {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	updated, err := u.users.UpdatePassword(ctx, reset.UserID, string(hash))
	if err != nil {
		return err
	}
	if updated.ID == "" {
		return ErrUserNotFound
	}

	// Consuming the token is best-effort; the password is already changed.
	if err := u.resets.DeleteByToken(ctx, token); err != nil {
		u.logger.Warn("failed deleting used reset token", zap.Error(err))
	}

	u.logger.Info("password reset", zap.String("user_id", reset.UserID))
	return nil
}

func verificationToken(userID string, now time.Time) string {
	raw := fmt.Sprintf("%s:%d", userID, now.UnixNano())
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func resetToken(userID string, now time.Time) string {
	raw := fmt.Sprintf("%s:%s:%d", uuid.NewString(), userID, now.UnixNano())
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}
