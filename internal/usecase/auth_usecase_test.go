package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"acme_shop/internal/domain/entities"
	"acme_shop/internal/ratelimit"
	mock_interfaces "acme_shop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testUserID = "b2f1a3c4-1111-4222-8333-444455556666"

func newAuthUC(t *testing.T) (*AuthUseCase, *mock_interfaces.MockIUserRepository, *mock_interfaces.MockIPasswordResetRepository, *mock_interfaces.MockIMailSender) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	resets := mock_interfaces.NewMockIPasswordResetRepository(ctrl)
	mailer := mock_interfaces.NewMockIMailSender(ctrl)
	uc := NewAuthUseCase(users, resets, mailer, nil, []byte("test-secret"), "http://localhost:8080", nil)
	return uc, users, resets, mailer
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc, _, _, _ := newAuthUC(t)
		_, err := uc.Register(context.Background(), "", "a@b.com", "password1")
		if !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, users, _, _ := newAuthUC(t)
		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{ID: testUserID}, nil)
		_, err := uc.Register(context.Background(), "Jo", "a@b.com", "password1")
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("creates unverified and sends email", func(t *testing.T) {
		uc, users, _, mailer := newAuthUC(t)
		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.IsVerified {
					t.Fatal("new accounts must start unverified")
				}
				if u.PasswordHash == "password1" {
					t.Fatal("password stored in clear")
				}
				return u, nil
			})
		mailer.EXPECT().SendVerificationEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		user, err := uc.Register(context.Background(), "Jo", "a@b.com", "password1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Email != "a@b.com" {
			t.Fatalf("unexpected email: %s", user.Email)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		uc, users, _, _ := newAuthUC(t)
		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{}, nil)
		_, _, err := uc.Login(context.Background(), "a@b.com", "password1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unverified checked before password", func(t *testing.T) {
		uc, users, _, _ := newAuthUC(t)
		// Even with a wrong password the caller sees the verification error.
		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{
			ID: testUserID, Email: "a@b.com", IsVerified: false,
			PasswordHash: hashFor(t, "password1"),
		}, nil)
		_, _, err := uc.Login(context.Background(), "a@b.com", "wrong")
		if !errors.Is(err, ErrUserNotVerified) {
			t.Fatalf("expected ErrUserNotVerified, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, users, _, _ := newAuthUC(t)
		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{
			ID: testUserID, Email: "a@b.com", IsVerified: true,
			PasswordHash: hashFor(t, "password1"),
		}, nil)
		_, _, err := uc.Login(context.Background(), "a@b.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("issues token", func(t *testing.T) {
		uc, users, _, _ := newAuthUC(t)
		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{
			ID: testUserID, Email: "a@b.com", IsVerified: true,
			PasswordHash: hashFor(t, "password1"),
		}, nil)
		user, token, err := uc.Login(context.Background(), "a@b.com", "password1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" {
			t.Fatal("expected a session token")
		}
		if user.ID != testUserID {
			t.Fatalf("unexpected user: %s", user.ID)
		}
	})
}

func TestAuthUseCase_CheckVerification(t *testing.T) {
	t.Run("verified message", func(t *testing.T) {
		uc, users, _, _ := newAuthUC(t)
		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{ID: testUserID, IsVerified: true}, nil)

		status, err := uc.CheckVerification(context.Background(), "a@b.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !status.Verified || status.Message != "Your account has been verified! You can now log in." {
			t.Fatalf("unexpected status: %+v", status)
		}
	})

	t.Run("pending message", func(t *testing.T) {
		uc, users, _, _ := newAuthUC(t)
		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{ID: testUserID, IsVerified: false}, nil)

		status, err := uc.CheckVerification(context.Background(), "a@b.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.Verified || status.Message != "Your account is still pending verification. Please check back later." {
			t.Fatalf("unexpected status: %+v", status)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		uc, users, _, _ := newAuthUC(t)
		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{}, nil)
		_, err := uc.CheckVerification(context.Background(), "a@b.com")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("fourth check in a window is rejected before the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		limiter := ratelimit.NewFixedWindow(ratelimit.Config{Window: time.Minute, MaxAttempts: 3})
		uc := NewAuthUseCase(users, nil, nil, limiter, []byte("k"), "", nil)

		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{ID: testUserID, IsVerified: false}, nil).Times(3)

		for i := 0; i < 3; i++ {
			if _, err := uc.CheckVerification(context.Background(), "a@b.com"); err != nil {
				t.Fatalf("check %d: unexpected error: %v", i+1, err)
			}
		}
		if _, err := uc.CheckVerification(context.Background(), "a@b.com"); !errors.Is(err, ErrRateLimited) {
			t.Fatalf("expected ErrRateLimited, got %v", err)
		}

		// A different email is unaffected.
		users.EXPECT().GetByEmail(gomock.Any(), "c@d.com").Return(entities.User{ID: testUserID, IsVerified: true}, nil)
		if _, err := uc.CheckVerification(context.Background(), "c@d.com"); err != nil {
			t.Fatalf("unexpected error for second email: %v", err)
		}
	})
}

func TestAuthUseCase_VerifyByToken(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		uc, _, _, _ := newAuthUC(t)
		_, err := uc.VerifyByToken(context.Background(), "!!not-base64!!")
		if !errors.Is(err, ErrInvalidVerificationToken) {
			t.Fatalf("expected ErrInvalidVerificationToken, got %v", err)
		}
	})

	t.Run("no uuid inside", func(t *testing.T) {
		uc, _, _, _ := newAuthUC(t)
		token := base64.RawURLEncoding.EncodeToString([]byte("nothing-here:123"))
		_, err := uc.VerifyByToken(context.Background(), token)
		if !errors.Is(err, ErrInvalidVerificationToken) {
			t.Fatalf("expected ErrInvalidVerificationToken, got %v", err)
		}
	})

	t.Run("marks verified", func(t *testing.T) {
		uc, users, _, _ := newAuthUC(t)
		token := verificationToken(testUserID, time.Now())

		users.EXPECT().GetByID(gomock.Any(), testUserID).Return(entities.User{ID: testUserID}, nil)
		users.EXPECT().SetVerified(gomock.Any(), testUserID).Return(entities.User{ID: testUserID, IsVerified: true}, nil)

		user, err := uc.VerifyByToken(context.Background(), token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !user.IsVerified {
			t.Fatal("expected verified user")
		}
	})
}

func TestAuthUseCase_PasswordReset(t *testing.T) {
	t.Run("forgot password hides unknown emails", func(t *testing.T) {
		uc, users, _, _ := newAuthUC(t)
		users.EXPECT().GetByEmail(gomock.Any(), "ghost@b.com").Return(entities.User{}, nil)
		if err := uc.ForgotPassword(context.Background(), "ghost@b.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("forgot password issues token and email", func(t *testing.T) {
		uc, users, resets, mailer := newAuthUC(t)
		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{ID: testUserID, Email: "a@b.com"}, nil)
		resets.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.PasswordReset) (entities.PasswordReset, error) {
				if r.UserID != testUserID || r.Token == "" {
					t.Fatalf("unexpected reset row: %+v", r)
				}
				if !r.ExpiresAt.After(r.CreatedAt) {
					t.Fatal("expiry must be in the future")
				}
				return r, nil
			})
		mailer.EXPECT().SendPasswordResetEmail(gomock.Any(), "a@b.com", gomock.Any()).Return(nil)

		if err := uc.ForgotPassword(context.Background(), "a@b.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		uc, _, resets, _ := newAuthUC(t)
		resets.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.PasswordReset{
			Token:     "tok",
			UserID:    testUserID,
			ExpiresAt: time.Now().UTC().Add(-time.Minute),
		}, nil)

		err := uc.ResetPassword(context.Background(), "tok", "newpassword1")
		if !errors.Is(err, ErrInvalidResetToken) {
			t.Fatalf("expected ErrInvalidResetToken, got %v", err)
		}
	})

	t.Run("reset updates password and consumes token", func(t *testing.T) {
		uc, users, resets, _ := newAuthUC(t)
		resets.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.PasswordReset{
			Token:     "tok",
			UserID:    testUserID,
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}, nil)
		users.EXPECT().UpdatePassword(gomock.Any(), testUserID, gomock.Any()).Return(entities.User{ID: testUserID}, nil)
		resets.EXPECT().DeleteByToken(gomock.Any(), "tok").Return(nil)

		if err := uc.ResetPassword(context.Background(), "tok", "newpassword1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("token delete failure does not fail the reset", func(t *testing.T) {
		uc, users, resets, _ := newAuthUC(t)
		resets.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.PasswordReset{
			Token:     "tok",
			UserID:    testUserID,
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}, nil)
		users.EXPECT().UpdatePassword(gomock.Any(), testUserID, gomock.Any()).Return(entities.User{ID: testUserID}, nil)
		resets.EXPECT().DeleteByToken(gomock.Any(), "tok").Return(errors.New("db"))

		if err := uc.ResetPassword(context.Background(), "tok", "newpassword1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
