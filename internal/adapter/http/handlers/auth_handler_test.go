package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"acme_shop/internal/adapter/http/handlers/mocks"
	"acme_shop/internal/domain/entities"
	"acme_shop/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_CheckVerification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIAuthUseCase) *gin.Engine {
		h := NewAuthHandler(uc)
		r := gin.New()
		r.POST("/v1/auth/check-verification", h.CheckVerification)
		return r
	}

	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/check-verification", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(uc)

		if w := post(r, `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rate limited mapped to 429", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().CheckVerification(gomock.Any(), "a@b.com").
			Return(usecase.VerificationStatus{}, usecase.ErrRateLimited)

		if w := post(r, `{"email":"a@b.com"}`); w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
	})

	t.Run("unknown email mapped to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().CheckVerification(gomock.Any(), "a@b.com").
			Return(usecase.VerificationStatus{}, usecase.ErrUserNotFound)

		if w := post(r, `{"email":"a@b.com"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("pending message passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().CheckVerification(gomock.Any(), "a@b.com").Return(usecase.VerificationStatus{
			Verified: false,
			Message:  "Your account is still pending verification. Please check back later.",
		}, nil)

		w := post(r, `{"email":"a@b.com"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["verified"] != false {
			t.Fatalf("unexpected verified flag: %v", body["verified"])
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIAuthUseCase) *gin.Engine {
		h := NewAuthHandler(uc)
		r := gin.New()
		r.POST("/v1/auth/login", h.Login)
		return r
	}

	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("unverified mapped to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Login(gomock.Any(), "a@b.com", "password1").
			Return(entities.User{}, "", usecase.ErrUserNotVerified)

		if w := post(r, `{"email":"a@b.com","password":"password1"}`); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("bad credentials mapped to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Login(gomock.Any(), "a@b.com", "wrong").
			Return(entities.User{}, "", usecase.ErrInvalidCredentials)

		if w := post(r, `{"email":"a@b.com","password":"wrong"}`); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success sets cookie and returns token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Login(gomock.Any(), "a@b.com", "password1").
			Return(entities.User{ID: "u-1", Email: "a@b.com", IsVerified: true}, "jwt-token", nil)

		w := post(r, `{"email":"a@b.com","password":"password1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["token"] != "jwt-token" {
			t.Fatalf("unexpected token: %v", body["token"])
		}

		foundCookie := false
		for _, c := range w.Result().Cookies() {
			if c.Name == "token" && c.Value == "jwt-token" {
				foundCookie = true
			}
		}
		if !foundCookie {
			t.Fatal("expected session cookie to be set")
		}
	})
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/v1/auth/register", h.Register)

	uc.EXPECT().Register(gomock.Any(), "Jo", "a@b.com", "password1").
		Return(entities.User{ID: "u-1", Name: "Jo", Email: "a@b.com"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register",
		bytes.NewBufferString(`{"name":"Jo","email":"a@b.com","password":"password1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if _, ok := body["password_hash"]; ok {
		t.Fatal("password hash must not be serialized")
	}
}
