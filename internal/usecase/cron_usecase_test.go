package usecase

import (
	"context"
	"errors"
	"testing"

	"acme_shop/internal/domain/entities"
	mock_interfaces "acme_shop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCronUseCase_Ping(t *testing.T) {
	t.Run("successful ping is logged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		logs := mock_interfaces.NewMockICronLogRepository(ctrl)
		uc := NewCronUseCase(users, logs, nil)

		users.EXPECT().Ping(gomock.Any()).Return(nil)
		logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.CronLog) (entities.CronLog, error) {
				if !l.Success || l.Source != "scheduler" || l.Error != "" {
					t.Fatalf("unexpected log entry: %+v", l)
				}
				return l, nil
			})

		result, err := uc.Ping(context.Background(), "scheduler")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Success {
			t.Fatal("expected success")
		}
	})

	t.Run("failed ping is still logged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		logs := mock_interfaces.NewMockICronLogRepository(ctrl)
		uc := NewCronUseCase(users, logs, nil)

		users.EXPECT().Ping(gomock.Any()).Return(errors.New("store unreachable"))
		logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.CronLog) (entities.CronLog, error) {
				if l.Success || l.Error != "store unreachable" {
					t.Fatalf("unexpected log entry: %+v", l)
				}
				// Empty source defaults to manual.
				if l.Source != "manual" {
					t.Fatalf("unexpected source: %q", l.Source)
				}
				return l, nil
			})

		result, err := uc.Ping(context.Background(), "")
		if err == nil {
			t.Fatal("expected error")
		}
		if result.Success {
			t.Fatal("expected failure result")
		}
	})

	t.Run("log write failure does not mask ping success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		logs := mock_interfaces.NewMockICronLogRepository(ctrl)
		uc := NewCronUseCase(users, logs, nil)

		users.EXPECT().Ping(gomock.Any()).Return(nil)
		logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CronLog{}, errors.New("db"))

		if _, err := uc.Ping(context.Background(), "manual"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCronUseCase_Logs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	logs := mock_interfaces.NewMockICronLogRepository(ctrl)
	uc := NewCronUseCase(users, logs, nil)

	// Non-positive limits fall back to 50.
	logs.EXPECT().List(gomock.Any(), 50).Return(nil, nil)
	if _, err := uc.Logs(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logs.EXPECT().List(gomock.Any(), 10).Return([]entities.CronLog{{ID: "l-1"}}, nil)
	out, err := uc.Logs(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("unexpected logs: %+v", out)
	}
}
