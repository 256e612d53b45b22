package usecase

import (
	"context"
	"time"

	"acme_shop/internal/domain/entities"
	"acme_shop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const cronPingEndpoint = "admin/api/cron/ping"

// CronPingResult is the outcome of one keep-alive ping.
type CronPingResult struct {
	Success    bool   `json:"success"`
	DurationMS int64  `json:"duration_ms"`
	Source     string `json:"source"`
}

// ICronUseCase keeps the hosted store warm with periodic pings and records
// each execution in the cron_logs table.

type ICronUseCase interface {
	Ping(ctx context.Context, source string) (CronPingResult, error)
	Logs(ctx context.Context, limit int) ([]entities.CronLog, error)
}

type CronUseCase struct {
	users  interfaces.IUserRepository
	logs   interfaces.ICronLogRepository
	logger *zap.Logger
}

var _ ICronUseCase = (*CronUseCase)(nil)

func NewCronUseCase(users interfaces.IUserRepository, logs interfaces.ICronLogRepository, logger *zap.Logger) *CronUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CronUseCase{users: users, logs: logs, logger: logger}
}

// Ping issues the cheapest possible read against the store and logs the
// outcome either way. A failure to write the log entry never masks the ping
// result.
func (u *CronUseCase) Ping(ctx context.Context, source string) (CronPingResult, error) {
	if source == "" {
		source = "manual"
	}

	start := time.Now()
	pingErr := u.users.Ping(ctx)
	duration := time.Since(start).Milliseconds()

	entry := entities.CronLog{
		ID:         uuid.NewString(),
		Endpoint:   cronPingEndpoint,
		Success:    pingErr == nil,
		DurationMS: duration,
		Source:     source,
		CreatedAt:  time.Now().UTC(),
	}
	if pingErr != nil {
		entry.Error = pingErr.Error()
	}

	if _, err := u.logs.Create(ctx, entry); err != nil {
		u.logger.Warn("failed recording cron log", zap.Error(err))
	}

	result := CronPingResult{Success: pingErr == nil, DurationMS: duration, Source: source}
	if pingErr != nil {
		return result, pingErr
	}
	return result, nil
}

func (u *CronUseCase) Logs(ctx context.Context, limit int) ([]entities.CronLog, error) {
	if limit <= 0 {
		limit = 50
	}
	return u.logs.List(ctx, limit)
}
