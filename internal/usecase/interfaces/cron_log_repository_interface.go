package interfaces

import (
	"context"

	"acme_shop/internal/domain/entities"
)

// ICronLogRepository abstracts DynamoDB persistence for CronLog entries.

type ICronLogRepository interface {
	Create(ctx context.Context, l entities.CronLog) (entities.CronLog, error)
	List(ctx context.Context, limit int) ([]entities.CronLog, error)
}
