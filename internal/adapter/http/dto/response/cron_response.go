package response

import (
	"time"

	"acme_shop/internal/domain/entities"
	"acme_shop/internal/usecase"
)

type CronPingResponse struct {
	Success    bool   `json:"success"`
	DurationMS int64  `json:"duration_ms"`
	Source     string `json:"source"`
}

func FromCronPing(r usecase.CronPingResult) CronPingResponse {
	return CronPingResponse{
		Success:    r.Success,
		DurationMS: r.DurationMS,
		Source:     r.Source,
	}
}

type CronLogResponse struct {
	ID         string    `json:"id"`
	Endpoint   string    `json:"endpoint"`
	Success    bool      `json:"success"`
	DurationMS int64     `json:"duration_ms"`
	Source     string    `json:"source"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromCronLogs(logs []entities.CronLog) []CronLogResponse {
	out := make([]CronLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, CronLogResponse{
			ID:         l.ID,
			Endpoint:   l.Endpoint,
			Success:    l.Success,
			DurationMS: l.DurationMS,
			Source:     l.Source,
			Error:      l.Error,
			CreatedAt:  l.CreatedAt,
		})
	}
	return out
}
