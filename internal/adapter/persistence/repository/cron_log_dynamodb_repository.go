package repository

import (
	"context"
	"sort"

	"acme_shop/internal/domain/entities"
	"acme_shop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultCronLogsTableName = "cron_logs"

type cronLogItem struct {
	ID         string `dynamodbav:"id"`
	Endpoint   string `dynamodbav:"endpoint"`
	Success    bool   `dynamodbav:"success"`
	DurationMS int64  `dynamodbav:"duration_ms"`
	Source     string `dynamodbav:"source"`
	Error      string `dynamodbav:"error,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// CronLogDynamoRepository persists CronLog entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CronLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICronLogRepository = (*CronLogDynamoRepository)(nil)

func NewCronLogDynamoRepository(ddb *dynamodb.Client) *CronLogDynamoRepository {
	return &CronLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CRON_LOGS_TABLE", defaultCronLogsTableName),
	}
}

func (r *CronLogDynamoRepository) Create(ctx context.Context, log entities.CronLog) (entities.CronLog, error) {
	av, err := attributevalue.MarshalMap(cronLogItem{
		ID:         log.ID,
		Endpoint:   log.Endpoint,
		Success:    log.Success,
		DurationMS: log.DurationMS,
		Source:     log.Source,
		Error:      log.Error,
		CreatedAt:  formatTime(log.CreatedAt),
	})
	if err != nil {
		return entities.CronLog{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CronLog{}, err
	}
	return log, nil
}

func (r *CronLogDynamoRepository) List(ctx context.Context, limit int) ([]entities.CronLog, error) {
	var items []cronLogItem
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []cronLogItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	logs := make([]entities.CronLog, 0, len(items))
	for _, it := range items {
		logs = append(logs, entities.CronLog{
			ID:         it.ID,
			Endpoint:   it.Endpoint,
			Success:    it.Success,
			DurationMS: it.DurationMS,
			Source:     it.Source,
			Error:      it.Error,
			CreatedAt:  parseTime(it.CreatedAt),
		})
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}
