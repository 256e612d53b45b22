package repository

import (
	"context"

	"acme_shop/internal/domain/entities"
	"acme_shop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPasswordResetsTableName = "password_resets"

type passwordResetItem struct {
	Token     string `dynamodbav:"token"`
	UserID    string `dynamodbav:"user_id"`
	Email     string `dynamodbav:"email"`
	ExpiresAt string `dynamodbav:"expires_at"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PasswordResetDynamoRepository persists PasswordReset tokens in DynamoDB.
//
// Table requirements:
//   - PK: token (string)

type PasswordResetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPasswordResetRepository = (*PasswordResetDynamoRepository)(nil)

func NewPasswordResetDynamoRepository(ddb *dynamodb.Client) *PasswordResetDynamoRepository {
	return &PasswordResetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PASSWORD_RESETS_TABLE", defaultPasswordResetsTableName),
	}
}

func (r *PasswordResetDynamoRepository) Create(ctx context.Context, reset entities.PasswordReset) (entities.PasswordReset, error) {
	av, err := attributevalue.MarshalMap(passwordResetItem{
		Token:     reset.Token,
		UserID:    reset.UserID,
		Email:     reset.Email,
		ExpiresAt: formatTime(reset.ExpiresAt),
		CreatedAt: formatTime(reset.CreatedAt),
	})
	if err != nil {
		return entities.PasswordReset{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PasswordReset{}, err
	}
	return reset, nil
}

func (r *PasswordResetDynamoRepository) GetByToken(ctx context.Context, token string) (entities.PasswordReset, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PasswordReset{}, err
	}
	if len(out.Item) == 0 {
		return entities.PasswordReset{}, nil
	}

	var it passwordResetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PasswordReset{}, err
	}
	return entities.PasswordReset{
		Token:     it.Token,
		UserID:    it.UserID,
		Email:     it.Email,
		ExpiresAt: parseTime(it.ExpiresAt),
		CreatedAt: parseTime(it.CreatedAt),
	}, nil
}

func (r *PasswordResetDynamoRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
	})
	return err
}
