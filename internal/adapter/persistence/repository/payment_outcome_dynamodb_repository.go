package repository

import (
	"context"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOutcomesTableName = "payment_outcomes"

type paymentOutcomeItem struct {
	ID            string `dynamodbav:"id"`
	Status        string `dynamodbav:"status"`
	TransactionID string `dynamodbav:"transaction_id"`
	Message       string `dynamodbav:"message,omitempty"`
	ProcessedAt   string `dynamodbav:"processed_at"`
}

// PaymentOutcomeDynamoRepository persists PaymentOutcome records in DynamoDB.
//
// Table requirements:
//   - PK: id (string) — the request's idempotency key
//
// Save is an unconditional PutItem: reprocessing the same request id must
// overwrite with an equivalent outcome, never fail or duplicate.
type PaymentOutcomeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentOutcomeRepository = (*PaymentOutcomeDynamoRepository)(nil)

func NewPaymentOutcomeDynamoRepository(ddb *dynamodb.Client) *PaymentOutcomeDynamoRepository {
	return &PaymentOutcomeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_OUTCOMES_TABLE", defaultOutcomesTableName),
	}
}

func (r *PaymentOutcomeDynamoRepository) Save(ctx context.Context, outcome entities.PaymentOutcome) error {
	av, err := attributevalue.MarshalMap(toPaymentOutcomeItem(outcome))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PaymentOutcomeDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentOutcome, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentOutcome{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentOutcome{}, nil
	}

	var it paymentOutcomeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentOutcome{}, err
	}
	return fromPaymentOutcomeItem(it), nil
}

func toPaymentOutcomeItem(o entities.PaymentOutcome) paymentOutcomeItem {
	return paymentOutcomeItem{
		ID:            o.ID,
		Status:        string(o.Status),
		TransactionID: o.TransactionID,
		Message:       o.Message,
		ProcessedAt:   o.ProcessedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentOutcomeItem(it paymentOutcomeItem) entities.PaymentOutcome {
	dt, _ := time.Parse(time.RFC3339Nano, it.ProcessedAt)
	return entities.PaymentOutcome{
		ID:            it.ID,
		Status:        entities.OutcomeStatus(it.Status),
		TransactionID: it.TransactionID,
		Message:       it.Message,
		ProcessedAt:   dt,
	}
}
