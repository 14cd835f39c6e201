package repository

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"paychangu_service/internal/domain/entities"
	"paychangu_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsEmailIndex       = "email-index"
)

type paymentItem struct {
	TxRef              string                 `dynamodbav:"tx_ref"`
	Email              string                 `dynamodbav:"email"`
	FirstName          string                 `dynamodbav:"first_name,omitempty"`
	LastName           string                 `dynamodbav:"last_name,omitempty"`
	Amount             float64                `dynamodbav:"amount"`
	Currency           string                 `dynamodbav:"currency"`
	Description        string                 `dynamodbav:"description,omitempty"`
	Status             string                 `dynamodbav:"status"`
	CheckoutURL        string                 `dynamodbav:"checkout_url,omitempty"`
	CreatedAt          string                 `dynamodbav:"created_at"`
	UpdatedAt          string                 `dynamodbav:"updated_at"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: tx_ref (string)
//   - GSI: email-index (PK: email)
type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#ref)"),
		ExpressionAttributeNames: map[string]string{
			"#ref": "tx_ref",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByTxRef(ctx context.Context, txRef string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tx_ref": &types.AttributeValueMemberS{Value: txRef},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByEmail(ctx context.Context, email string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, txRef string, status entities.PaymentStatus, providerPayload json.RawMessage) (entities.Payment, error) {
	expr := "SET #status = :status, updated_at = :ts"
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
		":ts":     &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	if len(providerPayload) > 0 {
		expr += ", provider_payload_raw = :raw"
		values[":raw"] = &types.AttributeValueMemberS{Value: string(providerPayload)}

		var parsed map[string]interface{}
		if err := json.Unmarshal(providerPayload, &parsed); err == nil && len(parsed) > 0 {
			if av, err := attributevalue.MarshalMap(parsed); err == nil {
				expr += ", provider_payload = :parsed"
				values[":parsed"] = &types.AttributeValueMemberM{Value: av}
			}
		}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tx_ref": &types.AttributeValueMemberS{Value: txRef},
		},
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(tx_ref)"),
		ExpressionAttributeNames:  map[string]string{"#status": "status"},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Payment{}, err
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		TxRef:              p.TxRef,
		Email:              p.Email,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		Amount:             p.Amount,
		Currency:           p.Currency,
		Description:        p.Description,
		Status:             string(p.Status),
		CheckoutURL:        p.CheckoutURL,
		CreatedAt:          p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          p.UpdatedAt.UTC().Format(time.RFC3339Nano),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	p := entities.Payment{
		TxRef:           it.TxRef,
		Email:           it.Email,
		FirstName:       it.FirstName,
		LastName:        it.LastName,
		Amount:          it.Amount,
		Currency:        it.Currency,
		Description:     it.Description,
		Status:          entities.PaymentStatus(it.Status),
		CheckoutURL:     it.CheckoutURL,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
		ProviderPayload: it.ProviderPayload,
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return p
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
