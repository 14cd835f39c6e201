package repository

import (
	"context"
	"encoding/json"
	"time"

	"paychangu_service/internal/domain/entities"
	"paychangu_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPayoutsTableName = "payouts"
	payoutsRefIDIndex       = "ref_id-index"
)

type payoutItem struct {
	ChargeID           string                 `dynamodbav:"charge_id"`
	Method             string                 `dynamodbav:"method"`
	Amount             float64                `dynamodbav:"amount"`
	BankUUID           string                 `dynamodbav:"bank_uuid,omitempty"`
	AccountName        string                 `dynamodbav:"account_name,omitempty"`
	AccountNumber      string                 `dynamodbav:"account_number,omitempty"`
	MobileNumber       string                 `dynamodbav:"mobile_number,omitempty"`
	RefID              string                 `dynamodbav:"ref_id,omitempty"`
	Status             string                 `dynamodbav:"status"`
	CreatedAt          string                 `dynamodbav:"created_at"`
	UpdatedAt          string                 `dynamodbav:"updated_at"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PayoutDynamoRepository persists Payout entities in DynamoDB.
//
// Table requirements:
//   - PK: charge_id (string)
//   - GSI: ref_id-index (PK: ref_id)
type PayoutDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPayoutRepository = (*PayoutDynamoRepository)(nil)

func NewPayoutDynamoRepository(ddb *dynamodb.Client) *PayoutDynamoRepository {
	return &PayoutDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYOUTS_TABLE", defaultPayoutsTableName),
	}
}

func (r *PayoutDynamoRepository) Create(ctx context.Context, p entities.Payout) (entities.Payout, error) {
	it := toPayoutItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payout{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "charge_id",
		},
	})
	if err != nil {
		return entities.Payout{}, err
	}
	return p, nil
}

func (r *PayoutDynamoRepository) GetByChargeID(ctx context.Context, chargeID string) (entities.Payout, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"charge_id": &types.AttributeValueMemberS{Value: chargeID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payout{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payout{}, nil
	}

	var it payoutItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payout{}, err
	}
	return fromPayoutItem(it), nil
}

func (r *PayoutDynamoRepository) GetByRefID(ctx context.Context, refID string) (entities.Payout, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(payoutsRefIDIndex),
		KeyConditionExpression: aws.String("ref_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: refID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payout{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payout{}, nil
	}

	var it payoutItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payout{}, err
	}
	return fromPayoutItem(it), nil
}

func (r *PayoutDynamoRepository) UpdateStatus(ctx context.Context, chargeID string, status entities.PayoutStatus, providerPayload json.RawMessage) (entities.Payout, error) {
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
			"charge_id": &types.AttributeValueMemberS{Value: chargeID},
		},
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(charge_id)"),
		ExpressionAttributeNames:  map[string]string{"#status": "status"},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Payout{}, err
	}

	var it payoutItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payout{}, err
	}
	return fromPayoutItem(it), nil
}

func toPayoutItem(p entities.Payout) payoutItem {
	return payoutItem{
		ChargeID:           p.ChargeID,
		Method:             string(p.Method),
		Amount:             p.Amount,
		BankUUID:           p.BankUUID,
		AccountName:        p.AccountName,
		AccountNumber:      p.AccountNumber,
		MobileNumber:       p.MobileNumber,
		RefID:              p.RefID,
		Status:             string(p.Status),
		CreatedAt:          p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          p.UpdatedAt.UTC().Format(time.RFC3339Nano),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPayoutItem(it payoutItem) entities.Payout {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	p := entities.Payout{
		ChargeID:        it.ChargeID,
		Method:          entities.PayoutMethod(it.Method),
		Amount:          it.Amount,
		BankUUID:        it.BankUUID,
		AccountName:     it.AccountName,
		AccountNumber:   it.AccountNumber,
		MobileNumber:    it.MobileNumber,
		RefID:           it.RefID,
		Status:          entities.PayoutStatus(it.Status),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
		ProviderPayload: it.ProviderPayload,
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return p
}
