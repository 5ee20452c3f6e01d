package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"teamflow_payments/internal/domain/entities"
	"teamflow_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultLedgerTableName = "pagos"
	ledgerPayerIDIndex     = "payer_id-index"
	ledgerSubjectIDIndex   = "subject_id-index"

	// DynamoDB rejects larger transactions.
	maxTransactItems = 100
)

type ledgerItem struct {
	ID        string `dynamodbav:"id"`
	PayerID   string `dynamodbav:"payer_id"`
	SubjectID string `dynamodbav:"subject_id,omitempty"`
	EventID   string `dynamodbav:"event_id,omitempty"`
	Concept   string `dynamodbav:"concepto"`
	Amount    string `dynamodbav:"monto"`
	Currency  string `dynamodbav:"moneda,omitempty"`
	Status    string `dynamodbav:"estado"`
	DueDate   string `dynamodbav:"fecha_vencimiento,omitempty"`
	PaidAt    string `dynamodbav:"fecha_pago,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`

	StripeCheckoutSessionID string `dynamodbav:"stripe_checkout_session_id,omitempty"`
	StripePaymentIntentID   string `dynamodbav:"stripe_payment_intent_id,omitempty"`
	StripeStatus            string `dynamodbav:"stripe_status,omitempty"`
}

// LedgerDynamoRepository persists LedgerEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payer_id-index (PK: payer_id, SK: created_at)
//   - GSI: subject_id-index (PK: subject_id, SK: created_at)
type LedgerDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ILedgerRepository = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb DynamoDBAPI, tableName string) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultLedgerTableName),
	}
}

func (r *LedgerDynamoRepository) CreateBatch(ctx context.Context, entries []entities.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if len(entries) > maxTransactItems {
		return fmt.Errorf("ledger batch of %d entries exceeds %d", len(entries), maxTransactItems)
	}

	items := make([]types.TransactWriteItem, 0, len(entries))
	for _, e := range entries {
		av, err := attributevalue.MarshalMap(toLedgerItem(e))
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return err
}

func (r *LedgerDynamoRepository) GetByID(ctx context.Context, id string) (entities.LedgerEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LedgerEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.LedgerEntry{}, nil
	}

	var it ledgerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LedgerEntry{}, err
	}
	return fromLedgerItem(it)
}

func (r *LedgerDynamoRepository) ListByPayerID(ctx context.Context, payerID string) ([]entities.LedgerEntry, error) {
	return r.queryIndex(ctx, ledgerPayerIDIndex, "payer_id", payerID)
}

func (r *LedgerDynamoRepository) ListBySubjectID(ctx context.Context, subjectID string) ([]entities.LedgerEntry, error) {
	return r.queryIndex(ctx, ledgerSubjectIDIndex, "subject_id", subjectID)
}

// queryIndex pages through a GSI newest first until LastEvaluatedKey is empty.
func (r *LedgerDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.LedgerEntry, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		ScanIndexForward: aws.Bool(false),
	})

	entries := []entities.LedgerEntry{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it ledgerItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			e, err := fromLedgerItem(it)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (r *LedgerDynamoRepository) AttachCheckoutSession(ctx context.Context, id, sessionID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #estado = :pendiente"),
		UpdateExpression:    aws.String("SET #session = :session, #stripe_status = :open"),
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#estado":        "estado",
			"#session":       "stripe_checkout_session_id",
			"#stripe_status": "stripe_status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pendiente": &types.AttributeValueMemberS{Value: string(entities.LedgerStatusPendiente)},
			":session":   &types.AttributeValueMemberS{Value: sessionID},
			":open":      &types.AttributeValueMemberS{Value: entities.GatewayStatusOpen},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ErrEntryNotPending
		}
		return err
	}
	return nil
}

// MarkPaid sets estado=pagado without creating rows. fecha_pago keeps its first value.
func (r *LedgerDynamoRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time, gatewayStatus, paymentIntentID string) (entities.LedgerEntry, bool, error) {
	expr := "SET #estado = :pagado, #fecha_pago = if_not_exists(#fecha_pago, :now), #stripe_status = :status"
	names := map[string]string{
		"#estado":        "estado",
		"#fecha_pago":    "fecha_pago",
		"#stripe_status": "stripe_status",
	}
	values := map[string]types.AttributeValue{
		":pagado": &types.AttributeValueMemberS{Value: string(entities.LedgerStatusPagado)},
		":now":    &types.AttributeValueMemberS{Value: formatTime(paidAt)},
		":status": &types.AttributeValueMemberS{Value: gatewayStatus},
	}
	if paymentIntentID != "" {
		expr += ", #intent = :intent"
		names["#intent"] = "stripe_payment_intent_id"
		values[":intent"] = &types.AttributeValueMemberS{Value: paymentIntentID}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.LedgerEntry{}, false, nil
		}
		return entities.LedgerEntry{}, false, err
	}

	var it ledgerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.LedgerEntry{}, true, err
	}
	e, err := fromLedgerItem(it)
	return e, true, err
}

func toLedgerItem(e entities.LedgerEntry) ledgerItem {
	return ledgerItem{
		ID:                      e.ID,
		PayerID:                 e.PayerID,
		SubjectID:               e.SubjectID,
		EventID:                 e.EventID,
		Concept:                 e.Concept,
		Amount:                  e.Amount.String(),
		Currency:                e.Currency,
		Status:                  string(e.Status),
		DueDate:                 formatOptionalTime(e.DueDate),
		PaidAt:                  formatOptionalTime(e.PaidAt),
		CreatedAt:               formatTime(e.CreatedAt),
		StripeCheckoutSessionID: e.GatewaySessionID,
		StripePaymentIntentID:   e.GatewayPaymentIntentID,
		StripeStatus:            e.GatewayStatus,
	}
}

func fromLedgerItem(it ledgerItem) (entities.LedgerEntry, error) {
	amount, err := decimal.NewFromString(it.Amount)
	if err != nil {
		return entities.LedgerEntry{}, fmt.Errorf("ledger entry %s: corrupt monto %q: %w", it.ID, it.Amount, err)
	}
	return entities.LedgerEntry{
		ID:                     it.ID,
		PayerID:                it.PayerID,
		SubjectID:              it.SubjectID,
		EventID:                it.EventID,
		Concept:                it.Concept,
		Amount:                 amount,
		Currency:               it.Currency,
		Status:                 entities.LedgerStatus(it.Status),
		DueDate:                parseOptionalTime(it.DueDate),
		PaidAt:                 parseOptionalTime(it.PaidAt),
		CreatedAt:              parseTime(it.CreatedAt),
		GatewaySessionID:       it.StripeCheckoutSessionID,
		GatewayPaymentIntentID: it.StripePaymentIntentID,
		GatewayStatus:          it.StripeStatus,
	}, nil
}
