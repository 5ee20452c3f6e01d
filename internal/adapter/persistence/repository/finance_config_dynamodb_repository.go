package repository

import (
	"context"

	"teamflow_payments/internal/domain/entities"
	"teamflow_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultFinanceConfigsTableName = "finance_configs"

type financeConfigItem struct {
	EventID             string `dynamodbav:"event_id"`
	OwnerEntityID       string `dynamodbav:"owner_entity_id"`
	TotalPrice          string `dynamodbav:"total_price"`
	Capacity            int    `dynamodbav:"capacity"`
	Currency            string `dynamodbav:"currency,omitempty"`
	InstallmentsAllowed []int  `dynamodbav:"installments_allowed"`
	DepositEnabled      bool   `dynamodbav:"deposit_enabled"`
	DepositAmount       string `dynamodbav:"deposit_amount"`
	UpdatedBy           string `dynamodbav:"updated_by,omitempty"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// FinanceConfigDynamoRepository persists FinanceConfig entities in DynamoDB.
//
// Table requirements:
//   - PK: event_id (string)
//   - SK: owner_entity_id (string)
type FinanceConfigDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IFinanceConfigRepository = (*FinanceConfigDynamoRepository)(nil)

func NewFinanceConfigDynamoRepository(ddb DynamoDBAPI, tableName string) *FinanceConfigDynamoRepository {
	return &FinanceConfigDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultFinanceConfigsTableName),
	}
}

// Save replaces the whole item in a single PutItem.
func (r *FinanceConfigDynamoRepository) Save(ctx context.Context, cfg entities.FinanceConfig) (entities.FinanceConfig, error) {
	av, err := attributevalue.MarshalMap(toFinanceConfigItem(cfg))
	if err != nil {
		return entities.FinanceConfig{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.FinanceConfig{}, err
	}
	cfg.IsDefault = false
	return cfg, nil
}

func (r *FinanceConfigDynamoRepository) Get(ctx context.Context, eventID, ownerEntityID string) (entities.FinanceConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"event_id":        &types.AttributeValueMemberS{Value: eventID},
			"owner_entity_id": &types.AttributeValueMemberS{Value: ownerEntityID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FinanceConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.FinanceConfig{}, nil
	}

	var it financeConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FinanceConfig{}, err
	}
	return fromFinanceConfigItem(it), nil
}

func toFinanceConfigItem(c entities.FinanceConfig) financeConfigItem {
	return financeConfigItem{
		EventID:             c.EventID,
		OwnerEntityID:       c.OwnerEntityID,
		TotalPrice:          c.TotalPrice.String(),
		Capacity:            c.Capacity,
		Currency:            c.Currency,
		InstallmentsAllowed: c.InstallmentPlan.Allowed,
		DepositEnabled:      c.Deposit.Enabled,
		DepositAmount:       c.Deposit.Amount.String(),
		UpdatedBy:           c.UpdatedBy,
		UpdatedAt:           formatTime(c.UpdatedAt),
	}
}

func fromFinanceConfigItem(it financeConfigItem) entities.FinanceConfig {
	total, _ := decimal.NewFromString(it.TotalPrice)
	deposit, _ := decimal.NewFromString(it.DepositAmount)
	return entities.FinanceConfig{
		EventID:         it.EventID,
		OwnerEntityID:   it.OwnerEntityID,
		TotalPrice:      total,
		Capacity:        it.Capacity,
		Currency:        it.Currency,
		InstallmentPlan: entities.InstallmentPlan{Allowed: entities.NormalizeInstallments(it.InstallmentsAllowed)},
		Deposit:         entities.Deposit{Enabled: it.DepositEnabled, Amount: deposit},
		UpdatedBy:       it.UpdatedBy,
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
