package repository

import (
	"context"
	"testing"
	"time"

	"teamflow_payments/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinanceConfigDynamoRepository_SaveThenGet(t *testing.T) {
	cfg := entities.FinanceConfig{
		EventID:         "stage-1",
		OwnerEntityID:   "club-1",
		TotalPrice:      decimal.RequireFromString("500.00"),
		Capacity:        40,
		Currency:        "eur",
		InstallmentPlan: entities.InstallmentPlan{Allowed: []int{1, 2, 3}},
		Deposit:         entities.Deposit{Enabled: true, Amount: decimal.NewFromInt(100)},
		UpdatedBy:       "owner-1",
		UpdatedAt:       time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	fake := &fakeDynamoDB{}
	repo := NewFinanceConfigDynamoRepository(fake, "")
	saved, err := repo.Save(context.Background(), cfg)
	require.NoError(t, err)
	assert.False(t, saved.IsDefault)
	require.Len(t, fake.puts, 1)
	assert.Equal(t, defaultFinanceConfigsTableName, aws.ToString(fake.puts[0].TableName))
	assert.Nil(t, fake.puts[0].ConditionExpression)

	fake.getOut = &dynamodb.GetItemOutput{Item: fake.puts[0].Item}
	got, err := repo.Get(context.Background(), "stage-1", "club-1")
	require.NoError(t, err)
	assert.True(t, got.TotalPrice.Equal(cfg.TotalPrice))
	assert.Equal(t, []int{1, 2, 3}, got.InstallmentPlan.Allowed)
	assert.True(t, got.Deposit.Enabled)
	assert.True(t, got.PayableInstallmentBase().Equal(decimal.NewFromInt(400)))
	assert.Equal(t, cfg.UpdatedAt, got.UpdatedAt)

	key := fake.gets[0].Key
	assert.Equal(t, &types.AttributeValueMemberS{Value: "club-1"}, key["owner_entity_id"])
}

func TestFinanceConfigDynamoRepository_GetMissing(t *testing.T) {
	got, err := NewFinanceConfigDynamoRepository(&fakeDynamoDB{}, "").Get(context.Background(), "stage-1", "club-1")
	require.NoError(t, err)
	assert.Empty(t, got.EventID)
}

func TestProfileDynamoRepository_GetByUserID(t *testing.T) {
	fake := &fakeDynamoDB{getOut: &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
		"id":        &types.AttributeValueMemberS{Value: "user-1"},
		"role":      &types.AttributeValueMemberS{Value: "family"},
		"family_id": &types.AttributeValueMemberS{Value: "fam-1"},
	}}}
	p, err := NewProfileDynamoRepository(fake, "").GetByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, entities.RoleFamily, p.Role)
	assert.Equal(t, "fam-1", p.PayerID())

	fake.getOut.Item["role"] = &types.AttributeValueMemberS{Value: "superuser"}
	p, err = NewProfileDynamoRepository(fake, "").GetByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, entities.RoleUnknown, p.Role)
}
