package repository

import (
	"context"
	"sort"
	"testing"
	"time"

	"teamflow_payments/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() entities.LedgerEntry {
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return entities.LedgerEntry{
		ID:        "pago-1",
		PayerID:   "fam-1",
		SubjectID: "kid-1",
		EventID:   "stage-1",
		Concept:   "Cuota 1/3",
		Amount:    decimal.RequireFromString("133.33"),
		Currency:  "eur",
		Status:    entities.LedgerStatusPendiente,
		DueDate:   &due,
		CreatedAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func marshalEntry(t *testing.T, e entities.LedgerEntry) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toLedgerItem(e))
	require.NoError(t, err)
	return av
}

func TestLedgerItemMapping(t *testing.T) {
	e := sampleEntry()
	av := marshalEntry(t, e)

	// Attribute names shared with the rest of TeamFlow.
	assert.Equal(t, &types.AttributeValueMemberS{Value: "pendiente"}, av["estado"])
	assert.NotContains(t, av, "fecha_pago")
	assert.NotContains(t, av, "stripe_checkout_session_id")

	var it ledgerItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &it))
	got, err := fromLedgerItem(it)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(e.Amount))
	assert.Equal(t, e.DueDate.UTC(), got.DueDate.UTC())
	assert.Equal(t, e.CreatedAt, got.CreatedAt)
	assert.Nil(t, got.PaidAt)
}

func TestLedgerItemMapping_CreatedAtSortsByTime(t *testing.T) {
	base := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)
	times := []time.Time{
		base,
		base.Add(120 * time.Millisecond),
		base.Add(121 * time.Millisecond),
		base.Add(500 * time.Millisecond),
		base.Add(time.Second),
	}

	keys := make([]string, 0, len(times))
	byKey := make(map[string]time.Time, len(times))
	for _, ts := range times {
		e := sampleEntry()
		e.CreatedAt = ts
		av := marshalEntry(t, e)
		key := av["created_at"].(*types.AttributeValueMemberS).Value
		keys = append(keys, key)
		byKey[key] = ts
	}

	// payer_id-index and subject_id-index order by the raw created_at string.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	for i := 1; i < len(keys); i++ {
		assert.True(t, byKey[keys[i-1]].After(byKey[keys[i]]), "%s sorted before %s", keys[i-1], keys[i])
	}
}

func TestLedgerItemMapping_CorruptAmount(t *testing.T) {
	av := marshalEntry(t, sampleEntry())
	av["monto"] = &types.AttributeValueMemberS{Value: "12,50"}

	t.Run("get", func(t *testing.T) {
		fake := &fakeDynamoDB{getOut: &dynamodb.GetItemOutput{Item: av}}
		_, err := NewLedgerDynamoRepository(fake, "").GetByID(context.Background(), "pago-1")
		assert.ErrorContains(t, err, "corrupt monto")
	})

	t.Run("list", func(t *testing.T) {
		fake := &fakeDynamoDB{queryPages: []*dynamodb.QueryOutput{{Items: []map[string]types.AttributeValue{av}}}}
		_, err := NewLedgerDynamoRepository(fake, "").ListByPayerID(context.Background(), "fam-1")
		assert.ErrorContains(t, err, "corrupt monto")
	})
}

func TestLedgerDynamoRepository_GetByID(t *testing.T) {
	t.Run("missing item returns zero entry", func(t *testing.T) {
		repo := NewLedgerDynamoRepository(&fakeDynamoDB{}, "")
		e, err := repo.GetByID(context.Background(), "nope")
		require.NoError(t, err)
		assert.Empty(t, e.ID)
	})

	t.Run("found", func(t *testing.T) {
		fake := &fakeDynamoDB{getOut: &dynamodb.GetItemOutput{Item: marshalEntry(t, sampleEntry())}}
		repo := NewLedgerDynamoRepository(fake, "pagos_test")
		e, err := repo.GetByID(context.Background(), "pago-1")
		require.NoError(t, err)
		assert.Equal(t, "pago-1", e.ID)
		assert.Equal(t, "pagos_test", aws.ToString(fake.gets[0].TableName))
		assert.True(t, aws.ToBool(fake.gets[0].ConsistentRead))
	})
}

func TestLedgerDynamoRepository_ListByPayerID_Paginates(t *testing.T) {
	newer := sampleEntry()
	older := sampleEntry()
	older.ID = "pago-0"
	fake := &fakeDynamoDB{queryPages: []*dynamodb.QueryOutput{
		{
			Items:            []map[string]types.AttributeValue{marshalEntry(t, newer)},
			LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "pago-1"}},
		},
		{Items: []map[string]types.AttributeValue{marshalEntry(t, older)}},
	}}
	repo := NewLedgerDynamoRepository(fake, "")

	entries, err := repo.ListByPayerID(context.Background(), "fam-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "pago-1", entries[0].ID)
	assert.Equal(t, "pago-0", entries[1].ID)

	require.Len(t, fake.queries, 2)
	assert.Equal(t, ledgerPayerIDIndex, aws.ToString(fake.queries[0].IndexName))
	assert.False(t, aws.ToBool(fake.queries[0].ScanIndexForward))
	assert.NotNil(t, fake.queries[1].ExclusiveStartKey)
}

func TestLedgerDynamoRepository_ListBySubjectID_Empty(t *testing.T) {
	fake := &fakeDynamoDB{queryPages: []*dynamodb.QueryOutput{{}}}
	entries, err := NewLedgerDynamoRepository(fake, "").ListBySubjectID(context.Background(), "kid-1")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	assert.Equal(t, ledgerSubjectIDIndex, aws.ToString(fake.queries[0].IndexName))
}

func TestLedgerDynamoRepository_AttachCheckoutSession(t *testing.T) {
	t.Run("conditional on pending", func(t *testing.T) {
		fake := &fakeDynamoDB{}
		err := NewLedgerDynamoRepository(fake, "").AttachCheckoutSession(context.Background(), "pago-1", "cs_1")
		require.NoError(t, err)

		in := fake.updates[0]
		assert.Equal(t, "attribute_exists(#id) AND #estado = :pendiente", aws.ToString(in.ConditionExpression))
		assert.Equal(t, &types.AttributeValueMemberS{Value: "cs_1"}, in.ExpressionAttributeValues[":session"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "open"}, in.ExpressionAttributeValues[":open"])
	})

	t.Run("condition failure", func(t *testing.T) {
		fake := &fakeDynamoDB{updateErr: &types.ConditionalCheckFailedException{}}
		err := NewLedgerDynamoRepository(fake, "").AttachCheckoutSession(context.Background(), "pago-1", "cs_1")
		assert.ErrorIs(t, err, entities.ErrEntryNotPending)
	})
}

func TestLedgerDynamoRepository_MarkPaid(t *testing.T) {
	paidAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("never creates rows and keeps first fecha_pago", func(t *testing.T) {
		updated := sampleEntry()
		updated.Status = entities.LedgerStatusPagado
		updated.PaidAt = &paidAt
		fake := &fakeDynamoDB{updateOut: &dynamodb.UpdateItemOutput{Attributes: marshalEntry(t, updated)}}

		got, found, err := NewLedgerDynamoRepository(fake, "").MarkPaid(context.Background(), "pago-1", paidAt, "paid", "pi_1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, got.IsPaid())

		in := fake.updates[0]
		assert.Equal(t, "attribute_exists(#id)", aws.ToString(in.ConditionExpression))
		assert.Contains(t, aws.ToString(in.UpdateExpression), "if_not_exists(#fecha_pago, :now)")
		assert.Equal(t, "stripe_payment_intent_id", in.ExpressionAttributeNames["#intent"])
		assert.Equal(t, types.ReturnValueAllNew, in.ReturnValues)
	})

	t.Run("without payment intent", func(t *testing.T) {
		fake := &fakeDynamoDB{updateOut: &dynamodb.UpdateItemOutput{Attributes: marshalEntry(t, sampleEntry())}}
		_, _, err := NewLedgerDynamoRepository(fake, "").MarkPaid(context.Background(), "pago-1", paidAt, "paid", "")
		require.NoError(t, err)
		assert.NotContains(t, aws.ToString(fake.updates[0].UpdateExpression), "#intent")
	})

	t.Run("unknown entry", func(t *testing.T) {
		fake := &fakeDynamoDB{updateErr: &types.ConditionalCheckFailedException{}}
		_, found, err := NewLedgerDynamoRepository(fake, "").MarkPaid(context.Background(), "ghost", paidAt, "paid", "pi_1")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestLedgerDynamoRepository_CreateBatch(t *testing.T) {
	fake := &fakeDynamoDB{}
	repo := NewLedgerDynamoRepository(fake, "")

	require.NoError(t, repo.CreateBatch(context.Background(), nil))
	assert.Empty(t, fake.transacts)

	a, b := sampleEntry(), sampleEntry()
	b.ID = "pago-2"
	require.NoError(t, repo.CreateBatch(context.Background(), []entities.LedgerEntry{a, b}))
	require.Len(t, fake.transacts, 1)
	items := fake.transacts[0].TransactItems
	require.Len(t, items, 2)
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(items[1].Put.ConditionExpression))

	big := make([]entities.LedgerEntry, maxTransactItems+1)
	assert.Error(t, repo.CreateBatch(context.Background(), big))
}
