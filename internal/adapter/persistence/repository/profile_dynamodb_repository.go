package repository

import (
	"context"

	"teamflow_payments/internal/domain/entities"
	"teamflow_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProfilesTableName = "profiles"

type profileItem struct {
	ID       string `dynamodbav:"id"`
	Role     string `dynamodbav:"role"`
	FamilyID string `dynamodbav:"family_id,omitempty"`
	EntityID string `dynamodbav:"entity_id,omitempty"`
}

// ProfileDynamoRepository reads profiles written by the auth provider sync.
//
// Table requirements:
//   - PK: id (string, auth user id)
type ProfileDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb DynamoDBAPI, tableName string) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

// fromProfileItem maps unrecognized roles to RoleUnknown so they fail authorization.
func fromProfileItem(it profileItem) entities.Profile {
	role, err := entities.ParseRole(it.Role)
	if err != nil {
		role = entities.RoleUnknown
	}
	return entities.Profile{
		UserID:   it.ID,
		Role:     role,
		FamilyID: it.FamilyID,
		EntityID: it.EntityID,
	}
}
