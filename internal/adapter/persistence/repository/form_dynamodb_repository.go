package repository

import (
	"context"
	"sort"
	"time"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	registrationFormsTableEnv = "REGISTRATION_FORMS_TABLE"
	registrationFormsTableDef = "forms-cadastro"
	followUpFormsTableEnv     = "FOLLOWUP_FORMS_TABLE"
	followUpFormsTableDef     = "forms-acompanhamento"

	projectIDIndex = "projeto_id-index"
)

type RegistrationFormDynamoRepository struct {
	ddb   dynamoAPI
	table string
}

var _ interfaces.IRegistrationFormRepository = (*RegistrationFormDynamoRepository)(nil)

func NewRegistrationFormDynamoRepository(ddb *dynamodb.Client) *RegistrationFormDynamoRepository {
	return &RegistrationFormDynamoRepository{
		ddb:   ddb,
		table: getenvDefault(registrationFormsTableEnv, registrationFormsTableDef),
	}
}

func (r *RegistrationFormDynamoRepository) Create(ctx context.Context, f entities.RegistrationForm) (entities.RegistrationForm, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	if err := putNew(ctx, r.ddb, r.table, f); err != nil {
		return entities.RegistrationForm{}, err
	}
	return f, nil
}

func (r *RegistrationFormDynamoRepository) GetByID(ctx context.Context, id string) (entities.RegistrationForm, error) {
	var f entities.RegistrationForm
	if _, err := getByID(ctx, r.ddb, r.table, id, &f); err != nil {
		return entities.RegistrationForm{}, err
	}
	return f, nil
}

// GetByProjectID returns the earliest registration form of the project.
func (r *RegistrationFormDynamoRepository) GetByProjectID(ctx context.Context, projectID string) (entities.RegistrationForm, error) {
	items, err := queryByProject(ctx, r.ddb, r.table, projectID)
	if err != nil {
		return entities.RegistrationForm{}, err
	}

	var out entities.RegistrationForm
	for _, it := range items {
		var f entities.RegistrationForm
		if err := unmarshalJSONTagged(it, &f); err != nil {
			return entities.RegistrationForm{}, err
		}
		if out.ID == "" || f.CreatedAt.Before(out.CreatedAt) {
			out = f
		}
	}
	return out, nil
}

type FollowUpFormDynamoRepository struct {
	ddb   dynamoAPI
	table string
}

var _ interfaces.IFollowUpFormRepository = (*FollowUpFormDynamoRepository)(nil)

func NewFollowUpFormDynamoRepository(ddb *dynamodb.Client) *FollowUpFormDynamoRepository {
	return &FollowUpFormDynamoRepository{
		ddb:   ddb,
		table: getenvDefault(followUpFormsTableEnv, followUpFormsTableDef),
	}
}

func (r *FollowUpFormDynamoRepository) Create(ctx context.Context, f entities.FollowUpForm) (entities.FollowUpForm, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	if err := putNew(ctx, r.ddb, r.table, f); err != nil {
		return entities.FollowUpForm{}, err
	}
	return f, nil
}

func (r *FollowUpFormDynamoRepository) GetByID(ctx context.Context, id string) (entities.FollowUpForm, error) {
	var f entities.FollowUpForm
	if _, err := getByID(ctx, r.ddb, r.table, id, &f); err != nil {
		return entities.FollowUpForm{}, err
	}
	return f, nil
}

// ListByProjectID returns the follow-up forms of the project, oldest first.
func (r *FollowUpFormDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.FollowUpForm, error) {
	items, err := queryByProject(ctx, r.ddb, r.table, projectID)
	if err != nil {
		return nil, err
	}

	res := make([]entities.FollowUpForm, 0, len(items))
	for _, it := range items {
		var f entities.FollowUpForm
		if err := unmarshalJSONTagged(it, &f); err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	sort.SliceStable(res, func(i, j int) bool { return res[j].After(res[i]) })
	return res, nil
}

func putNew(ctx context.Context, ddb dynamoAPI, table string, v any) error {
	av, err := marshalJSONTagged(v)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	return err
}

func getByID(ctx context.Context, ddb dynamoAPI, table, id string, v any) (bool, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	return true, unmarshalJSONTagged(out.Item, v)
}

func queryByProject(ctx context.Context, ddb dynamoAPI, table, projectID string) ([]map[string]types.AttributeValue, error) {
	return queryAll(ctx, ddb, &dynamodb.QueryInput{
		TableName:                aws.String(table),
		IndexName:                aws.String(projectIDIndex),
		KeyConditionExpression:   aws.String("#pid = :pid"),
		ExpressionAttributeNames: map[string]string{"#pid": "projetoID"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
}
