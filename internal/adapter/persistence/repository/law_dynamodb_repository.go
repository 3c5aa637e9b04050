package repository

import (
	"context"
	"sort"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	lawsTableEnv         = "LAWS_TABLE"
	lawsTableDef         = "leis"
	associationsTableEnv = "ASSOCIATIONS_TABLE"
	associationsTableDef = "associacao"
)

type LawDynamoRepository struct {
	ddb   dynamoAPI
	table string
}

var _ interfaces.ILawRepository = (*LawDynamoRepository)(nil)

func NewLawDynamoRepository(ddb *dynamodb.Client) *LawDynamoRepository {
	return &LawDynamoRepository{ddb: ddb, table: getenvDefault(lawsTableEnv, lawsTableDef)}
}

func (r *LawDynamoRepository) Create(ctx context.Context, l entities.Law) (entities.Law, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if err := putNew(ctx, r.ddb, r.table, l); err != nil {
		return entities.Law{}, err
	}
	return l, nil
}

func (r *LawDynamoRepository) GetByID(ctx context.Context, id string) (entities.Law, error) {
	var l entities.Law
	if _, err := getByID(ctx, r.ddb, r.table, id, &l); err != nil {
		return entities.Law{}, err
	}
	return l, nil
}

func (r *LawDynamoRepository) List(ctx context.Context) ([]entities.Law, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.table)})
	if err != nil {
		return nil, err
	}
	res := make([]entities.Law, 0, len(items))
	for _, it := range items {
		var l entities.Law
		if err := unmarshalJSONTagged(it, &l); err != nil {
			return nil, err
		}
		res = append(res, l)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Nome < res[j].Nome })
	return res, nil
}

// Update returns a zero Law when the id does not exist.
func (r *LawDynamoRepository) Update(ctx context.Context, l entities.Law) (entities.Law, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.table),
		Key:                 idKey("id", l.ID),
		UpdateExpression:    aws.String("SET #nome = :nome, #sigla = :sigla"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":    "id",
			"#nome":  "nome",
			"#sigla": "sigla",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nome":  &types.AttributeValueMemberS{Value: l.Nome},
			":sigla": &types.AttributeValueMemberS{Value: l.Sigla},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Law{}, nil
		}
		return entities.Law{}, err
	}

	var updated entities.Law
	if err := unmarshalJSONTagged(out.Attributes, &updated); err != nil {
		return entities.Law{}, err
	}
	return updated, nil
}

func (r *LawDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.table),
		Key:                      idKey("id", id),
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// AssociationDynamoRepository keeps projetosIDs as a string set so that
// AddProject is a single idempotent ADD.
type AssociationDynamoRepository struct {
	ddb   dynamoAPI
	table string
}

var _ interfaces.IAssociationRepository = (*AssociationDynamoRepository)(nil)

func NewAssociationDynamoRepository(ddb *dynamodb.Client) *AssociationDynamoRepository {
	return &AssociationDynamoRepository{ddb: ddb, table: getenvDefault(associationsTableEnv, associationsTableDef)}
}

func (r *AssociationDynamoRepository) AddProject(ctx context.Context, usuarioID, projectID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       idKey("usuarioID", usuarioID),
		UpdateExpression:          aws.String("ADD #ids :p"),
		ExpressionAttributeNames:  map[string]string{"#ids": "projetosIDs"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":p": &types.AttributeValueMemberSS{Value: []string{projectID}}},
	})
	return err
}

func (r *AssociationDynamoRepository) GetByUserID(ctx context.Context, usuarioID string) (entities.Association, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            idKey("usuarioID", usuarioID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Association{}, err
	}
	if len(out.Item) == 0 {
		return entities.Association{}, nil
	}

	var a entities.Association
	if err := unmarshalJSONTagged(out.Item, &a); err != nil {
		return entities.Association{}, err
	}
	sort.Strings(a.ProjetosIDs)
	return a, nil
}
