package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type tableDef struct {
	name      string
	key       string
	withIndex bool
	// indexSort is the optional range key of the projetoID index.
	indexSort string
}

func tableDefs() []tableDef {
	return []tableDef{
		{name: getenvDefault(projectsTableEnv, projectsTableDef), key: "id"},
		{name: getenvDefault(registrationFormsTableEnv, registrationFormsTableDef), key: "id", withIndex: true},
		{name: getenvDefault(followUpFormsTableEnv, followUpFormsTableDef), key: "id", withIndex: true, indexSort: "dataResposta"},
		{name: getenvDefault(stateRollupsTableEnv, stateRollupsTableDef), key: "id"},
		{name: getenvDefault(lawsTableEnv, lawsTableDef), key: "id"},
		{name: getenvDefault(associationsTableEnv, associationsTableDef), key: "usuarioID"},
	}
}

// EnsureTables creates the missing tables (and the projetoID index of the
// form tables). Meant for local DynamoDB; production tables are provisioned
// outside the service.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client) error {
	for _, t := range tableDefs() {
		if err := createTable(ctx, ddb, t); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
	}
	return nil
}

func createTable(ctx context.Context, ddb *dynamodb.Client, t tableDef) error {
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(t.name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(t.key), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(t.key), KeyType: types.KeyTypeHash},
		},
	}
	if t.withIndex {
		in.AttributeDefinitions = append(in.AttributeDefinitions,
			types.AttributeDefinition{AttributeName: aws.String("projetoID"), AttributeType: types.ScalarAttributeTypeS},
		)
		keys := []types.KeySchemaElement{
			{AttributeName: aws.String("projetoID"), KeyType: types.KeyTypeHash},
		}
		if t.indexSort != "" {
			in.AttributeDefinitions = append(in.AttributeDefinitions,
				types.AttributeDefinition{AttributeName: aws.String(t.indexSort), AttributeType: types.ScalarAttributeTypeS},
			)
			keys = append(keys, types.KeySchemaElement{AttributeName: aws.String(t.indexSort), KeyType: types.KeyTypeRange})
		}
		in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
			IndexName:  aws.String(projectIDIndex),
			KeySchema:  keys,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}}
	}

	_, err := ddb.CreateTable(ctx, in)
	var inUse *types.ResourceInUseException
	if errors.As(err, &inUse) {
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("[dynamodb][schema] created table=%s", t.name)
	return nil
}
