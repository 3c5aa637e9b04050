package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/domain/rollup"
	"painel_incentivos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTable keeps items by id and evaluates the version conditions used by
// the rollup repository. Every call not overridden panics through the nil
// embedded interface.
type fakeTable struct {
	dynamoAPI

	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	// racing is the number of upcoming puts that a concurrent writer beats.
	racing int
	puts   int
}

func newFakeTable() *fakeTable {
	return &fakeTable{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeTable) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func (f *fakeTable) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++

	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	cur := f.items[id]
	if f.racing > 0 && cur != nil {
		f.racing--
		v, _ := strconv.ParseInt(cur["version"].(*types.AttributeValueMemberN).Value, 10, 64)
		cur["version"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(v+1, 10)}
	}

	if aws.ToString(in.ConditionExpression) == "attribute_not_exists(#id)" {
		if cur != nil {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("item exists")}
		}
		f.items[id] = in.Item
		return &dynamodb.PutItemOutput{}, nil
	}

	expected := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value
	stored, hasVersion := cur["version"].(*types.AttributeValueMemberN)
	switch {
	case !hasVersion && strings.Contains(aws.ToString(in.ConditionExpression), "attribute_not_exists(#version)"):
	case hasVersion && stored.Value == expected:
	default:
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("version mismatch")}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestStateRollupDynamoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("update of missing document is skipped", func(t *testing.T) {
		table := newFakeTable()
		repo := newStateRollupDynamoRepository(table, 3)

		found, err := repo.Update(ctx, "acre", func(cur entities.StateRollup) (entities.StateRollup, error) {
			t.Fatalf("mutator must not run for a missing rollup")
			return cur, nil
		})
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, 0, table.puts)
	})

	t.Run("create only writes a missing rollup", func(t *testing.T) {
		table := newFakeTable()
		repo := newStateRollupDynamoRepository(table, 3)

		created, err := repo.Create(ctx, rollup.Empty("Acre"))
		require.NoError(t, err)
		assert.True(t, created)

		_, err = repo.Update(ctx, "acre", func(cur entities.StateRollup) (entities.StateRollup, error) {
			cur.QtdProjetos = 2
			return cur, nil
		})
		require.NoError(t, err)

		created, err = repo.Create(ctx, rollup.Empty("Acre"))
		require.NoError(t, err)
		assert.False(t, created)

		got, ok, err := repo.Get(ctx, "acre")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 2, got.QtdProjetos)
		assert.Equal(t, int64(2), got.Version)
	})

	t.Run("put creates and update bumps version", func(t *testing.T) {
		table := newFakeTable()
		repo := newStateRollupDynamoRepository(table, 3)

		saved, err := repo.Put(ctx, rollup.Empty("Acre"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.Version)

		found, err := repo.Update(ctx, "acre", func(cur entities.StateRollup) (entities.StateRollup, error) {
			cur.QtdProjetos = 4
			cur.ValorTotal = 1500.5
			return cur, nil
		})
		require.NoError(t, err)
		assert.True(t, found)

		got, ok, err := repo.Get(ctx, "acre")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 4, got.QtdProjetos)
		assert.Equal(t, 1500.5, got.ValorTotal)
		assert.Equal(t, int64(2), got.Version)
		assert.Len(t, got.ProjetosODS, entities.SDGSlots)
	})

	t.Run("lost race is retried on top of the winner", func(t *testing.T) {
		table := newFakeTable()
		repo := newStateRollupDynamoRepository(table, 3)
		_, err := repo.Put(ctx, rollup.Empty("Acre"))
		require.NoError(t, err)

		table.racing = 1
		calls := 0
		found, err := repo.Update(ctx, "acre", func(cur entities.StateRollup) (entities.StateRollup, error) {
			calls++
			cur.QtdProjetos++
			return cur, nil
		})
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 2, calls)

		got, _, err := repo.Get(ctx, "acre")
		require.NoError(t, err)
		assert.Equal(t, 1, got.QtdProjetos)
		assert.Equal(t, int64(3), got.Version)
	})

	t.Run("conflict after max attempts", func(t *testing.T) {
		table := newFakeTable()
		repo := newStateRollupDynamoRepository(table, 3)
		_, err := repo.Put(ctx, rollup.Empty("Acre"))
		require.NoError(t, err)
		putsBefore := table.puts

		table.racing = 100
		_, err = repo.Update(ctx, "acre", func(cur entities.StateRollup) (entities.StateRollup, error) {
			return cur, nil
		})
		assert.True(t, errors.Is(err, interfaces.ErrRollupConflict))
		assert.Equal(t, 3, table.puts-putsBefore)
	})

	t.Run("mutator error writes nothing", func(t *testing.T) {
		table := newFakeTable()
		repo := newStateRollupDynamoRepository(table, 3)
		_, err := repo.Put(ctx, rollup.Empty("Acre"))
		require.NoError(t, err)
		putsBefore := table.puts

		boom := errors.New("boom")
		_, err = repo.Update(ctx, "acre", func(cur entities.StateRollup) (entities.StateRollup, error) {
			return cur, boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, putsBefore, table.puts)
	})

	t.Run("put on a legacy document without version", func(t *testing.T) {
		table := newFakeTable()
		repo := newStateRollupDynamoRepository(table, 3)
		table.items["acre"] = map[string]types.AttributeValue{
			"id":          &types.AttributeValueMemberS{Value: "acre"},
			"nomeEstado":  &types.AttributeValueMemberS{Value: "Acre"},
			"qtdProjetos": &types.AttributeValueMemberN{Value: "2"},
		}

		got, ok, err := repo.Get(ctx, "acre")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, int64(0), got.Version)

		saved, err := repo.Put(ctx, rollup.Empty("Acre"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.Version)
	})
}

func TestIsConditionalCheckFailed(t *testing.T) {
	assert.True(t, isConditionalCheckFailed(&types.ConditionalCheckFailedException{}))
	assert.True(t, isConditionalCheckFailed(&types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{{Code: aws.String("None")}, {Code: aws.String("ConditionalCheckFailed")}},
	}))
	assert.False(t, isConditionalCheckFailed(&types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{{Code: aws.String("TransactionConflict")}},
	}))
	assert.False(t, isConditionalCheckFailed(errors.New("network")))
}

func TestProjectItemMapping(t *testing.T) {
	p := entities.Project{
		ID:            "p1",
		Nome:          "Orquestra Jovem",
		Status:        entities.ProjectStatusAprovado,
		Ativo:         true,
		Estados:       []string{"São Paulo"},
		Municipios:    []string{"Campinas"},
		ValorAprovado: 250000,
		Empresas:      []entities.Sponsor{{Nome: "ACME", ValorAportado: 1000}},
	}

	got := fromProjectItem(toProjectItem(p))
	assert.Equal(t, p.Empresas, got.Empresas)
	assert.Equal(t, p.Estados, got.Estados)
	assert.Nil(t, got.DataAprovado)
	assert.True(t, got.Counts())
}
