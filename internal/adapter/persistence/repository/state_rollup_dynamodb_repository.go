package repository

import (
	"context"
	"log"
	"sort"
	"strconv"
	"time"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/domain/rollup"
	"painel_incentivos/internal/infrastructure/metrics"
	"painel_incentivos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	stateRollupsTableEnv = "STATE_ROLLUPS_TABLE"
	stateRollupsTableDef = "dadosEstados"

	defaultRollupMaxAttempts = 5
)

// StateRollupDynamoRepository implements the rollup transactions as
// optimistic read-modify-write cycles guarded by the document version.
type StateRollupDynamoRepository struct {
	ddb         dynamoAPI
	table       string
	maxAttempts int
}

var _ interfaces.IStateRollupRepository = (*StateRollupDynamoRepository)(nil)

func NewStateRollupDynamoRepository(ddb *dynamodb.Client, maxAttempts int) *StateRollupDynamoRepository {
	return newStateRollupDynamoRepository(ddb, maxAttempts)
}

func newStateRollupDynamoRepository(ddb dynamoAPI, maxAttempts int) *StateRollupDynamoRepository {
	if maxAttempts <= 0 {
		maxAttempts = defaultRollupMaxAttempts
	}
	return &StateRollupDynamoRepository{
		ddb:         ddb,
		table:       getenvDefault(stateRollupsTableEnv, stateRollupsTableDef),
		maxAttempts: maxAttempts,
	}
}

type categoryItem struct {
	Nome        string `dynamodbav:"nome"`
	QtdProjetos int    `dynamodbav:"qtdProjetos"`
}

type contributionItem struct {
	Nome          string  `dynamodbav:"nome"`
	ValorAportado float64 `dynamodbav:"valorAportado"`
}

type stateRollupItem struct {
	ID                    string           `dynamodbav:"id"`
	NomeEstado            string           `dynamodbav:"nomeEstado"`
	QtdProjetos           int              `dynamodbav:"qtdProjetos"`
	QtdMunicipios         int              `dynamodbav:"qtdMunicipios"`
	Municipios            []string         `dynamodbav:"municipios"`
	MunicipiosRef         map[string]int   `dynamodbav:"municipiosRef"`
	ValorTotal            float64          `dynamodbav:"valorTotal"`
	MaiorAporte           contributionItem `dynamodbav:"maiorAporte"`
	BeneficiariosDireto   int              `dynamodbav:"beneficiariosDireto"`
	BeneficiariosIndireto int              `dynamodbav:"beneficiariosIndireto"`
	QtdOrganizacoes       int              `dynamodbav:"qtdOrganizacoes"`
	ProjetosODS           []int            `dynamodbav:"projetosODS"`
	Lei                   []categoryItem   `dynamodbav:"lei"`
	Segmento              []categoryItem   `dynamodbav:"segmento"`
	IDProjects            []string         `dynamodbav:"idProjects"`
	Version               int64            `dynamodbav:"version"`
	UpdatedAt             string           `dynamodbav:"updatedAt"`
}

func (r *StateRollupDynamoRepository) Get(ctx context.Context, slug string) (entities.StateRollup, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            idKey("id", slug),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StateRollup{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.StateRollup{}, false, nil
	}

	var it stateRollupItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StateRollup{}, false, err
	}
	return rollup.Normalize(fromStateRollupItem(it)), true, nil
}

// Update reads the rollup, applies mutate and writes the result only if the
// version is still the one read. Lost races are retried up to maxAttempts
// times before ErrRollupConflict is returned.
func (r *StateRollupDynamoRepository) Update(ctx context.Context, slug string, mutate interfaces.RollupMutator) (bool, error) {
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		cur, found, err := r.Get(ctx, slug)
		if err != nil {
			return false, err
		}
		if !found {
			return false, nil
		}

		next, err := mutate(cur.Clone())
		if err != nil {
			return true, err
		}
		next.ID = slug
		next.Version = cur.Version + 1

		err = r.putIfVersion(ctx, next, cur.Version)
		if err == nil {
			return true, nil
		}
		if !isConditionalCheckFailed(err) {
			return true, err
		}
		metrics.RollupRetries.Inc()
		log.Printf("[rollup][repository] version conflict state=%s version=%d attempt=%d", slug, cur.Version, attempt)
	}
	return true, interfaces.ErrRollupConflict
}

// Put overwrites the rollup with doc, bumping the version it observed.
func (r *StateRollupDynamoRepository) Put(ctx context.Context, doc entities.StateRollup) (entities.StateRollup, error) {
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		cur, _, err := r.Get(ctx, doc.ID)
		if err != nil {
			return entities.StateRollup{}, err
		}

		next := doc.Clone()
		next.Version = cur.Version + 1
		err = r.putIfVersion(ctx, next, cur.Version)
		if err == nil {
			return next, nil
		}
		if !isConditionalCheckFailed(err) {
			return entities.StateRollup{}, err
		}
		metrics.RollupRetries.Inc()
		log.Printf("[rollup][repository] put raced state=%s version=%d attempt=%d", doc.ID, cur.Version, attempt)
	}
	return entities.StateRollup{}, interfaces.ErrRollupConflict
}

// Create writes doc at version 1 unless a rollup with the same id exists.
func (r *StateRollupDynamoRepository) Create(ctx context.Context, doc entities.StateRollup) (bool, error) {
	doc.Version = 1
	av, err := attributevalue.MarshalMap(toStateRollupItem(doc))
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
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

func (r *StateRollupDynamoRepository) ListNonEmpty(ctx context.Context) ([]entities.StateRollup, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.table),
		ConsistentRead:           aws.Bool(true),
		FilterExpression:         aws.String("#qtd <> :zero"),
		ExpressionAttributeNames: map[string]string{"#qtd": "qtdProjetos"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
		},
	})
	if err != nil {
		return nil, err
	}

	res := make([]entities.StateRollup, 0, len(items))
	for _, m := range items {
		var it stateRollupItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		res = append(res, rollup.Normalize(fromStateRollupItem(it)))
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

// putIfVersion writes doc when the stored version equals expected. Documents
// written before versioning have no version attribute and read as 0.
func (r *StateRollupDynamoRepository) putIfVersion(ctx context.Context, doc entities.StateRollup, expected int64) error {
	av, err := attributevalue.MarshalMap(toStateRollupItem(doc))
	if err != nil {
		return err
	}

	cond := "#version = :expected"
	if expected == 0 {
		cond = "attribute_not_exists(#version) OR " + cond
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.table),
		Item:                     av,
		ConditionExpression:      aws.String(cond),
		ExpressionAttributeNames: map[string]string{"#version": "version"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	return err
}

func toStateRollupItem(r entities.StateRollup) stateRollupItem {
	it := stateRollupItem{
		ID:                    r.ID,
		NomeEstado:            r.NomeEstado,
		QtdProjetos:           r.QtdProjetos,
		QtdMunicipios:         r.QtdMunicipios,
		Municipios:            r.Municipios,
		MunicipiosRef:         r.MunicipiosRef,
		ValorTotal:            r.ValorTotal,
		MaiorAporte:           contributionItem{Nome: r.MaiorAporte.Nome, ValorAportado: r.MaiorAporte.ValorAportado},
		BeneficiariosDireto:   r.BeneficiariosDireto,
		BeneficiariosIndireto: r.BeneficiariosIndireto,
		QtdOrganizacoes:       r.QtdOrganizacoes,
		ProjetosODS:           r.ProjetosODS,
		IDProjects:            r.IDProjects,
		Version:               r.Version,
		UpdatedAt:             formatTime(time.Now()),
	}
	for _, c := range r.Lei {
		it.Lei = append(it.Lei, categoryItem{Nome: c.Nome, QtdProjetos: c.QtdProjetos})
	}
	for _, c := range r.Segmento {
		it.Segmento = append(it.Segmento, categoryItem{Nome: c.Nome, QtdProjetos: c.QtdProjetos})
	}
	return it
}

func fromStateRollupItem(it stateRollupItem) entities.StateRollup {
	r := entities.StateRollup{
		ID:                    it.ID,
		NomeEstado:            it.NomeEstado,
		QtdProjetos:           it.QtdProjetos,
		QtdMunicipios:         it.QtdMunicipios,
		Municipios:            it.Municipios,
		MunicipiosRef:         it.MunicipiosRef,
		ValorTotal:            it.ValorTotal,
		MaiorAporte:           entities.Contribution{Nome: it.MaiorAporte.Nome, ValorAportado: it.MaiorAporte.ValorAportado},
		BeneficiariosDireto:   it.BeneficiariosDireto,
		BeneficiariosIndireto: it.BeneficiariosIndireto,
		QtdOrganizacoes:       it.QtdOrganizacoes,
		ProjetosODS:           it.ProjetosODS,
		IDProjects:            it.IDProjects,
		Version:               it.Version,
	}
	for _, c := range it.Lei {
		r.Lei = append(r.Lei, entities.CategoryCount{Nome: c.Nome, QtdProjetos: c.QtdProjetos})
	}
	for _, c := range it.Segmento {
		r.Segmento = append(r.Segmento, entities.CategoryCount{Nome: c.Nome, QtdProjetos: c.QtdProjetos})
	}
	return r
}
