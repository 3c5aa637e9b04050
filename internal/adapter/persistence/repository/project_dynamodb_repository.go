package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	projectsTableEnv = "PROJECTS_TABLE"
	projectsTableDef = "projetos"

	// DynamoDB caps a transaction at 100 actions and a BatchGetItem at 100 keys.
	maxTransactItems = 100
	maxBatchGetKeys  = 100
)

var errUnprocessedKeys = errors.New("batch get left unprocessed keys")

type ProjectDynamoRepository struct {
	ddb               dynamoAPI
	table             string
	registrationTable string
	followUpTable     string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return newProjectDynamoRepository(ddb)
}

func newProjectDynamoRepository(ddb dynamoAPI) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:               ddb,
		table:             getenvDefault(projectsTableEnv, projectsTableDef),
		registrationTable: getenvDefault(registrationFormsTableEnv, registrationFormsTableDef),
		followUpTable:     getenvDefault(followUpFormsTableEnv, followUpFormsTableDef),
	}
}

type sponsorItem struct {
	Nome          string  `dynamodbav:"nome"`
	ValorAportado float64 `dynamodbav:"valorAportado"`
}

type reminderItem struct {
	Period       string `dynamodbav:"period"`
	DataAgendada string `dynamodbav:"dataAgendada"`
	Enviado      bool   `dynamodbav:"enviado"`
}

type projectItem struct {
	ID               string         `dynamodbav:"id"`
	Nome             string         `dynamodbav:"nome"`
	Instituicao      string         `dynamodbav:"instituicao"`
	Status           string         `dynamodbav:"status"`
	Ativo            bool           `dynamodbav:"ativo"`
	Compliance       bool           `dynamodbav:"compliance"`
	Estados          []string       `dynamodbav:"estados"`
	Municipios       []string       `dynamodbav:"municipios"`
	Lei              string         `dynamodbav:"lei"`
	ValorAprovado    float64        `dynamodbav:"valorAprovado"`
	Empresas         []sponsorItem  `dynamodbav:"empresas"`
	Indicacao        string         `dynamodbav:"indicacao"`
	UltimoFormulario string         `dynamodbav:"ultimoFormulario"`
	DataAprovado     string         `dynamodbav:"dataAprovado,omitempty"`
	Notificacoes     []reminderItem `dynamodbav:"notificacoes,omitempty"`
	CreatedAt        string         `dynamodbav:"createdAt"`
	UpdatedAt        string         `dynamodbav:"updatedAt"`
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            idKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}
	return unmarshalProject(out.Item)
}

// GetByIDs returns the projects found among ids; missing ids are skipped.
func (r *ProjectDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Project, error) {
	var items []map[string]types.AttributeValue
	for start := 0; start < len(ids); start += maxBatchGetKeys {
		end := min(start+maxBatchGetKeys, len(ids))
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, idKey("id", id))
		}

		request := map[string]types.KeysAndAttributes{
			r.table: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for attempt := 0; len(request) > 0; attempt++ {
			if attempt == 5 {
				return nil, errUnprocessedKeys
			}
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			items = append(items, out.Responses[r.table]...)
			request = out.UnprocessedKeys
		}
	}

	res := make([]entities.Project, 0, len(items))
	for _, it := range items {
		p, err := unmarshalProject(it)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	sortProjects(res)
	return res, nil
}

// Update replaces the stored project. It returns a zero Project when the id
// does not exist.
func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	return r.scan(ctx, nil, nil, nil)
}

func (r *ProjectDynamoRepository) ListCountingInState(ctx context.Context, estado string) ([]entities.Project, error) {
	return r.scan(ctx,
		aws.String("#ativo = :true AND #status = :aprovado AND contains(#estados, :v)"),
		map[string]string{"#ativo": "ativo", "#status": "status", "#estados": "estados"},
		map[string]types.AttributeValue{
			":true":     &types.AttributeValueMemberBOOL{Value: true},
			":aprovado": &types.AttributeValueMemberS{Value: string(entities.ProjectStatusAprovado)},
			":v":        &types.AttributeValueMemberS{Value: estado},
		},
	)
}

func (r *ProjectDynamoRepository) ListCountingInMunicipality(ctx context.Context, municipio string) ([]entities.Project, error) {
	return r.scan(ctx,
		aws.String("#ativo = :true AND #status = :aprovado AND contains(#municipios, :v)"),
		map[string]string{"#ativo": "ativo", "#status": "status", "#municipios": "municipios"},
		map[string]types.AttributeValue{
			":true":     &types.AttributeValueMemberBOOL{Value: true},
			":aprovado": &types.AttributeValueMemberS{Value: string(entities.ProjectStatusAprovado)},
			":v":        &types.AttributeValueMemberS{Value: municipio},
		},
	)
}

// DeleteCascade removes the project together with its registration and
// follow-up forms. The first transaction carries the project delete, so a
// missing project aborts before any form is touched.
func (r *ProjectDynamoRepository) DeleteCascade(ctx context.Context, id string) (bool, error) {
	regKeys, err := r.formKeys(ctx, r.registrationTable, id)
	if err != nil {
		return false, fmt.Errorf("list registration forms: %w", err)
	}
	fuKeys, err := r.formKeys(ctx, r.followUpTable, id)
	if err != nil {
		return false, fmt.Errorf("list follow-up forms: %w", err)
	}

	actions := []types.TransactWriteItem{{
		Delete: &types.Delete{
			TableName:                aws.String(r.table),
			Key:                      idKey("id", id),
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}}
	for _, k := range regKeys {
		actions = append(actions, types.TransactWriteItem{Delete: &types.Delete{TableName: aws.String(r.registrationTable), Key: k}})
	}
	for _, k := range fuKeys {
		actions = append(actions, types.TransactWriteItem{Delete: &types.Delete{TableName: aws.String(r.followUpTable), Key: k}})
	}

	for start := 0; start < len(actions); start += maxTransactItems {
		end := min(start+maxTransactItems, len(actions))
		_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: actions[start:end],
		})
		if err != nil {
			if start == 0 && isConditionalCheckFailed(err) {
				return false, nil
			}
			return false, err
		}
	}
	return true, nil
}

func (r *ProjectDynamoRepository) formKeys(ctx context.Context, table, projectID string) ([]map[string]types.AttributeValue, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(table),
		IndexName:                aws.String(projectIDIndex),
		KeyConditionExpression:   aws.String("#pid = :pid"),
		ProjectionExpression:     aws.String("#id"),
		ExpressionAttributeNames: map[string]string{"#pid": "projetoID", "#id": "id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}
	keys := make([]map[string]types.AttributeValue, 0, len(items))
	for _, it := range items {
		keys = append(keys, map[string]types.AttributeValue{"id": it["id"]})
	}
	return keys, nil
}

func (r *ProjectDynamoRepository) scan(ctx context.Context, filter *string, names map[string]string, values map[string]types.AttributeValue) ([]entities.Project, error) {
	in := &dynamodb.ScanInput{
		TableName:      aws.String(r.table),
		ConsistentRead: aws.Bool(true),
	}
	if filter != nil {
		in.FilterExpression = filter
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	items, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	res := make([]entities.Project, 0, len(items))
	for _, it := range items {
		p, err := unmarshalProject(it)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	sortProjects(res)
	return res, nil
}

func sortProjects(ps []entities.Project) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
}

func unmarshalProject(m map[string]types.AttributeValue) (entities.Project, error) {
	var it projectItem
	if err := attributevalue.UnmarshalMap(m, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func toProjectItem(p entities.Project) projectItem {
	it := projectItem{
		ID:               p.ID,
		Nome:             p.Nome,
		Instituicao:      p.Instituicao,
		Status:           string(p.Status),
		Ativo:            p.Ativo,
		Compliance:       p.Compliance,
		Estados:          p.Estados,
		Municipios:       p.Municipios,
		Lei:              p.Lei,
		ValorAprovado:    p.ValorAprovado,
		Indicacao:        p.Indicacao,
		UltimoFormulario: p.UltimoFormulario,
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
	for _, s := range p.Empresas {
		it.Empresas = append(it.Empresas, sponsorItem{Nome: s.Nome, ValorAportado: s.ValorAportado})
	}
	if p.DataAprovado != nil {
		it.DataAprovado = formatTime(*p.DataAprovado)
	}
	for _, n := range p.Notificacoes {
		it.Notificacoes = append(it.Notificacoes, reminderItem{
			Period:       n.Period,
			DataAgendada: formatTime(n.DataAgendada),
			Enviado:      n.Enviado,
		})
	}
	return it
}

func fromProjectItem(it projectItem) entities.Project {
	p := entities.Project{
		ID:               it.ID,
		Nome:             it.Nome,
		Instituicao:      it.Instituicao,
		Status:           entities.ProjectStatus(it.Status),
		Ativo:            it.Ativo,
		Compliance:       it.Compliance,
		Estados:          it.Estados,
		Municipios:       it.Municipios,
		Lei:              it.Lei,
		ValorAprovado:    it.ValorAprovado,
		Indicacao:        it.Indicacao,
		UltimoFormulario: it.UltimoFormulario,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
	for _, s := range it.Empresas {
		p.Empresas = append(p.Empresas, entities.Sponsor{Nome: s.Nome, ValorAportado: s.ValorAportado})
	}
	if it.DataAprovado != "" {
		t := parseTime(it.DataAprovado)
		p.DataAprovado = &t
	}
	for _, n := range it.Notificacoes {
		p.Notificacoes = append(p.Notificacoes, entities.FollowUpReminder{
			Period:       n.Period,
			DataAgendada: parseTime(n.DataAgendada),
			Enviado:      n.Enviado,
		})
	}
	return p
}
