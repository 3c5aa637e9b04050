// Package app wires repositories, use cases and infrastructure for the HTTP
// server and the job runner.
package app

import (
	"context"
	"fmt"
	"log"

	"painel_incentivos/internal/adapter/persistence/memory"
	"painel_incentivos/internal/adapter/persistence/repository"
	"painel_incentivos/internal/domain/catalog"
	"painel_incentivos/internal/infrastructure/config"
	"painel_incentivos/internal/infrastructure/database"
	"painel_incentivos/internal/infrastructure/notification"
	"painel_incentivos/internal/usecase"
	"painel_incentivos/internal/usecase/interfaces"
)

type repositories struct {
	projects      interfaces.IProjectRepository
	registrations interfaces.IRegistrationFormRepository
	followUps     interfaces.IFollowUpFormRepository
	rollups       interfaces.IStateRollupRepository
	laws          interfaces.ILawRepository
	associations  interfaces.IAssociationRepository
}

// App holds the use cases shared by every entrypoint.
type App struct {
	Forms     usecase.IFormsUseCase
	Projects  usecase.IProjectUseCase
	Dashboard usecase.IDashboardUseCase
	Engine    usecase.IRecomputeEngine
	Laws      usecase.ILawUseCase
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	repos, err := newRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	index, err := catalog.LoadMunicipalityIndex(cfg.MunicipalitiesFile)
	if err != nil {
		return nil, err
	}

	delta := usecase.NewDeltaAggregator(repos.rollups, index)
	engine := usecase.NewRecomputeEngine(repos.projects, repos.registrations, repos.followUps, repos.rollups, index)
	if _, err := engine.EnsureStates(ctx); err != nil {
		return nil, fmt.Errorf("bootstrap state rollups: %w", err)
	}

	return &App{
		Forms:    usecase.NewFormsUseCase(repos.projects, repos.registrations, repos.followUps, repos.associations, delta),
		Projects: usecase.NewProjectUseCase(repos.projects, repos.registrations, repos.laws, engine, notification.New(cfg.NotifyWebhookURL), cfg.FollowUpLinkBase),
		Dashboard: usecase.NewDashboardUseCase(repos.rollups, repos.projects, repos.registrations, repos.followUps, usecase.DashboardOptions{
			BatchSize:     cfg.DashboardBatchSize,
			BatchInterval: cfg.DashboardBatchInterval,
		}),
		Engine: engine,
		Laws:   usecase.NewLawUseCase(repos.laws),
	}, nil
}

func newRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	if cfg.StoreDriver == config.StoreMemory {
		log.Printf("[app][store] using in-memory store, data is lost on exit")
		s := memory.NewStore()
		return repositories{
			projects:      memory.NewProjectRepository(s),
			registrations: memory.NewRegistrationFormRepository(s),
			followUps:     memory.NewFollowUpFormRepository(s),
			rollups:       memory.NewStateRollupRepository(s),
			laws:          memory.NewLawRepository(s),
			associations:  memory.NewAssociationRepository(s),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return repositories{}, err
	}
	if database.IsLocal() {
		if err := repository.EnsureTables(ctx, ddb); err != nil {
			return repositories{}, fmt.Errorf("bootstrap local tables: %w", err)
		}
	}
	log.Printf("[app][store] using dynamodb")
	return repositories{
		projects:      repository.NewProjectDynamoRepository(ddb),
		registrations: repository.NewRegistrationFormDynamoRepository(ddb),
		followUps:     repository.NewFollowUpFormDynamoRepository(ddb),
		rollups:       repository.NewStateRollupDynamoRepository(ddb, cfg.RollupTxMaxAttempts),
		laws:          repository.NewLawDynamoRepository(ddb),
		associations:  repository.NewAssociationDynamoRepository(ddb),
	}, nil
}
