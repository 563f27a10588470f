package config

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shelterly/adoption-system/adoption-saga-service/application"
	"github.com/shelterly/adoption-system/adoption-saga-service/handlers"
	"github.com/shelterly/adoption-system/adoption-saga-service/infrastructure"
	sharedinfra "github.com/shelterly/adoption-system/shared/infrastructure"
	"github.com/shelterly/adoption-system/shared/telemetry"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	ProcessRepository  *infrastructure.PostgresAdoptionRepository
	VolunteerDirectory *infrastructure.PostgresVolunteerDirectory
	EventStore         *sharedinfra.PostgresEventStore

	// Use Cases
	StartAdoption             *application.StartAdoption
	ProcessReservationResult  *application.ProcessReservationResult
	ProcessConversationResult *application.ProcessConversationResult
	ProcessAdoptionDecision   *application.ProcessAdoptionDecision
	ProcessFinalizationResult *application.ProcessFinalizationResult
	ProcessAnimalReleased     *application.ProcessAnimalReleased
	GetAdoption               *application.GetAdoption
	ListAdoptions             *application.ListAdoptions
	ConfirmAdoption           *application.ConfirmAdoption
	RejectAdoption            *application.RejectAdoption

	// HTTP Handlers
	AdoptionHandlers *handlers.AdoptionHandlers

	// Event Handlers
	AdoptionEventHandlers *handlers.AdoptionEventHandlers

	// Infrastructure
	EventPublisher  *sharedinfra.SNSPublisherAdapter
	EventSubscriber *sharedinfra.SQSSubscriberAdapter

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	// Initialize telemetry first
	if config.Telemetry.Enabled {
		telConfig := telemetry.AdoptionSagaServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			log.Printf("Failed to initialize telemetry: %v", err)
			// Continue without telemetry rather than failing
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	// Initialize database
	db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	deps.DB = db

	// Initialize AWS infrastructure
	eventPublisher, err := sharedinfra.NewSNSPublisherAdapter(config.AWS.SNSTopicArn)
	if err != nil {
		return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
	}
	deps.EventPublisher = eventPublisher

	eventSubscriber, err := sharedinfra.NewSQSSubscriberAdapter(config.AWS.SQSQueueURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQS subscriber: %w", err)
	}
	deps.EventSubscriber = eventSubscriber

	// Initialize repositories
	deps.ProcessRepository = infrastructure.NewPostgresAdoptionRepository(db)
	deps.VolunteerDirectory = infrastructure.NewPostgresVolunteerDirectory(db)
	deps.EventStore = sharedinfra.NewPostgresEventStore(db)

	// Initialize use cases
	deps.StartAdoption = application.NewStartAdoption(deps.ProcessRepository, eventPublisher, deps.EventStore)
	deps.ProcessReservationResult = application.NewProcessReservationResult(deps.ProcessRepository, eventPublisher, deps.EventStore)
	deps.ProcessConversationResult = application.NewProcessConversationResult(deps.ProcessRepository, eventPublisher, deps.EventStore)
	deps.ProcessAdoptionDecision = application.NewProcessAdoptionDecision(deps.ProcessRepository, eventPublisher, deps.EventStore)
	deps.ProcessFinalizationResult = application.NewProcessFinalizationResult(deps.ProcessRepository, eventPublisher, deps.EventStore)
	deps.ProcessAnimalReleased = application.NewProcessAnimalReleased(deps.ProcessRepository, eventPublisher, deps.EventStore)
	deps.GetAdoption = application.NewGetAdoption(deps.ProcessRepository)
	deps.ListAdoptions = application.NewListAdoptions(deps.ProcessRepository)
	deps.ConfirmAdoption = application.NewConfirmAdoption(deps.ProcessRepository, deps.VolunteerDirectory, eventPublisher)
	deps.RejectAdoption = application.NewRejectAdoption(deps.ProcessRepository, deps.VolunteerDirectory, eventPublisher)

	// Initialize handlers
	deps.AdoptionHandlers = handlers.NewAdoptionHandlers(
		deps.GetAdoption,
		deps.ListAdoptions,
		deps.ConfirmAdoption,
		deps.RejectAdoption,
	)
	deps.AdoptionEventHandlers = handlers.NewAdoptionEventHandlers(
		deps.StartAdoption,
		deps.ProcessReservationResult,
		deps.ProcessConversationResult,
		deps.ProcessAdoptionDecision,
		deps.ProcessFinalizationResult,
		deps.ProcessAnimalReleased,
	)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.EventPublisher != nil {
		if err := d.EventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event publisher: %w", err))
		}
	}

	if d.EventSubscriber != nil {
		if err := d.EventSubscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event subscriber: %w", err))
		}
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
