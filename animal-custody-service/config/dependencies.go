package config

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shelterly/adoption-system/animal-custody-service/application"
	"github.com/shelterly/adoption-system/animal-custody-service/handlers"
	"github.com/shelterly/adoption-system/animal-custody-service/infrastructure"
	sharedinfra "github.com/shelterly/adoption-system/shared/infrastructure"
	"github.com/shelterly/adoption-system/shared/telemetry"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	AnimalRepository *infrastructure.PostgresAnimalRepository

	// Use Cases
	ReserveAnimal    *application.ReserveAnimal
	ReleaseAnimal    *application.ReleaseAnimal
	FinalizeAdoption *application.FinalizeAdoption
	GetAnimal        *application.GetAnimal

	// HTTP Handlers
	AnimalHandlers *handlers.AnimalHandlers

	// Event Handlers
	CustodyEventHandlers *handlers.CustodyEventHandlers

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
		telConfig := telemetry.AnimalCustodyServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
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
	deps.AnimalRepository = infrastructure.NewPostgresAnimalRepository(db)

	// Initialize use cases
	deps.ReserveAnimal = application.NewReserveAnimal(deps.AnimalRepository, eventPublisher)
	deps.ReleaseAnimal = application.NewReleaseAnimal(deps.AnimalRepository, eventPublisher)
	deps.FinalizeAdoption = application.NewFinalizeAdoption(deps.AnimalRepository, eventPublisher)
	deps.GetAnimal = application.NewGetAnimal(deps.AnimalRepository)

	// Initialize handlers
	deps.AnimalHandlers = handlers.NewAnimalHandlers(deps.GetAnimal)
	deps.CustodyEventHandlers = handlers.NewCustodyEventHandlers(
		deps.ReserveAnimal,
		deps.ReleaseAnimal,
		deps.FinalizeAdoption,
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
