package app

import (
	"context"

	"github.com/guttosm/laundry-pricing/config"
	"github.com/guttosm/laundry-pricing/internal/circuitbreaker"
	"github.com/guttosm/laundry-pricing/internal/middleware"
	"github.com/guttosm/laundry-pricing/internal/repository"
	"github.com/guttosm/laundry-pricing/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds the MongoDB log pipeline.
type DatabaseComponents struct {
	DB                 *repository.MongoDB
	LoggingService     service.LoggingService
	LogsCircuitBreaker *circuitbreaker.CircuitBreaker
	AsyncLogger        *middleware.AsyncLogger
}

// InitializeDatabase connects to MongoDB and starts the async log writer.
// Returns nil if the database is disabled or the connection fails; the
// service then logs to the console only.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")
	return newDatabaseComponents(db, cfg)
}

func newDatabaseComponents(db *repository.MongoDB, cfg config.DatabaseConfig) *DatabaseComponents {
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if ttlDays > 0 {
		if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
			log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
		}
	}

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	loggingService := service.NewLoggingService(logsRepo)

	return &DatabaseComponents{
		DB:                 db,
		LoggingService:     loggingService,
		LogsCircuitBreaker: logsCB,
		AsyncLogger:        middleware.NewAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig()),
	}
}

// HealthCheck pings the database.
func (d *DatabaseComponents) HealthCheck() error {
	return d.DB.HealthCheck(context.Background())
}

// Close flushes pending log entries and disconnects.
func (d *DatabaseComponents) Close(ctx context.Context) {
	d.AsyncLogger.Stop()
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}
}
