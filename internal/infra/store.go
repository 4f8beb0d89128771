package infra

import (
	"context"
	"fmt"
	"net/url"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"planmyday/internal/config"
	"planmyday/internal/repositories"
)

// Store owns whichever backend STORE_DRIVER selected.
type Store struct {
	Driver string

	mongoClient *mongo.Client
	mongoDB     *mongo.Database
	postgres    *gorm.DB
	memory      *repositories.MemoryStore

	logger *zap.Logger
}

func NewStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	s := &Store{Driver: cfg.StoreDriver, logger: logger}

	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, err := ConnectMongo(ctx, cfg.MongoURL, cfg.DBTimeout, logger)
		if err != nil {
			return nil, err
		}
		s.mongoClient = client
		s.mongoDB = client.Database(cfg.MongoDatabase)
	case config.StorePostgres:
		db, err := InitPostgresql(cfg.PostgresURL, logger)
		if err != nil {
			return nil, err
		}
		s.postgres = db
	case config.StoreMemory:
		s.memory = repositories.NewMemoryStore()
		logger.Warn("Using in-memory store; data is lost on restart")
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}

	return s, nil
}

func (s *Store) VenueRepository() repositories.VenueRepository {
	switch {
	case s.mongoDB != nil:
		return repositories.NewMongoVenueRepository(s.mongoDB)
	case s.postgres != nil:
		return repositories.NewVenueRepository(s.postgres)
	default:
		return s.memory.Venues()
	}
}

func (s *Store) DayPlanRepository() repositories.DayPlanRepository {
	switch {
	case s.mongoDB != nil:
		return repositories.NewMongoDayPlanRepository(s.mongoDB)
	case s.postgres != nil:
		return repositories.NewDayPlanRepository(s.postgres)
	default:
		return s.memory.DayPlans()
	}
}

func (s *Store) Close(ctx context.Context) {
	switch {
	case s.mongoClient != nil:
		DisconnectMongo(ctx, s.mongoClient, s.logger)
	case s.postgres != nil:
		ClosePostgresql(s.postgres, s.logger)
	}
}

func redactURI(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<unparseable>"
	}
	return u.Redacted()
}
