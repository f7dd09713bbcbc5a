package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/auth"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/config"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/database"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/handlers"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/repository"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/service"
)

type AppContext struct {
	Config  *config.Config
	Logger  *zap.Logger
	Sugar   *zap.SugaredLogger
	Mongo   *mongo.Client
	Redis   *redis.Client
	Tokens  *auth.Manager
	Handler *handlers.Handler
}

type CleanupFn func(context.Context)

// Init wires config, logging, storage connections, repositories, services
// and handlers, seeds the admin account, and returns a cleanup func.
func Init(configPath string) (*AppContext, CleanupFn, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	var logger *zap.Logger
	if cfg.App.Env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	sugar := logger.Sugar()
	sugar.Infof("Starting service in %s environment", cfg.App.Env)

	db, mongoClient, err := database.ConnectMongo(
		cfg.Mongo.URI,
		cfg.Mongo.Database,
		time.Duration(cfg.Mongo.ConnectTimeoutSeconds)*time.Second,
		time.Duration(cfg.Mongo.SocketTimeoutSeconds)*time.Second,
		sugar,
	)
	if err != nil {
		return nil, nil, err
	}

	rdb, err := database.ConnectRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, sugar)
	if err != nil {
		return nil, nil, err
	}

	userRepo := repository.NewMongoUserRepo(db, cfg.Mongo.UsersCollection)
	projectRepo := repository.NewMongoProjectRepo(db, cfg.Mongo.ProjectsCollection)
	reviewRepo := repository.NewMongoReviewRepo(db, cfg.Mongo.ReviewsCollection)
	applicationRepo := repository.NewMongoApplicationRepo(db, cfg.Mongo.ApplicationsCollection)
	contactRepo := repository.NewMongoContactRepo(db, cfg.Mongo.ContactsCollection)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := SeedAdmin(seedCtx, userRepo, cfg.Admin, sugar); err != nil {
		return nil, nil, err
	}

	tokens := auth.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTTLMinutes)

	userSvc := service.NewUserService(userRepo, logger)
	projectSvc := service.NewProjectService(projectRepo, userRepo, logger)
	reviewSvc := service.NewReviewService(reviewRepo, projectRepo, userRepo, logger)
	applicationSvc := service.NewApplicationService(applicationRepo, projectRepo, userRepo, logger)
	contactSvc := service.NewContactService(contactRepo, logger)

	app := &AppContext{
		Config:  cfg,
		Logger:  logger,
		Sugar:   sugar,
		Mongo:   mongoClient,
		Redis:   rdb,
		Tokens:  tokens,
		Handler: handlers.NewHandler(userSvc, projectSvc, reviewSvc, applicationSvc, contactSvc, tokens, logger),
	}

	return app, func(ctx context.Context) {
		if cerr := logger.Sync(); cerr != nil {
			log.Printf("logger sync error: %v", cerr)
		}
		if cerr := mongoClient.Disconnect(ctx); cerr != nil {
			sugar.Errorf("MongoDB disconnect error: %v", cerr)
		}
		if cerr := rdb.Close(); cerr != nil {
			sugar.Errorf("Redis client close error: %v", cerr)
		}
	}, nil
}
