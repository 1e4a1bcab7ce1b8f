package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leon37/SavingsCoach/internal/api"
	"github.com/leon37/SavingsCoach/internal/api/controller"
	"github.com/leon37/SavingsCoach/internal/config"
	"github.com/leon37/SavingsCoach/internal/infrastructure/database"
	"github.com/leon37/SavingsCoach/internal/infrastructure/llm"
	"github.com/leon37/SavingsCoach/internal/repository"
	"github.com/leon37/SavingsCoach/internal/service"
)

// @title           SavingsCoach API
// @version         1.0
// @description     Chat driven personal finance assistant backed by an LLM coach

// @host            localhost:8080
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer <token>" (with a space between Bearer and the token)

func main() {
	// 1. Logger first so everything below logs through it
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Infra initialization
	store, err := openStore(conf)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close(context.Background())

	aiClient := llm.NewClient(conf.AI.APIKey, conf.AI.BaseURL, conf.AI.ChatModel, conf.AI.InsightsModel)

	// 3. Layer wiring
	authSvc := service.NewAuthService(store.Users(), conf.JWT)
	chatSvc := service.NewChatService(aiClient, store.Conversations(), store.Expenses())
	expenseSvc := service.NewExpenseService(store.Expenses())
	insightSvc := service.NewInsightService(aiClient, store.Expenses())

	// 4. Server start
	if conf.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	api.RegisterRoutes(r,
		authSvc,
		controller.NewAuthController(authSvc),
		controller.NewChatController(chatSvc),
		controller.NewExpenseController(expenseSvc),
		controller.NewInsightController(insightSvc),
	)

	slog.Info("SavingsCoach server starting", "port", conf.Server.Port, "storage", conf.Storage.Driver)
	if err := r.Run(conf.Server.Port); err != nil {
		slog.Error("server exited", "err", err)
	}
}

// openStore picks the persistence backend from config.
func openStore(conf *config.Config) (repository.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	switch conf.Storage.Driver {
	case "memory":
		return repository.NewMemoryStore(), nil

	case "mongo":
		db, err := database.NewMongoDatabase(ctx, conf.Mongo.URI, conf.Mongo.Database)
		if err != nil {
			return nil, err
		}
		store := repository.NewMongoStore(db)
		if err := store.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		return store, nil

	case "firestore":
		client, err := database.NewFirestoreClient(ctx, conf.Firestore.ProjectID, conf.Firestore.CredentialsFile)
		if err != nil {
			return nil, err
		}
		return repository.NewFirestoreStore(client), nil

	case "mysql":
		db, err := database.NewMySQLConnection(conf.MySQL.DSN)
		if err != nil {
			return nil, err
		}
		return repository.NewGormStore(db)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}
}
