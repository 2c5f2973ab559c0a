package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "github.com/Rithb898/AI-Application-Assistant/internal/auth"
	"github.com/Rithb898/AI-Application-Assistant/internal/generation"
	"github.com/Rithb898/AI-Application-Assistant/internal/history"
	"github.com/Rithb898/AI-Application-Assistant/internal/llm"
	"github.com/Rithb898/AI-Application-Assistant/internal/llm/gemini"
	"github.com/Rithb898/AI-Application-Assistant/internal/resumes"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/config"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/server"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/storage/db"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/storage/object"
	localstore "github.com/Rithb898/AI-Application-Assistant/internal/shared/storage/object/local"
	s3store "github.com/Rithb898/AI-Application-Assistant/internal/shared/storage/object/s3"
)

// App holds shared dependencies built once at startup.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	LLMClient   llm.GeneratorClient
	ResumesRepo resumes.ResumesRepo
	HistoryRepo history.HistoryRepo

	GenerationHandler *generation.Handler
	ResumesHandler    *resumes.Handler
	HistoryHandler    *history.Handler
	GoogleAuth        *googleauth.GoogleService
}

// Build prepares dependencies and the router. The optional client argument
// overrides the Gemini client, which tests use to stub the provider.
func Build(cfg config.Config, client llm.GeneratorClient) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if client == nil {
		client, err = gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMTimeout)
		if err != nil {
			return nil, err
		}
	}

	app := &App{
		Config:    cfg,
		DB:        sqlDB,
		Store:     store,
		LLMClient: client,
	}

	if sqlDB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: sqlDB}
		app.HistoryRepo = &history.PGRepo{DB: sqlDB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.HistoryRepo = history.NewMemoryRepo()
	}

	app.GenerationHandler = generation.NewHandler(
		llm.Invoker{Client: client, Primary: cfg.GeneratePrimary, Fallback: cfg.GenerateFallback},
		client,
		cfg.RegenerateModel,
	)
	app.ResumesHandler = resumes.NewHandler(
		llm.Invoker{Client: client, Primary: cfg.ParsePrimary, Fallback: cfg.ParseFallback},
		app.ResumesRepo,
		app.Store,
	)
	app.HistoryHandler = history.NewHandler(app.HistoryRepo)
	app.GoogleAuth = googleauth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
	)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		GenerationHandler: app.GenerationHandler,
		ResumesHandler:    app.ResumesHandler,
		HistoryHandler:    app.HistoryHandler,
		GoogleAuth:        app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
