package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "registration-backend/internal/auth"
	"registration-backend/internal/evaluation"
	"registration-backend/internal/extract"
	"registration-backend/internal/extraction"
	"registration-backend/internal/gazetteer"
	"registration-backend/internal/registrations"
	"registration-backend/internal/scoring"
	"registration-backend/internal/shared/config"
	"registration-backend/internal/shared/server"
	"registration-backend/internal/shared/storage/db"
	"registration-backend/internal/shared/storage/object"
	localstore "registration-backend/internal/shared/storage/object/local"
	s3store "registration-backend/internal/shared/storage/object/s3"
	"registration-backend/internal/submission"
	"registration-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	Tables   *gazetteer.Tables
	Pipeline *extraction.Pipeline

	RegistrationsRepo    registrations.RegistrationsRepo
	UsersRepo            users.Repo
	RegistrationsService *registrations.Service
	UsersService         *users.Service
	Evaluator            *evaluation.Evaluator

	RegistrationsHandler *registrations.Handler
	EvaluationHandler    *evaluation.Handler
	UsersHandler         *users.Handler
	GoogleAuth           *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
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

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              app.Config,
		RegistrationHandler: app.RegistrationsHandler,
		EvaluationHandler:   app.EvaluationHandler,
		UserHandler:         app.UsersHandler,
		GoogleAuth:          app.GoogleAuth,
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

	var sqlDB *sql.DB
	var err error
	if db.IsLambdaRuntime() {
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultLambdaOptions()))
	} else {
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
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

func buildServices(app *App) error {
	var regRepo registrations.RegistrationsRepo
	var userRepo users.Repo

	if app.DB != nil {
		regRepo = &registrations.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		regRepo = registrations.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	tables := gazetteer.Default()
	pipeline := extraction.NewPipeline(tables)

	regSvc := &registrations.Service{
		Repo:        regRepo,
		Store:       app.Store,
		Pipeline:    pipeline,
		Detector:    scoring.FraudDetector{Tables: tables},
		Registry:    submission.NewSimulator(),
		ExtractText: extract.Text,
	}

	evaluator, err := evaluation.New(pipeline)
	if err != nil {
		return fmt.Errorf("load evaluation corpus: %w", err)
	}

	userSvc := users.NewService(userRepo)
	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.Tables = tables
	app.Pipeline = pipeline
	app.RegistrationsRepo = regRepo
	app.UsersRepo = userRepo
	app.RegistrationsService = regSvc
	app.UsersService = userSvc
	app.Evaluator = evaluator
	app.RegistrationsHandler = registrations.NewHandler(regSvc)
	app.EvaluationHandler = evaluation.NewHandler(evaluator)
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleAuthSvc

	return nil
}
