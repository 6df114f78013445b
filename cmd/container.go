package main

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/CavidAtamoghlanov/vacancy-management/applicant/applicantapi"
	"github.com/CavidAtamoghlanov/vacancy-management/applicant/applicantsrv"
	"github.com/CavidAtamoghlanov/vacancy-management/iam/auth"
	"github.com/CavidAtamoghlanov/vacancy-management/iam/auth/authinfra"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/fsx"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/fsx/fsxlocal"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/fsx/fsxs3"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/logx"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/storage"
	"github.com/CavidAtamoghlanov/vacancy-management/screening/screeningapi"
	"github.com/CavidAtamoghlanov/vacancy-management/screening/screeningsrv"
	"github.com/CavidAtamoghlanov/vacancy-management/vacancy/vacancyapi"
	"github.com/CavidAtamoghlanov/vacancy-management/vacancy/vacancysrv"
)

// Container holds all application dependencies
type Container struct {
	Config *Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	S3Client   *s3.Client
	FileSystem fsx.FileSystem
	Sessions   storage.SessionFactory

	// Domain Services
	VacancyService   *vacancysrv.Service
	ApplicantService *applicantsrv.Service
	ScreeningService *screeningsrv.Service
	AuthService      *auth.Service
	TokenService     auth.TokenService

	// API Handlers
	VacancyHandlers   *vacancyapi.Handlers
	ApplicantHandlers *applicantapi.Handlers
	ScreeningHandlers *screeningapi.Handlers
	AuthHandlers      *auth.Handlers

	// Middleware
	AuthMiddleware *auth.Middleware
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	cfg := c.Config

	// 1. Persistence Backend
	var backend storage.Backend
	switch cfg.StorageDriver {
	case "memory":
		mem := storage.NewMemoryBackend()
		seedReferenceData(mem)
		backend = mem
	default:
		db, err := sqlx.Connect("postgres", cfg.DSN())
		if err != nil {
			logx.Fatalf("Failed to connect to database: %v", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
		c.DB = db
		backend = storage.NewPostgresBackend(db)
	}
	c.Sessions = storage.NewSessionFactory(backend)

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Pass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. CV File Storage
	switch cfg.FileBackend {
	case "s3":
		awsCfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(cfg.AWS.Region))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		c.S3Client = s3.NewFromConfig(awsCfg)
		c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, cfg.AWS.Bucket, cfg.AWS.Prefix)
	default:
		c.FileSystem = fsxlocal.NewLocalFileSystem(cfg.ResourcesDir)
	}

	// 4. JWT Secret
	if cfg.JWT.Secret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		cfg.JWT.Secret = "super-secret-key-please-change-me-in-production"
	}
}

func (c *Container) initServices() {
	cfg := c.Config

	// --- Infrastructure Services ---
	credentialStore := authinfra.NewBcryptCredentialStore()
	resetStore := authinfra.NewRedisResetTokenStore(c.Redis)
	c.TokenService = auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)

	// --- Domain Services ---
	c.VacancyService = vacancysrv.New(c.Sessions)
	c.ApplicantService = applicantsrv.New(c.Sessions, c.FileSystem)
	c.ScreeningService = screeningsrv.New(c.Sessions)
	c.AuthService = auth.NewService(
		c.Sessions,
		credentialStore,
		c.TokenService,
		resetStore,
		NewConsoleNotifier(),
		cfg.ResetTokenTTL,
	)

	// --- Handlers ---
	c.VacancyHandlers = vacancyapi.NewHandlers(c.VacancyService)
	c.ApplicantHandlers = applicantapi.NewHandlers(c.ApplicantService)
	c.ScreeningHandlers = screeningapi.NewHandlers(c.ScreeningService)
	c.AuthHandlers = auth.NewHandlers(c.AuthService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewMiddleware(c.TokenService)
}

// Close releases infrastructure connections.
func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Redis != nil {
		c.Redis.Close()
	}
}
