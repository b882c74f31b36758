package server

import (
	"voting-service/configs"
	"voting-service/configs/database"
	"voting-service/internal/adapters/kafka"
	"voting-service/internal/adapters/storage"
	"voting-service/internal/server/handlers"
	"voting-service/internal/server/middleware"
	"voting-service/internal/server/repository"
	"voting-service/internal/server/service"
	"voting-service/internal/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type App struct {
	router     *gin.Engine
	db         *gorm.DB
	hub        *ws.Hub
	voteWriter *kafka.VoteWriter
	port       string
}

func NewApp() (*App, error) {
	config := configs.Load()

	db, err := database.NewMySQLConnection(
		config.MySQLUser,
		config.MySQLPassword,
		config.MySQLHost,
		config.MySQLPort,
		config.MySQLDB,
	)
	if err != nil {
		return nil, err
	}

	if err := database.MigrateMySQL(db); err != nil {
		return nil, err
	}

	redisClient, err := database.InitRedis(config.RedisURL)
	if err != nil {
		return nil, err
	}

	minioClient, err := storage.NewMinIOClient(
		config.MinioEndpoint,
		config.MinioAccessKey,
		config.MinioSecretKey,
		config.MinioBucket,
	)
	if err != nil {
		return nil, err
	}

	voteWriter := kafka.NewVoteWriter(config.KafkaBrokers, config.KafkaTopic)

	hub := ws.NewHub()
	go hub.Run()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Services
	cache := service.NewRedisLeaderboardCache(redisClient)
	authService := service.NewAuthService(userRepo, config.JWTSecret, config.JWTExpire)
	leaderboardService := service.NewLeaderboardService(eventRepo, candidateRepo, voteRepo, userRepo, settingsRepo, cache)
	eventService := service.NewEventService(eventRepo, candidateRepo, leaderboardService)
	votingService := service.NewVotingService(eventRepo, candidateRepo, voteRepo, settingsRepo, leaderboardService, voteWriter, hub)
	exportService := service.NewExportService(eventRepo, candidateRepo, voteRepo, userRepo, settingsRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	userService := service.NewUserService(userRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	eventHandler := handlers.NewEventHandler(eventService)
	candidateHandler := handlers.NewCandidateHandler(eventService, votingService)
	voteHandler := handlers.NewVoteHandler(votingService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	exportHandler := handlers.NewExportHandler(exportService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	uploadHandler := handlers.NewUploadHandler(minioClient)
	userHandler := handlers.NewUserHandler(userService)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	SetupRoutes(
		router,
		config.JWTSecret,
		hub,
		authHandler,
		eventHandler,
		candidateHandler,
		voteHandler,
		leaderboardHandler,
		exportHandler,
		settingsHandler,
		uploadHandler,
		userHandler,
	)

	return &App{
		router:     router,
		db:         db,
		hub:        hub,
		voteWriter: voteWriter,
		port:       config.Port,
	}, nil
}

// Router exposes the gin engine for the HTTP server
func (a *App) Router() *gin.Engine {
	return a.router
}

// Port returns the configured listen port
func (a *App) Port() string {
	return a.port
}

// Shutdown releases the app's long-lived resources
func (a *App) Shutdown() {
	a.hub.Stop()
	_ = a.voteWriter.Close()
}
