package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"codeshift/config"
	"codeshift/controllers"
	"codeshift/db"
	"codeshift/logger"
	"codeshift/middlewares"
	"codeshift/repositories"
	"codeshift/routes"
	"codeshift/services"
	"codeshift/statestore"
	"codeshift/utils"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "./config/config.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.App.Debug)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer lg.Sync()

	utils.SetJWTConfig(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	if err := db.ConnectMongoDB(cfg.Database.URI, cfg.Database.Name); err != nil {
		lg.Fatal("Failed to connect to MongoDB", "error", err)
	}
	lg.Info("Connected to MongoDB", "database", cfg.Database.Name)

	if err := db.EnsureIndexes(context.Background()); err != nil {
		lg.Fatal("Failed to ensure indexes", "error", err)
	}

	states, err := newStateStore(cfg, lg)
	if err != nil {
		lg.Fatal("Failed to build OAuth state store", "error", err)
	}

	github := services.NewGitHubService(cfg.GitHub.ClientID, cfg.GitHub.ClientSecret, cfg.GitHub.RedirectURI)

	userRepo := repositories.NewUserRepository(db.MongoDatabase)
	profileRepo := repositories.NewSkillProfileRepository(db.MongoDatabase)
	repoRepo := repositories.NewRepoRepository(db.MongoDatabase)
	jobRepo := repositories.NewAnalysisJobRepository(db.MongoDatabase)

	authService := services.NewAuthService(userRepo, profileRepo, repoRepo, github, states, cfg.Frontend.URL, lg)
	repoService := services.NewRepoService(repoRepo, jobRepo, github, lg)

	router := setupRouter(cfg, lg, authService, repoService, userRepo)

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Server.Port),
		Handler: router,
	}

	go func() {
		lg.Info("Server starting", "port", cfg.Server.Port, "app", cfg.App.Name, "version", cfg.App.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("Failed to start server", "error", err)
		}
	}()

	// Release resources in reverse construction order on shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	lg.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("Server shutdown failed", "error", err)
	}
	github.Close()
	if err := states.Close(); err != nil {
		lg.Error("State store close failed", "error", err)
	}
	if err := db.DisconnectMongoDB(shutdownCtx); err != nil {
		lg.Error("MongoDB disconnect failed", "error", err)
	}
}

// newStateStore picks Redis when configured so multiple instances share
// pending OAuth states; the in-memory store only suits a single process.
func newStateStore(cfg *config.Config, lg *logger.Logger) (statestore.Store, error) {
	if cfg.Redis.URL != "" {
		lg.Info("Using Redis OAuth state store")
		return statestore.NewRedisStore(cfg.Redis.URL)
	}
	lg.Warn("Using in-memory OAuth state store; callbacks will fail across multiple instances")
	return statestore.NewMemoryStore(), nil
}

func setupRouter(
	cfg *config.Config,
	lg *logger.Logger,
	authService *services.AuthService,
	repoService *services.RepoService,
	userRepo *repositories.UserRepository,
) *gin.Engine {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger(lg))

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Frontend.URL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": cfg.App.Version})
	})

	routes.SetupAuthRoutes(router, controllers.NewAuthController(authService))
	routes.SetupRepositoryRoutes(router, controllers.NewRepositoryController(repoService, userRepo))

	return router
}
