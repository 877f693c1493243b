package app

import (
	"context"
	"english_learning_backend/internal/config"
	"english_learning_backend/internal/controller"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/repository"
	"english_learning_backend/internal/seed"
	"english_learning_backend/internal/service"
	"english_learning_backend/pkg/configwatcher"
	"english_learning_backend/pkg/database"
	"english_learning_backend/pkg/keepalive"
	"english_learning_backend/pkg/logger"
	"english_learning_backend/pkg/monitoring"
	"english_learning_backend/pkg/security"
	"english_learning_backend/pkg/tracing"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const lastSeenInterval = 5 * time.Minute

type App struct {
	Config     *config.Config
	ConfigPath string
	Router     *gin.Engine
	Store      *database.Store
	Redis      *redis.Client

	tracer          *sdktrace.TracerProvider
	keepAlive       *keepalive.Pinger
	cancelWatch     context.CancelFunc
	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	vocabulary *repository.VocabularyRepository
	grammar    *repository.GrammarRepository
	topic      *repository.TopicRepository
	exercise   *repository.ExerciseRepository
	test       *repository.TestRepository
	progress   *repository.ProgressRepository
	session    *repository.SessionRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	stats      *service.StatsService
	storage    *service.StorageService
	progress   *service.ProgressService
	favorite   *service.FavoriteService
	vocabulary *service.VocabularyService
	importer   *service.VocabularyImportService
	grammar    *service.GrammarService
	topic      *service.TopicService
	exercise   *service.ExerciseService
	test       *service.TestService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	vocabulary *controller.VocabularyController
	grammar    *controller.GrammarController
	topic      *controller.TopicController
	exercise   *controller.ExerciseController
	test       *controller.TestController
	favorite   *controller.FavoriteController
	progress   *controller.ProgressController
	health     *controller.HealthController
}

// RegisterConfigCallback runs callback with every successfully reloaded config.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(store *database.Store, rdb *redis.Client) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(database.GetCollection[model.User](store, database.UsersCollection)),
		vocabulary: repository.NewVocabularyRepository(database.GetCollection[model.Vocabulary](store, database.VocabularyCollection)),
		grammar:    repository.NewGrammarRepository(database.GetCollection[model.Grammar](store, database.GrammarCollection)),
		topic:      repository.NewTopicRepository(database.GetCollection[model.Topic](store, database.TopicsCollection)),
		exercise: repository.NewExerciseRepository(
			database.GetCollection[model.Exercise](store, database.ExercisesCollection),
			seed.LoadExerciseFallback(a.Config.Seed.FixturesDir),
		),
		test:     repository.NewTestRepository(database.GetCollection[model.Test](store, database.TestsCollection)),
		progress: repository.NewProgressRepository(database.GetCollection[model.Progress](store, database.ProgressCollection)),
		session:  repository.NewSessionRepository(rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.session, cfg)
	s.stats = service.NewStatsService(repos.user)
	s.user = service.NewUserService(repos.user, repos.progress, s.storage, cfg)
	s.progress = service.NewProgressService(repos.progress)
	s.favorite = service.NewFavoriteService(repos.vocabulary, repos.grammar, repos.topic)
	s.vocabulary = service.NewVocabularyService(repos.vocabulary, s.stats)
	s.importer = service.NewVocabularyImportService(repos.vocabulary)
	s.grammar = service.NewGrammarService(repos.grammar, s.stats)
	s.topic = service.NewTopicService(repos.topic, repos.vocabulary, repos.exercise)
	s.exercise = service.NewExerciseService(repos.exercise, repos.topic, s.progress, s.stats)
	s.test = service.NewTestService(repos.test, s.progress)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.user, a.Config.JWT),
		user:       controller.NewUserController(s.user, s.stats),
		vocabulary: controller.NewVocabularyController(s.vocabulary, s.importer),
		grammar:    controller.NewGrammarController(s.grammar),
		topic:      controller.NewTopicController(s.topic, s.vocabulary),
		exercise:   controller.NewExerciseController(s.exercise),
		test:       controller.NewTestController(s.test),
		favorite:   controller.NewFavoriteController(s.favorite),
		progress:   controller.NewProgressController(s.progress, s.vocabulary, s.grammar),
		health: controller.NewHealthController(map[string]controller.Pinger{
			"mongo": a.Store,
			"redis": controller.PingFunc(func(ctx context.Context) error { return a.Redis.Ping(ctx).Err() }),
		}),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// Seed fills empty content collections from the fixtures directory.
func (a *App) Seed(ctx context.Context) seed.Result {
	return seed.NewSeeder(a.Store, a.Config.Seed.FixturesDir).Run(ctx)
}

func (a *App) startBackgroundTasks() {
	a.keepAlive = keepalive.New(a.Config.KeepAlive.URL, time.Duration(a.Config.KeepAlive.IntervalMinutes)*time.Minute)
	if err := a.keepAlive.Start(); err != nil {
		logger.Log.Error("Failed to start keep-alive", zap.Error(err))
	}

	if a.ConfigPath == "" {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelWatch = cancel
	go func() {
		if err := configwatcher.WatchConfig(ctx, a.ConfigPath, a.applyConfig); err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

// NewApp connects the stores and wires the HTTP stack. configPath names the
// config file to watch for live changes; empty disables watching.
func NewApp(cfg *config.Config, configPath string) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	store, err := database.InitMongo(&cfg.Mongo)
	if err != nil {
		logger.Log.Fatal("Failed to initialize mongo", zap.Error(err))
	}

	indexCtx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	if err := store.EnsureIndexes(indexCtx); err != nil {
		logger.Log.Warn("Failed to ensure indexes", zap.Error(err))
	}
	cancel()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config:     cfg,
		ConfigPath: configPath,
		Store:      store,
		Redis:      rdb,
	}
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetMode(newCfg.Server.Mode)
		logger.Log.Info("Config reloaded", zap.String("log_level", logger.Level().String()))
	})

	if cfg.SeedOnly {
		return app
	}

	if cfg.Seed.Enabled {
		seedCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		app.Seed(seedCtx)
		cancel()
	}

	repos := app.initRepositories(store, rdb)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services)

	monitoring.Init()

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	app.Router = router

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, repos)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks()

	return app
}

// requestLogger writes one structured line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Log.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func (a *App) Close() {
	if a.cancelWatch != nil {
		a.cancelWatch()
	}
	if a.keepAlive != nil {
		a.keepAlive.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.Store != nil {
		if err := a.Store.Close(ctx); err != nil {
			logger.Log.Error("Failed to disconnect mongo", zap.Error(err))
		}
	}
	logger.Log.Sync()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close()
	logger.Log.Info("Server exiting")
}

// ConfigFile is the path of the yaml file LoadConfig reads from dir.
func ConfigFile(dir string) string {
	return filepath.Join(dir, "config.yaml")
}
