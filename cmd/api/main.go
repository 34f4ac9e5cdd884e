package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	dbadapter "github.com/axlwolf/task-manager/internal/adapter/db"
	httpadapter "github.com/axlwolf/task-manager/internal/adapter/http"
	"github.com/axlwolf/task-manager/internal/adapter/http/handlers"
	httpmiddleware "github.com/axlwolf/task-manager/internal/adapter/http/middleware"
	"github.com/axlwolf/task-manager/internal/adapter/kv"
	"github.com/axlwolf/task-manager/internal/adapter/memory"
	"github.com/axlwolf/task-manager/internal/app/dialog"
	"github.com/axlwolf/task-manager/internal/app/service"
	"github.com/axlwolf/task-manager/internal/app/store"
	"github.com/axlwolf/task-manager/internal/app/usecase"
	"github.com/axlwolf/task-manager/internal/config"
	"github.com/axlwolf/task-manager/internal/core/ports"
	"github.com/axlwolf/task-manager/internal/logging"
	"github.com/axlwolf/task-manager/pkg/translator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(logging.Options{
		AppName: cfg.AppName,
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
	})
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	if err := translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	}); err != nil {
		logger.Warn("translations unavailable, falling back to message ids", zap.Error(err))
	}

	ctx := context.Background()
	checks := map[string]handlers.HealthCheck{}

	taskRepository, userRepository, db := buildRepositories(cfg, logger)
	if db != nil {
		checks["mysql"] = db.PingContext
		defer func() {
			if err := db.Close(); err != nil {
				logger.Warn("failed to close mysql connection", zap.Error(err))
			}
		}()
	}

	kvStore, closeKV := buildKeyValueStore(ctx, cfg, logger)
	defer closeKV()
	checks["kv"] = kvStore.Ping

	dialogs := dialog.NewService(logger.Named("dialog"))
	appStore := store.New(store.UseCases{
		GetTasks:     usecase.NewGetTasks(taskRepository),
		GetUsers:     usecase.NewGetUsers(userRepository),
		CreateTask:   usecase.NewCreateTask(taskRepository),
		CompleteTask: usecase.NewCompleteTask(taskRepository),
	}, dialogs, logger.Named("store"))
	defer appStore.Close()

	outlet := dialog.NewOutlet()
	appStore.SetViewAnchor(outlet)
	unsubscribe := appStore.Subscribe(func(state store.State) {
		logger.Debug("store state changed",
			zap.Int("users", len(state.Users)),
			zap.Int("tasks", len(state.Tasks)),
			zap.Bool("loading", state.Loading),
		)
	})
	defer unsubscribe()

	flags := service.NewFeatureFlagService(ctx, kvStore, logger.Named("flags"))
	themes := service.NewThemeService(ctx, kvStore, cfg.DefaultTheme, logger.Named("theme"))

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger), cors.New(httpadapter.CorsConfig(cfg.CorsOrigins)))
	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:      handlers.NewHealthHandler(cfg.AppName, checks),
		Users:       handlers.NewUserHandler(appStore, userRepository),
		Tasks:       handlers.NewTaskHandler(appStore, taskRepository),
		Dialogs:     handlers.NewDialogHandler(appStore, outlet, flags),
		Preferences: handlers.NewPreferencesHandler(themes, flags),
	})

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr), zap.String("driver", cfg.RepositoryDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
}

func buildRepositories(cfg *config.Config, logger *zap.Logger) (ports.TaskRepository, ports.UserRepository, *sqlx.DB) {
	if cfg.RepositoryDriver != config.DriverMySQL {
		return memory.NewTaskRepository(memory.SeedTasks()), memory.NewUserRepository(memory.SeedUsers()), nil
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	if err := dbadapter.Migrate(db); err != nil {
		logger.Fatal("failed to migrate mysql", zap.Error(err))
	}
	return dbadapter.NewTaskRepository(db), dbadapter.NewUserRepository(db), db
}

// buildKeyValueStore uses Redis when configured and reachable, memory otherwise.
func buildKeyValueStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.KeyValueStore, func()) {
	if cfg.RedisAddr == "" {
		return kv.NewMemoryStore(), func() {}
	}

	rdb, err := kv.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Warn("redis unavailable, preferences kept in memory", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		return kv.NewMemoryStore(), func() {}
	}
	return kv.NewRedisStore(rdb), func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("failed to close redis connection", zap.Error(err))
		}
	}
}
