package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/santiagotraba/task-manager-backend/internal/adapter/db"
	httpadapter "github.com/santiagotraba/task-manager-backend/internal/adapter/http"
	"github.com/santiagotraba/task-manager-backend/internal/adapter/http/handlers"
	httpmiddleware "github.com/santiagotraba/task-manager-backend/internal/adapter/http/middleware"
	appservice "github.com/santiagotraba/task-manager-backend/internal/app/service"
	"github.com/santiagotraba/task-manager-backend/internal/app/token"
	"github.com/santiagotraba/task-manager-backend/internal/config"
	"github.com/santiagotraba/task-manager-backend/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
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

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	ctx := context.Background()
	client, err := dbadapter.ConnectDB(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logger.Warn("failed to disconnect from mongodb", zap.Error(err))
		}
	}()

	database := client.Database(cfg.MongoDatabase)
	userRepository := dbadapter.NewUserRepository(database)
	taskRepository := dbadapter.NewTaskRepository(database)
	if err := userRepository.EnsureIndexes(ctx); err != nil {
		logger.Warn("failed to ensure user indexes", zap.Error(err))
	}
	if err := taskRepository.EnsureIndexes(ctx); err != nil {
		logger.Warn("failed to ensure task indexes", zap.Error(err))
	}

	tokens := token.NewManager(cfg.JWTSecret)
	authService := appservice.NewAuthService(userRepository, tokens)
	taskService := appservice.NewTaskService(taskRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger), cors.New(corsConfig(cfg)))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(client)
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	httpadapter.RegisterRoutes(r, tokens, healthHandler, authHandler, taskHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "Accept-Language")

	// Requests without an Origin header (curl, server-to-server) bypass CORS
	// entirely; the allow-list only gates browsers.
	if len(cfg.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}

	corsCfg.AllowOrigins = cfg.AllowedOrigins
	corsCfg.AllowCredentials = true
	return corsCfg
}
