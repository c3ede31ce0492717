package main

import (
	"todoapp/pkg/session"
	"todoapp/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "todoapp/internal/adapter/db"
	httpadapter "todoapp/internal/adapter/http"
	"todoapp/internal/adapter/http/handlers"
	httpmiddleware "todoapp/internal/adapter/http/middleware"
	"todoapp/internal/app/service"
	"todoapp/internal/config"
	"todoapp/internal/core/domain"
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
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	if err := dbadapter.Migrate(db); err != nil {
		logger.Fatal("failed to migrate schema", zap.Error(err))
	}

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)

	taskRepository := dbadapter.NewTaskRepository(db)
	userRepository := dbadapter.NewUserRepository(db)

	taskService := service.NewTaskService(taskRepository, domain.TaskPolicy{
		MinTitleLength: cfg.MinTitleLength,
		RequireDueDate: cfg.RequireDueDate,
	})
	authService := service.NewAuthService(userRepository, service.NewPasswordHasher())

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.RequestIDMiddleware(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.LoadTemplates(r, cfg.TemplatesGlob)

	healthHandler := handlers.NewHealthHandler(db)
	todoHandler := handlers.NewTodoHandler(taskService)
	authHandler := handlers.NewAuthHandler(authService, sessions)
	pageHandler := handlers.NewPageHandler(taskService, authService, sessions)

	httpadapter.RegisterRoutes(r, sessions, healthHandler, todoHandler, authHandler, pageHandler)

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
