package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"todo-tracker/internal/application"
	"todo-tracker/internal/application/schedule"
	"todo-tracker/internal/domain/gateway/db"
	"todo-tracker/internal/domain/gateway/throttle"
	"todo-tracker/internal/domain/usecase/auth"
	"todo-tracker/internal/domain/usecase/health"
	"todo-tracker/internal/domain/usecase/project"
	"todo-tracker/internal/domain/usecase/session"
	"todo-tracker/internal/domain/usecase/todo"
	dbgorm "todo-tracker/internal/infra/database/gorm"
	"todo-tracker/pkg/log"
	"todo-tracker/pkg/msg"
	"todo-tracker/pkg/redis"
	"todo-tracker/pkg/resource"
)

func main() {
	log.SetLevel(resource.GetString("app.log.level"))
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	dbConfig := dbgorm.ConfigFromProperties()
	database, err := dbgorm.Open(dbConfig)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.db-connected", dbConfig.Driver))

	if err := dbgorm.Migrate(database); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.db-migrated"))

	var loginThrottle throttle.Gateway = throttle.DisabledLoginThrottle{}
	var cleanupLock schedule.Locker

	if resource.GetBool("app.redis.enabled") {
		redisClient, err := redis.NewClient(redis.ConfigFromProperties())
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()

		loginThrottle = throttle.NewRedisLoginThrottle(redisClient,
			resource.GetInt("app.login.max-attempts"),
			resource.GetDuration("app.login.window"))
		cleanupLock = redis.NewLock(redisClient, "session-cleanup", 10*time.Minute)
	} else {
		log.Info(msg.GetMessage("app.redis-disabled"))
	}

	// Init Gateways
	userGateway := db.NewGormUserGateway(database)
	sessionGateway := db.NewGormSessionGateway(database)
	todoGateway := db.NewGormTodoGateway(database)
	projectGateway := db.NewGormProjectGateway(database)
	healthDBGateway := db.NewGormHealthDBGateway(database)

	// Init UseCases
	authUseCase, err := auth.NewAuthUseCase(userGateway, loginThrottle, bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to init auth", zap.Error(err))
	}
	sessionUseCase := session.NewSessionUseCase(sessionGateway, resource.GetDuration("app.session.ttl"))
	todoUseCase := todo.NewTodoUseCase(todoGateway, projectGateway)
	projectUseCase := project.NewProjectUseCase(projectGateway)
	healthUseCase := health.NewHealthUseCase(healthDBGateway, loginThrottle)

	// Init Server
	e, err := application.NewServer(application.ConfigFromProperties(), application.UseCases{
		Auth:    authUseCase,
		Session: sessionUseCase,
		Todo:    todoUseCase,
		Project: projectUseCase,
		Health:  healthUseCase,
	})
	if err != nil {
		log.Fatal("failed to init server", zap.Error(err))
	}

	// Init Schedule
	sessionScheduler, err := schedule.NewSessionScheduler(sessionUseCase, cleanupLock)
	if err != nil {
		log.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sessionScheduler.InitSessionScheduleTasks(resource.GetString("app.session.clear.cron")); err != nil {
		log.Fatal("failed to schedule session cleanup", zap.Error(err))
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stop"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server", zap.Error(err))
	}
	if err := sessionScheduler.Shutdown(); err != nil {
		log.Error("failed to stop scheduler", zap.Error(err))
	}
}
