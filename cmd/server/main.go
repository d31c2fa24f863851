package main

import (
	"log"
	"net/http"

	_ "stagevault/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"stagevault/internal/auth"
	"stagevault/internal/cache"
	"stagevault/internal/config"
	"stagevault/internal/db"
	"stagevault/internal/handler"
	"stagevault/internal/hours"
	"stagevault/internal/model"
	"stagevault/internal/policy"
	"stagevault/internal/repository"
	"stagevault/internal/router"
	"stagevault/internal/service"
)

// @title StageVault API
// @version 1.0
// @description Internal dashboard backend: role-gated navigation and team hours aggregation.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.AuditEvent{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Static rule sets, loaded once and consulted read-only
	rules := policy.NewRules(cfg.Access)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize repositories
	auditRepo := repository.NewAuditRepository(gormDB)

	// Initialize hours pipeline
	source := hours.NewHTTPSource(cfg.Access.Endpoints, cfg.Access.Timezone, cfg.Access.RowLimit)
	aggregator := hours.NewAggregator(source, cfg.Access.People)

	// Initialize services
	identityService := service.NewIdentityService(rules, jwtService, sessionStore, auditRepo)
	navigationService := service.NewNavigationService(rules, auditRepo)
	hoursService := service.NewHoursService(aggregator, source, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(identityService, navigationService)
	navHandler := handler.NewNavHandler(navigationService)
	hoursHandler := handler.NewHoursHandler(hoursService, rules)

	// Register routes
	router.Register(e, cfg, cacheClient, authHandler, navHandler, hoursHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
