package main

import (
	"database/sql"
	"fmt"
	"log"
	"planetary-api/internal/api"
	"planetary-api/internal/config"
	"planetary-api/internal/notifier"
	"planetary-api/internal/repository"
	"planetary-api/internal/service"
	"planetary-api/migrations"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

func connectDB(dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB")
				return db, nil
			}
		}
		log.Printf("Retry %d: failed to connect to DB: %v", i+1, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB after retries: %v", err)
}

func main() {
	cfg := config.Load()

	db, err := connectDB(cfg.DSN())
	if err != nil {
		panic(err)
	}

	if err := migrations.AutoMigratePlanets(3, db); err != nil {
		log.Fatalf("Failed to migrate planets table: %v", err)
	}
	if err := migrations.AutoMigrateUsers(3, db); err != nil {
		log.Fatalf("Failed to migrate users table: %v", err)
	}
	if cfg.SeedDB {
		if err := migrations.SeedDatabase(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	kafkaWriter := config.NewKafkaWriter("catalog-topic")
	sender := notifier.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)

	// Initialize services
	planetRepo := repository.NewPlanetRepository(db)
	userRepo := repository.NewUserRepository(db)
	planetService := service.NewPlanetService(planetRepo, kafkaWriter)
	userService := service.NewUserService(userRepo, rdb, sender, cfg.JWTSecret)
	planetHandler := api.NewPlanetHandler(planetService)
	userHandler := api.NewUserHandler(userService)

	e := api.NewRouter(planetHandler, userHandler, cfg.JWTSecret)

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     40,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
