package main

import (
	"context" // context package is needed for Redis operations

	"earnplay/internal/api"     // Custom package for API handlers
	"earnplay/internal/app"     // Session lifecycle
	"earnplay/internal/config"  // Custom package for configuration
	"earnplay/internal/db"      // GORM connection
	"earnplay/internal/gateway" // Payout gateway
	"earnplay/internal/session" // Session store backends

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Setup logger
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}

	backend := sessionBackend(cfg) // Backend holding the persisted user record

	// Payout gateway: simulated processor behind the retry policy
	sim := gateway.NewSimulator(gateway.SimulatorConfig{
		Delay:       cfg.WithdrawDelay,
		FailureRate: cfg.GatewayFailureRate,
		DeclineRate: cfg.GatewayDeclineRate,
	})
	retry := gateway.DefaultRetryConfig()
	retry.AttemptTimeout = cfg.GatewayTimeout
	retry.MaxTries = cfg.GatewayMaxRetries

	a := app.New(session.NewStore(backend, cfg.SessionKey), gateway.NewRetrying(sim, retry), app.Settings{
		SignupBonus:     cfg.SignupBonus,
		RestoredBalance: cfg.RestoredBalance,
		TokenSecret:     cfg.JWTSecret,
		TokenTTL:        cfg.TokenTTL,
	})
	a.Open(context.Background()) // Restore the previous session, if any

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies(cfg.Trusted); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}
	api.Register(r, a) // Mount routes

	logrus.WithFields(logrus.Fields{
		"port":            cfg.AppPort,
		"session_backend": cfg.SessionBackend,
	}).Info("Server running")
	if err := r.Run(":" + cfg.AppPort); err != nil { // Start the server on port cfg.AppPort
		logrus.Fatalf("server stopped: %v", err)
	}
}

// sessionBackend connects the configured session backend
func sessionBackend(cfg *config.Config) session.Backend {
	switch cfg.SessionBackend {
	case config.BackendRedis:
		// Setup Redis client
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		return session.NewRedis(redisClient, cfg.SessionTTL)
	case config.BackendMySQL:
		conn, err := db.Open(cfg.MySQLDSN()) // Connect to the database
		if err != nil {
			logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
		}
		if err := db.Migrate(conn); err != nil {
			logrus.Fatalf("migration failed: %v", err)
		}
		return session.NewSQL(conn)
	case config.BackendMemory:
		return session.NewMemory()
	default:
		logrus.Fatalf("unknown SESSION_BACKEND %q", cfg.SessionBackend)
		return nil
	}
}
