package config

import (
	"time" // Durations

	"github.com/caarlos0/env/v11" // Env struct parsing
	"github.com/joho/godotenv"    // For loading .env files
)

// Session backends
const (
	BackendMemory = "memory" // In-process map
	BackendRedis  = "redis"  // Redis key
	BackendMySQL  = "mysql"  // session_records table
)

// Config holds the application configuration
type Config struct {
	AppPort   string        `env:"APP_PORT" envDefault:"8080"`             // Application port
	IsProd    bool          `env:"IS_PROD" envDefault:"false"`             // Is production environment
	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev"`            // Session token secret
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`             // Session token lifetime
	LogLevel  string        `env:"LOG_LEVEL" envDefault:"info"`            // Logrus level
	Trusted   []string      `env:"TRUSTED_PROXIES" envDefault:"127.0.0.1"` // Gin trusted proxies

	SessionBackend string        `env:"SESSION_BACKEND" envDefault:"memory"`    // memory, redis or mysql
	SessionKey     string        `env:"SESSION_KEY" envDefault:"earnplay_user"` // Key of the persisted user record
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"0s"`            // Redis record TTL, 0 keeps it

	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"` // Redis server address
	RedisPass string `env:"REDIS_PASS"`                             // Redis password
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`                // Redis database number

	DBUser     string `env:"DB_USER" envDefault:"root"`      // Database user
	DBPassword string `env:"DB_PASSWORD"`                    // Database password
	DBHost     string `env:"DB_HOST" envDefault:"localhost"` // Database host
	DBPort     string `env:"DB_PORT" envDefault:"3306"`      // Database port
	DBName     string `env:"DB_NAME" envDefault:"earnplay"`  // Database name

	SignupBonus     int64 `env:"SIGNUP_BONUS" envDefault:"100"`      // Coins credited to a fresh login
	RestoredBalance int64 `env:"RESTORED_BALANCE" envDefault:"2540"` // Coins of a session restored at startup

	WithdrawDelay      time.Duration `env:"WITHDRAW_DELAY" envDefault:"1500ms"`  // Simulated payout round trip
	GatewayFailureRate float64       `env:"GATEWAY_FAILURE_RATE" envDefault:"0"` // Share of transient payout failures
	GatewayDeclineRate float64       `env:"GATEWAY_DECLINE_RATE" envDefault:"0"` // Share of declined payouts
	GatewayTimeout     time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"5s"`     // Per attempt timeout
	GatewayMaxRetries  uint          `env:"GATEWAY_MAX_RETRIES" envDefault:"3"`  // Attempts per payout
}

// LoadConfig loads configuration from the environment, reading .env first if present
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err // Malformed value in environment
	}
	return &cfg, nil
}

// MySQLDSN builds the Data Source Name for the mysql session backend
func (c *Config) MySQLDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
