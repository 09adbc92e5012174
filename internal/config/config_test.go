package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, BackendMemory, cfg.SessionBackend)
	require.Equal(t, "earnplay_user", cfg.SessionKey)
	require.Equal(t, int64(100), cfg.SignupBonus)
	require.Equal(t, int64(2540), cfg.RestoredBalance)
	require.Equal(t, 1500*time.Millisecond, cfg.WithdrawDelay)
	require.Equal(t, uint(3), cfg.GatewayMaxRetries)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("WITHDRAW_DELAY", "20ms")
	t.Setenv("SIGNUP_BONUS", "250")
	t.Setenv("GATEWAY_FAILURE_RATE", "0.25")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, BackendRedis, cfg.SessionBackend)
	require.Equal(t, 20*time.Millisecond, cfg.WithdrawDelay)
	require.Equal(t, int64(250), cfg.SignupBonus)
	require.InDelta(t, 0.25, cfg.GatewayFailureRate, 1e-9)
}

func TestLoadConfigRejectsMalformedValue(t *testing.T) {
	t.Setenv("SIGNUP_BONUS", "lots")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestMySQLDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "3306", DBName: "earnplay"}
	require.Equal(t, "u:p@tcp(h:3306)/earnplay?parseTime=true", cfg.MySQLDSN())
}
