package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func newViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(newViper(nil))

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 5*time.Second, cfg.DBQueryTimeout)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, int64(100000), cfg.WorkingSetCacheMaxCost)
	assert.Equal(t, time.Minute, cfg.WorkingSetCacheTTL)
	assert.Equal(t, "budget.events", cfg.AMQPExchange)
	assert.Empty(t, cfg.AMQPURL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.False(t, cfg.IsProduction)
}

func TestFromViper_Overrides(t *testing.T) {
	cfg := fromViper(newViper(map[string]any{
		"PORT":                       "9090",
		"IS_PRODUCTION":              true,
		"DB_QUERY_TIMEOUT":           "250ms",
		"CORS_ALLOWED_ORIGINS":       "https://a.example, https://b.example ,",
		"WORKING_SET_CACHE_MAX_COST": 0,
		"LOG_LEVEL":                  "DEBUG",
	}))

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, 250*time.Millisecond, cfg.DBQueryTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Zero(t, cfg.WorkingSetCacheMaxCost)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromViper_InvalidDurationFallsBack(t *testing.T) {
	cfg := fromViper(newViper(map[string]any{"JWT_EXPIRY_DURATION": "soon"}))

	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
}
