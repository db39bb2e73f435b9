package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUsesDefaultsAndEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_NAME", "ledger_test")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("REDIS_ADDR", "cache:6380")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, "ledger_test", cfg.Database.Name)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, DefaultAccounting(), cfg.Accounting)
}

func TestLogErrorWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(&buf)

	LogError(logger, "services", "SubmitKasir", "ledger insert", map[string]string{"report_id": "r1"}, errors.New("boom"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "services", line["module"])
	assert.Equal(t, "SubmitKasir", line["funcName"])
	assert.Equal(t, "boom", line["msg"])
	assert.NotNil(t, line["data"])
}
