package ops

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/archie1710/TRADING-BOT/internal/adapter/enum"
	"github.com/archie1710/TRADING-BOT/pkg/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnv = []string{
	EnvAPIKey, EnvAPISecret, EnvTestnet, EnvBaseURL, EnvRecvWindowMs,
	EnvTimeoutMs, EnvLogFile, EnvLogConsole, EnvLogLevel,
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnv {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	loaded, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, enum.EnvironmentTestnet, loaded.Environment)
	assert.Equal(t, "trading_bot.log", loaded.Log.File)
	assert.True(t, loaded.Log.Console)
	assert.Equal(t, "info", loaded.Log.Level)
	assert.Equal(t, 5*time.Second, loaded.RecvWindow)
	assert.Empty(t, loaded.BaseURL)
	assert.ErrorIs(t, loaded.RequireToken(), exception.ErrConfigMissingCredentials)
}

func TestLoadPriority(t *testing.T) {
	clearEnv(t)

	configPath := writeFile(t, "config.json", `{
		"exchange": {"testnet": false, "recvWindowMs": 10000, "timeoutMs": 3000},
		"log": {"file": "from-config.log", "console": false, "level": "debug"}
	}`)
	envPath := writeFile(t, "test.env", "BINANCE_API_KEY=dotenv-key\nBINANCE_API_SECRET=dotenv-secret\nBOT_LOG_FILE=from-dotenv.log\n")
	t.Setenv(EnvAPISecret, "env-secret")
	t.Setenv(EnvLogLevel, "warn")

	loaded, err := Load(configPath, envPath)
	require.NoError(t, err)

	assert.Equal(t, enum.EnvironmentProduction, loaded.Environment)
	assert.Equal(t, 10*time.Second, loaded.RecvWindow)
	assert.Equal(t, 3*time.Second, loaded.Timeout)
	assert.False(t, loaded.Log.Console)

	assert.Equal(t, "from-dotenv.log", loaded.Log.File)
	assert.Equal(t, "warn", loaded.Log.Level)
	assert.Equal(t, "dotenv-key", loaded.Token.Key)
	assert.Equal(t, "env-secret", loaded.Token.Secret)
	assert.NoError(t, loaded.RequireToken())
}

func TestLoadEnvTestnetOverride(t *testing.T) {
	clearEnv(t)
	configPath := writeFile(t, "config.json", `{"exchange": {"testnet": false}}`)
	t.Setenv(EnvTestnet, "true")
	t.Setenv(EnvBaseURL, "http://localhost:8080")

	loaded, err := Load(configPath, "")
	require.NoError(t, err)
	assert.Equal(t, enum.EnvironmentTestnet, loaded.Environment)
	assert.Equal(t, "http://localhost:8080", loaded.BaseURL)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		desc  string
		env   map[string]string
		isErr error
	}{
		{"bad level", map[string]string{EnvLogLevel: "chatty"}, exception.ErrConfigInvalidLogLevel},
		{"recv window too large", map[string]string{EnvRecvWindowMs: "60001"}, exception.ErrConfigInvalidRecvWindow},
		{"negative timeout", map[string]string{EnvTimeoutMs: "-1"}, exception.ErrConfigInvalidTimeout},
		{"relative base url", map[string]string{EnvBaseURL: "testnet.binancefuture.com"}, exception.ErrConfigInvalidBaseURL},
		{"bad bool", map[string]string{EnvTestnet: "maybe"}, nil},
		{"bad number", map[string]string{EnvTimeoutMs: "soon"}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load("", "")
			require.Error(t, err)
			if tc.isErr != nil {
				assert.ErrorIs(t, err, tc.isErr)
			}
		})
	}
}

func TestLoadMissingFiles(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), "")
	assert.Error(t, err)

	_, err = Load("", filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.json", "{"), "")
	assert.Error(t, err)
}
