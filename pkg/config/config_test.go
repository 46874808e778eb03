package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testConfig = `service_name = "storefront"
version = "1.0.0"
environment = "test"

[http]
port = 9999

[data]
products_path = "testdata/products.json"
orders_path = "testdata/orders.json"
users_path = "testdata/users.json"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	require.Equal(t, "storefront", cfg.ServiceName)
	require.Equal(t, "test", cfg.Environment)
	require.Equal(t, 9999, cfg.HTTP.Port)
	require.Equal(t, "testdata/orders.json", cfg.Data.OrdersPath)

	// 未显式配置的字段取默认值
	require.Equal(t, 30, cfg.HTTP.ReadTimeout)
	require.Equal(t, "info", cfg.Logger.Level)
	require.False(t, cfg.RateLimit.Enabled)
}

func TestLoadRequiresServiceName(t *testing.T) {
	_, err := Load(writeConfig(t, "[http]\nport = 8080\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "service_name")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
