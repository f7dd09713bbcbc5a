package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

const minimalYAML = `
app:
  env: test
mongo:
  uri: mongodb://localhost:27017
  database: bytestation_test
redis:
  addr: localhost:6379
`

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "s3cret")
	t.Setenv("APP_ADMIN_PASSWORD", "changeme")

	cfg, err := Load(writeConfig(t, minimalYAML))
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.App.Port)
	require.Equal(t, 15*time.Second, cfg.ReadTimeout)
	require.Equal(t, "users", cfg.Mongo.UsersCollection)
	require.Equal(t, "contact_messages", cfg.Mongo.ContactsCollection)
	require.Equal(t, 60, cfg.JWT.AccessTTLMinutes)
	require.Equal(t, "admin", cfg.Admin.Username)
	require.Equal(t, "s3cret", cfg.JWT.Secret)
	require.Equal(t, "changeme", cfg.Admin.Password)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "")
	t.Setenv("APP_ADMIN_PASSWORD", "")

	_, err := Load(writeConfig(t, minimalYAML))
	require.Error(t, err)
}

func TestLoadRequiresMongoDatabase(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "s3cret")
	t.Setenv("APP_ADMIN_PASSWORD", "changeme")

	_, err := Load(writeConfig(t, `
app:
  env: test
mongo:
  uri: mongodb://localhost:27017
`))
	require.Error(t, err)
}
