package cli

import (
	"testing"

	"github.com/avnit77/recipes/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "sql <database-url>"}
	cmd.Flags().String("driver", "postgres", "")
	return cmd
}

func TestMigrationDriver(t *testing.T) {
	h := newMigrateHandler(&config.Config{DatabaseDriver: "memory"})
	assert.Equal(t, "postgres", h.migrationDriver(newMigrateCmd()))

	h = newMigrateHandler(&config.Config{DatabaseDriver: "sqlite3"})
	assert.Equal(t, "sqlite3", h.migrationDriver(newMigrateCmd()))

	cmd := newMigrateCmd()
	require.NoError(t, cmd.Flags().Set("driver", "postgres"))
	assert.Equal(t, "postgres", h.migrationDriver(cmd))
}

func TestGetDatabaseURL(t *testing.T) {
	cmd := newMigrateCmd()
	assert.Equal(t, "", getDatabaseURL(cmd, nil, 0))
	assert.Equal(t, "postgres://localhost/recipes", getDatabaseURL(cmd, []string{"postgres://localhost/recipes"}, 0))
}
