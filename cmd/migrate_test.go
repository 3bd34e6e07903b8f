package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateSQLInheritsDriverFlag(t *testing.T) {
	require.NoError(t, migrateSQLCmd.ParseFlags([]string{"--driver", "sqlite3"}))

	f := migrateSQLCmd.Flags().Lookup("driver")
	require.NotNil(t, f)
	assert.True(t, f.Changed)
	assert.Equal(t, "sqlite3", f.Value.String())
}
