package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// migrateCmd groups the schema commands for the SQL storage backends
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply storage schema migrations",
	Long: `Apply storage schema migrations.

PostgreSQL databases must be migrated before "serve api" uses them.
SQLite databases are migrated on startup.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(cmd.UsageString())
		os.Exit(2)
	},
}

func init() {
	migrateCmd.PersistentFlags().String("driver", "postgres", "SQL driver, postgres or sqlite3 (defaults to DATABASE_DRIVER when that is a SQL driver)")
	RootCmd.AddCommand(migrateCmd)
}
